package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/store"
)

// CacheOptions holds flags shared by the cache subcommands.
type CacheOptions struct {
	*RootOptions
	Database string
	Family   string
}

// openCache opens the cache database named by --db or GKQUAD_DB.
func (o *CacheOptions) openCache() (*store.Store, error) {
	path := o.Database
	if path == "" {
		path = o.Config.DB
	}
	if path == "" {
		return nil, errors.New("no cache database: pass --db or set GKQUAD_DB")
	}
	return store.Open(path)
}

// NewCacheCommand creates the cache command and its subcommands.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CacheOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the grid cache",
	}
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "grid cache database (default $GKQUAD_DB)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List cached grids in insertion order",
		Long: `List cached grids in insertion order.

Examples:
  gkquad cache list --db grids.db
  gkquad cache list --db grids.db --family gk16 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheList(opts, cmd)
		},
	}
	list.Flags().StringVar(&opts.Family, "family", "", "only grids of this family")

	show := &cobra.Command{
		Use:           "show <request-id>",
		Short:         "Show one cached grid",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheShow(opts, args[0], cmd)
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

func runCacheList(opts *CacheOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var family quadrature.Family
	if opts.Family != "" {
		f, err := quadrature.ParseFamily(opts.Family)
		if err != nil {
			return formatter.Fail(ExitCommandError, "invalid family", err)
		}
		family = f
	}

	st, err := opts.openCache()
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to open cache", err))
	}
	defer st.Close()

	var grids []store.Summary
	if family.Valid() {
		grids, err = st.ListGridsByFamily(cmd.Context(), family)
	} else {
		grids, err = st.ListGrids(cmd.Context())
	}
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to list grids", err))
	}
	if grids == nil {
		grids = []store.Summary{}
	}

	if opts.Format == "json" {
		return formatter.Success(grids)
	}
	if len(grids) == 0 {
		fmt.Fprintln(formatter.Writer, "No cached grids.")
		return nil
	}
	rows := make([]table.Row, len(grids))
	for i, g := range grids {
		rows[i] = table.Row{g.Seq, shortID(g.RequestID), g.Name, g.Family, fmt.Sprint(g.Levels), g.Dims, humanize.Comma(int64(g.Points))}
	}
	formatter.Table("", table.Row{"Seq", "Request", "Name", "Family", "Levels", "Dims", "Points"}, rows)
	return nil
}

// CachedGrid is the printed form of one cache record.
type CachedGrid struct {
	store.Summary
	Distributions []string `json:"distributions"`
}

func runCacheShow(opts *CacheOptions, requestID string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	st, err := opts.openCache()
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to open cache", err))
	}
	defer st.Close()

	rec, found, err := st.GetGrid(cmd.Context(), requestID)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "failed to read grid", err))
	}
	if !found {
		msg := fmt.Sprintf("no cached grid %s", requestID)
		_ = formatter.Error(ErrCodeStore, msg, nil)
		return reported(NewExitError(ExitCommandError, msg))
	}

	view := CachedGrid{Summary: rec.Summary, Distributions: rec.Distributions}
	if opts.Format == "json" {
		return formatter.Success(view)
	}
	w := formatter.Writer
	fmt.Fprintf(w, "Grid %s\n", rec.RequestID)
	fmt.Fprintf(w, "  build %s, seq %d\n", rec.BuildID, rec.Seq)
	fmt.Fprintf(w, "  family %s, %d dims x %s points\n", rec.Family, rec.Dims, humanize.Comma(int64(rec.Points)))
	fmt.Fprintf(w, "  digest %s\n", rec.Digest)
	for i, d := range rec.Distributions {
		fmt.Fprintf(w, "  dim %d: level %d, %s\n", i, rec.Levels[i], d)
	}
	return nil
}

// shortID abbreviates a hex identity for tables.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
