package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// LevelInfo describes one level of a family.
type LevelInfo struct {
	Level     int `json:"level"`
	Order     int `json:"order"`
	Precision int `json:"precision"`
}

// FamilyInfo describes a rule family.
type FamilyInfo struct {
	Family  string      `json:"family"`
	Default bool        `json:"default,omitempty"`
	Levels  []LevelInfo `json:"levels"`
}

// NewFamiliesCommand creates the families command.
func NewFamiliesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List rule families with their orders and precisions",
		Long: `List the Genz-Keister families. Each level has an order (number of
points) and a precision (highest polynomial degree integrated exactly).
The configured default family (GKQUAD_FAMILY) is marked.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFamilies(rootOpts, cmd)
		},
	}
}

func runFamilies(opts *RootOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	def := opts.Config.DefaultFamily()

	var infos []FamilyInfo
	for _, f := range quadrature.Families() {
		info := FamilyInfo{Family: f.String(), Default: f == def}
		for level, order := range f.Orders() {
			p, err := f.Precision(level)
			if err != nil {
				return formatter.Fail(ExitCommandError, "failed to describe family", err)
			}
			info.Levels = append(info.Levels, LevelInfo{Level: level, Order: order, Precision: p})
		}
		infos = append(infos, info)
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	var rows []table.Row
	for _, info := range infos {
		name := info.Family
		if info.Default {
			name += " *"
		}
		for _, l := range info.Levels {
			rows = append(rows, table.Row{name, l.Level, l.Order, l.Precision})
			name = ""
		}
	}
	formatter.Table("", table.Row{"Family", "Level", "Order", "Precision"}, rows)
	fmt.Fprintln(formatter.Writer, "* default family")
	return nil
}
