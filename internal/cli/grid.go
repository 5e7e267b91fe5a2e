package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nvinhtan/chaospy/internal/codec"
	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// GridOptions holds flags for the grid command.
type GridOptions struct {
	*RootOptions
	GridInput
	Output string // export path; the extension picks the encoding
	Limit  int    // largest grid whose points are printed
}

// GridView is the printed and exported form of a grid.
type GridView struct {
	RequestID string      `json:"request_id" yaml:"request_id"`
	Family    string      `json:"family" yaml:"family"`
	Levels    []int       `json:"levels" yaml:"levels"`
	Dims      int         `json:"dims" yaml:"dims"`
	Points    int         `json:"points" yaml:"points"`
	WeightSum float64     `json:"weight_sum" yaml:"weight_sum"`
	Cached    bool        `json:"cached,omitempty" yaml:"-"`
	Nodes     [][]float64 `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Weights   []float64   `json:"weights,omitempty" yaml:"weights,omitempty"`
}

func newGridView(b builtGrid, withPoints bool) GridView {
	g := b.Grid
	v := GridView{
		RequestID: b.RequestID,
		Family:    g.Family.String(),
		Levels:    g.Levels,
		Dims:      g.Dims(),
		Points:    g.Len(),
		WeightSum: g.WeightSum(),
		Cached:    b.Cached,
	}
	if withPoints {
		v.Nodes = make([][]float64, g.Dims())
		for i := range v.Nodes {
			v.Nodes[i] = g.Row(i)
		}
		v.Weights = g.Weights
	}
	return v
}

// NewGridCommand creates the grid command.
func NewGridCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GridOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "grid [request-file]",
		Short: "Build a tensor-product quadrature grid",
		Long: `Build the tensor-product grid of a request and print or export it.

The request comes from a YAML or CUE file, or from --dist and --level flags.
With a cache database (--db or GKQUAD_DB) grids are stored by request
identity and reused.

The --output extension selects the export encoding: .json, .yaml/.yml
or .cbor.

Examples:
  gkquad grid --dist "normal(0, 1)" --level 2
  gkquad grid --dist "normal(0, 1)" --dist "uniform(-1, 1)" --level 2,1
  gkquad grid request.yaml --output grid.cbor
  gkquad grid request.cue --db grids.db --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrid(opts, args, cmd)
		},
	}

	opts.GridInput.bind(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "export the grid to a .json, .yaml or .cbor file")
	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "print points of grids with at most this many points (-1 for all)")

	return cmd
}

func runGrid(opts *GridOptions, args []string, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	req, err := opts.request(opts.RootOptions, args)
	if err != nil {
		return failBuild(formatter, err)
	}
	built, err := opts.build(cmd.Context(), opts.RootOptions, req)
	if err != nil {
		return failBuild(formatter, err)
	}

	if opts.Output != "" {
		if err := writeGridFile(opts.Output, newGridView(built, true), built.Grid); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, err.Error(), nil)
			return reported(WrapExitError(ExitCommandError, "failed to write grid", err))
		}
		formatter.VerboseLog("Wrote %s", opts.Output)
	}

	withPoints := opts.Limit < 0 || built.Grid.Len() <= opts.Limit
	view := newGridView(built, withPoints)
	if opts.Format == "json" {
		return formatter.Success(view)
	}
	printGridText(formatter, view)
	return nil
}

func printGridText(f *OutputFormatter, v GridView) {
	cached := ""
	if v.Cached {
		cached = " (cached)"
	}
	fmt.Fprintf(f.Writer, "Grid %s%s\n", v.RequestID, cached)
	fmt.Fprintf(f.Writer, "  family %s, levels %v\n", v.Family, v.Levels)
	fmt.Fprintf(f.Writer, "  %d dims x %s points, weight sum %.15g\n", v.Dims, humanize.Comma(int64(v.Points)), v.WeightSum)
	if v.Nodes == nil {
		return
	}

	header := table.Row{"#"}
	for d := range v.Nodes {
		header = append(header, fmt.Sprintf("x%d", d))
	}
	header = append(header, "weight")

	rows := make([]table.Row, v.Points)
	for j := range rows {
		row := table.Row{j}
		for d := range v.Nodes {
			row = append(row, fmt.Sprintf("%.12g", v.Nodes[d][j]))
		}
		rows[j] = append(row, fmt.Sprintf("%.12g", v.Weights[j]))
	}
	f.Table("", header, rows)
}

// writeGridFile exports a grid. JSON and YAML carry the full view; CBOR
// carries the codec payload.
func writeGridFile(path string, v GridView, g *quadrature.Grid) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case ".cbor":
		data, err = codec.EncodeGrid(g)
	default:
		return fmt.Errorf("unsupported output extension %q (use .json, .yaml or .cbor)", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode grid: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
