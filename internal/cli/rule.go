package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// RuleOptions holds flags for the rule command.
type RuleOptions struct {
	*RootOptions
	Family string
	Level  int
}

// RuleView is the printed form of a one-dimensional rule.
type RuleView struct {
	Family    string    `json:"family"`
	Level     int       `json:"level"`
	Order     int       `json:"order"`
	Precision int       `json:"precision"`
	Abscissas []float64 `json:"abscissas"`
	Weights   []float64 `json:"weights"`
}

// NewRuleCommand creates the rule command.
func NewRuleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RuleOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Print a one-dimensional rule",
		Long: `Print the abscissas and weights of one level of a family, scaled for
the standard normal density. Weights sum to 1.

Examples:
  gkquad rule --level 2
  gkquad rule --family gk16 --level 4 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRule(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Family, "family", "", "rule family (default $GKQUAD_FAMILY)")
	cmd.Flags().IntVar(&opts.Level, "level", 0, "level index")

	return cmd
}

func runRule(opts *RuleOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	f := opts.Config.DefaultFamily()
	if opts.Family != "" {
		parsed, err := quadrature.ParseFamily(opts.Family)
		if err != nil {
			return formatter.Fail(ExitCommandError, "invalid family", err)
		}
		f = parsed
	}

	r, err := quadrature.OneDim(f, opts.Level)
	if err != nil {
		return formatter.Fail(ExitCommandError, "invalid rule", err)
	}
	opts.Logger.Debug("rule resolved", "family", f.String(), "level", r.Level, "order", r.Order)

	view := RuleView{
		Family:    r.Family.String(),
		Level:     r.Level,
		Order:     r.Order,
		Precision: r.Precision,
		Abscissas: r.Abscissas,
		Weights:   r.Weights,
	}
	if opts.Format == "json" {
		return formatter.Success(view)
	}

	fmt.Fprintf(formatter.Writer, "%s level %d: %d points, exact to degree %d\n", view.Family, view.Level, view.Order, view.Precision)
	rows := make([]table.Row, r.Len())
	for i := range rows {
		rows[i] = table.Row{i, fmt.Sprintf("%+.17g", r.Abscissas[i]), fmt.Sprintf("%.17g", r.Weights[i])}
	}
	formatter.Table("", table.Row{"#", "Abscissa", "Weight"}, rows)
	return nil
}
