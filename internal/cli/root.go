package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/config"
)

// RootOptions holds global flags for all commands, plus the configuration
// and logger derived from them before a command runs.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	Config config.Config
	Logger *slog.Logger

	ready bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the gkquad CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gkquad",
		Short: "gkquad - Genz-Keister quadrature grids",
		Long: `Nested Genz-Keister quadrature for Gaussian weights, combined into
tensor-product grids over independent marginal distributions.

Environment:
  GKQUAD_FAMILY      default rule family (gk16, gk18, gk22, gk24)
  GKQUAD_DB          grid cache path (empty disables caching)
  GKQUAD_LOG_LEVEL   debug, info, warn or error
  GKQUAD_MAX_POINTS  largest grid that may be built (0 = no cap)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewFamiliesCommand(opts))
	cmd.AddCommand(NewRuleCommand(opts))
	cmd.AddCommand(NewGridCommand(opts))
	cmd.AddCommand(NewMomentsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))
	cmd.AddCommand(NewReplayCommand(opts))

	return cmd
}

// setup validates the global flags, loads the environment configuration
// and installs the logger. It runs once; subcommands built directly in
// tests call it from their own RunE.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.ready {
		return nil
	}
	if o.Format == "" {
		o.Format = "text"
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	cfg, err := config.Load()
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	level, _ := cfg.Level()
	if o.Verbose {
		level = slog.LevelDebug
	}

	o.Config = cfg
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	}
	o.ready = true
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
