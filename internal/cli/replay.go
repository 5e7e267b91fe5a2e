package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database  string
	RequestID string // optional - specific grid only
}

// ReplayGridResult holds the replay result for a single cached grid.
type ReplayGridResult struct {
	RequestID     string `json:"request_id"`
	Name          string `json:"name,omitempty"`
	Points        int    `json:"points"`
	Deterministic bool   `json:"deterministic"`
	Error         string `json:"error,omitempty"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Grids            []ReplayGridResult `json:"grids"`
	TotalGrids       int                `json:"total_grids"`
	AllDeterministic bool               `json:"all_deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Rebuild cached grids and verify determinism",
		Long: `Rebuild every cached grid from its stored request and compare the
result with the cached copy.

A grid is deterministic when the rebuilt request has the cached request
identity and the rebuilt grid has the cached digest.

Exit codes:
  0 - All grids are deterministic
  1 - Determinism verification failed (differences detected)
  2 - Command error (database not found, etc.)

Examples:
  gkquad replay --db grids.db
  gkquad replay --db grids.db --request 3f2a...
  gkquad replay --db grids.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RequestID, "request", "", "replay specific grid only")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	if err := opts.setup(cmd); err != nil {
		return err
	}
	ctx := cmd.Context()

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	var ids []string
	if opts.RequestID != "" {
		ids = []string{opts.RequestID}
	} else {
		grids, err := st.ListGrids(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list grids", err)
		}
		for _, g := range grids {
			ids = append(ids, g.RequestID)
		}
	}

	result := ReplayResult{
		Grids:            make([]ReplayGridResult, 0, len(ids)),
		TotalGrids:       len(ids),
		AllDeterministic: true,
	}
	for _, id := range ids {
		gridResult, err := replayGrid(ctx, opts, st, id)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to replay grid %s", id), err)
		}
		result.Grids = append(result.Grids, gridResult)
		if !gridResult.Deterministic {
			result.AllDeterministic = false
		}
	}

	if opts.Format == "json" {
		return outputReplayJSON(cmd, result)
	}
	return outputReplayText(cmd, result)
}

// replayGrid rebuilds one cached grid. Store failures are returned as
// errors; a grid that cannot be rebuilt is reported as non-deterministic.
func replayGrid(ctx context.Context, opts *ReplayOptions, st *store.Store, requestID string) (ReplayGridResult, error) {
	rec, found, err := st.GetGrid(ctx, requestID)
	if err != nil {
		return ReplayGridResult{}, err
	}
	if !found {
		return ReplayGridResult{}, fmt.Errorf("no cached grid %s", requestID)
	}

	out := ReplayGridResult{RequestID: requestID, Name: rec.Name, Points: rec.Points}
	req := rec.Request()

	id, err := req.ID()
	if err != nil {
		out.Error = err.Error()
		return out, nil
	}
	if id != rec.RequestID {
		out.Error = fmt.Sprintf("request identity changed to %s", id)
		return out, nil
	}

	g, err := req.Build()
	if err != nil {
		out.Error = err.Error()
		return out, nil
	}
	digest, err := store.Digest(g)
	if err != nil {
		out.Error = err.Error()
		return out, nil
	}
	if digest != rec.Digest {
		out.Error = fmt.Sprintf("digest %s differs from cached %s", digest, rec.Digest)
		return out, nil
	}

	opts.Logger.Debug("grid replayed", "request_id", requestID, "points", g.Len())
	out.Deterministic = true
	return out, nil
}

// outputReplayJSON outputs the replay result as JSON.
func outputReplayJSON(cmd *cobra.Command, result ReplayResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}
	if !result.AllDeterministic {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    "E_NONDETERMINISTIC",
			Message: "one or more grids differ from their cached copy",
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if !result.AllDeterministic {
		return reported(NewExitError(ExitFailure, "determinism verification failed"))
	}
	return nil
}

// outputReplayText outputs the replay result as text.
func outputReplayText(cmd *cobra.Command, result ReplayResult) error {
	w := cmd.OutOrStdout()
	if result.TotalGrids == 0 {
		fmt.Fprintln(w, "No grids found in database.")
		return nil
	}

	for _, g := range result.Grids {
		if g.Deterministic {
			fmt.Fprintf(w, "✓ %s (%d points)\n", shortID(g.RequestID), g.Points)
		} else {
			fmt.Fprintf(w, "✗ %s\n  %s\n", shortID(g.RequestID), g.Error)
		}
	}
	fmt.Fprintf(w, "\n%d grid(s) replayed\n", result.TotalGrids)

	if !result.AllDeterministic {
		return reported(NewExitError(ExitFailure, "determinism verification failed"))
	}
	return nil
}
