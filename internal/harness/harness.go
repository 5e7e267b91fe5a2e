package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/store"
)

// Harness is the scenario execution engine.
//
// A scenario's grid is built, written to a fresh in-memory store, read
// back and decoded before any assertion runs, so every scenario also
// covers the cache round trip.
type Harness struct {
	logger *slog.Logger
	opts   []quadrature.Option
}

// New creates a harness. A nil logger discards output. opts apply to every
// build; a scenario's own family and point cap take precedence.
func New(logger *slog.Logger, opts ...quadrature.Option) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger, opts: opts}
}

// Run executes a scenario with a default harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(context.Background(), scenario)
}

// Run executes a scenario and returns the result.
//
// Assertion failures are reported in the result. The returned error is
// reserved for infrastructure failures such as the store.
//
// Execution flow:
// 1. Build the grid from the scenario request
// 2. On a build error, record its code and check error assertions
// 3. Store the grid in a fresh in-memory database and read it back
// 4. Evaluate grid assertions against the decoded grid
func (h *Harness) Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	result := NewResult()
	log := h.logger.With("scenario", scenario.Name)

	g, err := scenario.Request.Build(h.opts...)
	if err != nil {
		result.ErrorCode = codeOf(err)
		log.Debug("build failed", "code", result.ErrorCode, "error", err)
		if !scenario.expectsError() {
			result.AddError(fmt.Sprintf("build failed: %v", err))
			return result, nil
		}
		for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
			result.AddError(msg)
		}
		return result, nil
	}

	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	rec, err := store.NewRecord(&scenario.Request, g)
	if err != nil {
		return nil, err
	}
	if _, err := st.PutGrid(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store grid: %w", err)
	}
	stored, found, err := st.GetGrid(ctx, rec.RequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("grid %s missing after write", rec.RequestID)
	}
	decoded, err := stored.Grid()
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored grid: %w", err)
	}
	digest, err := store.Digest(decoded)
	if err != nil {
		return nil, err
	}
	if digest != rec.Digest {
		result.AddError(fmt.Sprintf("stored grid digest %s differs from built grid digest %s", digest, rec.Digest))
	}

	result.RequestID = rec.RequestID
	result.Grid = decoded
	log.Debug("grid built", "request_id", rec.RequestID, "dims", decoded.Dims(), "points", decoded.Len())

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}
