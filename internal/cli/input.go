package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/request"
	"github.com/nvinhtan/chaospy/internal/store"
)

// GridInput holds the flags that describe a grid request. A request file
// argument replaces --dist and --level; --family overrides the file.
type GridInput struct {
	Family    string
	Levels    []int
	Dists     []string
	MaxPoints int
	Database  string
}

func (in *GridInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.Family, "family", "", "rule family (default $GKQUAD_FAMILY)")
	cmd.Flags().IntSliceVar(&in.Levels, "level", nil, "level of every dimension, or one level per --dist")
	cmd.Flags().StringArrayVar(&in.Dists, "dist", nil, `marginal distribution, e.g. "normal(0, 1)" (repeatable)`)
	cmd.Flags().IntVar(&in.MaxPoints, "max-points", -1, "largest grid to build (default $GKQUAD_MAX_POINTS)")
	cmd.Flags().StringVar(&in.Database, "db", "", "grid cache database (default $GKQUAD_DB)")
}

// request resolves the request from a file argument or from flags.
func (in *GridInput) request(opts *RootOptions, args []string) (*request.Request, error) {
	var req *request.Request
	switch {
	case len(args) == 1 && len(in.Dists) > 0:
		return nil, errors.New("a request file and --dist cannot be combined")
	case len(args) == 1:
		r, err := request.Load(args[0])
		if err != nil {
			return nil, err
		}
		req = r
		if in.Family != "" {
			req.Family = in.Family
		}
	case len(in.Dists) == 0:
		return nil, errors.New("no dimensions: pass a request file or at least one --dist")
	case len(in.Levels) == 0:
		return nil, errors.New("--level is required with --dist")
	default:
		r, err := request.FromFlags(in.Family, in.Levels, in.Dists)
		if err != nil {
			return nil, err
		}
		req = r
	}

	if req.Family == "" {
		req.Family = opts.Config.Family
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// buildOptions returns the options every build gets: the point cap from
// the flag or the environment.
func (in *GridInput) buildOptions(opts *RootOptions) []quadrature.Option {
	limit := opts.Config.MaxPoints
	if in.MaxPoints >= 0 {
		limit = in.MaxPoints
	}
	return []quadrature.Option{quadrature.WithMaxPoints(limit)}
}

// database returns the cache path, or "" when caching is off.
func (in *GridInput) database(opts *RootOptions) string {
	if in.Database != "" {
		return in.Database
	}
	return opts.Config.DB
}

// builtGrid is a grid with the identity of the request it came from.
type builtGrid struct {
	RequestID string
	Grid      *quadrature.Grid
	Cached    bool
}

// build builds the grid for req, going through the cache when one is
// configured. Cache failures are returned wrapped as store errors.
func (in *GridInput) build(ctx context.Context, opts *RootOptions, req *request.Request) (builtGrid, error) {
	id, err := req.ID()
	if err != nil {
		return builtGrid{}, err
	}
	log := opts.Logger.With("request_id", id)

	path := in.database(opts)
	if path == "" {
		g, err := in.buildFinite(opts, req)
		if err != nil {
			return builtGrid{}, err
		}
		log.Debug("grid built", "points", g.Len())
		return builtGrid{RequestID: id, Grid: g}, nil
	}

	st, err := store.Open(path)
	if err != nil {
		return builtGrid{}, &storeError{err}
	}
	defer st.Close()

	rec, found, err := st.GetGrid(ctx, id)
	if err != nil {
		return builtGrid{}, &storeError{err}
	}
	if found {
		g, err := rec.Grid()
		if err != nil {
			return builtGrid{}, &storeError{err}
		}
		log.Debug("cache hit", "db", path, "build_id", rec.BuildID)
		return builtGrid{RequestID: id, Grid: g, Cached: true}, nil
	}

	g, err := in.buildFinite(opts, req)
	if err != nil {
		return builtGrid{}, err
	}
	rec, err = store.NewRecord(req, g)
	if err != nil {
		return builtGrid{}, err
	}
	if _, err := st.PutGrid(ctx, rec); err != nil {
		return builtGrid{}, &storeError{err}
	}
	log.Info("grid cached", "db", path, "build_id", rec.BuildID, "points", g.Len())
	return builtGrid{RequestID: id, Grid: g}, nil
}

// buildFinite builds the grid and rejects it if any node is NaN or infinite.
// Such grids cannot be cached or written as JSON.
func (in *GridInput) buildFinite(opts *RootOptions, req *request.Request) (*quadrature.Grid, error) {
	g, err := req.Build(in.buildOptions(opts)...)
	if err != nil {
		return nil, err
	}
	if dim, point, ok := g.NonFinite(); ok {
		return nil, &nonFiniteError{
			dim:   dim,
			point: point,
			value: g.Nodes.At(dim, point),
			dist:  req.Dimensions[dim].Distribution,
			level: g.Levels[dim],
		}
	}
	return g, nil
}

// nonFiniteError reports a grid node the marginal mapped to NaN or infinity.
type nonFiniteError struct {
	dim, point int
	value      float64
	dist       string
	level      int
}

func (e *nonFiniteError) Error() string {
	return fmt.Sprintf("dimension %d (%s, level %d) maps node %d to %v; use a lower level or a normal marginal",
		e.dim, e.dist, e.level, e.point, e.value)
}

// storeError marks a cache failure so it reports E_STORE.
type storeError struct {
	err error
}

func (e *storeError) Error() string { return fmt.Sprintf("grid cache: %v", e.err) }
func (e *storeError) Unwrap() error { return e.err }

// failBuild reports a request or build error with the right envelope code.
func failBuild(f *OutputFormatter, err error) error {
	var se *storeError
	if errors.As(err, &se) {
		_ = f.Error(ErrCodeStore, err.Error(), nil)
		return reported(WrapExitError(ExitCommandError, "grid cache failed", err))
	}
	var nf *nonFiniteError
	if errors.As(err, &nf) {
		_ = f.Error(ErrCodeNonFiniteGrid, err.Error(), map[string]string{
			"dimension": fmt.Sprintf("%d", nf.dim),
			"point":     fmt.Sprintf("%d", nf.point),
		})
		return reported(WrapExitError(ExitCommandError, "non-finite grid", err))
	}
	code := ErrorCode(err)
	if code == ErrCodeGeneric {
		code = ErrCodeInvalidRequest
	}
	_ = f.Error(code, err.Error(), errorDetails(err))
	return reported(WrapExitError(ExitCommandError, "invalid request", err))
}
