package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Order specifies the level of every dimension of a tensor grid: either one
// level shared by all dimensions or one level per dimension.
type Order struct {
	levels  []int
	uniform bool
}

// Uniform applies the same level to every dimension.
func Uniform(level int) Order {
	return Order{levels: []int{level}, uniform: true}
}

// PerDimension assigns levels[i] to dimension i.
func PerDimension(levels ...int) Order {
	return Order{levels: append([]int(nil), levels...)}
}

// Expand returns one level per dimension.
// A per-dimension order must have exactly dims entries.
func (o Order) Expand(dims int) ([]int, error) {
	if dims <= 0 {
		return nil, NewDimensionMismatchError(len(o.levels), dims)
	}
	if o.uniform {
		levels := make([]int, dims)
		for i := range levels {
			levels[i] = o.levels[0]
		}
		return levels, nil
	}
	if len(o.levels) != dims {
		return nil, NewDimensionMismatchError(len(o.levels), dims)
	}
	return append([]int(nil), o.levels...), nil
}

func (o Order) String() string {
	if o.uniform {
		return fmt.Sprintf("uniform(%d)", o.levels[0])
	}
	return fmt.Sprintf("%v", o.levels)
}

// Options control how a tensor grid is built.
type Options struct {
	Family    Family
	MaxPoints int
}

// Option mutates Options.
type Option func(o *Options)

func applyOptions(o *Options, opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithFamily selects the rule family.
// Default: DefaultFamily
func WithFamily(f Family) Option {
	return func(o *Options) {
		o.Family = f
	}
}

// WithMaxPoints caps the number of grid points. Zero means no cap beyond
// what fits in an int.
// Default: 0
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		o.MaxPoints = n
	}
}

// Univariate resolves the rule at level and maps its abscissas into the
// domain of d. The returned grid has a single row; weights are unchanged.
func Univariate(level int, d Distribution, f Family) (*Grid, error) {
	if missing(d) {
		return nil, NewMissingDistributionError(0)
	}
	if !f.Valid() {
		return nil, NewUnknownFamilyError(f.String())
	}
	r, err := OneDim(f, level)
	if err != nil {
		return nil, err
	}
	nodes := transform(d, r.Abscissas)
	return &Grid{
		Nodes:   mat.NewDense(1, len(nodes), nodes),
		Weights: r.Weights,
		Family:  f,
		Levels:  []int{level},
	}, nil
}

// Multivariate builds the tensor-product rule over independent marginals.
//
// Each dimension is resolved with Univariate. The grid then holds every
// combination of per-dimension nodes, enumerated by Enumerate, and the
// joint weight of a point is the product of its per-dimension weights.
// Nothing is returned unless every dimension resolves.
func Multivariate(order Order, dists []Distribution, opts ...Option) (*Grid, error) {
	o := Options{Family: DefaultFamily}
	applyOptions(&o, opts...)

	if !o.Family.Valid() {
		return nil, NewUnknownFamilyError(o.Family.String())
	}
	levels, err := order.Expand(len(dists))
	if err != nil {
		return nil, err
	}

	marginals := make([]*Grid, len(dists))
	sizes := make([]int, len(dists))
	for i, d := range dists {
		if missing(d) {
			return nil, NewMissingDistributionError(i)
		}
		g, err := Univariate(levels[i], d, o.Family)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		marginals[i] = g
		sizes[i] = g.Len()
	}

	total, err := GridSize(sizes, o.MaxPoints)
	if err != nil {
		return nil, err
	}

	nodes := mat.NewDense(len(dists), total, nil)
	weights := make([]float64, total)
	Enumerate(sizes, func(j int, idx []int) {
		w := 1.0
		for d, k := range idx {
			nodes.Set(d, j, marginals[d].Nodes.At(0, k))
			w *= marginals[d].Weights[k]
		}
		weights[j] = w
	})

	return &Grid{
		Nodes:   nodes,
		Weights: weights,
		Family:  o.Family,
		Levels:  levels,
	}, nil
}
