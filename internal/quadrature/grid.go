package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Grid is a tensor-product quadrature rule.
//
// Nodes has one row per dimension and one column per point; column j of
// Nodes is the point whose joint weight is Weights[j].
type Grid struct {
	Nodes   *mat.Dense
	Weights []float64

	// Family and Levels record how the grid was built.
	Family Family
	Levels []int
}

// NewGrid wraps an existing node matrix and weight vector.
// It panics if the number of columns differs from len(weights).
func NewGrid(nodes *mat.Dense, weights []float64, f Family, levels []int) *Grid {
	if _, c := nodes.Dims(); c != len(weights) {
		panic("quadrature: node columns and weights differ in length")
	}
	return &Grid{Nodes: nodes, Weights: weights, Family: f, Levels: levels}
}

// Dims returns the number of dimensions.
func (g *Grid) Dims() int {
	r, _ := g.Nodes.Dims()
	return r
}

// Len returns the number of points.
func (g *Grid) Len() int {
	return len(g.Weights)
}

// Row returns a copy of the nodes of dimension i.
func (g *Grid) Row(i int) []float64 {
	return mat.Row(nil, i, g.Nodes)
}

// Point copies point j into dst, allocating if dst is nil, and returns it.
func (g *Grid) Point(j int, dst []float64) []float64 {
	return mat.Col(dst, j, g.Nodes)
}

// WeightSum returns the sum of the weights.
func (g *Grid) WeightSum() float64 {
	return floats.Sum(g.Weights)
}

// Expect returns sum_j Weights[j] * f(point j).
// The slice passed to f is reused between calls.
func (g *Grid) Expect(f func(x []float64) float64) float64 {
	x := make([]float64, g.Dims())
	var sum float64
	for j, w := range g.Weights {
		sum += w * f(g.Point(j, x))
	}
	return sum
}

// Mean returns the weighted mean of each dimension.
func (g *Grid) Mean() []float64 {
	means := make([]float64, g.Dims())
	for i := range means {
		means[i] = stat.Mean(g.Row(i), g.Weights)
	}
	return means
}

// Variance returns the weighted second central moment of each dimension.
func (g *Grid) Variance() []float64 {
	vars := make([]float64, g.Dims())
	for i := range vars {
		vars[i] = stat.Moment(2, g.Row(i), g.Weights)
	}
	return vars
}

// NonFinite returns the dimension and point of the first node that is NaN or
// infinite, scanning points in order. ok is false when every node is finite.
//
// Non-normal marginals can map the outermost abscissas to the end of their
// support when NormalCDF rounds to 0 or 1.
func (g *Grid) NonFinite() (dim, point int, ok bool) {
	rows, cols := g.Nodes.Dims()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := g.Nodes.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
