package quadrature

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rule is a one-dimensional quadrature rule for the standard normal weight
// exp(-x*x/2)/sqrt(2*pi).
//
// Weights sum to 1. Some weights are negative; that is expected of
// interpolatory rules and is not an error.
type Rule struct {
	Family    Family
	Level     int
	Order     int
	Precision int
	Abscissas []float64
	Weights   []float64
}

// Len returns the number of points in the rule.
func (r Rule) Len() int {
	return len(r.Abscissas)
}

// OneDim returns the rule at the given level of a family.
//
// The tabulated weights are divided by their sum and the abscissas are
// multiplied by sqrt(2), converting from the exp(-x*x) convention of the
// tables to the standard normal convention. The returned slices are fresh
// copies; callers may modify them.
func OneDim(f Family, level int) (Rule, error) {
	order, err := f.Order(level)
	if err != nil {
		return Rule{}, err
	}
	t, ok := f.lookup(order)
	if !ok || len(t.abscissas) != order || len(t.weights) != order {
		return Rule{}, NewUnsupportedOrderError(f, level, order)
	}

	x := append([]float64(nil), t.abscissas...)
	w := append([]float64(nil), t.weights...)

	sum := floats.Sum(w)
	for i := range w {
		w[i] /= sum
	}
	floats.Scale(math.Sqrt2, x)

	return Rule{
		Family:    f,
		Level:     level,
		Order:     order,
		Precision: families[f].precisions[level],
		Abscissas: x,
		Weights:   w,
	}, nil
}
