package testutil

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// NormalMoment returns E[X^k] for X ~ N(0, 1): zero for odd k and (k-1)!!
// for even k.
func NormalMoment(k int) float64 {
	if k%2 == 1 {
		return 0
	}
	m := 1.0
	for i := k - 1; i > 1; i -= 2 {
		m *= float64(i)
	}
	return m
}

// RawMoment returns sum_i w[i] * x[i]^k and sum_i |w[i] * x[i]^k|.
//
// The absolute sum is the natural scale for the rounding error of the first
// result, which matters when odd moments cancel to zero.
func RawMoment(x, w []float64, k int) (sum, scale float64) {
	for i := range x {
		t := w[i] * math.Pow(x[i], float64(k))
		sum += t
		scale += math.Abs(t)
	}
	return sum, scale
}

// RelErr returns |got-want| / max(|scale|, 1).
func RelErr(got, want, scale float64) float64 {
	return math.Abs(got-want) / math.Max(math.Abs(scale), 1)
}

// StandardNormals returns n independent N(0, 1) marginals.
func StandardNormals(n int) []quadrature.Distribution {
	out := make([]quadrature.Distribution, n)
	for i := range out {
		out[i] = distuv.UnitNormal
	}
	return out
}
