package quadrature

import (
	"reflect"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is a one-dimensional marginal exposing its inverse
// cumulative distribution function. Every gonum distuv distribution with a
// Quantile method satisfies it.
//
// Quantile must accept the whole closed interval [0, 1]; what it returns at
// the end points is up to the distribution.
type Distribution interface {
	Quantile(p float64) float64
}

// NormalCDF is the standard normal cumulative distribution function.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// missing reports whether d is nil or a nil pointer wrapped in the
// interface, such as (*distuv.Normal)(nil).
func missing(d Distribution) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// transform maps standard normal abscissas into the domain of d by
// evaluating d.Quantile(NormalCDF(x)).
//
// Normal marginals are mapped affinely instead. The result is the same
// composition, but it stays finite where NormalCDF rounds to 1.
func transform(d Distribution, x []float64) []float64 {
	out := make([]float64, len(x))
	switch n := d.(type) {
	case distuv.Normal:
		affine(out, x, n.Mu, n.Sigma)
	case *distuv.Normal:
		affine(out, x, n.Mu, n.Sigma)
	default:
		for i, v := range x {
			out[i] = d.Quantile(NormalCDF(v))
		}
	}
	return out
}

func affine(dst, x []float64, mu, sigma float64) {
	for i, v := range x {
		dst[i] = mu + sigma*v
	}
}
