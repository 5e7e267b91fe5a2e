// Package quadrature provides Genz-Keister Hermite quadrature rules and a
// tensor-product combinator that maps them onto arbitrary marginals.
//
// A Family is a nested sequence of one-dimensional rules for the standard
// normal weight. OneDim looks a rule up by level. Univariate maps a rule
// into one marginal's domain through Quantile(NormalCDF(x)), and
// Multivariate crosses several such rules into a Grid:
//
//	g, err := quadrature.Multivariate(
//		quadrature.PerDimension(2, 3),
//		[]quadrature.Distribution{
//			distuv.Normal{Mu: 1, Sigma: 2},
//			distuv.Uniform{Min: 0, Max: 1},
//		},
//		quadrature.WithFamily(quadrature.GK18),
//	)
//	mean := g.Expect(func(x []float64) float64 { return x[0] * x[1] })
//
// Rule tables are read-only package data and every call returns freshly
// allocated results, so all functions are safe for concurrent use. Nothing
// in this package logs or performs I/O.
//
// Level k of a family is a subset of level k+1 (the rules are nested), and
// a rule of precision P integrates polynomials of degree <= P exactly
// against the standard normal density.
package quadrature
