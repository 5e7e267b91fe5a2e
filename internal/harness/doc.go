// Package harness runs conformance scenarios against built grids.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: normal_level1
//	description: "Three point rule mapped onto N(1, 4)"
//	request:
//	  family: gk24
//	  dimensions:
//	    - level: 1
//	      distribution: normal(1, 2)
//	assertions:
//	  - type: shape
//	    dims: 1
//	    points: 3
//	  - type: mean
//	    dim: 0
//	    expect: 1
//	  - type: moment
//	    dim: 0
//	    order: 4
//	    expect: 73
//	    tolerance: 1e-10
//
// # Assertion Types
//
//   - shape: number of dimensions and points
//   - weight_sum: sum of all weights
//   - mean: weighted mean of one dimension
//   - variance: weighted variance of one dimension
//   - moment: raw moment E[x^order] of one dimension
//   - error: the request must fail with the given error code
//
// Numeric assertions default to a tolerance of 1e-9.
//
// # Golden Files
//
// Snapshot renders a scenario outcome as canonical JSON with every number
// rounded to 12 significant digits, so golden files do not churn on the
// last bits of floating point sums. Small grids include their nodes and
// weights; larger ones only their summary.
package harness
