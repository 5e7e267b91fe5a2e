package quadrature

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// GridSize returns the number of points in the tensor product of rules with
// the given sizes. A positive limit caps the result; the product must also
// fit in an int.
func GridSize(sizes []int, limit int) (int, error) {
	total := 1
	for _, n := range sizes {
		if n <= 0 {
			return 0, nil
		}
		if total > math.MaxInt/n {
			return 0, NewGridTooLargeError(sizes, math.MaxInt)
		}
		total *= n
	}
	if limit > 0 && total > limit {
		return 0, NewGridTooLargeError(sizes, limit)
	}
	return total, nil
}

// Enumerate visits every index tuple of the Cartesian product
// [0, sizes[0]) x ... x [0, sizes[D-1]) exactly once, in lexicographic order
// with the last dimension varying fastest. j is the position of the tuple in
// that order.
//
// idx is reused between calls; visit must copy it to retain it. Nodes and
// weights of a tensor grid are both filled from the same visit so their
// column order cannot drift apart.
func Enumerate(sizes []int, visit func(j int, idx []int)) {
	if len(sizes) == 0 {
		return
	}
	for _, n := range sizes {
		if n <= 0 {
			return
		}
	}

	gen := combin.NewCartesianGenerator(sizes)
	idx := make([]int, len(sizes))
	for j := 0; gen.Next(); j++ {
		visit(j, gen.Product(idx))
	}
}
