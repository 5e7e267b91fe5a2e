package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// EvaluateAssertions checks every assertion against the result and returns
// the failure messages, in assertion order.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var failures []string
	for i, a := range assertions {
		if err := evaluate(result, a); err != nil {
			failures = append(failures, fmt.Sprintf("assertions[%d]: %s", i, err))
		}
	}
	return failures
}

func evaluate(result *Result, a Assertion) error {
	if a.Type == AssertError {
		return assertError(result, a)
	}
	if result.Grid == nil {
		return &AssertionError{
			Type:     a.Type,
			Expected: "a grid",
			Actual:   fmt.Sprintf("build failed with %s", result.ErrorCode),
		}
	}
	g := result.Grid

	switch a.Type {
	case AssertShape:
		if g.Dims() != a.Dims || g.Len() != a.Points {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%d dims x %d points", a.Dims, a.Points),
				Actual:   fmt.Sprintf("%d dims x %d points", g.Dims(), g.Len()),
			}
		}
		return nil
	case AssertWeightSum:
		return assertClose(a, g.WeightSum())
	}

	if a.Dim >= g.Dims() {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("dimension %d", a.Dim),
			Actual:   fmt.Sprintf("grid has %d dimensions", g.Dims()),
		}
	}
	switch a.Type {
	case AssertMean:
		return assertClose(a, g.Mean()[a.Dim])
	case AssertVariance:
		return assertClose(a, g.Variance()[a.Dim])
	case AssertMoment:
		return assertClose(a, rawMoment(g, a.Dim, a.Order))
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func assertError(result *Result, a Assertion) error {
	if result.ErrorCode == a.Code {
		return nil
	}
	actual := "no error"
	if result.ErrorCode != "" {
		actual = result.ErrorCode
	}
	return &AssertionError{Type: a.Type, Expected: a.Code, Actual: actual}
}

func assertClose(a Assertion, got float64) error {
	tol := a.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if math.Abs(got-*a.Expect) <= tol {
		return nil
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: fmt.Sprintf("%.15g (tolerance %g)", *a.Expect, tol),
		Actual:   fmt.Sprintf("%.15g", got),
	}
}

// rawMoment returns E[x_dim^order] under the grid weights.
func rawMoment(g *quadrature.Grid, dim, order int) float64 {
	k := float64(order)
	return g.Expect(func(x []float64) float64 {
		return math.Pow(x[dim], k)
	})
}
