package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/testutil"
)

func gridResult(t *testing.T, level, dims int) *Result {
	t.Helper()
	g, err := quadrature.Multivariate(quadrature.Uniform(level), testutil.StandardNormals(dims))
	require.NoError(t, err)
	r := NewResult()
	r.Grid = g
	return r
}

func TestEvaluateAssertions_Pass(t *testing.T) {
	r := gridResult(t, 2, 2)

	failures := EvaluateAssertions(r, []Assertion{
		{Type: AssertShape, Dims: 2, Points: 81},
		{Type: AssertWeightSum, Expect: ptr(1)},
		{Type: AssertMean, Dim: 1, Expect: ptr(0)},
		{Type: AssertVariance, Dim: 0, Expect: ptr(1)},
		{Type: AssertMoment, Dim: 1, Order: 4, Expect: ptr(3)},
		{Type: AssertMoment, Dim: 0, Order: 0, Expect: ptr(1)},
	})
	assert.Empty(t, failures)
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	r := gridResult(t, 1, 1)

	failures := EvaluateAssertions(r, []Assertion{
		{Type: AssertShape, Dims: 1, Points: 9},
		{Type: AssertMoment, Dim: 0, Order: 6, Expect: ptr(15)},
		{Type: AssertMean, Dim: 3, Expect: ptr(0)},
		{Type: AssertError, Code: "INVALID_LEVEL"},
	})
	require.Len(t, failures, 4)
	assert.Contains(t, failures[0], "Expected: 1 dims x 9 points")
	assert.Contains(t, failures[0], "Actual: 1 dims x 3 points")
	assert.Contains(t, failures[1], "Assertion failed: moment")
	assert.Contains(t, failures[2], "grid has 1 dimensions")
	assert.Contains(t, failures[3], "Actual: no error")
}

func TestEvaluateAssertions_Tolerance(t *testing.T) {
	r := gridResult(t, 1, 1)

	// The 3 point rule gives E[x^6] = 9 rather than 15.
	failures := EvaluateAssertions(r, []Assertion{
		{Type: AssertMoment, Dim: 0, Order: 6, Expect: ptr(15), Tolerance: 6.5},
	})
	assert.Empty(t, failures)
}

func TestEvaluateAssertions_NoGrid(t *testing.T) {
	r := NewResult()
	r.ErrorCode = "INVALID_LEVEL"

	failures := EvaluateAssertions(r, []Assertion{
		{Type: AssertError, Code: "INVALID_LEVEL"},
		{Type: AssertWeightSum, Expect: ptr(1)},
	})
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "build failed with INVALID_LEVEL")
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{Type: "mean", Expected: "0", Actual: "1"}
	assert.Equal(t, "Assertion failed: mean\n  Expected: 0\n  Actual: 1", err.Error())
}
