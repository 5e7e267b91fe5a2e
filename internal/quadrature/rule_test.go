package quadrature_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/testutil"
)

// forEachRule runs fn on every level of every family.
func forEachRule(t *testing.T, fn func(t *testing.T, r quadrature.Rule)) {
	t.Helper()
	for _, f := range quadrature.Families() {
		for level := 0; level < f.Levels(); level++ {
			r, err := quadrature.OneDim(f, level)
			require.NoError(t, err, "%s level %d", f, level)
			t.Run(fmt.Sprintf("%s/level%d", f, level), func(t *testing.T) {
				fn(t, r)
			})
		}
	}
}

func TestOneDimWeightsSumToOne(t *testing.T) {
	forEachRule(t, func(t *testing.T, r quadrature.Rule) {
		assert.Len(t, r.Abscissas, r.Order)
		assert.Len(t, r.Weights, r.Order)

		var sum float64
		for _, w := range r.Weights {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	})
}

func TestOneDimSymmetric(t *testing.T) {
	forEachRule(t, func(t *testing.T, r quadrature.Rule) {
		n := r.Len()
		for i := 0; i < n; i++ {
			assert.Equal(t, -r.Abscissas[n-1-i], r.Abscissas[i], "abscissa %d", i)
			assert.Equal(t, r.Weights[n-1-i], r.Weights[i], "weight %d", i)
		}
		assert.True(t, sort.Float64sAreSorted(r.Abscissas), "abscissas must be ascending")
	})
}

func TestOneDimNested(t *testing.T) {
	for _, f := range quadrature.Families() {
		t.Run(f.String(), func(t *testing.T) {
			prev, err := quadrature.OneDim(f, 0)
			require.NoError(t, err)
			for level := 1; level < f.Levels(); level++ {
				next, err := quadrature.OneDim(f, level)
				require.NoError(t, err)
				for _, x := range prev.Abscissas {
					assert.True(t, containsNear(next.Abscissas, x, 1e-12),
						"level %d node %v missing from level %d", level-1, x, level)
				}
				prev = next
			}
		})
	}
}

func containsNear(xs []float64, x, tol float64) bool {
	for _, v := range xs {
		if math.Abs(v-x) <= tol {
			return true
		}
	}
	return false
}

func TestOneDimExactness(t *testing.T) {
	forEachRule(t, func(t *testing.T, r quadrature.Rule) {
		for k := 0; k <= r.Precision; k++ {
			got, scale := testutil.RawMoment(r.Abscissas, r.Weights, k)
			want := testutil.NormalMoment(k)
			assert.LessOrEqual(t, testutil.RelErr(got, want, scale), 1e-12, "degree %d", k)
		}
	})
}

func TestOneDimInexactAbovePrecision(t *testing.T) {
	forEachRule(t, func(t *testing.T, r quadrature.Rule) {
		k := r.Precision + 1
		got, _ := testutil.RawMoment(r.Abscissas, r.Weights, k)
		want := testutil.NormalMoment(k)
		require.NotZero(t, want)
		assert.Greater(t, math.Abs(got-want)/want, 1e-11, "degree %d should not be exact", k)
	})
}

func TestOneDimLevelZero(t *testing.T) {
	for _, f := range quadrature.Families() {
		r, err := quadrature.OneDim(f, 0)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, r.Abscissas)
		assert.Equal(t, []float64{1}, r.Weights)
		assert.Equal(t, 1, r.Order)
		assert.Equal(t, 1, r.Precision)
	}
}

func TestOneDimSharedLevels(t *testing.T) {
	// Orders 1, 3, 9 and 19 sit at levels 0, 1, 3 and 5 of gk16 and at
	// levels 0 to 3 of the other families.
	gk16Levels := []int{0, 1, 3, 5}
	for level, l16 := range gk16Levels {
		base, err := quadrature.OneDim(quadrature.GK16, l16)
		require.NoError(t, err)
		for _, f := range []quadrature.Family{quadrature.GK18, quadrature.GK22, quadrature.GK24} {
			r, err := quadrature.OneDim(f, level)
			require.NoError(t, err)
			require.Equal(t, base.Order, r.Order, "%s level %d", f, level)
			assert.Equal(t, base.Abscissas, r.Abscissas, "%s level %d", f, level)
			assert.Equal(t, base.Weights, r.Weights, "%s level %d", f, level)
		}
	}
}

func TestOneDimDeepestOrders(t *testing.T) {
	want := map[quadrature.Family]int{
		quadrature.GK16: 35,
		quadrature.GK18: 37,
		quadrature.GK22: 41,
		quadrature.GK24: 43,
	}
	for f, order := range want {
		r, err := quadrature.OneDim(f, f.Levels()-1)
		require.NoError(t, err)
		assert.Equal(t, order, r.Len(), "%s", f)
	}
}

func TestOneDimMatchesGaussHermite(t *testing.T) {
	// The three point level is the three point Gauss-Hermite rule.
	r, err := quadrature.OneDim(quadrature.DefaultFamily, 1)
	require.NoError(t, err)

	x := make([]float64, 3)
	w := make([]float64, 3)
	quad.Hermite{}.FixedLocations(x, w, math.Inf(-1), math.Inf(1))

	idx := []int{0, 1, 2}
	sort.Slice(idx, func(i, j int) bool { return x[idx[i]] < x[idx[j]] })
	var sum float64
	for _, v := range w {
		sum += v
	}
	for i, k := range idx {
		assert.InDelta(t, x[k]*math.Sqrt2, r.Abscissas[i], 1e-12)
		assert.InDelta(t, w[k]/sum, r.Weights[i], 1e-12)
	}
}

func TestOneDimReturnsCopies(t *testing.T) {
	r1, err := quadrature.OneDim(quadrature.GK22, 3)
	require.NoError(t, err)
	r1.Abscissas[0] = 42
	r1.Weights[0] = 42

	r2, err := quadrature.OneDim(quadrature.GK22, 3)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, r2.Abscissas[0])
	assert.NotEqual(t, 42.0, r2.Weights[0])
}

func TestOneDimDeterministic(t *testing.T) {
	forEachRule(t, func(t *testing.T, r quadrature.Rule) {
		again, err := quadrature.OneDim(r.Family, r.Level)
		require.NoError(t, err)
		assert.Equal(t, r, again)
	})
}

func TestOneDimInvalidLevel(t *testing.T) {
	for _, level := range []int{-1, 5, 99} {
		_, err := quadrature.OneDim(quadrature.GK24, level)
		require.Error(t, err)
		assert.True(t, quadrature.IsInvalidLevel(err), "level %d: %v", level, err)
	}

	// gk16 is deeper than the others.
	_, err := quadrature.OneDim(quadrature.GK16, 8)
	assert.NoError(t, err)
	_, err = quadrature.OneDim(quadrature.GK16, 9)
	assert.True(t, quadrature.IsInvalidLevel(err))
}

func TestOneDimUnknownFamily(t *testing.T) {
	_, err := quadrature.OneDim(quadrature.Family(20), 0)
	require.Error(t, err)
	assert.True(t, quadrature.IsUnknownFamily(err))
}
