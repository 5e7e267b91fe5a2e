package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalMoment(t *testing.T) {
	cases := map[int]float64{
		0: 1,
		1: 0,
		2: 1,
		3: 0,
		4: 3,
		6: 15,
		8: 105,
	}
	for k, want := range cases {
		assert.Equal(t, want, NormalMoment(k), "k=%d", k)
	}
}

func TestRawMoment(t *testing.T) {
	x := []float64{-1, 0, 1}
	w := []float64{0.25, 0.5, 0.25}

	sum, scale := RawMoment(x, w, 1)
	assert.Equal(t, 0.0, sum)
	assert.Equal(t, 0.5, scale)

	sum, scale = RawMoment(x, w, 2)
	assert.Equal(t, 0.5, sum)
	assert.Equal(t, 0.5, scale)
}

func TestRelErr(t *testing.T) {
	assert.Equal(t, 0.5, RelErr(1.5, 1, 0.1), "scale below 1 is clamped")
	assert.Equal(t, 0.25, RelErr(3, 1, 8))
}

func TestStandardNormals(t *testing.T) {
	d := StandardNormals(3)
	assert.Len(t, d, 3)
	for _, m := range d {
		assert.Equal(t, 0.0, m.Quantile(0.5))
	}
}
