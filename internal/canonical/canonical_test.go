package canonical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int64", int64(-100), "-100"},
		{"bool", true, "true"},
		{"float", 0.25, "0.25"},
		{"integral float", 3.0, "3"},
		{"float slice", []float64{-1.5, 0, 2}, "[-1.5,0,2]"},
		{"int slice", []int{1, 2, 3}, "[1,2,3]"},
		{"string slice", []string{"a", "b"}, `["a","b"]`},
		{"empty array", []any{}, "[]"},
		{"empty object", map[string]any{}, "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestMarshalSortedKeys(t *testing.T) {
	obj := map[string]any{
		"zebra": 1,
		"alpha": map[string]any{"b": 1, "a": 2},
		"beta":  []any{"x", 1.5},
	}
	result, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":{"a":2,"b":1},"beta":["x",1.5],"zebra":1}`, string(result))
}

func TestMarshalUTF16Ordering(t *testing.T) {
	// U+1F600 encodes as surrogates 0xD83D 0xDE00, which sort before U+FF21
	// in UTF-16 but after it in UTF-8.
	obj := map[string]any{"\uFF21": 1, "\U0001F600": 2}
	result, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U0001F600\":2,\"\uFF21\":1}", string(result))
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	result, err := Marshal("a<b>&c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(result))
}

func TestMarshalNFC(t *testing.T) {
	// "e" followed by a combining acute accent normalizes to U+00E9.
	result, err := Marshal("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"caf\u00e9\"", string(result))
}

func TestMarshalLineSeparators(t *testing.T) {
	result, err := Marshal("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(result))

	// A literal backslash followed by u2028 stays escaped.
	result, err = Marshal(`x\u2028`)
	require.NoError(t, err)
	assert.Equal(t, `"x\\u2028"`, string(result))
}

func TestMarshalRejects(t *testing.T) {
	for name, v := range map[string]any{
		"null":        nil,
		"nan":         math.NaN(),
		"inf":         math.Inf(1),
		"nested inf":  []float64{1, math.Inf(-1)},
		"nested null": map[string]any{"a": nil},
		"struct":      struct{}{},
	} {
		_, err := Marshal(v)
		assert.Error(t, err, name)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2, "-2"},
		{0.5, "0.5"},
		{1.5, "1.5"},
		{1e6, "1000000"},
		{123456.789, "123456.789"},
		{1e21, "1e+21"},
		{1.25e22, "1.25e+22"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-9, "-2.5e-9"},
		{math.Sqrt2, "1.4142135623730951"},
		{0.30000000000000004, "0.30000000000000004"},
	}
	for _, tt := range tests {
		got, err := FormatFloat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestMarshalIdempotent(t *testing.T) {
	obj := map[string]any{"family": "gk24", "levels": []int{1, 2}, "weights": []float64{0.25, 0.5}}
	a, err := Marshal(obj)
	require.NoError(t, err)
	b, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
