package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"normal(0,1)", Spec{Name: "normal", Params: []float64{0, 1}}},
		{" Normal( 1.5 , 2e-1 ) ", Spec{Name: "normal", Params: []float64{1.5, 0.2}}},
		{"exponential(3)", Spec{Name: "exponential", Params: []float64{3}}},
		{"uniform()", Spec{Name: "uniform"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "normal", "(0,1)", "normal(0,1", "normal(0,x)", "normal(0,NaN)", "normal(0,Inf)"} {
		_, err := Parse(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestSpecStringRoundTrip(t *testing.T) {
	for _, in := range []string{"normal(0,1)", "gamma(2.5,0.125)", "uniform(-1,1e+06)"} {
		spec, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, spec.String())

		again, err := Parse(spec.String())
		require.NoError(t, err)
		assert.Equal(t, spec, again)
	}
}

func TestNewBuildsGonumDistributions(t *testing.T) {
	tests := []struct {
		in   string
		want Marginal
	}{
		{"normal(1,2)", distuv.Normal{Mu: 1, Sigma: 2}},
		{"uniform(-1,1)", distuv.Uniform{Min: -1, Max: 1}},
		{"exponential(2)", distuv.Exponential{Rate: 2}},
		{"gamma(2,3)", distuv.Gamma{Alpha: 2, Beta: 3}},
		{"beta(2,5)", distuv.Beta{Alpha: 2, Beta: 5}},
		{"lognormal(0,0.5)", distuv.LogNormal{Mu: 0, Sigma: 0.5}},
		{"weibull(1.5,2)", distuv.Weibull{K: 1.5, Lambda: 2}},
		{"laplace(0,1)", distuv.Laplace{Mu: 0, Scale: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNew(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, 0.5, got.CDF(got.Quantile(0.5)), 1e-9)
		})
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		in      string
		errPart string
	}{
		{"cauchy(0,1)", "unknown distribution"},
		{"normal(0)", "takes 2 parameters"},
		{"normal(0,0)", "must be positive"},
		{"uniform(1,1)", "less than max"},
		{"exponential(-1)", "must be positive"},
		{"beta(1,0)", "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseNew(tt.in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"beta", "exponential", "gamma", "laplace", "lognormal", "normal", "uniform", "weibull"}, names)
	assert.Equal(t, []string{"mu", "sigma"}, ParamNames("normal"))
	assert.Nil(t, ParamNames("cauchy"))
}
