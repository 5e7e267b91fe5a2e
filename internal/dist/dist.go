// Package dist parses marginal distribution specs such as "normal(0,1)" and
// builds the matching gonum distribution.
package dist

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Marginal is a one-dimensional distribution usable as a quadrature
// marginal. Every value returned by New is a gonum distuv distribution.
type Marginal interface {
	Quantile(p float64) float64
	CDF(x float64) float64
	Mean() float64
	Variance() float64
}

// Spec names a distribution and its positional parameters.
type Spec struct {
	Name   string
	Params []float64
}

// String formats s in the syntax accepted by Parse.
func (s Spec) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return s.Name + "(" + strings.Join(parts, ",") + ")"
}

type builder struct {
	params []string
	check  func(p []float64) error
	build  func(p []float64) Marginal
}

var builders = map[string]builder{
	"normal": {
		params: []string{"mu", "sigma"},
		check:  positive(1),
		build:  func(p []float64) Marginal { return distuv.Normal{Mu: p[0], Sigma: p[1]} },
	},
	"uniform": {
		params: []string{"min", "max"},
		check: func(p []float64) error {
			if !(p[0] < p[1]) {
				return fmt.Errorf("min %v must be less than max %v", p[0], p[1])
			}
			return nil
		},
		build: func(p []float64) Marginal { return distuv.Uniform{Min: p[0], Max: p[1]} },
	},
	"exponential": {
		params: []string{"rate"},
		check:  positive(0),
		build:  func(p []float64) Marginal { return distuv.Exponential{Rate: p[0]} },
	},
	"gamma": {
		params: []string{"alpha", "beta"},
		check:  positive(0, 1),
		build:  func(p []float64) Marginal { return distuv.Gamma{Alpha: p[0], Beta: p[1]} },
	},
	"beta": {
		params: []string{"alpha", "beta"},
		check:  positive(0, 1),
		build:  func(p []float64) Marginal { return distuv.Beta{Alpha: p[0], Beta: p[1]} },
	},
	"lognormal": {
		params: []string{"mu", "sigma"},
		check:  positive(1),
		build:  func(p []float64) Marginal { return distuv.LogNormal{Mu: p[0], Sigma: p[1]} },
	},
	"weibull": {
		params: []string{"k", "lambda"},
		check:  positive(0, 1),
		build:  func(p []float64) Marginal { return distuv.Weibull{K: p[0], Lambda: p[1]} },
	},
	"laplace": {
		params: []string{"mu", "scale"},
		check:  positive(1),
		build:  func(p []float64) Marginal { return distuv.Laplace{Mu: p[0], Scale: p[1]} },
	},
}

func positive(idx ...int) func(p []float64) error {
	return func(p []float64) error {
		for _, i := range idx {
			if !(p[i] > 0) {
				return fmt.Errorf("parameter %d must be positive, got %v", i+1, p[i])
			}
		}
		return nil
	}
}

// Names returns the supported distribution names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParamNames returns the parameter names of a distribution, or nil if the
// name is unknown.
func ParamNames(name string) []string {
	b, ok := builders[name]
	if !ok {
		return nil
	}
	return append([]string(nil), b.params...)
}

// Parse reads "name(p1,p2,...)". Whitespace is ignored and the name is
// case-insensitive. Parameters are not validated; see New.
func Parse(s string) (Spec, error) {
	src := strings.Join(strings.Fields(s), "")
	open := strings.IndexByte(src, '(')
	if open <= 0 || !strings.HasSuffix(src, ")") {
		return Spec{}, fmt.Errorf("distribution %q: expected name(params)", s)
	}

	spec := Spec{Name: strings.ToLower(src[:open])}
	body := src[open+1 : len(src)-1]
	if body == "" {
		return spec, nil
	}
	for i, field := range strings.Split(body, ",") {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("distribution %q: parameter %d: %w", s, i+1, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Spec{}, fmt.Errorf("distribution %q: parameter %d is not finite", s, i+1)
		}
		spec.Params = append(spec.Params, v)
	}
	return spec, nil
}

// New validates spec and returns the distribution it names.
func New(spec Spec) (Marginal, error) {
	b, ok := builders[spec.Name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q (supported: %s)", spec.Name, strings.Join(Names(), ", "))
	}
	if len(spec.Params) != len(b.params) {
		return nil, fmt.Errorf("%s takes %d parameters (%s), got %d",
			spec.Name, len(b.params), strings.Join(b.params, ", "), len(spec.Params))
	}
	if err := b.check(spec.Params); err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return b.build(spec.Params), nil
}

// ParseNew is Parse followed by New.
func ParseNew(s string) (Marginal, error) {
	spec, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return New(spec)
}
