// Package request describes a tensor grid to build: a rule family plus one
// level and one marginal distribution per dimension.
package request

import (
	"fmt"

	"github.com/nvinhtan/chaospy/internal/canonical"
	"github.com/nvinhtan/chaospy/internal/dist"
	"github.com/nvinhtan/chaospy/internal/quadrature"
)

// Request is a grid request as written in a YAML or CUE file.
type Request struct {
	// Name labels the request in listings; it does not affect identity.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Family selects the rule family ("gk24", "GK22", "16"...).
	// Empty means the caller's default.
	Family string `yaml:"family,omitempty" json:"family,omitempty"`

	// MaxPoints caps the grid size. Zero leaves the caller's cap in place.
	MaxPoints int `yaml:"max_points,omitempty" json:"max_points,omitempty"`

	// Dimensions lists the level and marginal of each dimension, in order.
	Dimensions []Dimension `yaml:"dimensions" json:"dimensions"`
}

// Dimension is one axis of the grid.
type Dimension struct {
	Level        int    `yaml:"level" json:"level"`
	Distribution string `yaml:"distribution" json:"distribution"`
}

// FromFlags builds a request from command-line values. A single level is
// applied to every distribution; otherwise there must be one level per
// distribution.
func FromFlags(family string, levels []int, dists []string) (*Request, error) {
	if len(levels) == 1 && len(dists) > 1 {
		l := levels[0]
		levels = make([]int, len(dists))
		for i := range levels {
			levels[i] = l
		}
	}
	if len(levels) != len(dists) {
		return nil, quadrature.NewDimensionMismatchError(len(levels), len(dists))
	}
	req := &Request{Family: family}
	for i := range dists {
		req.Dimensions = append(req.Dimensions, Dimension{Level: levels[i], Distribution: dists[i]})
	}
	return req, nil
}

// family resolves the family selector, falling back to the default.
func (r *Request) family() (quadrature.Family, error) {
	if r.Family == "" {
		return quadrature.DefaultFamily, nil
	}
	return quadrature.ParseFamily(r.Family)
}

// Validate checks the family, every level against it and every
// distribution spec. Quadrature error codes survive wrapping.
func (r *Request) Validate() error {
	f, err := r.family()
	if err != nil {
		return err
	}
	if len(r.Dimensions) == 0 {
		return quadrature.NewDimensionMismatchError(0, 0)
	}
	if r.MaxPoints < 0 {
		return fmt.Errorf("max_points must not be negative, got %d", r.MaxPoints)
	}
	for i, d := range r.Dimensions {
		if _, err := f.Order(d.Level); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
		if _, err := dist.ParseNew(d.Distribution); err != nil {
			return fmt.Errorf("dimension %d: %w", i, err)
		}
	}
	return nil
}

// Resolve converts the request into arguments for quadrature.Multivariate.
func (r *Request) Resolve() (quadrature.Order, []quadrature.Distribution, quadrature.Family, error) {
	if err := r.Validate(); err != nil {
		return quadrature.Order{}, nil, 0, err
	}
	f, _ := r.family()

	levels := make([]int, len(r.Dimensions))
	dists := make([]quadrature.Distribution, len(r.Dimensions))
	for i, d := range r.Dimensions {
		m, err := dist.ParseNew(d.Distribution)
		if err != nil {
			return quadrature.Order{}, nil, 0, fmt.Errorf("dimension %d: %w", i, err)
		}
		levels[i] = d.Level
		dists[i] = m
	}
	return quadrature.PerDimension(levels...), dists, f, nil
}

// Build resolves the request and builds its grid. opts apply first; the
// request's own family and point cap take precedence over them.
func (r *Request) Build(opts ...quadrature.Option) (*quadrature.Grid, error) {
	order, dists, f, err := r.Resolve()
	if err != nil {
		return nil, err
	}
	all := append([]quadrature.Option(nil), opts...)
	all = append(all, quadrature.WithFamily(f))
	if r.MaxPoints > 0 {
		all = append(all, quadrature.WithMaxPoints(r.MaxPoints))
	}
	return quadrature.Multivariate(order, dists, all...)
}

// Size returns the number of points the grid would have without building
// it. The request's own point cap takes precedence over limit.
func (r *Request) Size(limit int) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	f, _ := r.family()
	sizes := make([]int, len(r.Dimensions))
	for i, d := range r.Dimensions {
		sizes[i], _ = f.Order(d.Level)
	}
	if r.MaxPoints > 0 {
		limit = r.MaxPoints
	}
	return quadrature.GridSize(sizes, limit)
}

// Object returns the identity-relevant content of the request in
// normalized form: family name and, per dimension, level and the
// distribution spec as re-formatted by dist.Spec.String.
func (r *Request) Object() (map[string]any, error) {
	f, err := r.family()
	if err != nil {
		return nil, err
	}
	dims := make([]any, len(r.Dimensions))
	for i, d := range r.Dimensions {
		spec, err := dist.Parse(d.Distribution)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		dims[i] = map[string]any{
			"level":        d.Level,
			"distribution": spec.String(),
		}
	}
	return map[string]any{
		"family":     f.String(),
		"dimensions": dims,
	}, nil
}

// ID returns the content-addressed identity of the request.
func (r *Request) ID() (string, error) {
	obj, err := r.Object()
	if err != nil {
		return "", err
	}
	return canonical.RequestID(obj)
}
