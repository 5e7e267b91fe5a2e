package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nvinhtan/chaospy/internal/quadrature"
	"github.com/nvinhtan/chaospy/internal/request"
)

// Scenario defines a conformance scenario: one grid request and the
// properties its grid must have.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Request is the grid to build.
	Request request.Request `yaml:"request"`

	// Assertions validate the built grid.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one property of a grid.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Dims and Points are the expected shape (shape).
	Dims   int `yaml:"dims,omitempty"`
	Points int `yaml:"points,omitempty"`

	// Dim selects the dimension (mean, variance, moment).
	Dim int `yaml:"dim,omitempty"`

	// Order is the moment degree (moment).
	Order int `yaml:"order,omitempty"`

	// Expect is the expected value (weight_sum, mean, variance, moment).
	Expect *float64 `yaml:"expect,omitempty"`

	// Tolerance is the allowed absolute difference. Zero means 1e-9.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Code is the expected error code (error).
	Code string `yaml:"code,omitempty"`
}

// Assertion type constants.
const (
	AssertShape     = "shape"
	AssertWeightSum = "weight_sum"
	AssertMean      = "mean"
	AssertVariance  = "variance"
	AssertMoment    = "moment"
	AssertError     = "error"
)

// DefaultTolerance applies to numeric assertions without a tolerance.
const DefaultTolerance = 1e-9

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict fields catch typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// FindScenarios lists the .yaml and .yml files under dir, in lexical
// order. A non-empty filter is a glob matched against the file name
// without extension. Files under a golden directory are skipped.
func FindScenarios(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// validateScenario checks that required fields are present and valid.
// The request itself is validated when the scenario runs, so that error
// scenarios can describe invalid requests.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Request.Dimensions) == 0 {
		return fmt.Errorf("request.dimensions is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	errorAsserts := 0
	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
		if s.Assertions[i].Type == AssertError {
			errorAsserts++
		}
	}
	if errorAsserts > 0 && errorAsserts != len(s.Assertions) {
		return fmt.Errorf("error assertions cannot be combined with grid assertions")
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Tolerance < 0 {
		return fmt.Errorf("assertions[%d]: tolerance must not be negative", index)
	}
	if a.Dim < 0 {
		return fmt.Errorf("assertions[%d]: dim must not be negative", index)
	}
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertShape:
		if a.Dims <= 0 || a.Points <= 0 {
			return fmt.Errorf("assertions[%d]: dims and points are required for shape", index)
		}
	case AssertWeightSum, AssertMean, AssertVariance:
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for %s", index, a.Type)
		}
	case AssertMoment:
		if a.Expect == nil {
			return fmt.Errorf("assertions[%d]: expect is required for moment", index)
		}
		if a.Order < 0 {
			return fmt.Errorf("assertions[%d]: order must not be negative", index)
		}
	case AssertError:
		if a.Code == "" {
			return fmt.Errorf("assertions[%d]: code is required for error", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown type %q (valid: shape, weight_sum, mean, variance, moment, error)", index, a.Type)
	}
	return nil
}

// expectsError reports whether the scenario describes a failing request.
func (s *Scenario) expectsError() bool {
	return len(s.Assertions) > 0 && s.Assertions[0].Type == AssertError
}

// codeOf extracts the code of a build error for error assertions.
// Errors without a quadrature code, such as a malformed distribution,
// report INVALID_REQUEST.
func codeOf(err error) string {
	if code := quadrature.CodeOf(err); code != "" {
		return string(code)
	}
	return request.ErrCodeInvalid
}
