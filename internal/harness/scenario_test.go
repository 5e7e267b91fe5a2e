package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "test.yaml", `
name: test_scenario
description: "Test scenario for validation"
request:
  family: gk18
  dimensions:
    - level: 2
      distribution: normal(0, 1)
assertions:
  - type: mean
    dim: 0
    expect: 0
    tolerance: 1e-12
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "gk18", scenario.Request.Family)
	require.Len(t, scenario.Request.Dimensions, 1)
	assert.Equal(t, 2, scenario.Request.Dimensions[0].Level)
	require.Len(t, scenario.Assertions, 1)
	require.NotNil(t, scenario.Assertions[0].Expect)
	assert.Equal(t, 0.0, *scenario.Assertions[0].Expect)
	assert.Equal(t, 1e-12, scenario.Assertions[0].Tolerance)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "typo.yaml", `
name: typo
description: "misspelled assertions key"
request:
  dimensions:
    - level: 0
      distribution: normal(0, 1)
assertion:
  - type: weight_sum
    expect: 1
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing name",
			content: `
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
assertions: [{type: weight_sum, expect: 1}]
`,
			wantErr: "name is required",
		},
		{
			name: "missing dimensions",
			content: `
name: x
description: "x"
request: {family: gk24}
assertions: [{type: weight_sum, expect: 1}]
`,
			wantErr: "request.dimensions is required",
		},
		{
			name: "missing assertions",
			content: `
name: x
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
`,
			wantErr: "assertions list is required",
		},
		{
			name: "missing expect",
			content: `
name: x
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
assertions: [{type: mean, dim: 0}]
`,
			wantErr: "expect is required for mean",
		},
		{
			name: "unknown type",
			content: `
name: x
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
assertions: [{type: median, expect: 0}]
`,
			wantErr: `unknown type "median"`,
		},
		{
			name: "mixed error and grid assertions",
			content: `
name: x
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
assertions:
  - {type: error, code: INVALID_LEVEL}
  - {type: weight_sum, expect: 1}
`,
			wantErr: "cannot be combined",
		},
		{
			name: "shape without points",
			content: `
name: x
description: "x"
request: {dimensions: [{level: 0, distribution: "normal(0, 1)"}]}
assertions: [{type: shape, dims: 1}]
`,
			wantErr: "dims and points are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, t.TempDir(), "s.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindScenarios(t *testing.T) {
	files, err := FindScenarios("testdata/scenarios", "")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "normal_level1.yaml")
}

func TestFindScenarios_Filter(t *testing.T) {
	files, err := FindScenarios("testdata/scenarios", "*_level*")
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"invalid_level.yaml", "normal_level1.yaml"}, names)
}

func TestFindScenarios_SkipsGoldenAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	writeScenario(t, dir, "a.yaml", "")
	writeScenario(t, dir, "b.yml", "")
	writeScenario(t, dir, "notes.txt", "")
	writeScenario(t, filepath.Join(dir, "golden"), "c.yaml", "")

	files, err := FindScenarios(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)
}

func TestFindScenarios_BadFilter(t *testing.T) {
	_, err := FindScenarios("testdata/scenarios", "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}
