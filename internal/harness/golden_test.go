package harness

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	files, err := FindScenarios("testdata/scenarios", "")
	require.NoError(t, err)

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestSnapshot_Deterministic(t *testing.T) {
	scenario := normalScenario(Assertion{Type: AssertShape, Dims: 1, Points: 9})

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	a, err := Snapshot(scenario, first)
	require.NoError(t, err)
	b, err := Snapshot(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSnapshot_OmitsPointsOfLargeGrids(t *testing.T) {
	scenario := normalScenario(Assertion{Type: AssertShape, Dims: 2, Points: 81})
	scenario.Request.Dimensions = append(scenario.Request.Dimensions, scenario.Request.Dimensions[0])

	result, err := Run(scenario)
	require.NoError(t, err)
	require.True(t, result.Pass, "errors: %v", result.Errors)

	data, err := Snapshot(scenario, result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"points":81`)
	assert.NotContains(t, string(data), `"nodes"`)
	assert.NotContains(t, string(data), `"weights"`)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.0, round(3e-17))
	assert.Equal(t, 0.0, round(-3e-13))
	assert.Equal(t, 1.0, round(0.9999999999999998))
	assert.Equal(t, 0.166666666667, round(1.0/6))
	assert.Equal(t, 1.5e-9, round(1.5e-9))
}
