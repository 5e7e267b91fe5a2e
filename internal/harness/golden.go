package harness

import (
	"math"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/nvinhtan/chaospy/internal/canonical"
)

// SnapshotPointLimit is the largest grid whose nodes and weights appear in
// a snapshot.
const SnapshotPointLimit = 50

// Snapshot renders the outcome of a scenario as canonical JSON.
//
// Numbers are rounded to 12 significant digits and magnitudes below 1e-12
// become 0. A failed build renders as its error code.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	obj := map[string]any{
		"name": scenario.Name,
	}
	if result.Grid == nil {
		obj["error"] = result.ErrorCode
		return canonical.Marshal(obj)
	}

	g := result.Grid
	obj["family"] = g.Family.String()
	obj["levels"] = g.Levels
	obj["dims"] = g.Dims()
	obj["points"] = g.Len()
	obj["weight_sum"] = round(g.WeightSum())
	obj["mean"] = roundAll(g.Mean())
	obj["variance"] = roundAll(g.Variance())

	if g.Len() <= SnapshotPointLimit {
		nodes := make([]any, g.Dims())
		for i := range nodes {
			nodes[i] = roundAll(g.Row(i))
		}
		obj["nodes"] = nodes
		obj["weights"] = roundAll(g.Weights)
	}
	return canonical.Marshal(obj)
}

func round(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round(v)
	}
	return out
}

// RunWithGolden executes a scenario and compares its snapshot against a
// golden file stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	return AssertGolden(t, scenario, result)
}

// AssertGolden compares an existing result against its golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
