package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wefe-nexus/nexsim/internal/policy"
)

func writeIntervention(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func waterPolicy(change any) policy.Policy {
	return policy.Policy{
		Title: "Water Security Package",
		Synergies: []policy.Effect{{
			Category: "Water Access",
			AffectedIndicators: []policy.IndicatorChange{
				{Indicator: "water_access", ExpectedChange: change},
			},
		}},
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeIntervention(t, dir, "desal.json", `{
		"title": "Small Desalination Plant",
		"needs": {"capex_usd": 100},
		"outcomes": {"indicators": [
			{"indicator": "water_access", "expected_change": 25}
		]}
	}`)

	res, err := Run(dir, []policy.Policy{waterPolicy("+20%")})
	require.NoError(t, err)

	require.NotEmpty(t, res.RunID)
	require.Equal(t, 20.0, res.Targets["water_access"])
	require.Equal(t, 0.0, res.Unmet["water_access"])
	require.Equal(t, 20.0, res.Coverage["water_access"])
	require.Equal(t, 100.0, res.TotalCapex)
	require.Len(t, res.Selected, 1)
	require.Equal(t, "Small Desalination Plant", res.Selected[0].Title)
	require.True(t, res.Satisfied())
}

func TestRunEmptyCatalog(t *testing.T) {
	res, err := Run(filepath.Join(t.TempDir(), "absent"), []policy.Policy{waterPolicy(20)})
	require.NoError(t, err)

	require.Empty(t, res.Selected)
	require.Equal(t, 20.0, res.Unmet["water_access"])
	require.Equal(t, 0.0, res.Coverage["water_access"])
	require.Equal(t, 0.0, res.TotalCapex)
	require.False(t, res.Satisfied())
}

func TestRunNegativeTarget(t *testing.T) {
	res, err := Run(t.TempDir(), []policy.Policy{waterPolicy(-5)})
	require.NoError(t, err)

	require.Empty(t, res.Selected)
	require.Equal(t, -5.0, res.Targets["water_access"])
	require.Equal(t, 0.0, res.Unmet["water_access"])
	require.Equal(t, 0.0, res.Coverage["water_access"])
	require.True(t, res.Satisfied())
}

func TestRunDeterministicAllocation(t *testing.T) {
	dir := t.TempDir()
	writeIntervention(t, dir, "a.json", `{
		"title": "First",
		"needs": {"capex_usd": 10},
		"outcomes": {"indicators": [{"indicator": "water_access", "expected_change": 20}]}
	}`)
	writeIntervention(t, dir, "b.json", `{
		"title": "Second",
		"needs": {"capex_usd": 10},
		"outcomes": {"indicators": [{"indicator": "water_access", "expected_change": 20}]}
	}`)

	policies := []policy.Policy{waterPolicy(15)}
	res1, err := Run(dir, policies)
	require.NoError(t, err)
	res2, err := Run(dir, policies)
	require.NoError(t, err)

	// Tie between a.json and b.json resolves to the earlier catalog entry,
	// and identical inputs give identical allocations.
	require.Len(t, res1.Selected, 1)
	require.Equal(t, "First", res1.Selected[0].Title)
	require.Equal(t, res1.Selected, res2.Selected)
	require.Equal(t, res1.Unmet, res2.Unmet)
	require.NotEqual(t, res1.RunID, res2.RunID)
}

func TestRunDoesNotMutatePolicies(t *testing.T) {
	dir := t.TempDir()
	writeIntervention(t, dir, "a.json", `{
		"title": "A",
		"needs": {"capex_usd": 1},
		"outcomes": {"indicators": [{"indicator": "water_access", "expected_change": 50}]}
	}`)

	policies := []policy.Policy{waterPolicy("+20%")}
	_, err := Run(dir, policies)
	require.NoError(t, err)
	require.Equal(t, "+20%", policies[0].Synergies[0].AffectedIndicators[0].ExpectedChange)
}
