package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCatalog = `[
  {
    "title": "Drip Irrigation Subsidy",
    "policy_type": "Water Management",
    "synergies": [
      {
        "category": "Water Efficiency",
        "affected_indicators": [
          {"indicator": "freshwater_withdrawals_percent", "expected_change": "-8%"},
          {"indicator": "crop_yield", "expected_change": "+5"}
        ]
      }
    ],
    "trade_offs": [
      {
        "category": "Energy Demand",
        "affected_indicators": [
          {"indicator": "energy_consumption", "expected_change": 2}
        ]
      }
    ]
  },
  {
    "title": "Rooftop Solar Rollout",
    "policy_type": "Energy Transition",
    "synergies": [
      {
        "category": "Energy Supply",
        "affected_indicators": [
          {"indicator": "renewable_share", "expected_change": "+12%"}
        ]
      }
    ]
  }
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policies.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	policies, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)
	require.Len(t, policies, 2)

	require.Equal(t, "Drip Irrigation Subsidy", policies[0].Title)
	require.Equal(t, "Water Management", policies[0].Type)
	require.Len(t, policies[0].Synergies, 1)
	require.Len(t, policies[0].Synergies[0].AffectedIndicators, 2)
	require.Len(t, policies[0].TradeOffs, 1)
}

func TestLoadMissingFile(t *testing.T) {
	policies, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, policies)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeCatalog(t, "{not json"))
	require.Error(t, err)
}

func TestByTitle(t *testing.T) {
	policies, err := Load(writeCatalog(t, sampleCatalog))
	require.NoError(t, err)

	m := ByTitle(policies)
	require.Len(t, m, 2)
	require.Equal(t, "Energy Transition", m["Rooftop Solar Rollout"].Type)
}

func TestCategories(t *testing.T) {
	policies := []Policy{
		{Title: "a", Type: "Water Management"},
		{Title: "b", Type: "Energy Transition"},
		{Title: "c", Type: "Water Management"},
		{Title: "d"},
	}
	require.Equal(t, []string{"Energy Transition", "Water Management"}, Categories(policies))
	require.Len(t, ByCategory(policies, "Water Management"), 2)
}

func TestInferPillar(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   string
	}{
		{
			"category_wins",
			Policy{Title: "Water Pricing", Synergies: []Effect{{Category: "Energy Supply"}}},
			"energy",
		},
		{
			"title_water",
			Policy{Title: "Urban Water Reuse"},
			"water",
		},
		{
			"title_renewable",
			Policy{Title: "Renewable Auctions"},
			"energy",
		},
		{
			"title_agri",
			Policy{Title: "Agrivoltaic Pilots"},
			"food",
		},
		{
			"default_bucket",
			Policy{Title: "Public Awareness Campaign"},
			"ecosystems",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InferPillar(tt.policy))
		})
	}
}
