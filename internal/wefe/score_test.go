package wefe

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/policy"
)

func f(v float64) *float64 { return &v }

func testDefs() Definitions {
	return Definitions{Pillars: map[string]PillarDef{
		"water": {
			Key: "water", Label: "Water",
			Categories: map[string]CategoryDef{
				"Access": {Indicators: map[string]IndicatorDef{
					"water_access_percent":           {MinValue: f(0), MaxValue: f(100), Unit: "percentage"},
					"freshwater_withdrawals_percent": {MinValue: f(0), MaxValue: f(100), Unit: "percentage"},
				}},
			},
		},
		"energy": {
			Key: "energy", Label: "Energy",
			Categories: map[string]CategoryDef{
				"Supply": {Indicators: map[string]IndicatorDef{
					"renewable_share": {MinValue: f(0), MaxValue: f(50), Unit: "percentage"},
				}},
			},
		},
	}}
}

func testLab() lab.Lab {
	return lab.Lab{
		Name: "Tunis",
		WEFEPillars: map[string]lab.PillarData{
			"water": {Indicators: map[string]map[string]float64{
				"Access": {
					"water_access_percent":           80,
					"freshwater_withdrawals_percent": 30, // inverted: scores 70
				},
			}},
			"energy": {Indicators: map[string]map[string]float64{
				"Supply": {"renewable_share": 10}, // 20% of range: scores 20
			}},
		},
	}
}

func TestNormalizeIndicator(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		invert   bool
		want     float64
	}{
		{"midpoint", 50, 0, 100, false, 50},
		{"clamped_high", 150, 0, 100, false, 100},
		{"clamped_low", -10, 0, 100, false, 0},
		{"inverted", 30, 0, 100, true, 70},
		{"degenerate_range", 7, 5, 5, false, 50},
		{"rounded", 1, 0, 3, false, 33.3},
		{"offset_range", 75, 50, 100, false, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeIndicator(tt.value, tt.min, tt.max, tt.invert))
		})
	}
}

func TestPillarScore(t *testing.T) {
	score, ok := PillarScore("water", testLab(), testDefs())
	require.True(t, ok)
	require.Equal(t, 75.0, score) // mean of 80 and 70

	score, ok = PillarScore("energy", testLab(), testDefs())
	require.True(t, ok)
	require.Equal(t, 20.0, score)

	_, ok = PillarScore("food", testLab(), testDefs())
	require.False(t, ok)
}

func TestPillarScores(t *testing.T) {
	scores := PillarScores(testLab(), testDefs())
	require.Len(t, scores, 2)
	require.Equal(t, 75.0, scores["water"])
	require.Equal(t, 20.0, scores["energy"])
}

func TestOverallScoreEqualWeights(t *testing.T) {
	score, breakdown, ok := OverallScore(testLab(), testDefs(), nil)
	require.True(t, ok)
	require.Equal(t, 47.5, score) // (75+20)/2
	require.Len(t, breakdown.Included, 2)
	require.Equal(t, 2.0, breakdown.TotalWeights)
}

func TestOverallScoreWeighted(t *testing.T) {
	weights := map[string]float64{"water": 3, "energy": 1}
	score, breakdown, ok := OverallScore(testLab(), testDefs(), weights)
	require.True(t, ok)
	require.Equal(t, 61.3, score) // (75*3+20)/4 = 61.25 → 61.3

	// food/ecosystems carry weight 0 in the explicit map.
	require.Len(t, breakdown.Excluded, 2)
	for _, ex := range breakdown.Excluded {
		require.Equal(t, "weight is 0", ex.Reason)
	}
}

func TestOverallScoreNothingScorable(t *testing.T) {
	_, breakdown, ok := OverallScore(lab.Lab{Name: "empty"}, testDefs(), nil)
	require.False(t, ok)
	require.Empty(t, breakdown.Included)
}

func TestProjectedScore(t *testing.T) {
	policies := []policy.Policy{{
		Title: "Renewable Push",
		Synergies: []policy.Effect{{
			Category: "Energy Supply",
			AffectedIndicators: []policy.IndicatorChange{
				{Indicator: "renewable_share", ExpectedChange: "+50%"},
			},
		}},
	}}

	l := testLab()
	base, _, ok := OverallScore(l, testDefs(), nil)
	require.True(t, ok)

	projected, ok := ProjectedScore(l, testDefs(), policies, nil)
	require.True(t, ok)
	// renewable_share 10 → 15 → normalized 30; overall (75+30)/2 = 52.5.
	require.Equal(t, 52.5, projected)
	require.Greater(t, projected, base)

	// Input lab untouched.
	require.Equal(t, 10.0, l.WEFEPillars["energy"].Indicators["Supply"]["renewable_share"])
}

func TestProjectedScoreNoPolicies(t *testing.T) {
	base, _, _ := OverallScore(testLab(), testDefs(), nil)
	projected, ok := ProjectedScore(testLab(), testDefs(), nil, nil)
	require.True(t, ok)
	require.Equal(t, base, projected)
}
