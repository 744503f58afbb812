package policy

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateTargets(t *testing.T) {
	policies := []Policy{
		{
			Title: "p1",
			Synergies: []Effect{
				{
					Category: "Water",
					AffectedIndicators: []IndicatorChange{
						{Indicator: "water_access", ExpectedChange: "+10%"},
						{Indicator: "crop_yield", ExpectedChange: 4},
					},
				},
			},
			TradeOffs: []Effect{
				{
					Category: "Energy",
					AffectedIndicators: []IndicatorChange{
						{Indicator: "water_access", ExpectedChange: "-3"},
					},
				},
			},
		},
		{
			Title: "p2",
			Synergies: []Effect{
				{
					Category: "Water",
					AffectedIndicators: []IndicatorChange{
						{Indicator: "water_access", ExpectedChange: "5"},
						{Indicator: "", ExpectedChange: "99"}, // no key: skipped
						{Indicator: "soil_health", ExpectedChange: "junk"},
					},
				},
			},
		},
	}

	targets := AggregateTargets(policies)
	if len(targets) != 3 {
		t.Fatalf("expected 3 target keys, got %d: %v", len(targets), targets)
	}
	if !approxEqual(targets["water_access"], 12) {
		t.Errorf("water_access = %v, want 12", targets["water_access"])
	}
	if !approxEqual(targets["crop_yield"], 4) {
		t.Errorf("crop_yield = %v, want 4", targets["crop_yield"])
	}
	if !approxEqual(targets["soil_health"], 0) {
		t.Errorf("soil_health = %v, want 0 (lenient parse)", targets["soil_health"])
	}
}

func TestAggregateTargetsEmpty(t *testing.T) {
	targets := AggregateTargets(nil)
	if len(targets) != 0 {
		t.Fatalf("expected empty targets, got %v", targets)
	}
}

// Disjoint policy lists aggregate to the union of their separate results.
func TestAggregateTargetsAdditive(t *testing.T) {
	p1 := []Policy{{
		Title:     "a",
		Synergies: []Effect{{AffectedIndicators: []IndicatorChange{{Indicator: "x", ExpectedChange: 2}}}},
	}}
	p2 := []Policy{{
		Title:     "b",
		Synergies: []Effect{{AffectedIndicators: []IndicatorChange{{Indicator: "y", ExpectedChange: 3}}}},
	}}

	combined := AggregateTargets(append(append([]Policy{}, p1...), p2...))
	separate1 := AggregateTargets(p1)
	separate2 := AggregateTargets(p2)

	if len(combined) != len(separate1)+len(separate2) {
		t.Fatalf("union size mismatch: %v", combined)
	}
	for k, v := range separate1 {
		if !approxEqual(combined[k], v) {
			t.Errorf("combined[%s] = %v, want %v", k, combined[k], v)
		}
	}
	for k, v := range separate2 {
		if !approxEqual(combined[k], v) {
			t.Errorf("combined[%s] = %v, want %v", k, combined[k], v)
		}
	}
}
