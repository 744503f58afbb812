package wefe

import (
	"math"

	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/policy"
	"gonum.org/v1/gonum/stat"
)

// invertedIndicators are the lower-is-better indicators: a low raw value
// earns a high normalized score.
var invertedIndicators = map[string]struct{}{
	"undernourishment_prevalence":    {},
	"children_wasting_percent":       {},
	"children_stunted_percent":       {},
	"adult_obesity_prevalence":       {},
	"co2_emissions_per_capita":       {},
	"freshwater_withdrawals_percent": {},
	"energy_imports_net_percent":     {},
	"endangered_species_count":       {},
	"soil_erosion_rate":              {},
}

// NormalizeIndicator scales a raw value into a 0-100 score against the
// indicator's defined range, clamped, optionally inverted for lower-is-better
// indicators, and rounded to one decimal. A degenerate range (max == min)
// scores a neutral 50.
func NormalizeIndicator(value, minVal, maxVal float64, invert bool) float64 {
	if maxVal == minVal {
		return 50
	}
	normalized := (value - minVal) / (maxVal - minVal) * 100
	normalized = math.Max(0, math.Min(100, normalized))
	if invert {
		normalized = 100 - normalized
	}
	return round1(normalized)
}

// PillarScore computes the mean normalized score of every indicator the lab
// reports within the pillar's defined categories. ok is false when the
// pillar has no scorable indicators.
func PillarScore(pillarKey string, l lab.Lab, defs Definitions) (float64, bool) {
	pillarDef, exists := defs.Pillars[pillarKey]
	if !exists {
		return 0, false
	}

	values := l.FlatIndicators(pillarKey)
	if len(values) == 0 {
		return 0, false
	}

	var scores []float64
	for _, category := range pillarDef.Categories {
		for name, def := range category.Indicators {
			raw, present := values[name]
			if !present || def.MinValue == nil || def.MaxValue == nil {
				continue
			}
			_, invert := invertedIndicators[name]
			scores = append(scores, NormalizeIndicator(raw, *def.MinValue, *def.MaxValue, invert))
		}
	}
	if len(scores) == 0 {
		return 0, false
	}
	return round1(stat.Mean(scores, nil)), true
}

// PillarScores computes every pillar's score for a lab. Pillars without
// scorable indicators are absent from the result.
func PillarScores(l lab.Lab, defs Definitions) map[string]float64 {
	scores := map[string]float64{}
	for _, key := range PillarKeys {
		if s, ok := PillarScore(key, l, defs); ok {
			scores[key] = s
		}
	}
	return scores
}

// PillarWeight pairs a pillar with its contribution to the overall score.
type PillarWeight struct {
	Pillar string  `json:"pillar"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ExcludedPillar records why a pillar did not contribute to the overall score.
type ExcludedPillar struct {
	Pillar string `json:"pillar"`
	Reason string `json:"reason"`
}

// Breakdown explains how the overall score was assembled.
type Breakdown struct {
	Included     []PillarWeight   `json:"included_pillars"`
	Excluded     []ExcludedPillar `json:"excluded_pillars"`
	TotalWeights float64          `json:"total_weights"`
}

// OverallScore computes the weighted mean of the pillar scores. Nil or empty
// weights mean equal weighting. Pillars with zero weight or no score are
// excluded from the mean; ok is false when nothing contributes.
func OverallScore(l lab.Lab, defs Definitions, weights map[string]float64) (float64, Breakdown, bool) {
	pillarScores := PillarScores(l, defs)

	var (
		values    []float64
		wts       []float64
		breakdown Breakdown
	)
	for _, key := range PillarKeys {
		w := 1.0
		if len(weights) > 0 {
			w = weights[key]
		}
		score, scored := pillarScores[key]
		switch {
		case w <= 0:
			breakdown.Excluded = append(breakdown.Excluded, ExcludedPillar{Pillar: key, Reason: "weight is 0"})
		case !scored:
			breakdown.Excluded = append(breakdown.Excluded, ExcludedPillar{Pillar: key, Reason: "score unavailable"})
		default:
			values = append(values, score)
			wts = append(wts, w)
			breakdown.Included = append(breakdown.Included, PillarWeight{Pillar: key, Score: score, Weight: w})
			breakdown.TotalWeights += w
		}
	}
	if len(values) == 0 {
		return 0, breakdown, false
	}
	return round1(stat.Mean(values, wts)), breakdown, true
}

// ProjectedScore recomputes the overall score after applying the aggregated
// percentage changes of the given policies to the lab's raw indicator values
// (v + v/100*delta). The input lab is never mutated.
func ProjectedScore(l lab.Lab, defs Definitions, policies []policy.Policy, weights map[string]float64) (float64, bool) {
	deltas := policy.AggregateTargets(policies)
	if len(deltas) == 0 {
		score, _, ok := OverallScore(l, defs, weights)
		return score, ok
	}

	improved := lab.Lab{
		Name:        l.Name,
		Country:     l.Country,
		WEFEPillars: make(map[string]lab.PillarData, len(l.WEFEPillars)),
	}
	for pillarKey, pd := range l.WEFEPillars {
		indicators := make(map[string]map[string]float64, len(pd.Indicators))
		for category, vals := range pd.Indicators {
			group := make(map[string]float64, len(vals))
			for name, v := range vals {
				if delta, affected := deltas[name]; affected {
					v += v / 100 * delta
				}
				group[name] = v
			}
			indicators[category] = group
		}
		improved.WEFEPillars[pillarKey] = lab.PillarData{Indicators: indicators}
	}

	score, _, ok := OverallScore(improved, defs, weights)
	return score, ok
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
