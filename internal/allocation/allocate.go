// Package allocation selects a minimal-cost set of interventions whose
// combined indicator effects cover a target vector. The selection is a greedy
// cost-effectiveness heuristic, not an exact solver: it iteratively picks the
// intervention with the best coverage gain per dollar until every target is
// met or no remaining intervention makes progress.
package allocation

import "github.com/wefe-nexus/nexsim/internal/intervention"

// Epsilon is the residual below which a target counts as satisfied.
const Epsilon = 1e-6

// costFloor prevents division blow-up for free interventions: a zero-cost
// intervention is never scored beyond gain itself.
const costFloor = 1.0

// Allocate greedily picks interventions from catalog to cover the positive
// part of targets. It returns the selections in pick order plus the residual
// unmet amounts. Negative targets clamp to zero and never create demand.
// Inputs are not mutated; each intervention is used at most once.
func Allocate(catalog []intervention.Intervention, targets map[string]float64) ([]intervention.Intervention, map[string]float64) {
	unmet := make(map[string]float64, len(targets))
	for k, v := range targets {
		unmet[k] = max(0, v)
	}

	remaining := make([]intervention.Intervention, len(catalog))
	copy(remaining, catalog)

	var selected []intervention.Intervention
	for {
		if allMet(unmet) {
			break
		}

		// Full rescan of the remaining candidates. Catalog and target
		// sizes are tens of entries; the simple scan wins over
		// incremental indexing.
		best := -1
		bestScore := 0.0
		for i, iv := range remaining {
			gain := coverageGain(unmet, iv)
			if gain <= 0 {
				continue
			}
			score := gain / max(iv.Capex, costFloor)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break // no further progress possible
		}

		winner := remaining[best]
		selected = append(selected, winner)
		remaining = append(remaining[:best:best], remaining[best+1:]...)

		// Subtract the winner's actual (uncapped) positive
		// contributions. Negative contributions are informational
		// trade-offs and never re-open a target.
		for k := range unmet {
			if contrib := winner.Indicators[k]; contrib > 0 {
				unmet[k] = max(0, unmet[k]-contrib)
			}
		}
	}

	return selected, unmet
}

// coverageGain scores an intervention against the current shortfall: the sum
// over still-unmet targets of its positive contribution, capped per indicator
// at the remaining unmet amount so over-delivering one indicator does not
// make an intervention look disproportionately attractive.
func coverageGain(unmet map[string]float64, iv intervention.Intervention) float64 {
	gain := 0.0
	for k, required := range unmet {
		if required <= 0 {
			continue
		}
		if contrib := iv.Indicators[k]; contrib > 0 {
			gain += min(contrib, required)
		}
	}
	return gain
}

func allMet(unmet map[string]float64) bool {
	for _, v := range unmet {
		if v > Epsilon {
			return false
		}
	}
	return true
}
