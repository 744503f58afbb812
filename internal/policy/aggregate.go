package policy

import "github.com/wefe-nexus/nexsim/internal/parse"

// AggregateTargets sums the expected indicator changes of every synergy and
// trade-off entry across the given policies into one target vector. Entries
// without an indicator key are skipped. A policy that both helps and hurts
// the same indicator nets out; indicators never mentioned are absent from
// the result, not zero.
func AggregateTargets(policies []Policy) map[string]float64 {
	targets := make(map[string]float64)
	for _, p := range policies {
		for _, effects := range [][]Effect{p.Synergies, p.TradeOffs} {
			for _, e := range effects {
				for _, ind := range e.AffectedIndicators {
					if ind.Indicator == "" {
						continue
					}
					targets[ind.Indicator] += parse.Change(ind.ExpectedChange)
				}
			}
		}
	}
	return targets
}
