// Package policy models the policy catalog: bundled statements of intended
// change expressed as synergy and trade-off effects on WEFE indicators.
package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// IndicatorChange is one expected indicator movement. ExpectedChange is
// string-or-number in the reference data and is resolved through
// parse.Change wherever a numeric value is needed.
type IndicatorChange struct {
	Indicator      string `json:"indicator"`
	ExpectedChange any    `json:"expected_change"`
}

// Effect is a synergy or trade-off entry: a category label plus the
// indicators it touches.
type Effect struct {
	Category           string            `json:"category"`
	AffectedIndicators []IndicatorChange `json:"affected_indicators"`
}

// Policy is one entry in the policy catalog, keyed by its title.
type Policy struct {
	Title       string   `json:"title"`
	Type        string   `json:"policy_type,omitempty"`
	Description string   `json:"description,omitempty"`
	Synergies   []Effect `json:"synergies,omitempty"`
	TradeOffs   []Effect `json:"trade_offs,omitempty"`
}

// Load reads the policy catalog from a JSON file. A missing file yields an
// empty catalog and nil error so the caller degrades to "no policies
// available" instead of failing the whole session.
func Load(path string) ([]Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading policy catalog: %w", err)
	}

	var policies []Policy
	if err := json.Unmarshal(data, &policies); err != nil {
		return nil, fmt.Errorf("parsing policy catalog %s: %w", path, err)
	}
	return policies, nil
}

// ByTitle indexes policies by title. Later duplicates win, matching the
// reference catalog's dict conversion.
func ByTitle(policies []Policy) map[string]Policy {
	m := make(map[string]Policy, len(policies))
	for _, p := range policies {
		m[p.Title] = p
	}
	return m
}

// Categories returns the sorted unique policy types present in the catalog.
func Categories(policies []Policy) []string {
	seen := map[string]struct{}{}
	for _, p := range policies {
		if p.Type != "" {
			seen[p.Type] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ByCategory filters the catalog down to one policy type.
func ByCategory(policies []Policy, category string) []Policy {
	var out []Policy
	for _, p := range policies {
		if p.Type == category {
			out = append(out, p)
		}
	}
	return out
}
