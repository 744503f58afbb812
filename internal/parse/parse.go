// Package parse holds the single seam where dirty catalog data is sanitized.
// Expected-change and cost values in the reference datasets are community
// curated and arrive as numbers, signed strings, or percentage strings.
package parse

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Change converts a string-or-number value into a float64. Strings may carry
// surrounding whitespace, a leading sign, and a trailing '%'. Returns 0 for
// nil and for anything that does not parse — malformed values never abort a
// load or a simulation.
func Change(v any) float64 {
	return ChangeDefault(v, 0)
}

// ChangeDefault is Change with an explicit fallback value.
func ChangeDefault(v any, fallback float64) float64 {
	switch x := v.(type) {
	case nil:
		return fallback
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return fallback
		}
		return f
	case string:
		s := strings.TrimSpace(x)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimSpace(s)
		if s == "" {
			return fallback
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fallback
		}
		return f
	default:
		return fallback
	}
}
