// Package wefe implements the Water-Energy-Food-Ecosystems scoring model:
// indicator normalization, per-pillar scores, and the weighted overall nexus
// score for a Living Lab.
package wefe

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// IndicatorDef describes one indicator's normalization range and unit.
type IndicatorDef struct {
	MinValue *float64 `json:"min_value"`
	MaxValue *float64 `json:"max_value"`
	Unit     string   `json:"unit,omitempty"`
	Label    string   `json:"label,omitempty"`
}

// CategoryDef groups indicator definitions (e.g. Access, Availability).
type CategoryDef struct {
	Indicators map[string]IndicatorDef `json:"indicators"`
}

// PillarDef is one of the four WEFE pillars.
type PillarDef struct {
	Key        string                 `json:"key"`
	Label      string                 `json:"label"`
	Icon       string                 `json:"icon,omitempty"`
	Color      string                 `json:"color,omitempty"`
	Categories map[string]CategoryDef `json:"categories,omitempty"`
}

// Definitions is the full pillars configuration.
type Definitions struct {
	Pillars map[string]PillarDef `json:"wefe_pillars"`
}

// PillarKeys is the canonical pillar ordering used for display.
var PillarKeys = []string{"water", "energy", "food", "ecosystems"}

// DefaultDefinitions returns the built-in pillar set used when no
// pillars.json is available. It carries no indicator ranges, so scoring over
// it yields no scores, only labels.
func DefaultDefinitions() Definitions {
	return Definitions{Pillars: map[string]PillarDef{
		"water":      {Key: "water", Label: "Water", Icon: "💧", Color: "#3498db"},
		"energy":     {Key: "energy", Label: "Energy", Icon: "⚡", Color: "#f39c12"},
		"food":       {Key: "food", Label: "Food", Icon: "🌾", Color: "#27ae60"},
		"ecosystems": {Key: "ecosystems", Label: "Ecosystems", Icon: "🌳", Color: "#16a085"},
	}}
}

// LoadDefinitions reads pillars.json. A missing file falls back to the
// built-in defaults instead of failing.
func LoadDefinitions(path string) (Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultDefinitions(), nil
		}
		return Definitions{}, fmt.Errorf("reading pillar definitions: %w", err)
	}

	var defs Definitions
	if err := json.Unmarshal(data, &defs); err != nil {
		return Definitions{}, fmt.Errorf("parsing pillar definitions %s: %w", path, err)
	}
	if len(defs.Pillars) == 0 {
		return DefaultDefinitions(), nil
	}
	return defs, nil
}

// IndicatorUnits flattens the definitions into an indicator→unit map.
func IndicatorUnits(defs Definitions) map[string]string {
	units := map[string]string{}
	for _, pillar := range defs.Pillars {
		for _, category := range pillar.Categories {
			for name, def := range category.Indicators {
				units[name] = def.Unit
			}
		}
	}
	return units
}
