// Package lab loads Living Lab region data: per-region WEFE pillar indicator
// values grouped by category.
package lab

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// PillarData holds one pillar's indicator values for a lab, grouped by
// category (e.g. Access, Availability).
type PillarData struct {
	Indicators map[string]map[string]float64 `json:"indicators"`
}

// Lab is one Living Lab region.
type Lab struct {
	Name        string                `json:"name"`
	Country     string                `json:"country,omitempty"`
	Description string                `json:"description,omitempty"`
	Latitude    float64               `json:"lat,omitempty"`
	Longitude   float64               `json:"lon,omitempty"`
	WEFEPillars map[string]PillarData `json:"wefe_pillars"`
}

// FlatIndicators flattens one pillar's category groups into a single
// indicator→value map.
func (l Lab) FlatIndicators(pillarKey string) map[string]float64 {
	pd, ok := l.WEFEPillars[pillarKey]
	if !ok {
		return nil
	}
	flat := map[string]float64{}
	for _, category := range pd.Indicators {
		for name, value := range category {
			flat[name] = value
		}
	}
	return flat
}

// Load reads the Living Labs file. A missing file yields an empty list and
// nil error.
func Load(path string) ([]Lab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading living labs: %w", err)
	}

	var labs []Lab
	if err := json.Unmarshal(data, &labs); err != nil {
		return nil, fmt.Errorf("parsing living labs %s: %w", path, err)
	}
	return labs, nil
}

// Regions lists the lab names in file order.
func Regions(labs []Lab) []string {
	names := make([]string, len(labs))
	for i, l := range labs {
		names[i] = l.Name
	}
	return names
}

// ByName finds a lab by its region name.
func ByName(labs []Lab, name string) (Lab, bool) {
	for _, l := range labs {
		if l.Name == name {
			return l, true
		}
	}
	return Lab{}, false
}
