// Package intervention holds the catalog of concrete, costed actions and its
// file-based loader. Interventions are immutable once loaded; the catalog for
// a run is always the full available set.
package intervention

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/wefe-nexus/nexsim/internal/parse"
)

// Intervention is one catalog entry: an identifier (its file name), a title,
// a capital cost, and the indicator deltas its outcomes promise.
type Intervention struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Capex      float64            `json:"capex_usd"`
	Indicators map[string]float64 `json:"indicator_effects"`
}

// record mirrors the on-disk JSON shape. Change and cost values are
// string-or-number in the reference data, so they stay `any` until they pass
// through parse.Change.
type record struct {
	Title    string `mapstructure:"title"`
	Needs    *needs `mapstructure:"needs"`
	Outcomes *struct {
		Indicators []struct {
			Indicator      string `mapstructure:"indicator"`
			ExpectedChange any    `mapstructure:"expected_change"`
		} `mapstructure:"indicators"`
	} `mapstructure:"outcomes"`
}

type needs struct {
	CapexUSD any `mapstructure:"capex_usd"`
}

// LoadCatalog reads every *.json file under dir, in sorted filename order,
// into interventions. Records that fail to decode structurally are skipped
// with a log line; numeric fields inside a readable record degrade to 0
// instead. A missing directory yields an empty catalog and nil error.
func LoadCatalog(dir string) ([]Intervention, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading intervention catalog %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	catalog := make([]Intervention, 0, len(names))
	for _, name := range names {
		iv, err := loadRecord(filepath.Join(dir, name))
		if err != nil {
			slog.Debug("skipping unreadable intervention record", "file", name, "error", err)
			continue
		}
		iv.ID = name
		catalog = append(catalog, iv)
	}
	return catalog, nil
}

func loadRecord(path string) (Intervention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Intervention{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Intervention{}, fmt.Errorf("parsing record: %w", err)
	}

	var rec record
	if err := mapstructure.Decode(raw, &rec); err != nil {
		return Intervention{}, fmt.Errorf("decoding record: %w", err)
	}

	iv := Intervention{
		Title:      rec.Title,
		Indicators: map[string]float64{},
	}
	if iv.Title == "" {
		iv.Title = filepath.Base(path)
	}
	if rec.Needs != nil {
		iv.Capex = parse.Change(rec.Needs.CapexUSD)
	}
	if rec.Outcomes != nil {
		for _, out := range rec.Outcomes.Indicators {
			if out.Indicator == "" {
				continue
			}
			iv.Indicators[out.Indicator] += parse.Change(out.ExpectedChange)
		}
	}
	return iv, nil
}
