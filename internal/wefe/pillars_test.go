package wefe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePillars = `{
  "wefe_pillars": {
    "water": {
      "key": "water",
      "label": "Water",
      "categories": {
        "Access": {
          "indicators": {
            "water_access_percent": {"min_value": 0, "max_value": 100, "unit": "percentage"}
          }
        }
      }
    }
  }
}`

func TestLoadDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillars.json")
	require.NoError(t, os.WriteFile(path, []byte(samplePillars), 0o644))

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs.Pillars, 1)

	water := defs.Pillars["water"]
	require.Equal(t, "Water", water.Label)
	def := water.Categories["Access"].Indicators["water_access_percent"]
	require.NotNil(t, def.MinValue)
	require.Equal(t, 100.0, *def.MaxValue)
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	defs, err := LoadDefinitions(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Len(t, defs.Pillars, 4)
	require.Equal(t, "Ecosystems", defs.Pillars["ecosystems"].Label)
}

func TestLoadDefinitionsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pillars.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	_, err := LoadDefinitions(path)
	require.Error(t, err)
}

func TestIndicatorUnits(t *testing.T) {
	defs := testDefs()
	units := IndicatorUnits(defs)
	require.Equal(t, "percentage", units["renewable_share"])
	require.Len(t, units, 3)
}

func TestFormatIndicator(t *testing.T) {
	units := map[string]string{
		"water_access_percent": "percentage",
		"gdp_per_capita":       "USD per capita per year",
		"species":              "count",
		"rainfall":             "millimeters per year",
		"custom":               "widgets",
	}
	tests := []struct {
		indicator string
		value     float64
		want      string
	}{
		{"water_access_percent", 92.1, "92.1%"},
		{"gdp_per_capita", 3400, "$3400/capita/year"},
		{"species", 12, "12"},
		{"rainfall", 220, "220 mm/year"},
		{"custom", 3, "3 widgets"},
		{"unknown", 1.5, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.indicator, func(t *testing.T) {
			require.Equal(t, tt.want, FormatIndicator(tt.indicator, tt.value, units))
		})
	}
}
