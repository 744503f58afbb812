// Package scaffold generates a starter nexsim workspace: the data directory
// layout, sample records for every catalog, and a project config file.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wefe-nexus/nexsim/internal/projectconfig"
)

// ValidateLabName rejects lab names with path-traversal characters or empty
// names. The name becomes part of the livinglab record and the briefs path.
func ValidateLabName(name string) error {
	if name == "" {
		return fmt.Errorf("lab name must not be empty")
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.Contains(cleaned, "/") || strings.Contains(cleaned, "\\") {
		return fmt.Errorf("lab name %q contains invalid path characters", name)
	}
	return nil
}

// ProjectYAML returns the starter .nexsim.yaml for the given default lab.
func ProjectYAML(labName string) string {
	return fmt.Sprintf(`defaults:
  lab: %s
  format: table
weights:
  water: 1
  energy: 1
  food: 1
  ecosystems: 1
`, labName)
}

// PoliciesJSON returns a starter policy catalog with one worked example.
func PoliciesJSON() string {
	return `[
  {
    "title": "Integrated Water Reuse Programme",
    "policy_type": "Water Management",
    "description": "Treat and reuse municipal wastewater for irrigation.",
    "synergies": [
      {
        "category": "Water Availability",
        "affected_indicators": [
          {"indicator": "water_stress_level", "expected_change": "-10%"},
          {"indicator": "treated_wastewater_reuse", "expected_change": "+15%"}
        ]
      }
    ],
    "trade_offs": [
      {
        "category": "Energy Demand",
        "affected_indicators": [
          {"indicator": "energy_consumption_per_capita", "expected_change": "+2%"}
        ]
      }
    ]
  }
]
`
}

// InterventionFiles returns a map of intervention filename to starter record.
func InterventionFiles() map[string]string {
	return map[string]string{
		"wastewater-treatment-plant.json": `{
  "title": "Tertiary Wastewater Treatment Plant",
  "needs": {"capex_usd": 12000000},
  "outcomes": {
    "indicators": [
      {"indicator": "treated_wastewater_reuse", "expected_change": "+20%"}
    ]
  }
}
`,
		"drip-irrigation-rollout.json": `{
  "title": "Drip Irrigation Rollout",
  "needs": {"capex_usd": "3500000"},
  "outcomes": {
    "indicators": [
      {"indicator": "water_stress_level", "expected_change": -8}
    ]
  }
}
`,
	}
}

// LabJSON returns a starter livinglab.json with one region named labName.
func LabJSON(labName string) string {
	return fmt.Sprintf(`[
  {
    "name": "%s",
    "country": "",
    "description": "Starter Living Lab. Replace these indicator values with surveyed data.",
    "wefe_pillars": {
      "water": {
        "indicators": {
          "Availability": {
            "water_stress_level": 50,
            "treated_wastewater_reuse": 10
          }
        }
      }
    }
  }
]
`, labName)
}

// Workspace writes the starter workspace under dir. Existing files are left
// alone so re-running init never clobbers curated data; created paths are
// returned for reporting.
func Workspace(dir, labName string) ([]string, error) {
	files := map[string]string{
		".nexsim.yaml":                    ProjectYAML(labName),
		projectconfig.DefaultPoliciesFile: PoliciesJSON(),
		projectconfig.DefaultLabsFile:     LabJSON(labName),
	}
	for name, content := range InterventionFiles() {
		files[filepath.Join(projectconfig.DefaultInterventionsDir, name)] = content
	}

	var created []string
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return created, fmt.Errorf("scaffold: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("scaffold: %w", err)
		}
		created = append(created, rel)
	}
	sort.Strings(created)
	return created, nil
}
