package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/policy"
	"github.com/wefe-nexus/nexsim/internal/projectconfig"
	"github.com/wefe-nexus/nexsim/internal/wefe"
)

// dataStore resolves the reference datasets named by the project config.
// Every command goes through it so path overrides behave uniformly.
type dataStore struct {
	cfg *projectconfig.ProjectConfig
}

func openDataStore(startDir string) (*dataStore, error) {
	cfg, err := projectconfig.Load(startDir)
	if err != nil {
		return nil, err
	}
	return &dataStore{cfg: cfg}, nil
}

func (d *dataStore) policies() ([]policy.Policy, error) {
	return policy.Load(d.cfg.Paths.Policies)
}

func (d *dataStore) labs() ([]lab.Lab, error) {
	return lab.Load(d.cfg.Paths.Labs)
}

func (d *dataStore) pillarDefs() (wefe.Definitions, error) {
	return wefe.LoadDefinitions(d.cfg.Paths.Pillars)
}

func (d *dataStore) interventionsDir() string {
	return d.cfg.Paths.Interventions
}

// selectPolicies resolves a list of titles against the catalog, failing on
// unknown titles so typos surface instead of silently shrinking the run.
func selectPolicies(catalog []policy.Policy, titles []string) ([]policy.Policy, error) {
	byTitle := policy.ByTitle(catalog)
	selected := make([]policy.Policy, 0, len(titles))
	for _, title := range titles {
		p, ok := byTitle[title]
		if !ok {
			return nil, fmt.Errorf("unknown policy %q (see `nexsim policies`)", title)
		}
		selected = append(selected, p)
	}
	return selected, nil
}

// parseWeights converts pillar=weight flags into a weight map.
func parseWeights(pairs []string) (map[string]float64, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	weights := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		key, val, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid weight %q: expected pillar=value", pair)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", pair, err)
		}
		weights[strings.TrimSpace(key)] = f
	}
	return weights, nil
}
