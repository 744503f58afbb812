// Package simulation wires the policy aggregator, the intervention catalog,
// and the greedy allocator into one end-to-end run.
package simulation

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/wefe-nexus/nexsim/internal/allocation"
	"github.com/wefe-nexus/nexsim/internal/intervention"
	"github.com/wefe-nexus/nexsim/internal/policy"
)

// Result is the output of one allocation run. It is created fresh per run
// and never mutated afterwards; re-running produces a new Result.
type Result struct {
	RunID      string                      `json:"run_id"`
	Targets    map[string]float64          `json:"targets"`
	Coverage   map[string]float64          `json:"coverage"`
	Unmet      map[string]float64          `json:"unmet"`
	TotalCapex float64                     `json:"total_capex_usd"`
	Selected   []intervention.Intervention `json:"selected_interventions"`
}

// Satisfied reports whether every target's residual is effectively zero.
func (r *Result) Satisfied() bool {
	for _, v := range r.Unmet {
		if v > allocation.Epsilon {
			return false
		}
	}
	return true
}

// Run loads the intervention catalog from catalogDir, aggregates the selected
// policies into indicator targets, and allocates interventions against them.
// Inputs are read-only; identical inputs give identical allocations. The only
// error path is an unreadable (but existing) catalog directory — a missing
// directory simply means no interventions are available.
func Run(catalogDir string, policies []policy.Policy) (*Result, error) {
	catalog, err := intervention.LoadCatalog(catalogDir)
	if err != nil {
		return nil, err
	}

	targets := policy.AggregateTargets(policies)
	selected, unmet := allocation.Allocate(catalog, targets)

	coverage := make(map[string]float64, len(targets))
	totalCapex := 0.0
	for k, v := range targets {
		// Negative targets clamp to zero demand, so they report zero
		// coverage rather than a negative remainder.
		coverage[k] = max(0, v) - unmet[k]
	}
	for _, iv := range selected {
		totalCapex += iv.Capex
	}

	res := &Result{
		RunID:      uuid.NewString(),
		Targets:    targets,
		Coverage:   coverage,
		Unmet:      unmet,
		TotalCapex: totalCapex,
		Selected:   selected,
	}
	slog.Debug("simulation complete",
		"run_id", res.RunID,
		"policies", len(policies),
		"catalog", len(catalog),
		"selected", len(selected),
		"total_capex", totalCapex,
		"satisfied", res.Satisfied())
	return res, nil
}
