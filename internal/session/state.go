// Package session holds the caller-owned state of one exploration session:
// the selected lab, the selected policies, pillar weights, and the last
// simulation result. The engine packages themselves stay pure functions of
// their arguments; everything stateful lives here, passed explicitly by the
// caller. Nothing is persisted.
package session

import (
	"slices"
	"sync"

	"github.com/wefe-nexus/nexsim/internal/simulation"
)

// DefaultLab is selected when a session starts without an explicit region.
const DefaultLab = "Tunis"

// State is one user session. Safe for concurrent use by independent callers
// sharing a session.
type State struct {
	mu sync.Mutex

	selectedLab      string
	selectedPolicies []string
	weights          map[string]float64
	lastResult       *simulation.Result
}

// New returns a session with the default lab selected and no policies.
func New() *State {
	return &State{selectedLab: DefaultLab}
}

// SelectedLab returns the current region.
func (s *State) SelectedLab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLab
}

// SelectLab switches the session to another region.
func (s *State) SelectLab(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedLab = name
}

// SelectedPolicies returns a copy of the selected policy titles in selection
// order.
func (s *State) SelectedPolicies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.selectedPolicies)
}

// SelectPolicy adds a policy title; re-selecting is a no-op.
func (s *State) SelectPolicy(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.selectedPolicies, title) {
		s.selectedPolicies = append(s.selectedPolicies, title)
	}
}

// DeselectPolicy removes a policy title if present.
func (s *State) DeselectPolicy(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPolicies = slices.DeleteFunc(s.selectedPolicies, func(t string) bool {
		return t == title
	})
}

// Weights returns a copy of the pillar weights; nil means equal weighting.
func (s *State) Weights() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.weights == nil {
		return nil
	}
	out := make(map[string]float64, len(s.weights))
	for k, v := range s.weights {
		out[k] = v
	}
	return out
}

// SetWeights replaces the pillar weights.
func (s *State) SetWeights(weights map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if weights == nil {
		s.weights = nil
		return
	}
	s.weights = make(map[string]float64, len(weights))
	for k, v := range weights {
		s.weights[k] = v
	}
}

// LastResult returns the most recent simulation result, or nil before the
// first run.
func (s *State) LastResult() *simulation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResult
}

// RecordResult stores the result of a run as the session's last result.
func (s *State) RecordResult(res *simulation.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = res
}

// Reset clears selections, weights, and the last result, keeping the lab.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPolicies = nil
	s.weights = nil
	s.lastResult = nil
}
