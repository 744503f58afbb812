package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/reporting"
	"github.com/wefe-nexus/nexsim/internal/wefe"
)

var (
	scoreLab      string
	scoreWeights  []string
	scorePolicies []string
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute WEFE pillar scores for a Living Lab",
		Long: `Normalize the lab's indicator values against the pillar definitions and
report per-pillar scores plus the weighted overall nexus score. With
--policy, also reports the score projected after applying those policies'
expected indicator changes.`,
		RunE: scoreCommandE,
	}

	cmd.Flags().StringVarP(&scoreLab, "lab", "l", "", "Living Lab region (defaults to the configured lab)")
	cmd.Flags().StringArrayVarP(&scoreWeights, "weight", "w", nil, "Pillar weight as pillar=value (repeatable)")
	cmd.Flags().StringArrayVarP(&scorePolicies, "policy", "p", nil, "Policy title for the projected score (repeatable)")

	return cmd
}

func scoreCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}

	labName := scoreLab
	if labName == "" {
		labName = store.cfg.Defaults.Lab
	}

	labs, err := store.labs()
	if err != nil {
		return err
	}
	l, ok := lab.ByName(labs, labName)
	if !ok {
		return fmt.Errorf("unknown lab %q (see `nexsim labs`)", labName)
	}

	defs, err := store.pillarDefs()
	if err != nil {
		return err
	}

	weights, err := parseWeights(scoreWeights)
	if err != nil {
		return err
	}
	if weights == nil {
		weights = store.cfg.Weights
	}

	scores := wefe.PillarScores(l, defs)
	overall, _, hasOverall := wefe.OverallScore(l, defs, weights)
	reporting.WriteScoreTable(cmd.OutOrStdout(), l.Name, scores, wefe.PillarKeys, overall, hasOverall)

	if len(scorePolicies) > 0 {
		catalog, err := store.policies()
		if err != nil {
			return err
		}
		selected, err := selectPolicies(catalog, scorePolicies)
		if err != nil {
			return err
		}
		if projected, ok := wefe.ProjectedScore(l, defs, selected, weights); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Projected after %d policies: %.1f\n", len(selected), projected)
		}
	}
	return nil
}
