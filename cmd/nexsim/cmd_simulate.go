package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/reporting"
	"github.com/wefe-nexus/nexsim/internal/session"
	"github.com/wefe-nexus/nexsim/internal/simulation"
	"github.com/wefe-nexus/nexsim/internal/wizard"
)

var (
	simulatePolicies    []string
	simulateInteractive bool
	simulateFormat      string
)

func newSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Allocate interventions to cover the selected policies' targets",
		Long: `Aggregate the expected indicator changes of the selected policies into
targets, then greedily select the interventions that cover them at minimal
capex. Exits with code 1 when targets remain unmet.`,
		RunE: simulateCommandE,
	}

	cmd.Flags().StringArrayVarP(&simulatePolicies, "policy", "p", nil, "Policy title to include (repeatable)")
	cmd.Flags().BoolVarP(&simulateInteractive, "interactive", "i", false, "Pick policies interactively")
	cmd.Flags().StringVarP(&simulateFormat, "format", "f", "", "Output format: table, json, or csv")

	return cmd
}

func simulateCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}

	format := simulateFormat
	if format == "" {
		format = store.cfg.Defaults.Format
	}
	if format != "table" && format != "json" && format != "csv" {
		return fmt.Errorf("unsupported format %q: must be table, json, or csv", format)
	}

	catalog, err := store.policies()
	if err != nil {
		return err
	}

	sess := session.New()
	sess.SelectLab(store.cfg.Defaults.Lab)

	titles := simulatePolicies
	if simulateInteractive {
		labs, err := store.labs()
		if err != nil {
			return err
		}
		sel, err := wizard.RunPolicyWizard(os.Stdin, os.Stdout, lab.Regions(labs), catalog, titles)
		if err != nil {
			return err
		}
		if sel.Lab != "" {
			sess.SelectLab(sel.Lab)
		}
		titles = sel.Policies
	}
	if len(titles) == 0 {
		return fmt.Errorf("no policies selected: pass --policy or --interactive")
	}

	selected, err := selectPolicies(catalog, titles)
	if err != nil {
		return err
	}
	for _, title := range titles {
		sess.SelectPolicy(title)
	}

	res, err := simulation.Run(store.interventionsDir(), selected)
	if err != nil {
		return err
	}
	sess.RecordResult(res)

	switch format {
	case "json":
		if err := reporting.WriteResultJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	case "csv":
		if err := reporting.WriteResultCSV(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	default:
		reporting.WriteResultTable(cmd.OutOrStdout(), res)
	}

	if !res.Satisfied() {
		return &UnmetTargetsError{Message: "simulation finished with unmet targets"}
	}
	return nil
}
