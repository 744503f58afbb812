package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/policy"
	"github.com/wefe-nexus/nexsim/internal/simulation"
	"github.com/wefe-nexus/nexsim/internal/spinner"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var compareFormat string

func newCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <\"policy a,policy b\"> <\"policy a,policy c\"> [...]",
		Short: "Compare allocation outcomes for alternative policy sets",
		Long: `Run one simulation per scenario — each argument is a comma-separated list
of policy titles — and compare total capex, coverage, and leftover unmet
targets side by side. Scenarios run in parallel; each run loads its own
catalog snapshot, so no coordination is needed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: compareCommandE,
	}

	cmd.Flags().StringVarP(&compareFormat, "format", "f", "table", "Output format: table or json")

	return cmd
}

// scenarioOutcome pairs a scenario's label with its simulation result.
type scenarioOutcome struct {
	Scenario   string             `json:"scenario"`
	Policies   []string           `json:"policies"`
	TotalCapex float64            `json:"total_capex_usd"`
	Selected   int                `json:"selected_interventions"`
	UnmetKeys  []string           `json:"unmet_indicators"`
	Unmet      map[string]float64 `json:"unmet"`
	Satisfied  bool               `json:"satisfied"`
}

func compareCommandE(cmd *cobra.Command, args []string) error {
	if compareFormat != "table" && compareFormat != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", compareFormat)
	}

	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	catalog, err := store.policies()
	if err != nil {
		return err
	}

	scenarios := make([][]policy.Policy, len(args))
	titles := make([][]string, len(args))
	for i, arg := range args {
		var ts []string
		for _, t := range strings.Split(arg, ",") {
			if t = strings.TrimSpace(t); t != "" {
				ts = append(ts, t)
			}
		}
		selected, err := selectPolicies(catalog, ts)
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}
		scenarios[i] = selected
		titles[i] = ts
	}

	outcomes := make([]scenarioOutcome, len(scenarios))
	var g errgroup.Group
	for i, selected := range scenarios {
		g.Go(func() error {
			res, err := simulation.Run(store.interventionsDir(), selected)
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i+1, err)
			}
			outcomes[i] = summarize(args[i], titles[i], res)
			return nil
		})
	}

	wait := g.Wait
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg := fmt.Sprintf("running %d scenarios", len(scenarios))
		wait = func() error { return spinner.While(os.Stderr, msg, g.Wait) }
	}
	if err := wait(); err != nil {
		return err
	}

	if compareFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outcomes)
	}

	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		status := "all targets met"
		if !o.Satisfied {
			status = fmt.Sprintf("unmet: %s", strings.Join(o.UnmetKeys, ", "))
		}
		fmt.Fprintf(out, "%s\n  %d interventions, $%.0f capex, %s\n",
			o.Scenario, o.Selected, o.TotalCapex, status)
	}
	return nil
}

func summarize(label string, titles []string, res *simulation.Result) scenarioOutcome {
	o := scenarioOutcome{
		Scenario:   label,
		Policies:   titles,
		TotalCapex: res.TotalCapex,
		Selected:   len(res.Selected),
		Unmet:      res.Unmet,
		Satisfied:  res.Satisfied(),
	}
	for k, v := range res.Unmet {
		if v > 0 {
			o.UnmetKeys = append(o.UnmetKeys, k)
		}
	}
	sort.Strings(o.UnmetKeys)
	return o
}
