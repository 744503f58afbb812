package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/brief"
	"github.com/wefe-nexus/nexsim/internal/lab"
	"github.com/wefe-nexus/nexsim/internal/wefe"
)

func newLabsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labs",
		Short: "List the available Living Lab regions",
		RunE:  labsCommandE,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a lab's indicator values and briefing",
		Args:  cobra.ExactArgs(1),
		RunE:  labsShowCommandE,
	})

	return cmd
}

func labsCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	labs, err := store.labs()
	if err != nil {
		return err
	}
	if len(labs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Living Labs found.")
		return nil
	}
	for _, l := range labs {
		if l.Country != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", l.Name, l.Country)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), l.Name)
		}
	}
	return nil
}

func labsShowCommandE(cmd *cobra.Command, args []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	labs, err := store.labs()
	if err != nil {
		return err
	}
	l, ok := lab.ByName(labs, args[0])
	if !ok {
		return fmt.Errorf("unknown lab %q", args[0])
	}

	defs, err := store.pillarDefs()
	if err != nil {
		return err
	}
	units := wefe.IndicatorUnits(defs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s", l.Name)
	if l.Country != "" {
		fmt.Fprintf(out, " — %s", l.Country)
	}
	fmt.Fprintln(out)

	for _, pillarKey := range wefe.PillarKeys {
		pd, ok := l.WEFEPillars[pillarKey]
		if !ok {
			continue
		}
		label := pillarKey
		if def, ok := defs.Pillars[pillarKey]; ok && def.Label != "" {
			label = def.Label
		}
		fmt.Fprintf(out, "\n%s:\n", label)
		for category, values := range pd.Indicators {
			fmt.Fprintf(out, "  %s:\n", category)
			for name, value := range values {
				fmt.Fprintf(out, "    %s: %s\n", name, wefe.FormatIndicator(name, value, units))
			}
		}
	}

	// Optional briefing document kept next to the data.
	briefPath := filepath.Join(store.cfg.Paths.Data, "briefs", l.Name+".md")
	b, err := brief.Load(briefPath)
	if err != nil {
		return err
	}
	if b != nil {
		fmt.Fprintf(out, "\nBriefing: %s\n", b.Title)
		for _, section := range b.Sections {
			fmt.Fprintf(out, "  - %s\n", section)
		}
		for _, link := range b.Links {
			fmt.Fprintf(out, "  ref: %s\n", link.Target)
		}
	}
	return nil
}
