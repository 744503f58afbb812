package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/intervention"
)

func newInterventionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interventions",
		Short: "List the intervention catalog",
		RunE:  interventionsCommandE,
	}
}

func interventionsCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	catalog, err := intervention.LoadCatalog(store.interventionsDir())
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No interventions found.")
		return nil
	}

	out := cmd.OutOrStdout()
	total := 0.0
	for _, iv := range catalog {
		fmt.Fprintf(out, "%s  $%.0f  (%d indicators)  [%s]\n",
			iv.Title, iv.Capex, len(iv.Indicators), iv.ID)
		total += iv.Capex
	}
	fmt.Fprintf(out, "\n%d interventions, combined capex $%.0f\n", len(catalog), total)
	return nil
}
