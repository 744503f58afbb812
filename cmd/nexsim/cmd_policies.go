package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/policy"
)

var policiesCategory string

func newPoliciesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "List the policy catalog",
		RunE:  policiesCommandE,
	}

	cmd.Flags().StringVarP(&policiesCategory, "category", "c", "", "Filter by policy type")

	return cmd
}

func policiesCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	catalog, err := store.policies()
	if err != nil {
		return err
	}
	if policiesCategory != "" {
		catalog = policy.ByCategory(catalog, policiesCategory)
	}
	if len(catalog) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No policies found.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, p := range catalog {
		pillar := policy.InferPillar(p)
		if p.Type != "" {
			fmt.Fprintf(out, "%s  [%s, %s]\n", p.Title, p.Type, pillar)
		} else {
			fmt.Fprintf(out, "%s  [%s]\n", p.Title, pillar)
		}
	}

	if policiesCategory == "" {
		if categories := policy.Categories(catalog); len(categories) > 0 {
			fmt.Fprintf(out, "\nCategories: %v\n", categories)
		}
	}
	return nil
}
