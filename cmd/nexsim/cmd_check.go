package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/validation"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the reference datasets against their schemas",
		Long: `Check every policy and intervention record against its JSON Schema and
report violations. Loading is lenient regardless; this command exists so
catalog curators can find the records that will silently degrade.`,
		RunE: checkCommandE,
	}
}

func checkCommandE(cmd *cobra.Command, _ []string) error {
	store, err := openDataStore(".")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	problems := 0

	policyErrs, err := validation.ValidatePolicyFile(store.cfg.Paths.Policies)
	if err == nil {
		for _, e := range policyErrs {
			fmt.Fprintf(out, "policies: %s\n", e)
			problems++
		}
	} else {
		fmt.Fprintf(out, "policies: %v\n", err)
	}

	catalogErrs, err := validation.ValidateCatalogDir(store.interventionsDir())
	if err != nil {
		return err
	}
	files := make([]string, 0, len(catalogErrs))
	for name := range catalogErrs {
		files = append(files, name)
	}
	sort.Strings(files)
	for _, name := range files {
		for _, e := range catalogErrs[name] {
			fmt.Fprintf(out, "interventions/%s: %s\n", name, e)
			problems++
		}
	}

	if problems == 0 {
		fmt.Fprintln(out, "All records valid.")
		return nil
	}
	return fmt.Errorf("%d schema violations found", problems)
}
