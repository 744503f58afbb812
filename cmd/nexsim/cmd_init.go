package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wefe-nexus/nexsim/internal/scaffold"
)

var initLab string

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a starter workspace with sample catalogs",
		Long: `Create the data directory layout, a sample policy and intervention
catalog, a Living Lab record, and a .nexsim.yaml project config. Existing
files are never overwritten, so init is safe to re-run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: initCommandE,
	}

	cmd.Flags().StringVarP(&initLab, "lab", "l", "Tunis", "Name of the starter Living Lab")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := scaffold.ValidateLabName(initLab); err != nil {
		return err
	}

	created, err := scaffold.Workspace(dir, initLab)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(created) == 0 {
		fmt.Fprintln(out, "Workspace already initialized; nothing to do.")
		return nil
	}
	for _, rel := range created {
		fmt.Fprintf(out, "created %s\n", rel)
	}
	fmt.Fprintln(out, "\nNext: `nexsim policies` to browse the catalog, `nexsim simulate -i` to run.")
	return nil
}
