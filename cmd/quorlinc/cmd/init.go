package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new Quorlin project (not implemented)",
	Long: `spec.md lists init among the expected CLI surface but names the
project-init scaffolder itself as out of scope for this core (spec.md
§9 Non-goals). This stub exists for interface completeness: it reports
that the command is unimplemented rather than silently accepting and
ignoring its arguments.`,
	RunE: func(*cobra.Command, []string) error {
		return fmt.Errorf("init is not implemented by this core")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
