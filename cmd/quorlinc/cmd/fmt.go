package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format Quorlin source files (not implemented)",
	Long: `spec.md lists fmt among the expected CLI surface but names the
formatter itself as out of scope for this core (spec.md §9 Non-goals).
This stub exists for interface completeness: it reports that the
command is unimplemented rather than silently accepting and ignoring
its arguments.`,
	RunE: func(*cobra.Command, []string) error {
		return fmt.Errorf("fmt is not implemented by this core")
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
