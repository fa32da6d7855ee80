package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "quorlinc",
	Short: "Quorlin compiler front-end and EVM code generator",
	Long: `quorlinc is the compiler for Quorlin, a Python-syntax smart-contract
language that lowers to Yul for the EVM.

It exposes the same four stages as the spec: tokenize, parse, check
(semantic analysis plus the static security pass), and compile (EVM
codegen). fmt and init are interface stubs only; this core does not
implement them.`,
	Version: Version,
}

// Execute runs the root command and exits 1 on any error, matching the
// teacher's cmd/dwscript entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func readInput(args []string) (source, filename string, err error) {
	if len(args) == 1 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("expected a source file path")
}
