package cmd

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
	"github.com/spf13/cobra"
)

var checkWarningsAsErrors bool

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Type-check a Quorlin file and run the static security pass",
	Long: `Run the semantic analyzer over a Quorlin program: name resolution,
type checking, and the missing-access-control / reentrancy /
checks-effects-interactions security heuristics (spec.md §4.3).

Security findings are warnings and do not fail the check unless
--warnings-as-errors is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkWarningsAsErrors, "warnings-as-errors", false, "exit with an error if the security pass reports any warning")
}

func runCheck(_ *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	toks, lexErr := lexer.TokenizeIndented(source)
	if lexErr != nil {
		fmt.Println(lexErr.Diagnostic(filename, source).Format(true))
		return fmt.Errorf("tokenizing failed")
	}
	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		fmt.Println(parseErr.Diagnostic(filename, source).Format(true))
		return fmt.Errorf("parsing failed")
	}

	_, warnings, semErr := semantic.NewAnalyzer().Analyze(mod)
	for _, w := range warnings {
		fmt.Println(w.Diagnostic(filename, source).Format(true))
	}
	if semErr != nil {
		fmt.Println(semErr.Diagnostic(filename, source).Format(true))
		return fmt.Errorf("semantic analysis failed")
	}

	if len(warnings) > 0 {
		fmt.Printf("%d warning(s)\n", len(warnings))
		if checkWarningsAsErrors {
			return fmt.Errorf("failing due to --warnings-as-errors")
		}
	} else {
		fmt.Println("ok")
	}
	return nil
}
