package cmd

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/astjson"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
	"github.com/spf13/cobra"
)

var parseEmitIR string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Quorlin file and print its AST",
	Long: `Parse a Quorlin program and print its Abstract Syntax Tree as
canonical JSON (spec.md §6.2's wire contract).

Use --emit-ir <path> to print only the value at a gjson path expression
(e.g. "items.0.name") instead of the whole document.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseEmitIR, "emit-ir", "", "print only the value at this gjson path")
}

func runParse(_ *cobra.Command, args []string) error {
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

	doc, err := astjson.Marshal(mod)
	if err != nil {
		return fmt.Errorf("failed to encode AST: %w", err)
	}

	if parseEmitIR != "" {
		value, ok := astjson.Query(doc, parseEmitIR)
		if !ok {
			return fmt.Errorf("no value at path %q", parseEmitIR)
		}
		fmt.Println(value)
		return nil
	}

	fmt.Println(doc)
	return nil
}
