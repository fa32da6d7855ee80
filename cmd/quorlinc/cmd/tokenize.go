package cmd

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/spf13/cobra"
)

var tokenizeShowSpan bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a Quorlin file and print the resulting tokens",
	Long: `Tokenize (lex) a Quorlin program and print the resulting tokens,
one per line, including the synthetic INDENT/DEDENT/NEWLINE tokens the
indentation processor inserts.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().BoolVar(&tokenizeShowSpan, "show-span", false, "show each token's source span")
}

func runTokenize(_ *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	toks, lexErr := lexer.TokenizeIndented(source)
	if lexErr != nil {
		fmt.Println(lexErr.Diagnostic(filename, source).Format(true))
		return fmt.Errorf("tokenizing failed")
	}

	for _, tok := range toks {
		if tokenizeShowSpan {
			fmt.Printf("%-24s @%d:%d\n", tok.String(), tok.Span.Line, tok.Span.Column)
		} else {
			fmt.Println(tok.String())
		}
	}
	fmt.Printf("%d token(s)\n", len(toks))
	return nil
}
