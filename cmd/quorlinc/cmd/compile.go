package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/astjson"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/config"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	compileTarget     string
	compileOutputFile string
	compileEmitLayout bool
	compileEmitIR     bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Quorlin contract to Yul",
	Long: `Compile a Quorlin contract through the full pipeline — lexer, parser,
semantic analyzer, EVM codegen — and print the resulting Yul source.

Only --target evm (alias: ethereum) is implemented; any other value is
reported as an unsupported back-end rather than silently ignored,
matching spec.md §1's framing of the other back-ends as unspecified.

If a quorlin.yaml project file is present in the current directory, its
"target" and "warnings_as_errors" settings are used; "target" is a
default that --target overrides, and "warnings_as_errors" has no
command-line flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVar(&compileTarget, "target", "", "code generation back-end (default: evm, or quorlin.yaml's target)")
	compileCmd.Flags().StringVarP(&compileOutputFile, "output", "o", "", "output file (default: stdout)")
	compileCmd.Flags().BoolVar(&compileEmitLayout, "emit-layout", false, "print the storage layout report to stderr")
	compileCmd.Flags().BoolVar(&compileEmitIR, "emit-ir", false, "print the AST JSON, annotated with storage layout and event signatures, to stderr")
}

func runCompile(_ *cobra.Command, args []string) error {
	source, filename, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, cfgErr := config.LoadDefault(".")
	if cfgErr != nil {
		return fmt.Errorf("failed to load %s: %w", config.DefaultFileName, cfgErr)
	}

	target := compileTarget
	if target == "" {
		target = cfg.Target
	}
	if target == "" {
		target = string(pipeline.TargetEVM)
	}

	result := pipeline.Compile(filename, source, pipeline.Target(target))
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Format(true))
	}
	if result.Code == "" {
		return fmt.Errorf("compilation failed with %d diagnostic(s)", len(result.Diagnostics))
	}

	if cfg.WarningsAsErrors {
		for _, d := range result.Diagnostics {
			if d.Severity == diagnostics.SeverityWarning {
				return fmt.Errorf("failing due to quorlin.yaml's warnings_as_errors")
			}
		}
	}

	if compileEmitLayout && result.StorageReport != "" {
		fmt.Fprintln(os.Stderr, result.StorageReport)
	}

	if compileEmitIR && result.AST != nil {
		doc, err := astjson.Marshal(result.AST)
		if err == nil {
			doc, err = astjson.AnnotateStorageLayout(doc, result.Storage)
		}
		events := make(map[string]*ast.EventDecl)
		for _, item := range result.AST.Items {
			if c, ok := item.(*ast.ContractDecl); ok {
				for _, m := range c.Members {
					if ev, ok := m.(*ast.EventDecl); ok {
						events[ev.Name] = ev
					}
				}
			}
		}
		if err == nil {
			doc, err = astjson.AnnotateEventSignatures(doc, astjson.EventSignatures(events))
		}
		if err == nil {
			fmt.Fprintln(os.Stderr, doc)
		}
	}

	if compileOutputFile != "" {
		out := compileOutputFile
		if out == "" {
			ext := filepath.Ext(filename)
			out = strings.TrimSuffix(filename, ext) + ".yul"
		}
		if err := os.WriteFile(out, []byte(result.Code), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", out, err)
		}
		fmt.Printf("Compiled %s -> %s\n", filename, out)
		return nil
	}

	fmt.Println(result.Code)
	return nil
}
