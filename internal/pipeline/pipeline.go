// Package pipeline ties the four compiler stages into the two entry
// points the CLI host calls: Compile for a single source file, CompileAll
// for a batch. Each call builds its own lexer/parser/analyzer/codegen
// state, matching spec.md §5's "no shared mutable codegen or analyzer
// state" requirement — grounded on the teacher's cmd/dwscript/cmd/compile.go
// driving lexer->parser->semantic->bytecode in sequence per invocation.
package pipeline

import (
	"sync"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/codegen/evm"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/diagnostics"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/lexer"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/parser"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/semantic"
)

// Target names a code generation back-end. Only TargetEVM is implemented;
// every other value is a recognized-but-unsupported back-end name, per
// spec.md §1's framing of the non-EVM back-ends as structurally similar
// but unspecified.
type Target string

const (
	TargetEVM Target = "evm"
)

// normalizeTarget accepts the documented aliases for TargetEVM.
func normalizeTarget(t Target) Target {
	switch t {
	case "evm", "ethereum":
		return TargetEVM
	default:
		return t
	}
}

// Result is one file's compilation outcome: the lowered code (empty on
// failure), the storage layout report, and any diagnostics gathered along
// the way (security-pass warnings survive a successful compile).
type Result struct {
	File          string
	Code          string
	StorageReport string
	Storage       *evm.StorageLayout
	AST           *ast.Module
	Diagnostics   []diagnostics.Diagnostic
}

// Compile runs source through the lexer, parser, semantic analyzer, and
// the requested codegen back-end, stopping at the first stage that
// fails. The returned Diagnostics always render against source using
// file as the display name.
func Compile(file, source string, target Target) Result {
	res := Result{File: file}

	toks, lexErr := lexer.TokenizeIndented(source)
	if lexErr != nil {
		res.Diagnostics = append(res.Diagnostics, lexErr.Diagnostic(file, source))
		return res
	}

	mod, parseErr := parser.ParseModule(toks)
	if parseErr != nil {
		res.Diagnostics = append(res.Diagnostics, parseErr.Diagnostic(file, source))
		return res
	}
	res.AST = mod

	prog, warnings, semErr := semantic.NewAnalyzer().Analyze(mod)
	for _, w := range warnings {
		res.Diagnostics = append(res.Diagnostics, w.Diagnostic(file, source))
	}
	if semErr != nil {
		res.Diagnostics = append(res.Diagnostics, semErr.Diagnostic(file, source))
		return res
	}

	switch normalizeTarget(target) {
	case TargetEVM:
		out, genErr := evm.Generate(prog)
		if genErr != nil {
			res.Diagnostics = append(res.Diagnostics, diagnostics.Diagnostic{
				Severity: diagnostics.SeverityError,
				Message:  genErr.Error(),
				File:     file,
			})
			return res
		}
		res.Code = out.Yul
		res.StorageReport = out.StorageReport
		res.Storage = out.Storage
	default:
		res.Diagnostics = append(res.Diagnostics, diagnostics.Diagnostic{
			Severity: diagnostics.SeverityError,
			Message:  "unsupported target backend: " + string(target),
			File:     file,
		})
	}
	return res
}

// Input is one file handed to CompileAll: its display name and source
// text.
type Input struct {
	File   string
	Source string
}

// CompileAll compiles every input concurrently, one goroutine per file,
// and returns results in the same order as inputs. A plain sync.WaitGroup
// is enough here: each goroutine only writes to its own slot, so there is
// no shared mutable state to coordinate beyond the wait itself, and
// pulling in golang.org/x/sync/errgroup for that alone isn't worth a new
// dependency nothing else in the pack already reaches for this narrowly.
func CompileAll(inputs []Input, target Target) []Result {
	results := make([]Result, len(inputs))
	var wg sync.WaitGroup
	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in Input) {
			defer wg.Done()
			results[i] = Compile(in.File, in.Source, target)
		}(i, in)
	}
	wg.Wait()
	return results
}
