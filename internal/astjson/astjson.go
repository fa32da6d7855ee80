// Package astjson serializes a parsed module to the canonical JSON shape
// internal/ast.Encode defines (spec.md §6.2's wire contract), then layers
// two read/write conveniences on top with github.com/tidwall/gjson and
// github.com/tidwall/sjson: selective path queries for the CLI's
// `--emit-ir` flag, and merging codegen-computed tables (storage layout,
// event signatures) into that JSON without re-declaring the AST schema
// sjson would otherwise need.
package astjson

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
	"github.com/EmekaIwuagwu/quorlin-lang/internal/codegen/evm"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Marshal encodes mod into the canonical AST JSON document.
func Marshal(mod *ast.Module) (string, error) {
	data, err := json.Marshal(ast.Encode(mod))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Query runs a gjson path expression (e.g. "items.0.name") against doc
// and reports whether the path resolved to a value, for the CLI's
// `--emit-ir <path>` selective-dump mode.
func Query(doc, path string) (string, bool) {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}

// AnnotateStorageLayout merges the codegen-computed slot assignments into
// doc under "meta.storageLayout.<name>", one sjson.Set per state
// variable so a caller never has to hand-build the surrounding JSON
// object the AST schema already describes elsewhere in the document.
func AnnotateStorageLayout(doc string, layout *evm.StorageLayout) (string, error) {
	if layout == nil {
		return doc, nil
	}
	entries := layout.Entries()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := doc
	for _, name := range names {
		info := entries[name]
		var err error
		out, err = sjson.Set(out, fmt.Sprintf("meta.storageLayout.%s.slot", name), info.Slot)
		if err != nil {
			return "", err
		}
		out, err = sjson.Set(out, fmt.Sprintf("meta.storageLayout.%s.size", name), info.Size)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// EventSignatures builds the name -> "EventName(type,type,...)" table
// AnnotateEventSignatures expects, using each parameter's declared
// Quorlin type text (not the ABI-normalized form internal/codegen/evm
// computes for selectors) since this is a human-facing `--emit-ir`
// annotation, not a wire-format commitment.
func EventSignatures(events map[string]*ast.EventDecl) map[string]string {
	out := make(map[string]string, len(events))
	for name, decl := range events {
		sig := name + "("
		for i, p := range decl.Params {
			if i > 0 {
				sig += ","
			}
			sig += p.VarType.String()
		}
		sig += ")"
		out[name] = sig
	}
	return out
}

// AnnotateEventSignatures merges a name -> "EventName(type,type,...)"
// table into doc under "meta.eventSignatures", for tooling that wants a
// function-selector-style signature string without re-deriving it from
// the event's param list.
func AnnotateEventSignatures(doc string, signatures map[string]string) (string, error) {
	names := make([]string, 0, len(signatures))
	for name := range signatures {
		names = append(names, name)
	}
	sort.Strings(names)

	out := doc
	for _, name := range names {
		var err error
		out, err = sjson.Set(out, "meta.eventSignatures."+name, signatures[name])
		if err != nil {
			return "", err
		}
	}
	return out, nil
}
