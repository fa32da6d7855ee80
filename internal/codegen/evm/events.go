package evm

import (
	"fmt"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// logOpcodeFor returns the Yul logN opcode name for a total topic count
// (topic0 plus indexed parameters), per EVM's log0..log4 family.
func logOpcodeFor(topicCount int) (string, *CodegenError) {
	if topicCount > 4 {
		return "", unsupportedf("event with more than 3 indexed parameters (EVM allows at most 4 log topics)")
	}
	return fmt.Sprintf("log%d", topicCount), nil
}

// lowerEmit lowers `emit EventName(args...)` to a LOG instruction: indexed
// parameters become topics, non-indexed parameters are ABI-encoded
// word-by-word into scratch memory starting at offset 0 and referenced as
// the log's data region. This binds real topic variables ahead of the
// logN call, improving on
// original_source/crates/quorlin-codegen-evm/src/yul_generator.rs's
// helpers::log_event, whose placeholder topic1/topic2/topic3 identifiers
// are never actually assigned anywhere in that file.
func (fg *funcGen) lowerEmit(s *ast.EmitStmt) *CodegenError {
	decl, ok := fg.cg.info.Events[s.Event]
	if !ok {
		return errorf("unknown event %q", s.Event)
	}
	if len(s.Args) != len(decl.Params) {
		return errorf("event %q expects %d argument(s), got %d", s.Event, len(decl.Params), len(s.Args))
	}

	paramTypes := make([]ast.Type, len(decl.Params))
	for i, p := range decl.Params {
		paramTypes[i] = p.VarType
	}
	topic0 := eventTopic0(s.Event, paramTypes)

	topics := []string{topic0}
	var dataArgs []string
	var pre []string
	for i, p := range decl.Params {
		text, argPre, err := fg.lowerExpr(s.Args[i])
		if err != nil {
			return err
		}
		pre = append(pre, argPre...)
		if p.Indexed {
			tmp := fg.cg.tempVar("topic")
			pre = append(pre, fmt.Sprintf("let %s := %s", tmp, text))
			topics = append(topics, tmp)
		} else {
			dataArgs = append(dataArgs, text)
		}
	}

	opcode, err := logOpcodeFor(len(topics))
	if err != nil {
		return err
	}

	fg.emitLines(pre)
	for i, arg := range dataArgs {
		fg.b.Linef("mstore(%d, %s)", i*32, arg)
	}
	call := opcode + "(0, " + fmt.Sprintf("%d", len(dataArgs)*32)
	for _, t := range topics {
		call += ", " + t
	}
	call += ")"
	fg.b.Line(call)
	return nil
}

// lowerRaise lowers `raise ErrorName(args...)` to a revert carrying the
// custom error's 4-byte selector (shifted into the top bytes of the first
// memory word, matching Solidity's custom-error ABI) followed by its
// ABI-encoded arguments.
func (fg *funcGen) lowerRaise(s *ast.RaiseStmt) *CodegenError {
	decl, ok := fg.cg.info.Errors[s.Error]
	if !ok {
		return errorf("unknown error %q", s.Error)
	}
	if len(s.Args) != len(decl.Params) {
		return errorf("error %q expects %d argument(s), got %d", s.Error, len(decl.Params), len(s.Args))
	}

	paramTypes := make([]ast.Type, len(decl.Params))
	for i, p := range decl.Params {
		paramTypes[i] = p.VarType
	}
	selector := errorSelector(s.Error, paramTypes)

	var pre []string
	argTexts := make([]string, len(s.Args))
	for i, a := range s.Args {
		text, argPre, err := fg.lowerExpr(a)
		if err != nil {
			return err
		}
		pre = append(pre, argPre...)
		argTexts[i] = text
	}

	fg.emitLines(pre)
	fg.b.Linef("mstore(0, shl(224, 0x%08x))", selector)
	for i, arg := range argTexts {
		fg.b.Linef("mstore(%d, %s)", 4+i*32, arg)
	}
	fg.b.Linef("revert(0, %d)", 4+len(argTexts)*32)
	return nil
}
