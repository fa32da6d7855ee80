package evm

import (
	"fmt"
	"strings"
)

// YulBuilder is an indentation-tracking string builder for emitting Yul
// source, grounded on
// original_source/crates/quorlin-codegen-evm/src/yul_generator.rs's
// YulBuilder.
type YulBuilder struct {
	code        strings.Builder
	indentLevel int
	indentSize  int
}

// NewYulBuilder creates a builder using two-space indentation, matching
// the original's default.
func NewYulBuilder() *YulBuilder {
	return &YulBuilder{indentSize: 2}
}

// Line appends text at the current indentation, followed by a newline.
func (b *YulBuilder) Line(text string) {
	b.writeIndent()
	b.code.WriteString(text)
	b.code.WriteByte('\n')
}

// Linef is Line with fmt.Sprintf formatting.
func (b *YulBuilder) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// Comment appends a `//`-prefixed comment line.
func (b *YulBuilder) Comment(text string) {
	b.Line("// " + text)
}

func (b *YulBuilder) writeIndent() {
	b.code.WriteString(strings.Repeat(" ", b.indentLevel*b.indentSize))
}

// IndentMore increases the current indentation level by one step.
func (b *YulBuilder) IndentMore() { b.indentLevel++ }

// IndentLess decreases the current indentation level by one step, with a
// floor of zero.
func (b *YulBuilder) IndentLess() {
	if b.indentLevel > 0 {
		b.indentLevel--
	}
}

// OpenBlock writes `header {` and increases indentation.
func (b *YulBuilder) OpenBlock(header string) {
	b.Line(header + " {")
	b.IndentMore()
}

// CloseBlock decreases indentation and writes a closing brace.
func (b *YulBuilder) CloseBlock() {
	b.IndentLess()
	b.Line("}")
}

// String returns the accumulated Yul source.
func (b *YulBuilder) String() string {
	return b.code.String()
}
