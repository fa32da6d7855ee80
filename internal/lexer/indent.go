package lexer

// ProcessIndentation consumes the raw token stream (as produced by
// Tokenize, which already suppresses Newline inside bracket nesting) and
// returns a new stream with synthetic Indent and Dedent tokens inserted,
// grounded directly on
// original_source/crates/quorlin-lexer/src/indent.rs's IndentProcessor: a
// monotonic stack of indent widths starting at [0], an at-line-start flag,
// and width comparisons against the stack top at the first token of every
// logical line.
func ProcessIndentation(tokens []Token) ([]Token, Error) {
	stack := []int{0}
	atLineStart := true
	out := make([]Token, 0, len(tokens)+8)

	for _, t := range tokens {
		if t.Type == EOF {
			out = append(out, dedentAll(&stack, t)...)
			out = append(out, t)
			break
		}

		if t.Type == NEWLINE {
			if atLineStart {
				// Blank line: no content preceded it, so it carries no
				// indentation information and is dropped.
				continue
			}
			out = append(out, t)
			atLineStart = true
			continue
		}

		if atLineStart {
			width := t.Span.Column - 1
			top := stack[len(stack)-1]

			switch {
			case width > top:
				stack = append(stack, width)
				out = append(out, Token{Type: INDENT, Span: t.Span})
			case width < top:
				for len(stack) > 1 && stack[len(stack)-1] > width {
					stack = stack[:len(stack)-1]
					out = append(out, Token{Type: DEDENT, Span: t.Span})
				}
				if stack[len(stack)-1] != width {
					return nil, &IndentationError{
						Span:    t.Span,
						Message: "unindent does not match any outer indentation level",
					}
				}
			}
			atLineStart = false
		}

		out = append(out, t)
	}

	return out, nil
}

func dedentAll(stack *[]int, at Token) []Token {
	var out []Token
	for len(*stack) > 1 {
		*stack = (*stack)[:len(*stack)-1]
		out = append(out, Token{Type: DEDENT, Span: at.Span})
	}
	return out
}

// TokenizeIndented runs the raw lexer and the indentation processor in
// sequence, the entry point the parser uses.
func TokenizeIndented(source string, opts ...Option) ([]Token, Error) {
	raw, err := Tokenize(source, opts...)
	if err != nil {
		return nil, err
	}
	return ProcessIndentation(raw)
}
