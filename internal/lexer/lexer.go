// Package lexer turns OtterLang source text into a token stream, handling
// the indentation-to-block protocol described in spec.md §4.1. The
// algorithm is grounded on original_source/src/lexer/tokenizer.rs's
// line-by-line indent-stack approach, extended to the fuller keyword table
// and operator set spec.md §4.1/§9 designates canonical.
package lexer

import (
	"strings"

	"github.com/Ottrlang/otterlang/internal/ottererr"
	"github.com/Ottrlang/otterlang/internal/span"
)

// Lexer converts one source string into a token stream in one pass,
// accumulating every diagnostic it finds rather than stopping at the first.
type Lexer struct {
	source      string
	tokens      []span.Token
	indentStack []int
	errors      []error
	offset      int
}

// Lex tokenizes source, returning the token stream on success or a non-nil
// *ottererr.MultiError if any diagnostic was raised. On failure the token
// vector is discarded entirely (spec.md §4.1).
func Lex(source string) ([]span.Token, error) {
	l := &Lexer{
		source:      source,
		indentStack: []int{0},
	}
	l.run()
	if len(l.errors) > 0 {
		return nil, ottererr.NewMultiError(ottererr.PhaseLex, l.errors)
	}
	return l.tokens, nil
}

func (l *Lexer) emit(kind span.Kind, sp span.Span, text string) {
	l.tokens = append(l.tokens, span.NewToken(kind, sp, text))
}

func (l *Lexer) errorf(sp span.Span, msg string) {
	l.errors = append(l.errors, &ottererr.LexError{Span: sp, Message: msg})
}

func (l *Lexer) run() {
	lines := splitInclusive(l.source, '\n')
	offset := 0

	for _, line := range lines {
		hasNewline := strings.HasSuffix(line, "\n")
		body := line
		if hasNewline {
			body = line[:len(line)-1]
		}
		lineOffset := offset

		idx := 0
		indentWidth := 0
	indentLoop:
		for idx < len(body) {
			switch body[idx] {
			case ' ':
				indentWidth++
				idx++
			case '\t':
				sp := span.New(lineOffset+idx, lineOffset+idx+1)
				l.errorf(sp, "tabs are not allowed for indentation")
				idx++
			default:
				break indentLoop
			}
		}

		rest := body[idx:]
		isBlank := strings.TrimSpace(rest) == ""
		isComment := strings.HasPrefix(rest, "#")

		if !isBlank && !isComment {
			l.handleIndentChange(indentWidth, lineOffset)
			l.tokenizeLine(body, idx, lineOffset)
			nlSpan := span.New(lineOffset+len(body), lineOffset+len(body)+1)
			l.emit(span.Newline, nlSpan, "\n")
		}

		offset += len(line)
	}

	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.emit(span.Dedent, span.New(offset, offset), "")
	}
	eofSpan := span.New(offset, offset)
	if len(l.tokens) > 0 {
		eofSpan = l.tokens[len(l.tokens)-1].Span
	}
	l.emit(span.EOF, eofSpan, "")
}

func (l *Lexer) handleIndentChange(width, lineOffset int) {
	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case width > top:
		l.indentStack = append(l.indentStack, width)
		l.emit(span.Indent, span.New(lineOffset+top, lineOffset+width), "")
	case width < top:
		for width < l.indentStack[len(l.indentStack)-1] {
			popped := l.indentStack[len(l.indentStack)-1]
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			l.emit(span.Dedent, span.New(lineOffset+width, lineOffset+popped), "")
		}
		if l.indentStack[len(l.indentStack)-1] != width {
			l.errorf(span.New(lineOffset+width, lineOffset+width+1), "indentation mismatch")
		}
	}
}

func (l *Lexer) tokenizeLine(body string, idx, lineOffset int) {
	for idx < len(body) {
		ch := body[idx]
		start := lineOffset + idx

		switch {
		case ch == ' ' || ch == '\t':
			idx++
		case ch == '#':
			return
		case ch == '"':
			idx = l.lexString(body, idx, lineOffset, false)
		case isIdentStart(ch) && idx+1 < len(body) && ch == 'f' && body[idx+1] == '"':
			idx = l.lexString(body, idx+1, lineOffset, true)
		case isDigit(ch):
			idx = l.lexNumber(body, idx, lineOffset)
		case isIdentStart(ch):
			idx = l.lexIdentifier(body, idx, lineOffset)
		default:
			idx = l.lexOperator(body, idx, lineOffset, start)
		}
	}
}

func (l *Lexer) lexString(body string, idx, lineOffset int, fstring bool) int {
	start := idx
	idx++
	for idx < len(body) && body[idx] != '"' {
		idx++
	}
	if idx >= len(body) {
		sp := span.New(lineOffset+start, lineOffset+len(body))
		l.errorf(sp, "unterminated string literal")
		return len(body)
	}
	value := body[start+1 : idx]
	sp := span.New(lineOffset+start, lineOffset+idx+1)
	if fstring {
		l.emit(span.FString, sp, value)
	} else {
		l.emit(span.String, sp, value)
	}
	return idx + 1
}

func (l *Lexer) lexNumber(body string, idx, lineOffset int) int {
	start := idx
	for idx < len(body) && (isDigit(body[idx]) || body[idx] == '_') {
		idx++
	}
	if idx < len(body) && body[idx] == '.' && idx+1 < len(body) && isDigit(body[idx+1]) {
		idx++
		for idx < len(body) && (isDigit(body[idx]) || body[idx] == '_') {
			idx++
		}
	}
	raw := body[start:idx]
	value := strings.ReplaceAll(raw, "_", "")
	sp := span.New(lineOffset+start, lineOffset+idx)
	l.emit(span.Number, sp, value)
	return idx
}

func (l *Lexer) lexIdentifier(body string, idx, lineOffset int) int {
	start := idx
	for idx < len(body) && isIdentCont(body[idx]) {
		idx++
	}
	text := body[start:idx]
	sp := span.New(lineOffset+start, lineOffset+idx)
	if kw, ok := span.LookupKeyword(text); ok {
		l.emit(kw, sp, text)
	} else {
		l.emit(span.Identifier, sp, text)
	}
	return idx
}

func (l *Lexer) lexOperator(body string, idx, lineOffset, start int) int {
	two := ""
	if idx+1 < len(body) {
		two = body[idx : idx+2]
	}
	emit2 := func(k span.Kind) int {
		l.emit(k, span.New(start, start+2), two)
		return idx + 2
	}
	switch two {
	case "..":
		return emit2(span.DotDot)
	case "->":
		return emit2(span.Arrow)
	case "==":
		return emit2(span.EqEq)
	case "!=":
		return emit2(span.NotEq)
	case "<=":
		return emit2(span.LtEq)
	case ">=":
		return emit2(span.GtEq)
	}

	one := body[idx]
	emit1 := func(k span.Kind) int {
		l.emit(k, span.New(start, start+1), string(one))
		return idx + 1
	}
	switch one {
	case '(':
		return emit1(span.LParen)
	case ')':
		return emit1(span.RParen)
	case '{':
		return emit1(span.LBrace)
	case '}':
		return emit1(span.RBrace)
	case '[':
		return emit1(span.LBracket)
	case ']':
		return emit1(span.RBracket)
	case ',':
		return emit1(span.Comma)
	case ':':
		return emit1(span.Colon)
	case '.':
		return emit1(span.Dot)
	case '+':
		return emit1(span.Plus)
	case '-':
		return emit1(span.Minus)
	case '*':
		return emit1(span.Star)
	case '/':
		return emit1(span.Slash)
	case '%':
		return emit1(span.Percent)
	case '=':
		return emit1(span.Assign)
	case '<':
		return emit1(span.Lt)
	case '>':
		return emit1(span.Gt)
	case '!':
		return emit1(span.Bang)
	default:
		l.errorf(span.New(start, start+1), "unexpected character '"+string(one)+"'")
		return idx + 1
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }

// splitInclusive splits s on sep, keeping the separator attached to each
// chunk (the final chunk has no separator if s does not end with one).
func splitInclusive(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
