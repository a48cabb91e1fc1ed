// Package parser implements the OtterLang recursive-descent, operator
// precedence expression grammar described in spec.md §4.2, grounded on
// original_source/src/parser/grammar.rs's precedence-climbing shape. This
// package replaces the teacher's tree-sitter-backed multi-language extractor
// (see DESIGN.md: tree-sitter is dropped entirely, so its sole consumer goes
// with it) with a single-grammar, single-language parser.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/lexer"
	"github.com/Ottrlang/otterlang/internal/ottererr"
	"github.com/Ottrlang/otterlang/internal/span"
)

// Parser consumes a token stream that always ends with EOF and produces a
// Program, collecting every recoverable diagnostic before returning.
type Parser struct {
	tokens []span.Token
	pos    int
	errors []error
}

// Parse parses tokens into a Program, or returns a non-nil
// *ottererr.MultiError listing every parse diagnostic found.
func Parse(tokens []span.Token) (*ast.Program, error) {
	p := &Parser{tokens: tokens}
	prog := p.parseProgram()
	if len(p.errors) > 0 {
		return nil, ottererr.NewMultiError(ottererr.PhaseParse, p.errors)
	}
	return prog, nil
}

// ParseExpression parses a single expression from tokens, used by the
// f-string brace-group re-parser (spec.md §4.2). It does not require EOF to
// directly follow; trailing tokens are ignored.
func ParseExpression(tokens []span.Token) (ast.Expression, error) {
	p := &Parser{tokens: tokens}
	expr := p.parseExpr()
	if len(p.errors) > 0 {
		return nil, ottererr.NewMultiError(ottererr.PhaseParse, p.errors)
	}
	return expr, nil
}

func (p *Parser) cur() span.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekKind() span.Kind { return p.cur().Kind }

func (p *Parser) advance() span.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k span.Kind) bool { return p.peekKind() == k }

func (p *Parser) match(k span.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(k span.Kind, context string) span.Token {
	if p.check(k) {
		return p.advance()
	}
	tok := p.cur()
	p.errorf(tok, "expected %s %s, found %s", k, context, tok.Kind)
	return tok
}

func (p *Parser) errorf(tok span.Token, format string, args ...any) {
	p.errors = append(p.errors, &ottererr.ParseError{
		Span:    tok.Span,
		Found:   tok.Kind.String(),
		Message: fmt.Sprintf(format, args...),
	})
}

// skipNewlines consumes zero or more NEWLINE tokens (blank statement
// separators at the top level).
func (p *Parser) skipNewlines() {
	for p.match(span.Newline) {
	}
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.check(span.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
	}
	return prog
}

// parseBlock consumes an INDENT, one or more statements, and the matching
// DEDENT (spec.md §4.2: "blocks are bracketed by INDENT/DEDENT").
func (p *Parser) parseBlock() *ast.Block {
	start := p.cur().Span
	p.expect(span.Indent, "to start block")
	p.skipNewlines()
	block := &ast.Block{Span: start}
	for !p.check(span.Dedent) && !p.check(span.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	p.expect(span.Dedent, "to end block")
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peekKind() {
	case span.KwFn:
		return p.parseFunctionStmt()
	case span.KwLet:
		return p.parseLet()
	case span.KwIf:
		return p.parseIf()
	case span.KwWhile:
		return p.parseWhile()
	case span.KwFor:
		return p.parseFor()
	case span.KwBreak:
		tok := p.advance()
		p.consumeStatementEnd()
		return &ast.BreakStmt{Span: tok.Span}
	case span.KwContinue:
		tok := p.advance()
		p.consumeStatementEnd()
		return &ast.ContinueStmt{Span: tok.Span}
	case span.KwReturn:
		return p.parseReturn()
	case span.KwUse:
		return p.parseUse()
	case span.Indent:
		block := p.parseBlock()
		return &ast.BlockStmt{Block: block, Span: block.Span}
	default:
		return p.parseExprOrAssignment()
	}
}

// consumeStatementEnd requires the NEWLINE that terminates a simple
// statement, unless we're already at a DEDENT/EOF (end of block/program).
func (p *Parser) consumeStatementEnd() {
	if p.check(span.Dedent) || p.check(span.EOF) {
		return
	}
	p.expect(span.Newline, "to terminate statement")
}

func (p *Parser) parseFunctionStmt() ast.Statement {
	fn := p.parseFunction()
	return &ast.FuncStmt{Func: fn, Span: fn.Span}
}

func (p *Parser) parseFunction() *ast.Function {
	start := p.advance().Span // 'fn'
	name := p.expect(span.Identifier, "function name").Text
	var params []ast.Param
	if p.match(span.LParen) {
		params = p.parseParamList()
		p.expect(span.RParen, "to close parameter list")
	}
	var ret *ast.TypeRef
	if p.match(span.Arrow) {
		ret = p.parseType()
	}
	p.expect(span.Colon, "after function signature")
	p.expect(span.Newline, "after function signature")
	body := p.parseBlock()
	return &ast.Function{Name: name, Params: params, RetType: ret, Body: body, Span: start}
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.check(span.RParen) {
		return params
	}
	for {
		name := p.expect(span.Identifier, "parameter name").Text
		var ty *ast.TypeRef
		if p.match(span.Colon) {
			ty = p.parseType()
		}
		params = append(params, ast.Param{Name: name, Type: ty})
		if !p.match(span.Comma) {
			break
		}
	}
	return params
}

func (p *Parser) parseType() *ast.TypeRef {
	name := p.expect(span.Identifier, "type name").Text
	ty := &ast.TypeRef{Name: name}
	if p.match(span.Lt) {
		for {
			ty.Args = append(ty.Args, p.parseType())
			if !p.match(span.Comma) {
				break
			}
		}
		p.expect(span.Gt, "to close type arguments")
	}
	return ty
}

func (p *Parser) parseLet() ast.Statement {
	start := p.advance().Span // 'let'
	name := p.expect(span.Identifier, "let-binding name").Text
	p.expect(span.Assign, "in let-binding")
	expr := p.parseExpr()
	p.consumeStatementEnd()
	return &ast.LetStmt{Name: name, Expr: expr, Span: start}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.advance().Span // 'if'
	cond := p.parseExpr()
	p.expect(span.Colon, "after if condition")
	p.expect(span.Newline, "after if condition")
	then := p.parseBlock()
	stmt := &ast.IfStmt{Cond: cond, Then: then, Span: start}
	for p.check(span.KwElif) {
		p.advance()
		elifCond := p.parseExpr()
		p.expect(span.Colon, "after elif condition")
		p.expect(span.Newline, "after elif condition")
		elifBlock := p.parseBlock()
		stmt.Elifs = append(stmt.Elifs, ast.ElifArm{Cond: elifCond, Block: elifBlock})
	}
	if p.check(span.KwElse) {
		p.advance()
		p.expect(span.Colon, "after else")
		p.expect(span.Newline, "after else")
		stmt.Else = p.parseBlock()
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.advance().Span
	cond := p.parseExpr()
	p.expect(span.Colon, "after while condition")
	p.expect(span.Newline, "after while condition")
	body := p.parseBlock()
	return &ast.WhileStmt{Cond: cond, Body: body, Span: start}
}

func (p *Parser) parseFor() ast.Statement {
	start := p.advance().Span
	name := p.expect(span.Identifier, "loop variable").Text
	p.expect(span.KwIn, "in for-loop")
	iterable := p.parseExpr()
	p.expect(span.Colon, "after for-loop iterable")
	p.expect(span.Newline, "after for-loop iterable")
	body := p.parseBlock()
	return &ast.ForStmt{Var: name, Iterable: iterable, Body: body, Span: start}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.advance().Span
	var value ast.Expression
	if !p.check(span.Newline) && !p.check(span.Dedent) && !p.check(span.EOF) {
		value = p.parseExpr()
	}
	p.consumeStatementEnd()
	return &ast.ReturnStmt{Value: value, Span: start}
}

func (p *Parser) parseUse() ast.Statement {
	start := p.advance().Span
	ns := p.expect(span.Identifier, "use namespace").Text
	p.expect(span.Colon, "in use statement")
	name := p.expect(span.Identifier, "use name").Text
	alias := ""
	if p.match(span.KwAs) {
		alias = p.expect(span.Identifier, "use alias").Text
	}
	p.consumeStatementEnd()
	return &ast.UseStmt{Module: ns + ":" + name, Alias: alias, Span: start}
}

// parseExprOrAssignment handles both `identifier = expr` assignment and a
// bare expression-as-statement, disambiguated by one token of lookahead.
func (p *Parser) parseExprOrAssignment() ast.Statement {
	start := p.cur().Span
	if p.check(span.Identifier) && p.tokens[minInt(p.pos+1, len(p.tokens)-1)].Kind == span.Assign {
		name := p.advance().Text
		p.advance() // '='
		expr := p.parseExpr()
		p.consumeStatementEnd()
		return &ast.AssignmentStmt{Name: name, Expr: expr, Span: start}
	}
	expr := p.parseExpr()
	p.consumeStatementEnd()
	return &ast.ExprStmt{Expr: expr, Span: start}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ---- Expression grammar, low to high precedence ----
// logical and/or -> comparison -> range -> additive -> multiplicative ->
// unary -> postfix -> atom.

func (p *Parser) parseExpr() ast.Expression {
	return p.parseLogical()
}

func (p *Parser) parseLogical() ast.Expression {
	left := p.parseComparison()
	for p.check(span.KwAnd) || p.check(span.KwOr) {
		opTok := p.advance()
		op := ast.OpAnd
		if opTok.Kind == span.KwOr {
			op = ast.OpOr
		}
		right := p.parseComparison()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Span: opTok.Span}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseRange()
	for {
		var op ast.BinaryOp
		switch p.peekKind() {
		case span.EqEq:
			op = ast.OpEq
		case span.NotEq:
			op = ast.OpNe
		case span.Lt:
			op = ast.OpLt
		case span.Gt:
			op = ast.OpGt
		case span.LtEq:
			op = ast.OpLtEq
		case span.GtEq:
			op = ast.OpGtEq
		default:
			return left
		}
		opTok := p.advance()
		right := p.parseRange()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Span: opTok.Span}
	}
}

// parseRange is non-associative: it is consumed at exactly one level
// (spec.md §4.2).
func (p *Parser) parseRange() ast.Expression {
	left := p.parseAdditive()
	if p.check(span.DotDot) {
		opTok := p.advance()
		right := p.parseAdditive()
		return &ast.RangeExpr{Start: left, End: right, Span: opTok.Span}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.check(span.Plus) || p.check(span.Minus) {
		opTok := p.advance()
		op := ast.OpAdd
		if opTok.Kind == span.Minus {
			op = ast.OpSub
		}
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Span: opTok.Span}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for p.check(span.Star) || p.check(span.Slash) || p.check(span.Percent) {
		opTok := p.advance()
		var op ast.BinaryOp
		switch opTok.Kind {
		case span.Star:
			op = ast.OpMul
		case span.Slash:
			op = ast.OpDiv
		default:
			op = ast.OpMod
		}
		right := p.parseUnary()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Span: opTok.Span}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.check(span.Minus) || p.check(span.Bang) {
		opTok := p.advance()
		op := ast.OpNeg
		if opTok.Kind == span.Bang {
			op = ast.OpNot
		}
		expr := p.parseUnary()
		return &ast.UnaryExpr{Op: op, Expr: expr, Span: opTok.Span}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseAtom()
	for {
		switch {
		case p.check(span.LParen):
			start := p.advance().Span
			var args []ast.Expression
			if !p.check(span.RParen) {
				for {
					args = append(args, p.parseExpr())
					if !p.match(span.Comma) {
						break
					}
				}
			}
			p.expect(span.RParen, "to close call arguments")
			expr = &ast.CallExpr{Callee: expr, Args: args, Span: start}
		case p.check(span.Dot):
			p.advance()
			field := p.expect(span.Identifier, "member name").Text
			expr = &ast.MemberExpr{Object: expr, Field: field, Span: expr.Pos()}
		default:
			return expr
		}
	}
}

func (p *Parser) parseAtom() ast.Expression {
	tok := p.cur()
	switch tok.Kind {
	case span.Number:
		p.advance()
		val, _ := strconv.ParseFloat(tok.Text, 64)
		return &ast.LiteralExpr{Value: ast.Literal{Kind: ast.LitNumber, Number: val}, Span: tok.Span}
	case span.String:
		p.advance()
		return &ast.LiteralExpr{Value: ast.Literal{Kind: ast.LitString, Str: tok.Text}, Span: tok.Span}
	case span.FString:
		p.advance()
		return parseFString(tok)
	case span.KwTrue:
		p.advance()
		return &ast.LiteralExpr{Value: ast.Literal{Kind: ast.LitBool, Bool: true}, Span: tok.Span}
	case span.KwFalse:
		p.advance()
		return &ast.LiteralExpr{Value: ast.Literal{Kind: ast.LitBool, Bool: false}, Span: tok.Span}
	case span.Identifier:
		p.advance()
		return &ast.IdentifierExpr{Name: tok.Text, Span: tok.Span}
	case span.LParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(span.RParen, "to close parenthesized expression")
		return inner
	case span.KwLambda:
		return p.parseLambda()
	case span.KwAwait:
		p.advance()
		expr := p.parseUnary()
		return &ast.AwaitExpr{Expr: expr, Span: tok.Span}
	case span.KwSpawn:
		p.advance()
		expr := p.parseUnary()
		return &ast.SpawnExpr{Expr: expr, Span: tok.Span}
	default:
		p.errorf(tok, "unexpected token in expression")
		p.advance()
		return &ast.IdentifierExpr{Name: "<error>", Span: tok.Span}
	}
}

func (p *Parser) parseLambda() ast.Expression {
	start := p.advance().Span // 'lambda'
	var params []ast.Param
	if p.match(span.LParen) {
		params = p.parseParamList()
		p.expect(span.RParen, "to close lambda parameter list")
	} else {
		// Bare, untyped parameters: `lambda x, y: ...`.
		for p.check(span.Identifier) {
			params = append(params, ast.Param{Name: p.advance().Text})
			if !p.match(span.Comma) {
				break
			}
		}
	}
	var ret *ast.TypeRef
	if p.match(span.Arrow) {
		ret = p.parseType()
	}
	p.expect(span.Colon, "after lambda signature")
	if p.check(span.Newline) {
		p.advance()
		body := p.parseBlock()
		return &ast.LambdaExpr{Params: params, RetType: ret, Body: body, Span: start}
	}
	// Single-expression lambda body: `lambda x: x + 1`.
	expr := p.parseExpr()
	body := &ast.Block{
		Statements: []ast.Statement{&ast.ReturnStmt{Value: expr, Span: start}},
		Span:       start,
	}
	return &ast.LambdaExpr{Params: params, RetType: ret, Body: body, Span: start}
}

// parseFString scans an f-string's raw body for `{...}` brace pairs,
// unescaping doubled `{{`/`}}`, and re-tokenizes/re-parses each group's
// inner text using the same expression grammar (spec.md §4.2). A group that
// fails to parse is retained as a bare identifier reference so that
// position information survives for later diagnostics.
func parseFString(tok span.Token) *ast.FStringExpr {
	body := tok.Text
	baseOffset := tok.Span.Start + 1 // skip the opening `"` (the token's span starts after the `f`)
	result := &ast.FStringExpr{Span: tok.Span}

	var textBuf strings.Builder
	flushText := func() {
		if textBuf.Len() > 0 {
			result.Parts = append(result.Parts, ast.FStringPart{Text: textBuf.String()})
			textBuf.Reset()
		}
	}

	i := 0
	for i < len(body) {
		switch {
		case i+1 < len(body) && body[i] == '{' && body[i+1] == '{':
			textBuf.WriteByte('{')
			i += 2
		case i+1 < len(body) && body[i] == '}' && body[i+1] == '}':
			textBuf.WriteByte('}')
			i += 2
		case body[i] == '{':
			flushText()
			depth := 1
			start := i + 1
			j := start
			for j < len(body) && depth > 0 {
				if body[j] == '{' {
					depth++
				} else if body[j] == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				j++
			}
			inner := body[start:j]
			expr := parseFStringGroup(inner, baseOffset+start)
			result.Parts = append(result.Parts, ast.FStringPart{Expr: expr})
			i = j + 1
		default:
			textBuf.WriteByte(body[i])
			i++
		}
	}
	flushText()
	return result
}

func parseFStringGroup(inner string, offsetBase int) ast.Expression {
	fallback := func() ast.Expression {
		return &ast.IdentifierExpr{Name: strings.TrimSpace(inner), Span: span.New(offsetBase, offsetBase+len(inner))}
	}
	tokens, err := lexer.Lex(inner)
	if err != nil {
		return fallback()
	}
	expr, err := ParseExpression(tokens)
	if err != nil || expr == nil {
		return fallback()
	}
	return expr
}
