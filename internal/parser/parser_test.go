package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/lexer"
)

func parseSource(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Lex(source)
	require.NoError(t, err)
	prog, err := Parse(tokens)
	require.NoError(t, err)
	return prog
}

func TestParse_FunctionWithReturn(t *testing.T) {
	prog := parseSource(t, "fn add(a: int, b: int) -> int:\n    return a + b\n")
	funcs := prog.Functions()
	require.Len(t, funcs, 1)
	fn := funcs[0]
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	require.NotNil(t, fn.RetType)
	assert.Equal(t, "int", fn.RetType.Name)

	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParse_IfElifElse(t *testing.T) {
	source := "if a:\n    let x = 1\nelif b:\n    let x = 2\nelse:\n    let x = 3\n"
	prog := parseSource(t, source)
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, stmt.Elifs, 1)
	require.NotNil(t, stmt.Else)
}

func TestParse_ForAndWhile(t *testing.T) {
	source := "for i in 0..10:\n    while i < 5:\n        break\n"
	prog := parseSource(t, source)
	forStmt, ok := prog.Statements[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Var)
	_, isRange := forStmt.Iterable.(*ast.RangeExpr)
	assert.True(t, isRange)

	whileStmt, ok := forStmt.Body.Statements[0].(*ast.WhileStmt)
	require.True(t, ok)
	require.Len(t, whileStmt.Body.Statements, 1)
	_, isBreak := whileStmt.Body.Statements[0].(*ast.BreakStmt)
	assert.True(t, isBreak)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog := parseSource(t, "let x = 1 + 2 * 3\n")
	letStmt := prog.Statements[0].(*ast.LetStmt)
	bin := letStmt.Expr.(*ast.BinaryExpr)
	assert.Equal(t, ast.OpAdd, bin.Op)
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpMul, rhs.Op)
}

func TestParse_CallAndMemberChain(t *testing.T) {
	prog := parseSource(t, "result = obj.field.method(1, 2)\n")
	assign := prog.Statements[0].(*ast.AssignmentStmt)
	call, ok := assign.Expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	member, ok := call.Callee.(*ast.MemberExpr)
	require.True(t, ok)
	assert.Equal(t, "method", member.Field)
}

func TestParse_FStringWithEmbeddedExpression(t *testing.T) {
	prog := parseSource(t, `let greeting = f"hello {name}, you are {age}"` + "\n")
	letStmt := prog.Statements[0].(*ast.LetStmt)
	fstr, ok := letStmt.Expr.(*ast.FStringExpr)
	require.True(t, ok)
	require.NotEmpty(t, fstr.Parts)
}

func TestParse_LambdaExpression(t *testing.T) {
	prog := parseSource(t, "let f = lambda x: x + 1\n")
	letStmt := prog.Statements[0].(*ast.LetStmt)
	lambda, ok := letStmt.Expr.(*ast.LambdaExpr)
	require.True(t, ok)
	require.Len(t, lambda.Params, 1)
	require.Len(t, lambda.Body.Statements, 1)
}

func TestParse_StatementCount(t *testing.T) {
	source := "fn f():\n    if a:\n        let x = 1\n    return x\n"
	prog := parseSource(t, source)
	assert.Equal(t, 4, prog.StatementCount())
}

func TestParse_UnexpectedTokenCollectsError(t *testing.T) {
	tokens, err := lexer.Lex("let x = )\n")
	require.NoError(t, err)
	_, perr := Parse(tokens)
	require.Error(t, perr)
}
