package driver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/lexer"
	"github.com/Ottrlang/otterlang/internal/parser"
)

func TestDumpTokens_IncludesIndentAndDedent(t *testing.T) {
	tokens, err := lexer.Lex("fn main():\n    print(\"Hello\")\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpTokens(&buf, tokens)

	out := buf.String()
	assert.Contains(t, out, "INDENT")
	assert.Contains(t, out, "DEDENT")
	assert.Contains(t, out, `"Hello"`)
}

func TestDumpAST_RendersFunctionAndNestedStatements(t *testing.T) {
	tokens, err := lexer.Lex("fn main():\n    if true:\n        print(\"x\")\n")
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpAST(&buf, program)

	out := buf.String()
	assert.Contains(t, out, "function main")
	assert.Contains(t, out, "if")
}
