package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/span"
)

func kinds(tokens []span.Token) []span.Kind {
	out := make([]span.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLex_SimpleFunction(t *testing.T) {
	source := "fn add(a: int, b: int) -> int:\n    return a + b\n"
	tokens, err := Lex(source)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, span.EOF, tokens[len(tokens)-1].Kind)

	assert.Contains(t, kinds(tokens), span.Indent)
	assert.Contains(t, kinds(tokens), span.Dedent)
	assert.Contains(t, kinds(tokens), span.KwReturn)
}

func TestLex_BlankLinesAndComments(t *testing.T) {
	source := "let x = 1\n\n# a comment\nlet y = 2\n"
	tokens, err := Lex(source)
	require.NoError(t, err)

	count := 0
	for _, k := range kinds(tokens) {
		if k == span.KwLet {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestLex_TabIndentIsError(t *testing.T) {
	source := "if true:\n\treturn 1\n"
	_, err := Lex(source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lex")
}

func TestLex_IndentationMismatch(t *testing.T) {
	source := "if true:\n    let x = 1\n  let y = 2\n"
	_, err := Lex(source)
	require.Error(t, err)
}

func TestLex_Numbers(t *testing.T) {
	source := "let x = 1_000_000\nlet y = 3.14\n"
	tokens, err := Lex(source)
	require.NoError(t, err)

	var nums []string
	for _, tok := range tokens {
		if tok.Kind == span.Number {
			nums = append(nums, tok.Text)
		}
	}
	assert.Equal(t, []string{"1000000", "3.14"}, nums)
}

func TestLex_TwoCharOperators(t *testing.T) {
	source := "let r = a..b\nif a == b and a != c:\n    return a <= b\n"
	tokens, err := Lex(source)
	require.NoError(t, err)

	ks := kinds(tokens)
	assert.Contains(t, ks, span.DotDot)
	assert.Contains(t, ks, span.EqEq)
	assert.Contains(t, ks, span.NotEq)
	assert.Contains(t, ks, span.LtEq)
}

func TestLex_FString(t *testing.T) {
	source := `let greeting = f"hello {name}"` + "\n"
	tokens, err := Lex(source)
	require.NoError(t, err)

	found := false
	for _, tok := range tokens {
		if tok.Kind == span.FString {
			found = true
			assert.Equal(t, "hello {name}", tok.Text)
		}
	}
	assert.True(t, found)
}

func TestLex_UnterminatedString(t *testing.T) {
	source := `let x = "abc` + "\n"
	_, err := Lex(source)
	require.Error(t, err)
}
