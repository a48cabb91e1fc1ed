package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_Synonyms(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"unit", Unit},
		{"void", Unit},
		{"bool", Bool},
		{"i32", I32},
		{"int32", I32},
		{"i64", I64},
		{"int64", I64},
		{"f64", F64},
		{"float64", F64},
		{"double", F64},
		{"str", Str},
		{"string", Str},
		{"opaque", Opaque},
		{"handle", Opaque},
		{"I32", I32},
	}
	for _, tc := range tests {
		got, err := ParseType(tc.ident)
		require.NoError(t, err, tc.ident)
		assert.Equal(t, tc.want, got, tc.ident)
	}
}

func TestParseType_Unknown(t *testing.T) {
	_, err := ParseType("widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget")
}

func TestDefaultSymbol(t *testing.T) {
	assert.Equal(t, "otter_reqwest_get", DefaultSymbol("reqwest", "reqwest:get"))
	assert.Equal(t, "otter_reqwest_post", DefaultSymbol("reqwest", "reqwest.post"))
	assert.Equal(t, "otter_mycrate_helper", DefaultSymbol("mycrate", "helper"))
}

func TestSignature_String(t *testing.T) {
	sig := Signature{Params: []Type{Str, I64}, Result: Bool}
	assert.Equal(t, "(str, i64) -> bool", sig.String())
}
