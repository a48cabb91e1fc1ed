package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/ffi"
)

func sampleFn(export string) ffi.Function {
	return ffi.Function{
		ExportName:   export,
		LinkerSymbol: ffi.DefaultSymbol("reqwest", export),
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Str},
	}
}

func TestRegister_IdempotentUpsert(t *testing.T) {
	r := New()
	fn := sampleFn("reqwest:get")
	require.NoError(t, r.Register(fn))
	require.NoError(t, r.Register(fn))

	got, ok := r.Resolve("reqwest:get")
	require.True(t, ok)
	assert.Equal(t, fn, got)
}

func TestRegister_ConflictingSignatureErrors(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(sampleFn("reqwest:get")))

	conflicting := sampleFn("reqwest:get")
	conflicting.Signature.Result = ffi.I64
	err := r.Register(conflicting)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting registration")
}

func TestContains_And_Names(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(sampleFn("b:fn")))
	require.NoError(t, r.Register(sampleFn("a:fn")))

	assert.True(t, r.Contains("a:fn"))
	assert.False(t, r.Contains("c:fn"))
	assert.Equal(t, []string{"a:fn", "b:fn"}, r.Names())
}

func TestBootstrap_RunsEveryProvider(t *testing.T) {
	r := New()
	var calls int
	MustRegisterProvider(func(reg *Registry) error {
		calls++
		return reg.Register(sampleFn("bootstrap:probe"))
	})

	require.NoError(t, Bootstrap(r))
	require.NoError(t, Bootstrap(r))
	assert.GreaterOrEqual(t, calls, 2)
	assert.True(t, r.Contains("bootstrap:probe"))
}
