package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/ffi"
	"github.com/Ottrlang/otterlang/internal/lexer"
	"github.com/Ottrlang/otterlang/internal/parser"
	"github.com/Ottrlang/otterlang/internal/registry"
)

func compileSource(t *testing.T, reg *registry.Registry, source string) string {
	t.Helper()
	tokens, err := lexer.Lex(source)
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)

	c := NewCompiler(reg)
	out, err := c.Compile(prog)
	require.NoError(t, err)
	return out
}

func TestCompile_HelloRequiresMain(t *testing.T) {
	_, err := NewCompiler(registry.New()).Compile(&ast.Program{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "main")
}

func TestCompile_HelloPrintsViaRegistry(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(ffi.Function{
		ExportName:   "print",
		LinkerSymbol: "otter_std_io_print",
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit},
	}))

	out := compileSource(t, reg, "fn main():\n    print(\"Hello\")\n")
	assert.Contains(t, out, "ot_main")
	assert.Contains(t, out, "otter_std_io_print(")
	assert.Contains(t, out, "\"Hello\"")
	assert.Contains(t, out, "int main(void) {")
}

func TestCompile_BarePrintResolvesToStdIoPrint(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(ffi.Function{
		ExportName:   "std.io.print",
		LinkerSymbol: "otter_std_io_print",
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit},
	}))

	out := compileSource(t, reg, "fn main():\n    print(\"Hello\")\n")
	assert.Contains(t, out, "otter_std_io_print(")
}

func TestCompile_UnknownFunctionSuggestsClosestName(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(ffi.Function{
		ExportName:   "println",
		LinkerSymbol: "otter_std_io_println",
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit},
	}))

	_, err := NewCompiler(reg).Compile(mustParse(t, "fn main():\n    printl(\"hi\")\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown function")
	assert.Contains(t, err.Error(), "println")
}

func TestCompile_RangeForLoopUsesIteratorProtocol(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(ffi.Function{
		ExportName:   "print",
		LinkerSymbol: "otter_std_io_print",
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.I64}, Result: ffi.Unit},
	}))

	out := compileSource(t, reg, "fn main():\n    for i in 0..3:\n        print(i)\n")
	assert.Contains(t, out, "__otter_range_i64(")
	assert.Contains(t, out, "__otter_iter_list(")
	assert.Contains(t, out, "__otter_iter_has_next_list(")
	assert.Contains(t, out, "__otter_iter_next_list(")
	assert.Contains(t, out, "__otter_iter_free_list(")
}

func TestCompile_ArithmeticPromotesToF64(t *testing.T) {
	out := compileSource(t, registry.New(), "fn main():\n    let x = 1 + 2.5\n    return\n")
	assert.Contains(t, out, "double")
}

func TestCompile_ArgumentCountMismatchIsSemanticError(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(ffi.Function{
		ExportName:   "print",
		LinkerSymbol: "otter_std_io_print",
		Signature:    ffi.Signature{Params: []ffi.Type{ffi.Str}, Result: ffi.Unit},
	}))

	_, err := NewCompiler(reg).Compile(mustParse(t, "fn main():\n    print(\"a\", \"b\")\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expects 1 argument")
}

func TestCompile_BreakOutsideLoopIsSemanticError(t *testing.T) {
	_, err := NewCompiler(registry.New()).Compile(mustParse(t, "fn main():\n    break\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "break")
}

func TestCompile_IfElifElseEmitsChain(t *testing.T) {
	out := compileSource(t, registry.New(), "fn main():\n    let x = 1\n    if x == 1:\n        return\n    elif x == 2:\n        return\n    else:\n        return\n")
	assert.Contains(t, out, "if (")
	assert.Contains(t, out, "} else if (")
	assert.Contains(t, out, "} else {")
}

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.Lex(source)
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)
	return prog
}
