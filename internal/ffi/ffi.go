// Package ffi defines the closed foreign-function type lattice and the
// signature/function descriptors exchanged between a compiled FFI manifest
// and the symbol registry, grounded on
// original_source/crates/otterc_ffi/src/metadata.rs's TypeSpec/FunctionSpec.
package ffi

import (
	"fmt"
	"strings"
)

// Type is the closed set of types a foreign function's parameters and
// result may use (spec.md §4.3).
type Type int

const (
	Unit Type = iota
	Bool
	I32
	I64
	F64
	Str
	Opaque
)

var typeNames = map[Type]string{
	Unit:   "unit",
	Bool:   "bool",
	I32:    "i32",
	I64:    "i64",
	F64:    "f64",
	Str:    "str",
	Opaque: "opaque",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "invalid"
}

// ParseType maps an FFI manifest's textual type identifier onto the closed
// lattice, accepting the same synonyms as the original bridge metadata
// parser (unit/void, i32/int32, f64/float64/double, str/string,
// opaque/handle).
func ParseType(identifier string) (Type, error) {
	switch strings.ToLower(identifier) {
	case "unit", "void":
		return Unit, nil
	case "bool":
		return Bool, nil
	case "i32", "int32":
		return I32, nil
	case "i64", "int64":
		return I64, nil
	case "f64", "float64", "double":
		return F64, nil
	case "str", "string":
		return Str, nil
	case "opaque", "handle":
		return Opaque, nil
	default:
		return Unit, fmt.Errorf("unsupported FFI type identifier %q (expected unit, bool, i32, i64, f64, str, or opaque)", identifier)
	}
}

// Signature is a foreign function's ordered parameter types and single
// result type.
type Signature struct {
	Params []Type
	Result Type
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), s.Result)
}

// Function is one foreign function bound into the symbol registry: its
// canonical OtterLang export name, the mangled linker symbol the code
// generator emits a call to, and its signature.
type Function struct {
	ExportName   string
	LinkerSymbol string
	Signature    Signature
	Doc          string
}

// DefaultSymbol mangles an export name into the linker symbol convention
// used when a manifest entry doesn't override it explicitly: colons and
// dots become underscores, the owning crate name is prefixed if missing,
// and the whole thing is namespaced under "otter_" (mirrors
// original_source's default_symbol).
func DefaultSymbol(crateName, exportName string) string {
	var b strings.Builder
	for _, ch := range exportName {
		switch ch {
		case ':', '.':
			b.WriteByte('_')
		default:
			b.WriteRune(ch)
		}
	}
	base := b.String()
	prefix := crateName + "_"
	if !strings.HasPrefix(base, prefix) {
		base = prefix + base
	}
	return "otter_" + base
}
