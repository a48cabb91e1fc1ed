// Package codegen lowers an OtterLang AST into portable C source text and
// links it with the system C compiler. Grounded on
// original_source/src/codegen/llvm.rs's per-statement-kind lowering shape,
// retargeted from LLVM IR (inkwell) to C text because no LLVM Go binding
// appears anywhere in the retrieved example pack (SPEC_FULL.md §4.5a).
package codegen

import "github.com/Ottrlang/otterlang/internal/ffi"

// Lattice is the closed set of code-generation types (spec.md §4.5): the
// FFI lattice plus the compound kinds that only exist inside generated code.
type Lattice int

const (
	LUnit Lattice = iota
	LBool
	LI32
	LI64
	LF64
	LStr
	LList
	LMap
	LStruct
	LTuple
	LOpaque
)

func (l Lattice) String() string {
	switch l {
	case LUnit:
		return "unit"
	case LBool:
		return "bool"
	case LI32:
		return "i32"
	case LI64:
		return "i64"
	case LF64:
		return "f64"
	case LStr:
		return "str"
	case LList:
		return "list"
	case LMap:
		return "map"
	case LStruct:
		return "struct"
	case LTuple:
		return "tuple"
	default:
		return "opaque"
	}
}

// CType returns the C type used to represent l in generated code. List, Map,
// Struct, Tuple, and Opaque are all represented as an opaque handle — a
// pointer-sized token into the runtime's handle tables (spec.md §4.7) — the
// same way the original represents non-scalar values behind inkwell pointer
// types rather than inline aggregates.
func (l Lattice) CType() string {
	switch l {
	case LUnit:
		return "void"
	case LBool:
		return "int32_t"
	case LI32:
		return "int32_t"
	case LI64:
		return "int64_t"
	case LF64:
		return "double"
	case LStr:
		return "const char*"
	default:
		return "OtterHandle"
	}
}

// FromFFI maps the FFI lattice (a subset used at call boundaries) onto the
// wider code-generation lattice.
func FromFFI(t ffi.Type) Lattice {
	switch t {
	case ffi.Unit:
		return LUnit
	case ffi.Bool:
		return LBool
	case ffi.I32:
		return LI32
	case ffi.I64:
		return LI64
	case ffi.F64:
		return LF64
	case ffi.Str:
		return LStr
	default:
		return LOpaque
	}
}

// isNumeric reports whether l participates in arithmetic promotion.
func (l Lattice) isNumeric() bool {
	return l == LI32 || l == LI64 || l == LF64
}

// TaggedKind returns the iterator-protocol tag (spec.md §4.5's 64-bit tagged
// value: upper 8 bits select one of these seven kinds) for a lattice type that
// can appear inside a decoded iterator value, or -1 if l never does.
func (l Lattice) TaggedKind() int {
	switch l {
	case LUnit:
		return 0
	case LBool:
		return 1
	case LI64:
		return 2
	case LF64:
		return 3
	case LStr:
		return 4
	case LList:
		return 5
	case LMap:
		return 6
	default:
		return -1
	}
}
