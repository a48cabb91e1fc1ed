package codegen

import "github.com/Ottrlang/otterlang/internal/ast"

// latticeOfTypeRef maps a surface type annotation onto the code-generation
// lattice. An absent annotation (nil) defaults to Unit for return positions
// and Opaque for parameter positions, mirroring the original's "untyped
// parameters are treated as opaque handles" fallback.
func latticeOfTypeRef(t *ast.TypeRef, fallback Lattice) Lattice {
	if t == nil {
		return fallback
	}
	switch t.Name {
	case "unit", "void":
		return LUnit
	case "bool":
		return LBool
	case "i32", "int32":
		return LI32
	case "i64", "int64", "int":
		return LI64
	case "f64", "float64", "float", "double":
		return LF64
	case "str", "string":
		return LStr
	case "list":
		return LList
	case "map":
		return LMap
	case "tuple":
		return LTuple
	default:
		return LStruct
	}
}
