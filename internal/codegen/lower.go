package codegen

import (
	"fmt"
	"strings"

	"github.com/Ottrlang/otterlang/internal/ast"
)

// lowerer accumulates one function's generated C body.
type lowerer struct {
	c     *Compiler
	scope *funcScope
	buf   strings.Builder
	depth int
}

func (l *lowerer) line(format string, args ...any) {
	l.buf.WriteString(strings.Repeat("    ", l.depth))
	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteString("\n")
}

// lowerFunctionTree lowers fn (and, recursively, every fn statement nested
// directly in its body) to C function definitions appended to c.bodies, and
// its signature to c.forwards.
func (c *Compiler) lowerFunctionTree(fn *ast.Function, prefix string) error {
	qualified := mangledName(prefix, fn.Name)
	retType := latticeOfTypeRef(fn.RetType, LUnit)

	scope := newFuncScope(retType)
	params := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		lat := latticeOfTypeRef(p.Type, LOpaque)
		scope.declare(p.Name, lat)
		params = append(params, fmt.Sprintf("%s %s", lat.CType(), cName(p.Name)))
	}
	paramList := strings.Join(params, ", ")
	if paramList == "" {
		paramList = "void"
	}

	signature := fmt.Sprintf("%s %s(%s)", retType.CType(), cName(qualified), paramList)
	c.forwards.WriteString(signature + ";\n")

	l := &lowerer{c: c, scope: scope, depth: 1}
	if err := l.lowerBlock(fn.Body); err != nil {
		return err
	}

	c.bodies.WriteString(signature + " {\n")
	c.bodies.WriteString(l.buf.String())
	if retType == LUnit {
		c.bodies.WriteString("    return;\n")
	} else {
		c.bodies.WriteString(fmt.Sprintf("    return (%s)0;\n", retType.CType()))
	}
	c.bodies.WriteString("}\n\n")

	for _, nested := range nestedFunctions(fn.Body) {
		if err := c.lowerFunctionTree(nested, qualified); err != nil {
			return err
		}
	}
	return nil
}
