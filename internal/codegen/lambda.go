package codegen

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/ast"
)

// lowerLambda hoists a lambda expression's body into its own top-level C
// function (the same way lowerFunctionTree hoists a nested fn statement) and
// yields the function's name, which decays to a function pointer value
// wherever it's used (spec.md §4.2 lambdas are compiled, not interpreted
// closures — there is no captured environment to allocate).
func (l *lowerer) lowerLambda(v *ast.LambdaExpr) (string, Lattice, error) {
	name := fmt.Sprintf("lambda_%d", l.c.nextLambda)
	l.c.nextLambda++

	fn := &ast.Function{
		Name:    name,
		Params:  v.Params,
		RetType: v.RetType,
		Body:    v.Body,
		Span:    v.Span,
	}
	l.c.functions[name] = fn
	l.c.bareNames[name] = name

	if err := l.c.lowerFunctionTree(fn, ""); err != nil {
		return "", LUnit, err
	}
	return cName(name), LOpaque, nil
}
