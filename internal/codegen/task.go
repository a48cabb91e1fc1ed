package codegen

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/ottererr"
)

// lowerSpawn lowers `spawn f()` to a runtime task-spawn call targeting a
// zero-argument user function. Argument-carrying spawns would need a
// captured-context struct the compiler doesn't build yet, so they are a
// semantic error rather than silently dropping the arguments.
func (l *lowerer) lowerSpawn(v *ast.SpawnExpr) (string, Lattice, error) {
	call, ok := v.Expr.(*ast.CallExpr)
	if !ok {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "spawn requires a function call"}
	}
	name, ok := flattenCallee(call.Callee)
	if !ok {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "spawn target must be a plain function name"}
	}
	qualified, ok := l.c.bareNames[name]
	if !ok {
		return "", LUnit, l.unknownCallError(call, name)
	}
	if len(call.Args) != 0 {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "spawn of a function with arguments is not supported"}
	}

	l.c.declareRuntimeExtern("__otter_task_spawn", []string{"OtterTaskFn"}, LI64)
	return fmt.Sprintf("__otter_task_spawn((OtterTaskFn)&%s)", cName(qualified)), LI64, nil
}

// lowerAwait lowers `await h` to a runtime task-join call whose result is
// decoded as an i64. The runtime's __otter_task_join blocks until the task
// finishes and then returns 0: the spawned function's return value is not
// carried back, so `await h` always evaluates to 0.
func (l *lowerer) lowerAwait(v *ast.AwaitExpr) (string, Lattice, error) {
	handle, _, err := l.lowerExpr(v.Expr)
	if err != nil {
		return "", LUnit, err
	}
	l.c.declareRuntimeExtern("__otter_task_join", []string{"int64_t"}, LI64)
	l.c.declareRuntimeExtern("__otter_decode_value_as_i64", []string{"int64_t"}, LI64)
	return fmt.Sprintf("__otter_decode_value_as_i64(__otter_task_join((int64_t)(%s)))", handle), LI64, nil
}
