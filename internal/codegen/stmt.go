package codegen

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/ottererr"
)

func (l *lowerer) lowerBlock(b *ast.Block) error {
	if b == nil {
		return nil
	}
	for _, stmt := range b.Statements {
		if err := l.lowerStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (l *lowerer) lowerStmt(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		return l.lowerLet(s)
	case *ast.AssignmentStmt:
		return l.lowerAssignment(s)
	case *ast.IfStmt:
		return l.lowerIf(s)
	case *ast.WhileStmt:
		return l.lowerWhile(s)
	case *ast.ForStmt:
		return l.lowerFor(s)
	case *ast.BreakStmt:
		if !l.scope.inLoop() {
			return &ottererr.SemanticError{Span: s.Span, Message: "break outside of a loop"}
		}
		l.line("break;")
		return nil
	case *ast.ContinueStmt:
		if !l.scope.inLoop() {
			return &ottererr.SemanticError{Span: s.Span, Message: "continue outside of a loop"}
		}
		l.line("continue;")
		return nil
	case *ast.ReturnStmt:
		if s.Value == nil {
			l.line("return;")
			return nil
		}
		expr, _, err := l.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		l.line("return %s;", expr)
		return nil
	case *ast.ExprStmt:
		expr, _, err := l.lowerExpr(s.Expr)
		if err != nil {
			return err
		}
		l.line("(void)(%s);", expr)
		return nil
	case *ast.UseStmt:
		// Single-file compilation unit (spec.md §1 Non-goals): import
		// resolution happens at the driver level before codegen runs.
		return nil
	case *ast.FuncStmt:
		// Collected and lowered separately by lowerFunctionTree's nested-fn
		// pass; nothing to emit at the call site.
		return nil
	case *ast.BlockStmt:
		l.line("{")
		l.depth++
		if err := l.lowerBlock(s.Block); err != nil {
			return err
		}
		l.depth--
		l.line("}")
		return nil
	default:
		return &ottererr.SemanticError{Span: stmt.Pos(), Message: fmt.Sprintf("unsupported statement %T", stmt)}
	}
}

func (l *lowerer) lowerLet(s *ast.LetStmt) error {
	expr, lat, err := l.lowerExpr(s.Expr)
	if err != nil {
		return err
	}
	l.scope.declare(s.Name, lat)
	l.line("%s %s = %s;", lat.CType(), cName(s.Name), expr)
	return nil
}

func (l *lowerer) lowerAssignment(s *ast.AssignmentStmt) error {
	if _, ok := l.scope.lookup(s.Name); !ok {
		return &ottererr.SemanticError{Span: s.Span, Message: fmt.Sprintf("assignment to undeclared variable %q", s.Name)}
	}
	expr, _, err := l.lowerExpr(s.Expr)
	if err != nil {
		return err
	}
	l.line("%s = %s;", cName(s.Name), expr)
	return nil
}

// lowerIf emits a native C if/else-if/else chain. This mirrors spec.md
// §4.5's then/else/merge block wiring for a straight-line target; C's own
// structured control flow already encodes the same then/else/merge join
// points, so no explicit basic-block labels are needed the way an LLVM
// lowering needs them.
func (l *lowerer) lowerIf(s *ast.IfStmt) error {
	cond, _, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	l.line("if (%s) {", cond)
	l.depth++
	if err := l.lowerBlock(s.Then); err != nil {
		return err
	}
	l.depth--

	for _, arm := range s.Elifs {
		elifCond, _, err := l.lowerExpr(arm.Cond)
		if err != nil {
			return err
		}
		l.line("} else if (%s) {", elifCond)
		l.depth++
		if err := l.lowerBlock(arm.Block); err != nil {
			return err
		}
		l.depth--
	}

	if s.Else != nil {
		l.line("} else {")
		l.depth++
		if err := l.lowerBlock(s.Else); err != nil {
			return err
		}
		l.depth--
	}
	l.line("}")
	return nil
}

// lowerWhile emits a native C while loop; break/continue target it directly
// (spec.md §4.5's cond/body/exit blocks collapse onto C's own loop
// constructs).
func (l *lowerer) lowerWhile(s *ast.WhileStmt) error {
	cond, _, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	l.line("while (%s) {", cond)
	l.depth++
	l.scope.pushLoop()
	if err := l.lowerBlock(s.Body); err != nil {
		return err
	}
	l.scope.popLoop()
	l.depth--
	l.line("}")
	return nil
}
