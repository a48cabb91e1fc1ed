package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/ottererr"
)

// lowerExpr lowers e to a C expression snippet plus the lattice type of its
// value.
func (l *lowerer) lowerExpr(e ast.Expression) (string, Lattice, error) {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		return l.lowerLiteral(v)
	case *ast.IdentifierExpr:
		lat, ok := l.scope.lookup(v.Name)
		if !ok {
			return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: fmt.Sprintf("undeclared identifier %q", v.Name)}
		}
		return cName(v.Name), lat, nil
	case *ast.MemberExpr:
		return l.lowerMember(v)
	case *ast.CallExpr:
		return l.lowerCall(v)
	case *ast.BinaryExpr:
		return l.lowerBinary(v)
	case *ast.UnaryExpr:
		return l.lowerUnary(v)
	case *ast.RangeExpr:
		// A range used outside a for-statement builds the same list handle
		// a for-loop would iterate.
		start, startLat, err := l.lowerExpr(v.Start)
		if err != nil {
			return "", LUnit, err
		}
		end, endLat, err := l.lowerExpr(v.End)
		if err != nil {
			return "", LUnit, err
		}
		if startLat == LF64 || endLat == LF64 {
			l.c.declareRuntimeExtern("__otter_range_f64", []string{"double", "double"}, LOpaque)
			return fmt.Sprintf("__otter_range_f64((double)(%s), (double)(%s))", start, end), LList, nil
		}
		l.c.declareRuntimeExtern("__otter_range_i64", []string{"int64_t", "int64_t"}, LOpaque)
		return fmt.Sprintf("__otter_range_i64((int64_t)(%s), (int64_t)(%s))", start, end), LList, nil
	case *ast.FStringExpr:
		return l.lowerFString(v)
	case *ast.LambdaExpr:
		return l.lowerLambda(v)
	case *ast.AwaitExpr:
		return l.lowerAwait(v)
	case *ast.SpawnExpr:
		return l.lowerSpawn(v)
	default:
		return "", LUnit, &ottererr.SemanticError{Span: e.Pos(), Message: fmt.Sprintf("unsupported expression %T", e)}
	}
}

func (l *lowerer) lowerLiteral(v *ast.LiteralExpr) (string, Lattice, error) {
	switch v.Value.Kind {
	case ast.LitString:
		return cStringLiteral(v.Value.Str), LStr, nil
	case ast.LitBool:
		if v.Value.Bool {
			return "1", LBool, nil
		}
		return "0", LBool, nil
	case ast.LitNumber:
		// The AST keeps every numeric literal as a float64, so int-vs-float
		// lattice is inferred here from whether it has a fractional part —
		// the only signal left by the time the parser builds the literal.
		n := v.Value.Number
		if n == math.Trunc(n) {
			return strconv.FormatInt(int64(n), 10), LI64, nil
		}
		return strconv.FormatFloat(n, 'g', -1, 64), LF64, nil
	default:
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "unsupported literal kind"}
	}
}

func cStringLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// lowerMember lowers a.b field access on a struct/opaque handle via the
// runtime's generic field accessor. Struct layout is otherwise opaque to
// the code generator (spec.md leaves struct internals to the runtime).
func (l *lowerer) lowerMember(v *ast.MemberExpr) (string, Lattice, error) {
	obj, objLat, err := l.lowerExpr(v.Object)
	if err != nil {
		return "", LUnit, err
	}
	if objLat != LStruct && objLat != LOpaque {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: fmt.Sprintf("%q has no field %q", obj, v.Field)}
	}
	l.c.declareRuntimeExtern("__otter_struct_get_field", []string{"OtterHandle", "const char*"}, LI64)
	l.c.declareRuntimeExtern("__otter_decode_value_as_handle", []string{"int64_t"}, LOpaque)
	tagged := fmt.Sprintf("__otter_struct_get_field(%s, %s)", obj, cStringLiteral(v.Field))
	return fmt.Sprintf("__otter_decode_value_as_handle(%s)", tagged), LOpaque, nil
}

func (l *lowerer) lowerUnary(v *ast.UnaryExpr) (string, Lattice, error) {
	inner, lat, err := l.lowerExpr(v.Expr)
	if err != nil {
		return "", LUnit, err
	}
	switch v.Op {
	case ast.OpNeg:
		if !lat.isNumeric() {
			return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "unary - requires a numeric operand"}
		}
		return fmt.Sprintf("(-(%s))", inner), lat, nil
	case ast.OpNot:
		return fmt.Sprintf("(!(%s))", inner), LBool, nil
	default:
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "unsupported unary operator"}
	}
}

var binaryOpSymbols = map[ast.BinaryOp]string{
	ast.OpAdd: "+", ast.OpSub: "-", ast.OpMul: "*", ast.OpDiv: "/", ast.OpMod: "%",
	ast.OpEq: "==", ast.OpNe: "!=", ast.OpLt: "<", ast.OpGt: ">", ast.OpLtEq: "<=", ast.OpGtEq: ">=",
}

// lowerBinary lowers arithmetic with F64 promotion, comparisons to Bool, and
// and/or as C's native short-circuiting && / || (spec.md §4.5).
func (l *lowerer) lowerBinary(v *ast.BinaryExpr) (string, Lattice, error) {
	if v.Op == ast.OpAnd || v.Op == ast.OpOr {
		left, _, err := l.lowerExpr(v.Left)
		if err != nil {
			return "", LUnit, err
		}
		right, _, err := l.lowerExpr(v.Right)
		if err != nil {
			return "", LUnit, err
		}
		sym := "&&"
		if v.Op == ast.OpOr {
			sym = "||"
		}
		return fmt.Sprintf("((%s) %s (%s))", left, sym, right), LBool, nil
	}

	left, leftLat, err := l.lowerExpr(v.Left)
	if err != nil {
		return "", LUnit, err
	}
	right, rightLat, err := l.lowerExpr(v.Right)
	if err != nil {
		return "", LUnit, err
	}

	if !leftLat.isNumeric() || !rightLat.isNumeric() {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "binary operator requires numeric operands"}
	}

	sym, ok := binaryOpSymbols[v.Op]
	if !ok {
		return "", LUnit, &ottererr.SemanticError{Span: v.Span, Message: "unsupported binary operator"}
	}

	switch v.Op {
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpGt, ast.OpLtEq, ast.OpGtEq:
		return fmt.Sprintf("((%s) %s (%s))", left, sym, right), LBool, nil
	}

	// Arithmetic promotes to F64 whenever either operand is F64 (spec.md
	// §4.5); % on a float pair goes through fmod rather than C's integer %.
	if leftLat == LF64 || rightLat == LF64 {
		if v.Op == ast.OpMod {
			return fmt.Sprintf("fmod((double)(%s), (double)(%s))", left, right), LF64, nil
		}
		return fmt.Sprintf("((double)(%s) %s (double)(%s))", left, sym, right), LF64, nil
	}
	return fmt.Sprintf("((%s) %s (%s))", left, sym, right), LI64, nil
}
