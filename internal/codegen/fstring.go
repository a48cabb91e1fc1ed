package codegen

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/ast"
)

// lowerFString lowers an f-string's literal/embedded-expression parts into a
// sequence of snprintf appends into a stack buffer, then hands the caller a
// heap copy (spec.md §4.2 f-strings; the runtime owns string lifetime the
// same way every other Str value does, via std.io.free-style ownership
// transfer).
func (l *lowerer) lowerFString(v *ast.FStringExpr) (string, Lattice, error) {
	buf := l.scope.temp("ot_fstr")
	pos := buf + "_pos"
	l.line("char %s[1024];", buf)
	l.line("size_t %s = 0;", pos)

	for _, part := range v.Parts {
		if part.Expr == nil {
			l.line("%s += snprintf(%s + %s, sizeof(%s) - %s, \"%%s\", %s);", pos, buf, pos, buf, pos, cStringLiteral(part.Text))
			continue
		}
		exprC, lat, err := l.lowerExpr(part.Expr)
		if err != nil {
			return "", LUnit, err
		}
		format, value := fstringFormatArg(lat, exprC)
		l.line("%s += snprintf(%s + %s, sizeof(%s) - %s, \"%s\", %s);", pos, buf, pos, buf, pos, format, value)
	}

	return fmt.Sprintf("strdup(%s)", buf), LStr, nil
}

func fstringFormatArg(lat Lattice, expr string) (format, value string) {
	switch lat {
	case LI32, LI64:
		return "%lld", fmt.Sprintf("(long long)(%s)", expr)
	case LF64:
		return "%g", expr
	case LBool:
		return "%s", fmt.Sprintf("((%s) ? \"true\" : \"false\")", expr)
	case LStr:
		return "%s", expr
	default:
		return "%p", expr
	}
}
