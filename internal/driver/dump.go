package driver

import (
	"fmt"
	"io"

	"github.com/Ottrlang/otterlang/internal/ast"
	"github.com/Ottrlang/otterlang/internal/span"
)

// dumpTokens renders the token stream one per line for --dump-tokens,
// grounded on the teacher's --verbose diagnostic dumps in cmd/lci/debug.go.
func dumpTokens(w io.Writer, tokens []span.Token) {
	for _, tok := range tokens {
		if tok.Text != "" {
			fmt.Fprintf(w, "%-10s %-8s %q\n", tok.Span, tok.Kind, tok.Text)
		} else {
			fmt.Fprintf(w, "%-10s %-8s\n", tok.Span, tok.Kind)
		}
	}
}

// dumpAST renders a structural overview of the parsed program for
// --dump-ast. The AST has no Stringer of its own (internal/ast keeps its
// node types free of presentation concerns), so the driver owns this
// printer rather than adding String methods that only dump.go would call.
func dumpAST(w io.Writer, program *ast.Program) {
	for _, stmt := range program.Statements {
		dumpStatement(w, stmt, 0)
	}
}

func dumpStatement(w io.Writer, stmt ast.Statement, depth int) {
	switch s := stmt.(type) {
	case *ast.FuncStmt:
		fmt.Fprintf(w, "%sfunction %s(%d params)\n", pad(depth), s.Func.Name, len(s.Func.Params))
		for _, inner := range s.Func.Body.Statements {
			dumpStatement(w, inner, depth+1)
		}
	case *ast.BlockStmt:
		fmt.Fprintf(w, "%sblock\n", pad(depth))
		for _, inner := range s.Block.Statements {
			dumpStatement(w, inner, depth+1)
		}
	case *ast.IfStmt:
		fmt.Fprintf(w, "%sif\n", pad(depth))
		for _, inner := range s.Then.Statements {
			dumpStatement(w, inner, depth+1)
		}
	case *ast.WhileStmt:
		fmt.Fprintf(w, "%swhile\n", pad(depth))
		for _, inner := range s.Body.Statements {
			dumpStatement(w, inner, depth+1)
		}
	case *ast.ForStmt:
		fmt.Fprintf(w, "%sfor %s\n", pad(depth), s.Var)
		for _, inner := range s.Body.Statements {
			dumpStatement(w, inner, depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%T\n", pad(depth), stmt)
	}
}

func pad(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
