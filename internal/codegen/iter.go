package codegen

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/ast"
)

// iterFamily names one of the collection kinds the runtime's iterator
// protocol is specialized for (spec.md §4.5: __otter_iter_<kind>,
// __otter_iter_has_next_<kind>, __otter_iter_next_<kind>,
// __otter_iter_free_<kind>).
type iterFamily string

const (
	iterList   iterFamily = "list"
	iterString iterFamily = "string"
	iterMap    iterFamily = "map"
)

func iterFamilyFor(lat Lattice) iterFamily {
	switch lat {
	case LStr:
		return iterString
	case LMap:
		return iterMap
	default:
		return iterList
	}
}

func decodeFnFor(elem Lattice) string {
	switch elem {
	case LBool:
		return "__otter_decode_value_as_bool"
	case LF64:
		return "__otter_decode_value_as_f64"
	case LStr:
		return "__otter_decode_value_as_string"
	case LList, LMap, LStruct, LTuple, LOpaque:
		return "__otter_decode_value_as_handle"
	default:
		return "__otter_decode_value_as_i64"
	}
}

// lowerFor dispatches a for-loop over either a literal range (spec.md §4.5's
// runtime range<int>/range<float> builders) or an arbitrary iterable, in
// both cases iterating through the runtime's tagged-value iterator
// protocol rather than inlining a native C for loop: this keeps every
// iterable kind (range, list, string, map) going through one mechanism, as
// the original does with its single iterator-protocol lowering path.
func (l *lowerer) lowerFor(s *ast.ForStmt) error {
	var handleExpr string
	var family iterFamily
	var elem Lattice

	if rng, ok := s.Iterable.(*ast.RangeExpr); ok {
		startExpr, startLat, err := l.lowerExpr(rng.Start)
		if err != nil {
			return err
		}
		endExpr, endLat, err := l.lowerExpr(rng.End)
		if err != nil {
			return err
		}
		family = iterList
		if startLat == LF64 || endLat == LF64 {
			elem = LF64
			l.c.declareRuntimeExtern("__otter_range_f64", []string{"double", "double"}, LOpaque)
			handleExpr = fmt.Sprintf("__otter_range_f64((double)(%s), (double)(%s))", startExpr, endExpr)
		} else {
			elem = LI64
			l.c.declareRuntimeExtern("__otter_range_i64", []string{"int64_t", "int64_t"}, LOpaque)
			handleExpr = fmt.Sprintf("__otter_range_i64((int64_t)(%s), (int64_t)(%s))", startExpr, endExpr)
		}
	} else {
		expr, lat, err := l.lowerExpr(s.Iterable)
		if err != nil {
			return err
		}
		handleExpr = expr
		family = iterFamilyFor(lat)
		switch family {
		case iterString:
			elem = LStr
		case iterMap:
			elem = LOpaque
		default:
			elem = LI64
		}
	}

	l.c.declareRuntimeExtern(fmt.Sprintf("__otter_iter_%s", family), []string{"OtterHandle"}, LOpaque)
	l.c.declareRuntimeExtern(fmt.Sprintf("__otter_iter_has_next_%s", family), []string{"OtterHandle"}, LI32)
	l.c.declareRuntimeExtern(fmt.Sprintf("__otter_iter_next_%s", family), []string{"OtterHandle"}, LI64)
	l.c.declareRuntimeExtern(fmt.Sprintf("__otter_iter_free_%s", family), []string{"OtterHandle"}, LUnit)
	decodeFn := decodeFnFor(elem)
	l.c.declareRuntimeExtern(decodeFn, []string{"int64_t"}, elem)

	srcVar := l.scope.temp("ot_iter_src")
	l.line("OtterHandle %s = %s;", srcVar, handleExpr)
	iterVar := l.scope.temp("ot_iter")
	l.line("OtterHandle %s = __otter_iter_%s(%s);", iterVar, family, srcVar)
	l.line("while (__otter_iter_has_next_%s(%s)) {", family, iterVar)
	l.depth++

	tagVar := l.scope.temp("ot_tag")
	l.line("int64_t %s = __otter_iter_next_%s(%s);", tagVar, family, iterVar)
	l.scope.declare(s.Var, elem)
	l.line("%s %s = %s(%s);", elem.CType(), cName(s.Var), decodeFn, tagVar)

	l.scope.pushLoop()
	if err := l.lowerBlock(s.Body); err != nil {
		return err
	}
	l.scope.popLoop()

	l.depth--
	l.line("}")
	l.line("__otter_iter_free_%s(%s);", family, iterVar)
	return nil
}
