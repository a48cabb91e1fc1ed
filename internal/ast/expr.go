package ast

import "github.com/Ottrlang/otterlang/internal/span"

// Expression is the sum type of all expression variants.
type Expression interface {
	expressionNode()
	Pos() span.Span
}

// LiteralKind tags a Literal's payload.
type LiteralKind int

const (
	LitString LiteralKind = iota
	LitNumber
	LitBool
)

// Literal is a tagged-union literal value. Numbers compare and hash by
// their exact bit pattern (spec.md §3).
type Literal struct {
	Kind   LiteralKind
	Str    string
	Number float64
	Bool   bool
}

type LiteralExpr struct {
	Value Literal
	Span  span.Span
}

type IdentifierExpr struct {
	Name string
	Span span.Span
}

type MemberExpr struct {
	Object Expression
	Field  string
	Span   span.Span
}

type CallExpr struct {
	Callee Expression
	Args   []Expression
	Span   span.Span
}

// BinaryOp is the closed set of binary operators.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpAnd
	OpOr
)

type BinaryExpr struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
	Span  span.Span
}

// UnaryOp is the closed set of unary operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
)

type UnaryExpr struct {
	Op   UnaryOp
	Expr Expression
	Span span.Span
}

// RangeExpr models `start..end`, non-associative, consumed at exactly one
// precedence level (spec.md §4.2).
type RangeExpr struct {
	Start Expression
	End   Expression
	Span  span.Span
}

// FStringPart is one piece of an f-string body: literal text, or an
// embedded expression parsed from a `{...}` brace group.
type FStringPart struct {
	Text string     // set when Expr == nil
	Expr Expression // set when this part is an embedded expression
}

type FStringExpr struct {
	Parts []FStringPart
	Span  span.Span
}

type LambdaExpr struct {
	Params  []Param
	RetType *TypeRef
	Body    *Block
	Span    span.Span
}

type AwaitExpr struct {
	Expr Expression
	Span span.Span
}

type SpawnExpr struct {
	Expr Expression
	Span span.Span
}

func (*LiteralExpr) expressionNode()    {}
func (*IdentifierExpr) expressionNode() {}
func (*MemberExpr) expressionNode()     {}
func (*CallExpr) expressionNode()       {}
func (*BinaryExpr) expressionNode()     {}
func (*UnaryExpr) expressionNode()      {}
func (*RangeExpr) expressionNode()      {}
func (*FStringExpr) expressionNode()    {}
func (*LambdaExpr) expressionNode()     {}
func (*AwaitExpr) expressionNode()      {}
func (*SpawnExpr) expressionNode()      {}

func (e *LiteralExpr) Pos() span.Span    { return e.Span }
func (e *IdentifierExpr) Pos() span.Span { return e.Span }
func (e *MemberExpr) Pos() span.Span     { return e.Span }
func (e *CallExpr) Pos() span.Span       { return e.Span }
func (e *BinaryExpr) Pos() span.Span     { return e.Span }
func (e *UnaryExpr) Pos() span.Span      { return e.Span }
func (e *RangeExpr) Pos() span.Span      { return e.Span }
func (e *FStringExpr) Pos() span.Span    { return e.Span }
func (e *LambdaExpr) Pos() span.Span     { return e.Span }
func (e *AwaitExpr) Pos() span.Span      { return e.Span }
func (e *SpawnExpr) Pos() span.Span      { return e.Span }
