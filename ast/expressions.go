package ast

import (
	"strings"

	"github.com/akaoio/zen/token"
)

// BinaryOp applies a binary operator to two owned operands. The range
// operator (..) is represented here with its own token.DOTDOT operator
// kind rather than a dedicated node, per spec.md's resolution of that
// open question (see DESIGN.md "Range operator representation").
type BinaryOp struct {
	base
	Operator token.Type
	Left     Expression
	Right    Expression
}

func (*BinaryOp) expressionNode() {}
func (b *BinaryOp) String() string {
	return "(" + b.Left.String() + " " + b.Operator.String() + " " + b.Right.String() + ")"
}

// NewBinaryOp builds a BinaryOp anchored at the operator token.
func NewBinaryOp(opTok token.Token, left, right Expression) *BinaryOp {
	return &BinaryOp{base: base{Tok: opTok}, Operator: opTok.Type, Left: left, Right: right}
}

// UnaryOp applies a prefix operator (not, -) to its single owned operand.
type UnaryOp struct {
	base
	Operator token.Type
	Operand  Expression
}

func (*UnaryOp) expressionNode() {}
func (u *UnaryOp) String() string {
	return "(" + u.Operator.String() + u.Operand.String() + ")"
}

// NewUnaryOp builds a UnaryOp anchored at the operator token.
func NewUnaryOp(opTok token.Token, operand Expression) *UnaryOp {
	return &UnaryOp{base: base{Tok: opTok}, Operator: opTok.Type, Operand: operand}
}

// Ternary is condition ? trueExpr : falseExpr. Spec §4.2.2 marks this
// precedence level "reserved; currently pass-through to null-coalescing" —
// the node exists so a future grammar change only needs to start
// constructing it, not introduce it.
type Ternary struct {
	base
	Condition Expression
	TrueExpr  Expression
	FalseExpr Expression
}

func (*Ternary) expressionNode() {}
func (t *Ternary) String() string {
	return "(" + t.Condition.String() + " ? " + t.TrueExpr.String() + " : " + t.FalseExpr.String() + ")"
}

// NewTernary builds a Ternary anchored at the '?' token.
func NewTernary(questionTok token.Token, cond, trueExpr, falseExpr Expression) *Ternary {
	return &Ternary{base: base{Tok: questionTok}, Condition: cond, TrueExpr: trueExpr, FalseExpr: falseExpr}
}

// Array is an ordered, owned sequence of element expressions.
type Array struct {
	base
	Elements []Expression
}

func (*Array) expressionNode() {}
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// NewArray builds an Array literal anchored at tok (typically the opening
// '[' or the first element's token for a comma-expression array).
func NewArray(tok token.Token, elements []Expression) *Array {
	return &Array{base: base{Tok: tok}, Elements: elements}
}

// Object is a key-value record literal. Keys and Values are parallel
// slices — key order is preserved, matching spec §3's invariant.
type Object struct {
	base
	Keys   []string
	Values []Expression
}

func (*Object) expressionNode() {}
func (o *Object) String() string {
	parts := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		v := "<missing>"
		if i < len(o.Values) && o.Values[i] != nil {
			v = o.Values[i].String()
		}
		parts[i] = k + " " + v
	}
	return strings.Join(parts, ", ")
}

// NewObject builds an Object literal anchored at tok (the first key token).
func NewObject(tok token.Token, keys []string, values []Expression) *Object {
	return &Object{base: base{Tok: tok}, Keys: keys, Values: values}
}

// PropertyAccess is obj.name or obj[computed]. Exactly one of Name or Index
// is set, selecting dotted vs. computed access.
type PropertyAccess struct {
	base
	Object Expression
	Name   string
	Index  Expression // non-nil for obj[expr]
}

func (*PropertyAccess) expressionNode() {}
func (p *PropertyAccess) String() string {
	if p.Index != nil {
		return p.Object.String() + "[" + p.Index.String() + "]"
	}
	return p.Object.String() + "." + p.Name
}

// NewPropertyAccess builds a dotted property access.
func NewPropertyAccess(dotTok token.Token, object Expression, name string) *PropertyAccess {
	return &PropertyAccess{base: base{Tok: dotTok}, Object: object, Name: name}
}

// NewIndexAccess builds a computed/indexed property access.
func NewIndexAccess(bracketTok token.Token, object, index Expression) *PropertyAccess {
	return &PropertyAccess{base: base{Tok: bracketTok}, Object: object, Index: index}
}

// FunctionCall is a call to a named function or to a property-access
// expression (method-call promotion, spec §4.2.5).
type FunctionCall struct {
	base
	Callee Expression // *Variable or *PropertyAccess
	Args   []Expression
}

func (*FunctionCall) expressionNode() {}
func (f *FunctionCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// NewFunctionCall builds a FunctionCall anchored at the callee's token.
func NewFunctionCall(tok token.Token, callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{base: base{Tok: tok}, Callee: callee, Args: args}
}

// NewExpression is `new ClassName args…`.
type NewExpression struct {
	base
	ClassName string
	Args      []Expression
}

func (*NewExpression) expressionNode() {}
func (n *NewExpression) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return "new " + n.ClassName + "(" + strings.Join(parts, ", ") + ")"
}

// NewNewExpression builds a NewExpression anchored at the 'new' token.
func NewNewExpression(newTok token.Token, className string, args []Expression) *NewExpression {
	return &NewExpression{base: base{Tok: newTok}, ClassName: className, Args: args}
}

// Spread is `...name`: an owned reference to the variable being spread.
type Spread struct {
	base
	Target *Variable
}

func (*Spread) expressionNode() {}
func (s *Spread) String() string { return "..." + s.Target.String() }

// NewSpread builds a Spread anchored at the '...' token.
func NewSpread(ellipsisTok token.Token, target *Variable) *Spread {
	return &Spread{base: base{Tok: ellipsisTok}, Target: target}
}

// CompoundAssignment is `NAME OP= value` (+=, -=, *=, /=, %=).
type CompoundAssignment struct {
	base
	Operator token.Type
	Target   *Variable
	Value    Expression
}

func (*CompoundAssignment) statementNode() {}
func (*CompoundAssignment) expressionNode() {}
func (c *CompoundAssignment) String() string {
	return c.Target.String() + " " + c.Operator.String() + " " + c.Value.String()
}

// NewCompoundAssignment builds a CompoundAssignment anchored at the
// operator token.
func NewCompoundAssignment(opTok token.Token, target *Variable, value Expression) *CompoundAssignment {
	return &CompoundAssignment{base: base{Tok: opTok}, Operator: opTok.Type, Target: target, Value: value}
}

// PropertyPath is a dotted chain of property names, e.g. the "a.b.c" suffix
// of a `get`/`put` statement. Spec.md §9 explicitly flags the source's ad
// hoc "Compound of strings" representation as a re-implementation
// candidate; this is that dedicated node (see DESIGN.md).
type PropertyPath struct {
	base
	Segments []string
}

func (*PropertyPath) expressionNode() {}
func (p *PropertyPath) String() string { return strings.Join(p.Segments, ".") }

// NewPropertyPath builds a PropertyPath anchored at tok (the first segment's
// token, or the statement's token if the path is empty).
func NewPropertyPath(tok token.Token, segments []string) *PropertyPath {
	return &PropertyPath{base: base{Tok: tok}, Segments: segments}
}

// FileReference is a `"@ path[.prop…]"` value used by `put`: it names
// another file (and optional dotted property path within it) rather than
// holding an inline value. See spec.md §4.2.5.
type FileReference struct {
	base
	Target Expression
	Path   *PropertyPath
}

func (*FileReference) expressionNode() {}
func (f *FileReference) String() string {
	if f.Path == nil {
		return "@ " + f.Target.String()
	}
	return "@ " + f.Target.String() + "." + f.Path.String()
}

// NewFileReference builds a FileReference anchored at the string token it
// was parsed from.
func NewFileReference(tok token.Token, target Expression, path *PropertyPath) *FileReference {
	return &FileReference{base: base{Tok: tok}, Target: target, Path: path}
}
