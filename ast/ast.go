// Package ast defines the Abstract Syntax Tree node types produced by the
// zen parser. Every node kind is its own struct — a true sum type via Go's
// interface dispatch rather than one struct carrying every possible field —
// and every node owns its children exclusively: the tree is a strict
// parent-to-child DAG (in practice always a tree) with no back-pointers.
package ast

import (
	"strings"

	"github.com/akaoio/zen/token"
)

// Node is the interface every AST node satisfies.
type Node interface {
	// TokenLiteral returns the lexeme of the token the node was built from,
	// primarily useful in tests and error messages.
	TokenLiteral() string

	// String renders the node for debugging; it is not a source
	// round-trip formatter.
	String() string

	// Pos returns the node's position in the original source.
	Pos() token.Position

	// Scope returns the lexical scope the node was parsed in, or nil if
	// none was attached. The parser sets this at construction time for
	// the evaluator's benefit; it never reads it back itself. The type is
	// deliberately opaque (any, concretely *scope.Scope) rather than
	// *scope.Scope directly, since scope.Scope's function table holds AST
	// nodes and a direct field would create an import cycle between the
	// ast and scope packages — see DESIGN.md.
	Scope() any

	// SetScope attaches a lexical scope to the node.
	SetScope(s any)
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// base is embedded by every concrete node type to provide the Node
// interface's position/scope bookkeeping without repeating it per variant.
type base struct {
	Tok      token.Token
	scopeRef any
}

func (b *base) TokenLiteral() string { return b.Tok.Lexeme }
func (b *base) Pos() token.Position  { return b.Tok.Pos }
func (b *base) Scope() any           { return b.scopeRef }
func (b *base) SetScope(s any)       { b.scopeRef = s }

// Noop is a structural placeholder substituted wherever a child node is
// required but parsing could not produce one (spec's "structural
// invariants" error-handling rule): it keeps the tree well-formed after a
// syntax error instead of leaving a nil child.
type Noop struct {
	base
}

func (*Noop) statementNode()  {}
func (*Noop) expressionNode() {}
func (n *Noop) String() string { return "<noop>" }

// NewNoop builds a Noop anchored at tok, so the substituted node still
// reports a sensible position for error messages.
func NewNoop(tok token.Token) *Noop {
	return &Noop{base: base{Tok: tok}}
}

// Compound is an ordered sequence of statements — the body of the program,
// of a function/method, of a block, or of a loop. The root of every parsed
// program is always a Compound.
type Compound struct {
	base
	Statements []Statement
}

func (*Compound) statementNode() {}
func (c *Compound) String() string {
	var sb strings.Builder
	for _, s := range c.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewCompound builds an (initially empty) Compound anchored at tok.
func NewCompound(tok token.Token) *Compound {
	return &Compound{base: base{Tok: tok}}
}

// --- Literals and simple references -----------------------------------

// Literal is a scalar literal value: number, string, boolean, null, or the
// language's three-valued-logic "undecidable" constant.
type Literal struct {
	base
	Kind LiteralKind
	Num  float64
	Str  string
	Bool bool
}

// LiteralKind distinguishes which field of Literal is meaningful.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBoolean
	LiteralNull
	LiteralUndecidable
)

func (*Literal) expressionNode() {}
func (l *Literal) String() string {
	switch l.Kind {
	case LiteralNumber:
		return l.Tok.Lexeme
	case LiteralString:
		return `"` + l.Str + `"`
	case LiteralBoolean:
		if l.Bool {
			return "true"
		}
		return "false"
	case LiteralNull:
		return "null"
	default:
		return "undecidable"
	}
}

// NewNumberLiteral parses tok's lexeme as a float64-valued number literal.
func NewNumberLiteral(tok token.Token, value float64) *Literal {
	return &Literal{base: base{Tok: tok}, Kind: LiteralNumber, Num: value}
}

// NewStringLiteral builds a string literal with the already-unescaped value.
func NewStringLiteral(tok token.Token, value string) *Literal {
	return &Literal{base: base{Tok: tok}, Kind: LiteralString, Str: value}
}

// NewBoolLiteral builds a true/false literal.
func NewBoolLiteral(tok token.Token, value bool) *Literal {
	return &Literal{base: base{Tok: tok}, Kind: LiteralBoolean, Bool: value}
}

// NewNullLiteral builds the null literal.
func NewNullLiteral(tok token.Token) *Literal {
	return &Literal{base: base{Tok: tok}, Kind: LiteralNull}
}

// NewUndecidableLiteral builds the undecidable (three-valued-logic) literal.
func NewUndecidableLiteral(tok token.Token) *Literal {
	return &Literal{base: base{Tok: tok}, Kind: LiteralUndecidable}
}

// Variable references a name bound somewhere in the lexical scope chain.
type Variable struct {
	base
	Name string
}

func (*Variable) expressionNode()  {}
func (v *Variable) String() string { return v.Name }

// NewVariable builds a Variable reference.
func NewVariable(tok token.Token, name string) *Variable {
	return &Variable{base: base{Tok: tok}, Name: name}
}
