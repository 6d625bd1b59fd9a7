package ast

import (
	"testing"

	"github.com/akaoio/zen/token"
)

func tok(tt token.Type, lexeme string) token.Token {
	return token.Token{Type: tt, Lexeme: lexeme, Pos: token.Position{Line: 1, Column: 1}}
}

func TestLiteralStrings(t *testing.T) {
	num := NewNumberLiteral(tok(token.NUMBER, "42"), 42)
	if num.String() != "42" {
		t.Errorf("number literal String() = %q, want %q", num.String(), "42")
	}

	str := NewStringLiteral(tok(token.STRING, "hi"), "hi")
	if str.String() != `"hi"` {
		t.Errorf("string literal String() = %q, want %q", str.String(), `"hi"`)
	}

	if NewBoolLiteral(tok(token.TRUE, "true"), true).String() != "true" {
		t.Error("bool literal true rendered wrong")
	}
	if NewBoolLiteral(tok(token.FALSE, "false"), false).String() != "false" {
		t.Error("bool literal false rendered wrong")
	}
	if NewNullLiteral(tok(token.NULL, "null")).String() != "null" {
		t.Error("null literal rendered wrong")
	}
	if NewUndecidableLiteral(tok(token.UNDECIDABLE, "undecidable")).String() != "undecidable" {
		t.Error("undecidable literal rendered wrong")
	}
}

func TestVariableAndScope(t *testing.T) {
	v := NewVariable(tok(token.IDENT, "x"), "x")
	if v.Name != "x" || v.String() != "x" {
		t.Errorf("unexpected Variable: %+v", v)
	}
	if v.Scope() != nil {
		t.Error("fresh node should have nil scope")
	}
	v.SetScope("fake-scope")
	if v.Scope() != "fake-scope" {
		t.Error("SetScope/Scope round-trip failed")
	}
}

func TestBinaryAndUnaryOpString(t *testing.T) {
	left := NewVariable(tok(token.IDENT, "a"), "a")
	right := NewVariable(tok(token.IDENT, "b"), "b")
	bin := NewBinaryOp(tok(token.PLUS, "+"), left, right)
	if bin.String() != "(a + b)" {
		t.Errorf("BinaryOp.String() = %q, want %q", bin.String(), "(a + b)")
	}

	un := NewUnaryOp(tok(token.NOT, "not"), left)
	if un.String() != "(nota)" {
		t.Errorf("UnaryOp.String() = %q, want %q", un.String(), "(nota)")
	}
}

func TestObjectStringPreservesKeyOrderAndMissingValues(t *testing.T) {
	obj := NewObject(tok(token.IDENT, "x"), []string{"x", "y"}, []Expression{
		NewNumberLiteral(tok(token.NUMBER, "1"), 1),
		nil,
	})
	want := `x 1, y <missing>`
	if got := obj.String(); got != want {
		t.Errorf("Object.String() = %q, want %q", got, want)
	}
}

func TestArrayString(t *testing.T) {
	arr := NewArray(tok(token.LBRACK, "["), []Expression{
		NewNumberLiteral(tok(token.NUMBER, "1"), 1),
		NewNumberLiteral(tok(token.NUMBER, "2"), 2),
	})
	if got := arr.String(); got != "[1, 2]" {
		t.Errorf("Array.String() = %q, want %q", got, "[1, 2]")
	}
}

func TestFunctionCallString(t *testing.T) {
	callee := NewVariable(tok(token.IDENT, "point"), "point")
	call := NewFunctionCall(tok(token.IDENT, "point"), callee, []Expression{
		NewNumberLiteral(tok(token.NUMBER, "3"), 3),
		NewNumberLiteral(tok(token.NUMBER, "4"), 4),
	})
	if got := call.String(); got != "point(3, 4)" {
		t.Errorf("FunctionCall.String() = %q, want %q", got, "point(3, 4)")
	}
}

func TestPropertyAccessDottedAndIndexed(t *testing.T) {
	obj := NewVariable(tok(token.IDENT, "a"), "a")
	dotted := NewPropertyAccess(tok(token.DOT, "."), obj, "b")
	if got := dotted.String(); got != "a.b" {
		t.Errorf("dotted PropertyAccess.String() = %q, want %q", got, "a.b")
	}

	idx := NewIndexAccess(tok(token.LBRACK, "["), obj, NewNumberLiteral(tok(token.NUMBER, "0"), 0))
	if got := idx.String(); got != "a[0]" {
		t.Errorf("indexed PropertyAccess.String() = %q, want %q", got, "a[0]")
	}
}

func TestFileReferenceString(t *testing.T) {
	target := NewVariable(tok(token.IDENT, "config"), "config")
	ref := NewFileReference(tok(token.STRING, "@ config"), target, nil)
	if got := ref.String(); got != "@ config" {
		t.Errorf("FileReference.String() without path = %q, want %q", got, "@ config")
	}

	path := NewPropertyPath(tok(token.IDENT, "a"), []string{"a", "b"})
	withPath := NewFileReference(tok(token.STRING, "@ config.a.b"), target, path)
	if got := withPath.String(); got != "@ config.a.b" {
		t.Errorf("FileReference.String() with path = %q, want %q", got, "@ config.a.b")
	}
}

func TestNoopKeepsTreeWellFormed(t *testing.T) {
	n := NewNoop(tok(token.ILLEGAL, "?"))
	if n.String() != "<noop>" {
		t.Errorf("Noop.String() = %q, want %q", n.String(), "<noop>")
	}
	var _ Statement = n
	var _ Expression = n
}

func TestCompoundStringJoinsStatementsByLine(t *testing.T) {
	c := NewCompound(tok(token.IDENT, "root"))
	c.Statements = append(c.Statements, NewNoop(tok(token.ILLEGAL, "x")))
	c.Statements = append(c.Statements, NewNoop(tok(token.ILLEGAL, "y")))
	want := "<noop>\n<noop>\n"
	if got := c.String(); got != want {
		t.Errorf("Compound.String() = %q, want %q", got, want)
	}
}
