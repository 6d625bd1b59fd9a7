package scope

import (
	"testing"

	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/token"
)

func identTok(lexeme string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: lexeme}
}

func TestNewIsUnparented(t *testing.T) {
	s := New()
	if s.Parent != nil {
		t.Fatal("New() scope should have a nil parent")
	}
}

func TestFunctionLookupWalksParentChain(t *testing.T) {
	parent := New()
	child := NewChild(parent)

	def := ast.NewFunctionDefinition(identTok("greet"), "greet", nil, ast.NewCompound(identTok("greet")))
	parent.AddFunction(def)

	if _, ok := child.GetFunction("greet"); !ok {
		t.Fatal("child scope should see a function defined in its parent")
	}
	if _, ok := child.GetFunction("missing"); ok {
		t.Fatal("lookup of an undefined name should fail")
	}
}

func TestAddFunctionLatestWinsButOrderIsInsertionOrder(t *testing.T) {
	s := New()
	first := ast.NewFunctionDefinition(identTok("f"), "f", nil, ast.NewCompound(identTok("f")))
	second := ast.NewFunctionDefinition(identTok("g"), "g", nil, ast.NewCompound(identTok("g")))
	redefined := ast.NewFunctionDefinition(identTok("f"), "f", nil, ast.NewCompound(identTok("f")))

	s.AddFunction(first)
	s.AddFunction(second)
	s.AddFunction(redefined)

	got, ok := s.GetFunction("f")
	if !ok || got != redefined {
		t.Fatal("redefining a function should replace the stored definition")
	}

	defs := s.Functions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 distinct function names after redefinition, got %d", len(defs))
	}
	if defs[0].Name != "f" || defs[1].Name != "g" {
		t.Fatalf("expected insertion order [f, g], got [%s, %s]", defs[0].Name, defs[1].Name)
	}
}

func TestAddVariablePreservesPriorRuntimeBinding(t *testing.T) {
	s := New()
	withValue := &ast.VariableDefinition{Name: "x", Init: ast.NewNumberLiteral(identTok("1"), 1)}
	s.AddVariable(withValue)

	withoutValue := &ast.VariableDefinition{Name: "x", Init: nil}
	s.AddVariable(withoutValue)

	got, ok := s.GetVariable("x")
	if !ok {
		t.Fatal("expected variable x to be found")
	}
	if got.Init == nil {
		t.Fatal("redefinition with no initializer should keep the prior runtime binding")
	}
}

func TestVariableLookupWalksParentChain(t *testing.T) {
	parent := New()
	child := NewChild(parent)
	parent.AddVariable(&ast.VariableDefinition{Name: "y", Init: ast.NewNumberLiteral(identTok("2"), 2)})

	if _, ok := child.GetVariable("y"); !ok {
		t.Fatal("child scope should see a variable defined in its parent")
	}
}
