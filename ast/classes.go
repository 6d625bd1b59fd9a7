package ast

import (
	"strings"

	"github.com/akaoio/zen/token"
)

// ClassDefinition is `class NAME [extends PARENT] <block-of-methods>`.
// Methods are introduced in source by either the 'function' keyword or the
// soft keyword 'method'; both end up here as FunctionDefinition nodes, the
// surface spelling is not retained.
type ClassDefinition struct {
	base
	Name    string
	Parent  string // empty if there is no 'extends' clause
	Methods []*FunctionDefinition
}

func (*ClassDefinition) statementNode() {}
func (c *ClassDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(c.Name)
	if c.Parent != "" {
		sb.WriteString(" extends ")
		sb.WriteString(c.Parent)
	}
	sb.WriteString("\n")
	for _, m := range c.Methods {
		sb.WriteString(m.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewClassDefinition builds a ClassDefinition anchored at the 'class'
// token.
func NewClassDefinition(classTok token.Token, name, parent string, methods []*FunctionDefinition) *ClassDefinition {
	return &ClassDefinition{base: base{Tok: classTok}, Name: name, Parent: parent, Methods: methods}
}
