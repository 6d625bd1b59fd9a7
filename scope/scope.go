// Package scope implements the lexical scope/binding table the parser
// consults to disambiguate identifiers, and the evaluator later uses to
// resolve names at runtime.
//
// Grounded on the teacher's internal/semantic/pass_context.go Scope type
// (parent-chain Lookup/LookupChain), narrowed to the two maps spec.md §4.3
// requires (a function table the parser reads, a variable table it does
// not) and with insertion order preserved for the function table, since
// spec.md §3 requires "insertion-ordered; latest wins on re-definition".
package scope

import "github.com/akaoio/zen/ast"

// Scope is a lexical scope: a function table, a variable table, and a
// link to the enclosing scope (nil for the global scope). Scopes are
// created on entry to function bodies, class method bodies, and loop
// bodies, and conceptually destroyed when evaluation of that construct
// completes — in Go that lifetime is just "no longer reachable", there is
// nothing to free explicitly.
type Scope struct {
	Parent *Scope

	functions     map[string]*ast.FunctionDefinition
	functionOrder []string

	variables map[string]*ast.VariableDefinition
}

// New creates a scope with no parent (the global scope).
func New() *Scope {
	return NewChild(nil)
}

// NewChild creates a scope nested inside parent. Pass nil for the global
// scope.
func NewChild(parent *Scope) *Scope {
	return &Scope{
		Parent:    parent,
		functions: make(map[string]*ast.FunctionDefinition),
		variables: make(map[string]*ast.VariableDefinition),
	}
}

// AddFunction registers def in this scope's function table. Re-defining a
// name already present replaces the definition in place, so adding the
// same definition twice is harmless: "latest wins", per spec.md §3,
// while the original insertion position is kept so Functions() iterates in
// first-seen order.
func (s *Scope) AddFunction(def *ast.FunctionDefinition) {
	if _, exists := s.functions[def.Name]; !exists {
		s.functionOrder = append(s.functionOrder, def.Name)
	}
	s.functions[def.Name] = def
}

// GetFunction looks up name in this scope, then walks the parent chain.
// This is the only lookup the parser performs — see
// parser.Parser.isObjectLiteralAhead — used by the object-literal lookahead
// (spec.md §4.2.3) to tell a user-defined function name apart from a
// record key.
func (s *Scope) GetFunction(name string) (*ast.FunctionDefinition, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if def, ok := cur.functions[name]; ok {
			return def, true
		}
	}
	return nil, false
}

// Functions returns this scope's own function definitions (not the parent
// chain) in insertion order.
func (s *Scope) Functions() []*ast.FunctionDefinition {
	defs := make([]*ast.FunctionDefinition, 0, len(s.functionOrder))
	for _, name := range s.functionOrder {
		defs = append(defs, s.functions[name])
	}
	return defs
}

// AddVariable upserts def by name. If a binding already exists for the
// name and already carries a runtime value (spec.md §4.3: "preserves prior
// runtime binding if the new definition has none yet"), the existing
// binding's value is kept and only the declaration node is swapped in;
// this matters for the evaluator's re-entrant scope construction, not the
// parser, which never calls this method.
func (s *Scope) AddVariable(def *ast.VariableDefinition) {
	if existing, ok := s.variables[def.Name]; ok && existing.Init != nil && def.Init == nil {
		def.Init = existing.Init
	}
	s.variables[def.Name] = def
}

// GetVariable looks up name in this scope, then walks the parent chain.
func (s *Scope) GetVariable(name string) (*ast.VariableDefinition, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if def, ok := cur.variables[name]; ok {
			return def, true
		}
	}
	return nil, false
}
