package ast

import (
	"strings"

	"github.com/akaoio/zen/token"
)

// ExpressionStatement wraps an expression used in statement position (an
// expression-statement, e.g. a bare function call) so it satisfies
// Statement.
type ExpressionStatement struct {
	base
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}
func (e *ExpressionStatement) String() string { return e.Expr.String() }

// NewExpressionStatement wraps expr as a statement.
func NewExpressionStatement(tok token.Token, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{base: base{Tok: tok}, Expr: expr}
}

// VariableDefinition is `set NAME expr`.
type VariableDefinition struct {
	base
	Name string
	Init Expression
}

func (*VariableDefinition) statementNode() {}
func (v *VariableDefinition) String() string {
	return "set " + v.Name + " " + v.Init.String()
}

// NewVariableDefinition builds a VariableDefinition anchored at the 'set'
// token.
func NewVariableDefinition(setTok token.Token, name string, init Expression) *VariableDefinition {
	return &VariableDefinition{base: base{Tok: setTok}, Name: name, Init: init}
}

// Parameter is a single entry in a function's parameter list: either a
// plain name, or (only as the last entry) a rest parameter collecting all
// trailing call arguments.
type Parameter struct {
	Name   string
	IsRest bool
}

func (p Parameter) String() string {
	if p.IsRest {
		return "..." + p.Name
	}
	return p.Name
}

// FunctionDefinition is `function NAME params… <block>`.
type FunctionDefinition struct {
	base
	Name   string
	Params []Parameter
	Body   *Compound
}

func (*FunctionDefinition) statementNode() {}
func (f *FunctionDefinition) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return "function " + f.Name + " " + strings.Join(parts, " ") + "\n" + f.Body.String()
}

// NewFunctionDefinition builds a FunctionDefinition anchored at the
// 'function' token.
func NewFunctionDefinition(funcTok token.Token, name string, params []Parameter, body *Compound) *FunctionDefinition {
	return &FunctionDefinition{base: base{Tok: funcTok}, Name: name, Params: params, Body: body}
}

// If is `if cond <block> [else <block>]`.
type If struct {
	base
	Condition Expression
	Body      *Compound
	ElseBody  *Compound // nil if no else clause
}

func (*If) statementNode() {}
func (i *If) String() string {
	s := "if " + i.Condition.String() + "\n" + i.Body.String()
	if i.ElseBody != nil {
		s += "else\n" + i.ElseBody.String()
	}
	return s
}

// NewIf builds an If anchored at the 'if' token.
func NewIf(ifTok token.Token, cond Expression, body, elseBody *Compound) *If {
	return &If{base: base{Tok: ifTok}, Condition: cond, Body: body, ElseBody: elseBody}
}

// While is `while cond <block>`.
type While struct {
	base
	Condition Expression
	Body      *Compound
}

func (*While) statementNode() {}
func (w *While) String() string { return "while " + w.Condition.String() + "\n" + w.Body.String() }

// NewWhile builds a While anchored at the 'while' token.
func NewWhile(whileTok token.Token, cond Expression, body *Compound) *While {
	return &While{base: base{Tok: whileTok}, Condition: cond, Body: body}
}

// ForIn is `for NAME in expr <block>`; the iterator variable name is owned
// by the node.
type ForIn struct {
	base
	IteratorName string
	Iterable     Expression
	Body         *Compound
}

func (*ForIn) statementNode() {}
func (f *ForIn) String() string {
	return "for " + f.IteratorName + " in " + f.Iterable.String() + "\n" + f.Body.String()
}

// NewForIn builds a ForIn anchored at the 'for' token.
func NewForIn(forTok token.Token, iteratorName string, iterable Expression, body *Compound) *ForIn {
	return &ForIn{base: base{Tok: forTok}, IteratorName: iteratorName, Iterable: iterable, Body: body}
}

// Return, Break, Continue, Throw all carry an optional owned expression.
type Return struct {
	base
	Value Expression // nil for a bare return
}

func (*Return) statementNode() {}
func (r *Return) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

// NewReturn builds a Return anchored at the 'return' token.
func NewReturn(returnTok token.Token, value Expression) *Return {
	return &Return{base: base{Tok: returnTok}, Value: value}
}

type Break struct{ base }

func (*Break) statementNode()  {}
func (*Break) String() string { return "break" }

// NewBreak builds a Break anchored at the 'break' token.
func NewBreak(tok token.Token) *Break { return &Break{base: base{Tok: tok}} }

type Continue struct{ base }

func (*Continue) statementNode()  {}
func (*Continue) String() string { return "continue" }

// NewContinue builds a Continue anchored at the 'continue' token.
func NewContinue(tok token.Token) *Continue { return &Continue{base: base{Tok: tok}} }

type Throw struct {
	base
	Value Expression
}

func (*Throw) statementNode() {}
func (t *Throw) String() string {
	if t.Value == nil {
		return "throw"
	}
	return "throw " + t.Value.String()
}

// NewThrow builds a Throw anchored at the 'throw' token.
func NewThrow(throwTok token.Token, value Expression) *Throw {
	return &Throw{base: base{Tok: throwTok}, Value: value}
}

// TryCatch is `try <block> catch [NAME] <block>`.
type TryCatch struct {
	base
	TryBody   *Compound
	CatchBody *Compound
	ExcName   string // empty if the catch clause binds no name
}

func (*TryCatch) statementNode() {}
func (t *TryCatch) String() string {
	return "try\n" + t.TryBody.String() + "catch " + t.ExcName + "\n" + t.CatchBody.String()
}

// NewTryCatch builds a TryCatch anchored at the 'try' token.
func NewTryCatch(tryTok token.Token, tryBody, catchBody *Compound, excName string) *TryCatch {
	return &TryCatch{base: base{Tok: tryTok}, TryBody: tryBody, CatchBody: catchBody, ExcName: excName}
}

// ImportBinding is one `(original, alias?)` pair in a named import list.
type ImportBinding struct {
	Original string
	Alias    string // empty if no alias was given
}

func (b ImportBinding) String() string {
	if b.Alias == "" {
		return b.Original
	}
	return b.Original + ":" + b.Alias
}

// Import is either a bare `import "PATH"` or a named
// `import NAME [ALIAS], … from "PATH"`.
type Import struct {
	base
	Path     string
	Bindings []ImportBinding // empty for a bare import
}

func (*Import) statementNode() {}
func (i *Import) String() string {
	if len(i.Bindings) == 0 {
		return `import "` + i.Path + `"`
	}
	parts := make([]string, len(i.Bindings))
	for idx, b := range i.Bindings {
		parts[idx] = b.String()
	}
	return "import " + strings.Join(parts, ", ") + ` from "` + i.Path + `"`
}

// NewImport builds an Import anchored at the 'import' token.
func NewImport(importTok token.Token, path string, bindings []ImportBinding) *Import {
	return &Import{base: base{Tok: importTok}, Path: path, Bindings: bindings}
}

// Export is `export function …`, `export set …`, or `export NAME [ALIAS]`.
// Value is nil for the bare-name export form.
type Export struct {
	base
	Name  string
	Alias string
	Value Statement // *FunctionDefinition, *VariableDefinition, or nil
}

func (*Export) statementNode() {}
func (e *Export) String() string {
	if e.Value != nil {
		return "export " + e.Value.String()
	}
	if e.Alias == "" {
		return "export " + e.Name
	}
	return "export " + e.Name + " " + e.Alias
}

// NewExport builds an Export anchored at the 'export' token.
func NewExport(exportTok token.Token, name, alias string, value Statement) *Export {
	return &Export{base: base{Tok: exportTok}, Name: name, Alias: alias, Value: value}
}

// FileGet is `get PATH_EXPR [.prop[.prop…]]`.
type FileGet struct {
	base
	Path     Expression
	Property *PropertyPath // nil if no dotted property suffix
}

func (*FileGet) statementNode() {}
func (f *FileGet) String() string {
	if f.Property == nil {
		return "get " + f.Path.String()
	}
	return "get " + f.Path.String() + "." + f.Property.String()
}

// NewFileGet builds a FileGet anchored at the 'get' token.
func NewFileGet(getTok token.Token, path Expression, property *PropertyPath) *FileGet {
	return &FileGet{base: base{Tok: getTok}, Path: path, Property: property}
}

// FilePut is `put PATH_EXPR [.prop[.prop…]] VALUE`.
type FilePut struct {
	base
	Path     Expression
	Property *PropertyPath // nil if no dotted property suffix
	Value    Expression
}

func (*FilePut) statementNode() {}
func (f *FilePut) String() string {
	if f.Property == nil {
		return "put " + f.Path.String() + " " + f.Value.String()
	}
	return "put " + f.Path.String() + "." + f.Property.String() + " " + f.Value.String()
}

// NewFilePut builds a FilePut anchored at the 'put' token.
func NewFilePut(putTok token.Token, path Expression, property *PropertyPath, value Expression) *FilePut {
	return &FilePut{base: base{Tok: putTok}, Path: path, Property: property, Value: value}
}
