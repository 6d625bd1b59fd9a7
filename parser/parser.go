// Package parser implements the context-sensitive recursive-descent parser
// that turns a zen token stream into an AST. Grounded on the teacher's
// internal/parser/parser.go: the advance/peek discipline (peek draws on the
// lexer's own Peek buffer), the ParseContext mode flags, and the panic-mode synchronize loop are kept;
// the grammar itself is the one this language's identifier-disambiguation
// rule requires.
package parser

import (
	"strconv"

	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/builtin"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/scope"
	"github.com/akaoio/zen/token"
)

// Parser consumes a lexer.Lexer and produces an AST. It never aborts on a
// syntax error: it records the error, enters panic mode, resynchronizes,
// and continues, so Parse always returns a (possibly partial) well-formed
// tree.
type Parser struct {
	l      *lexer.Lexer
	oracle builtin.Oracle

	current  token.Token
	previous token.Token

	ctx   *ParseContext
	scope *scope.Scope

	errors          []*ParserError
	panicMode       bool
	recoveredErrors int
}

// New creates a Parser reading from l, consulting oracle to tell built-in
// names apart from user-defined ones. oracle may be nil, in which case no
// name is ever considered a builtin.
func New(l *lexer.Lexer, oracle builtin.Oracle) *Parser {
	p := &Parser{l: l, oracle: oracle, ctx: newParseContext()}
	p.advance()
	return p
}

// Errors returns every parse error recorded so far.
func (p *Parser) Errors() []*ParserError { return p.errors }

// HasErrors reports whether any parse error has been recorded.
func (p *Parser) HasErrors() bool { return len(p.errors) > 0 }

// ErrorCount returns the number of parse errors recorded.
func (p *Parser) ErrorCount() int { return len(p.errors) }

// InPanicMode reports whether the parser is currently discarding tokens
// while looking for a synchronization point.
func (p *Parser) InPanicMode() bool { return p.panicMode }

// RecoveredErrors returns the number of times the parser has resynchronized
// after a syntax error — the analytics counter spec.md §4.2 asks for.
func (p *Parser) RecoveredErrors() int { return p.recoveredErrors }

// Parse consumes the entire token stream and returns the root Compound.
// sc is the scope the top-level program is parsed in; function definitions
// encountered at any depth are added to it (or to the nearer enclosing
// scope, once this parser supports nested scopes) as they are parsed, so
// later lookahead in the same parse can recognize them.
func (p *Parser) Parse(sc *scope.Scope) *ast.Compound {
	p.scope = sc
	root := ast.NewCompound(p.current)
	root.Statements = p.parseStatements(0)
	p.attachScope(root)
	return root
}

func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.l.Next()
}

// peek returns the token k positions after current: peek(0) is the token
// current() will become after the next advance().
func (p *Parser) peek(k int) token.Token { return p.l.Peek(k) }

func (p *Parser) check(tt token.Type) bool { return p.current.Type == tt }

// expect advances past current if it has type tt, else records a parse
// error anchored at current and leaves the cursor where it is.
func (p *Parser) expect(tt token.Type, code, message string) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	p.errorAt(p.current, code, message)
	return false
}

// errorAt records a parse error and enters panic mode. Subsequent errors
// raised before the next synchronize() are suppressed (cascading errors
// from the same failure point are not useful).
func (p *Parser) errorAt(tok token.Token, code, message string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.errors = append(p.errors, newParserError(tok, code, message))
}

// synchronize discards tokens until one of the set {NEWLINE, ';', '{', '}',
// 'set', 'function', EOF} is current, per spec.md §7. It always consumes at
// least one token, satisfying the "after any single parse error the parser
// consumes at least one token before resuming" invariant even when current
// already sits on a synchronization token when synchronize is called.
func (p *Parser) synchronize() {
	p.advance()
	for !p.check(token.EOF) {
		switch p.current.Type {
		case token.NEWLINE, token.SEMICOLON, token.LBRACE, token.RBRACE, token.SET, token.FUNCTION:
			p.recoveredErrors++
			p.panicMode = false
			return
		}
		p.advance()
	}
	p.recoveredErrors++
	p.panicMode = false
}

// attachScope records the lexical scope a node was parsed in, for the
// evaluator's benefit (spec.md §3); the parser never reads this back. Only
// declarations and the name-resolving expression nodes the evaluator
// actually needs to look up are tagged — attaching it uniformly to every
// transient sub-expression node would add bookkeeping nothing consumes.
func (p *Parser) attachScope(n ast.Node) {
	if p.scope != nil {
		n.SetScope(p.scope)
	}
}

// parseStatements parses statements until EOF or (at depth >= 1) a DEDENT,
// per spec.md §4.2.4's recursion-depth convention: at the top level (depth
// 0) a stray DEDENT (one no enclosing construct consumed) is skipped;
// at any nested depth it terminates the enclosing block and is left for the
// caller to consume.
func (p *Parser) parseStatements(depth int) []ast.Statement {
	var stmts []ast.Statement
	for {
		switch p.current.Type {
		case token.EOF:
			return stmts
		case token.NEWLINE:
			p.advance()
			continue
		case token.DEDENT:
			if depth == 0 {
				p.advance()
				continue
			}
			return stmts
		}
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
}

// parseBlock parses the common "header, optional NEWLINE, optional INDENT,
// nested statements, optional DEDENT" shape shared by every block-
// introducing construct (spec.md §4.2.4).
func (p *Parser) parseBlock() *ast.Compound {
	body := ast.NewCompound(p.current)
	if p.check(token.NEWLINE) {
		p.advance()
	}
	if p.check(token.INDENT) {
		p.advance()
		body.Statements = p.parseStatements(1)
		if p.check(token.DEDENT) {
			p.advance()
		}
	}
	p.attachScope(body)
	return body
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Type {
	case token.SET:
		return p.parseVariableDefinition()
	case token.FUNCTION:
		return p.parseFunctionDefinition()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseForIn()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		tok := p.current
		p.advance()
		return ast.NewBreak(tok)
	case token.CONTINUE:
		tok := p.current
		p.advance()
		return ast.NewContinue(tok)
	case token.GET:
		return p.parseFileGet()
	case token.PUT:
		return p.parseFilePut()
	case token.IMPORT:
		return p.parseImport()
	case token.EXPORT:
		return p.parseExport()
	case token.CLASS:
		return p.parseClassDefinition()
	case token.TRY:
		return p.parseTryCatch()
	case token.THROW:
		return p.parseThrow()
	default:
		return p.parseExpressionStatement()
	}
}

// parseExpressionStatement is the one production reached directly from
// parseStatement's default case — the only place a bare NAME sits at the
// true statement-expression head, so it is the only place
// AllowStandaloneCall is set (spec.md §4.2.3's is_standalone test,
// scenarios S1/S3). Every recursive descent away from this position
// (call arguments, a binary operand…) clears the flag again before
// reaching a nested primary.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.current
	saved := p.ctx.flags
	p.ctx.flags = p.ctx.withStandaloneCall(true).flags
	expr := p.parseCommaExpression()
	p.ctx.flags = saved
	if ca, ok := expr.(*ast.CompoundAssignment); ok {
		return ca
	}
	return ast.NewExpressionStatement(tok, expr)
}

func (p *Parser) parseVariableDefinition() ast.Statement {
	setTok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected identifier after 'set'")
		p.synchronize()
		return ast.NewVariableDefinition(setTok, "", ast.NewNoop(setTok))
	}
	name := p.current.Lexeme
	p.advance()

	var init ast.Expression
	if p.check(token.NEWLINE) && p.peek(0).Type == token.INDENT {
		p.advance() // NEWLINE
		p.advance() // INDENT
		init = p.parseUnderAssignment(p.parseCommaExpression)
		// The lexer emits NEWLINE before the DEDENT that closes the block.
		if p.check(token.NEWLINE) && p.peek(0).Type == token.DEDENT {
			p.advance()
		}
		if p.check(token.DEDENT) {
			p.advance()
		}
	} else {
		init = p.parseUnderAssignment(p.parseCommaExpression)
	}

	def := ast.NewVariableDefinition(setTok, name, init)
	p.attachScope(def)
	return def
}

// parseUnderAssignment runs parseFn with in_variable_assignment set, saving
// and restoring the previous flags around the call (spec.md §9's
// recommended "parameterize rather than mutate" redesign, implemented as a
// save/restore pair since every call path ultimately bottoms out in the
// same parsePrimary that reads ctx.flags).
func (p *Parser) parseUnderAssignment(parseFn func() ast.Expression) ast.Expression {
	saved := p.ctx.flags
	p.ctx.flags = p.ctx.withVariableAssignment(true).flags
	result := parseFn()
	p.ctx.flags = saved
	return result
}

func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	for {
		switch p.current.Type {
		case token.NEWLINE, token.EOF, token.DEDENT:
			return params
		case token.ELLIPSIS:
			p.advance()
			if !p.check(token.IDENT) {
				p.errorAt(p.current, ErrExpectedIdent, "expected identifier after '...'")
				p.synchronize()
				return params
			}
			params = append(params, ast.Parameter{Name: p.current.Lexeme, IsRest: true})
			p.advance()
			if p.current.Type != token.NEWLINE && p.current.Type != token.EOF && p.current.Type != token.DEDENT {
				p.errorAt(p.current, ErrRestParamNotLast, "rest parameter must be last")
			}
			return params
		case token.IDENT:
			params = append(params, ast.Parameter{Name: p.current.Lexeme})
			p.advance()
		default:
			return params
		}
	}
}

func (p *Parser) parseFunctionDefinition() ast.Statement {
	funcTok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected function name")
		p.synchronize()
		return ast.NewFunctionDefinition(funcTok, "", nil, ast.NewCompound(funcTok))
	}
	name := p.current.Lexeme
	p.advance()
	params := p.parseParameterList()
	body := p.parseBlock()

	def := ast.NewFunctionDefinition(funcTok, name, params, body)
	p.attachScope(def)
	if p.scope != nil {
		// Added immediately so that subsequent object-literal lookahead in
		// this same parse can recognize the name (spec.md §4.2.3, §4.2.5).
		p.scope.AddFunction(def)
	}
	return def
}

func (p *Parser) isSoftMethodKeyword() bool {
	return p.check(token.IDENT) && p.current.Lexeme == "method"
}

func (p *Parser) parseMethodDefinition() *ast.FunctionDefinition {
	tok := p.current // either FUNCTION or the soft keyword 'method'
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected method name")
		p.synchronize()
		return ast.NewFunctionDefinition(tok, "", nil, ast.NewCompound(tok))
	}
	name := p.current.Lexeme
	p.advance()
	params := p.parseParameterList()
	body := p.parseBlock()
	return ast.NewFunctionDefinition(tok, name, params, body)
}

func (p *Parser) parseClassDefinition() ast.Statement {
	classTok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected class name")
		p.synchronize()
		return ast.NewClassDefinition(classTok, "", "", nil)
	}
	name := p.current.Lexeme
	p.advance()

	parent := ""
	if p.check(token.EXTENDS) {
		p.advance()
		if p.check(token.IDENT) {
			parent = p.current.Lexeme
			p.advance()
		} else {
			p.errorAt(p.current, ErrExpectedIdent, "expected parent class name after 'extends'")
		}
	}

	if p.check(token.NEWLINE) {
		p.advance()
	}

	var methods []*ast.FunctionDefinition
	if p.check(token.INDENT) {
		p.advance()
		saved := p.ctx.flags
		p.ctx.flags = p.ctx.withMethodBody(true).flags
		for {
			switch {
			case p.check(token.DEDENT):
				p.advance()
				goto doneMethods
			case p.check(token.EOF):
				goto doneMethods
			case p.check(token.NEWLINE):
				p.advance()
				continue
			case p.check(token.FUNCTION) || p.isSoftMethodKeyword():
				methods = append(methods, p.parseMethodDefinition())
			default:
				goto doneMethods
			}
		}
	doneMethods:
		p.ctx.flags = saved
		if p.check(token.DEDENT) {
			p.advance()
		}
	}

	def := ast.NewClassDefinition(classTok, name, parent, methods)
	p.attachScope(def)
	return def
}

func (p *Parser) parseIf() ast.Statement {
	ifTok := p.current
	p.advance()
	cond := p.parseTernary()
	body := p.parseBlock()
	var elseBody *ast.Compound
	if p.check(token.ELSE) {
		p.advance()
		elseBody = p.parseBlock()
	}
	return ast.NewIf(ifTok, cond, body, elseBody)
}

func (p *Parser) parseWhile() ast.Statement {
	whileTok := p.current
	p.advance()
	cond := p.parseTernary()
	body := p.parseBlock()
	return ast.NewWhile(whileTok, cond, body)
}

func (p *Parser) parseForIn() ast.Statement {
	forTok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected iterator variable name after 'for'")
		p.synchronize()
		return ast.NewForIn(forTok, "", ast.NewNoop(forTok), ast.NewCompound(forTok))
	}
	name := p.current.Lexeme
	p.advance()
	p.expect(token.IN, ErrUnexpectedToken, "expected 'in'")
	iterable := p.parseTernary()
	body := p.parseBlock()
	return ast.NewForIn(forTok, name, iterable, body)
}

func (p *Parser) isStandaloneAhead() bool {
	switch p.current.Type {
	case token.NEWLINE, token.EOF, token.DEDENT:
		return true
	default:
		return false
	}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.current
	p.advance()
	var value ast.Expression
	if !p.isStandaloneAhead() {
		value = p.parseCommaExpression()
	}
	return ast.NewReturn(tok, value)
}

func (p *Parser) parseThrow() ast.Statement {
	tok := p.current
	p.advance()
	var value ast.Expression
	if !p.isStandaloneAhead() {
		value = p.parseCommaExpression()
	}
	return ast.NewThrow(tok, value)
}

func (p *Parser) parseTryCatch() ast.Statement {
	tryTok := p.current
	p.advance()
	tryBody := p.parseBlock()

	excName := ""
	catchBody := ast.NewCompound(p.current)
	if p.check(token.CATCH) {
		p.advance()
		if p.check(token.IDENT) {
			excName = p.current.Lexeme
			p.advance()
		}
		catchBody = p.parseBlock()
	} else {
		p.errorAt(p.current, ErrUnexpectedToken, "expected 'catch'")
	}
	return ast.NewTryCatch(tryTok, tryBody, catchBody, excName)
}

func (p *Parser) parseImport() ast.Statement {
	importTok := p.current
	p.advance()

	if p.check(token.STRING) {
		path := p.current.Lexeme
		p.advance()
		return ast.NewImport(importTok, path, nil)
	}

	var bindings []ast.ImportBinding
	for p.check(token.IDENT) {
		orig := p.current.Lexeme
		p.advance()
		alias := ""
		if p.check(token.IDENT) {
			alias = p.current.Lexeme
			p.advance()
		}
		bindings = append(bindings, ast.ImportBinding{Original: orig, Alias: alias})
		if p.check(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if p.check(token.FROM) {
		p.advance()
	}
	path := ""
	if p.check(token.STRING) {
		path = p.current.Lexeme
		p.advance()
	} else {
		p.errorAt(p.current, ErrUnexpectedToken, "expected module path string")
	}
	return ast.NewImport(importTok, path, bindings)
}

func (p *Parser) parseExport() ast.Statement {
	exportTok := p.current
	p.advance()
	switch {
	case p.check(token.FUNCTION):
		fn := p.parseFunctionDefinition().(*ast.FunctionDefinition)
		return ast.NewExport(exportTok, fn.Name, "", fn)
	case p.check(token.SET):
		vd := p.parseVariableDefinition().(*ast.VariableDefinition)
		return ast.NewExport(exportTok, vd.Name, "", vd)
	case p.check(token.IDENT):
		name := p.current.Lexeme
		p.advance()
		alias := ""
		if p.check(token.IDENT) {
			alias = p.current.Lexeme
			p.advance()
		}
		return ast.NewExport(exportTok, name, alias, nil)
	default:
		p.errorAt(p.current, ErrUnexpectedToken, "expected export target")
		p.synchronize()
		return ast.NewExport(exportTok, "", "", nil)
	}
}

func (p *Parser) parsePropertyPath() *ast.PropertyPath {
	tok := p.current
	var segs []string
	for p.check(token.DOT) {
		p.advance()
		if !p.check(token.IDENT) {
			p.errorAt(p.current, ErrExpectedIdent, "expected property name after '.'")
			break
		}
		segs = append(segs, p.current.Lexeme)
		p.advance()
	}
	return ast.NewPropertyPath(tok, segs)
}

func (p *Parser) parseFileGet() ast.Statement {
	getTok := p.current
	p.advance()
	path := p.parseTernary()
	var prop *ast.PropertyPath
	if p.check(token.DOT) {
		prop = p.parsePropertyPath()
	}
	return ast.NewFileGet(getTok, path, prop)
}

func (p *Parser) parseFilePut() ast.Statement {
	putTok := p.current
	p.advance()
	path := p.parseTernary()
	var prop *ast.PropertyPath
	if p.check(token.DOT) {
		prop = p.parsePropertyPath()
	}
	value := p.parseCommaExpression()
	if ref, ok := asFileReference(value); ok {
		value = ref
	}
	return ast.NewFilePut(putTok, path, prop, value)
}

// strconvNumber parses a NUMBER token's lexeme. The lexer only ever hands
// the parser well-formed decimal digit sequences (see lexer.readNumber), so
// a parse failure here would indicate a lexer bug rather than bad input.
func strconvNumber(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0
	}
	return v
}
