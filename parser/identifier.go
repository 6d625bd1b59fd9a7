package parser

import (
	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/token"
)

// parseIdentifierExpression implements the central identifier
// disambiguation rule (spec.md §4.2.3): a bare NAME parses as a Variable, a
// FunctionCall, or (only while parsing a `set` initializer, and only
// outside a method body or call argument list) an Object literal.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	nameTok := p.current
	name := nameTok.Lexeme

	flags := p.ctx.flags
	if flags.InVariableAssignment && !flags.InMethodBody && !flags.InFunctionCall {
		if p.isObjectLiteralAhead() {
			return p.parseObjectLiteral()
		}
	}

	p.advance() // consume NAME

	if isCompoundAssignOp(p.current.Type) {
		opTok := p.current
		p.advance()
		// The assigned value is not the statement-expression head.
		saved := p.ctx.flags
		p.ctx.flags = p.ctx.withStandaloneCall(false).flags
		value := p.parseTernary()
		p.ctx.flags = saved
		ca := ast.NewCompoundAssignment(opTok, ast.NewVariable(nameTok, name), value)
		p.attachScope(ca)
		return ca
	}

	hasArgs := p.hasArgsAhead()
	isBuiltin := p.oracle != nil && p.oracle.IsBuiltin(name)
	// is_standalone only promotes a bare name at the true statement-
	// expression head (spec.md §4.2.3, scenarios S1/S3) — flags.AllowStandaloneCall
	// is cleared everywhere else a primary is reached recursively.
	isStandalone := flags.AllowStandaloneCall && p.isStandaloneAhead()

	if hasArgs || isBuiltin || isStandalone {
		args := p.parseCallArguments()
		callee := ast.NewVariable(nameTok, name)
		call := ast.NewFunctionCall(nameTok, callee, args)
		p.attachScope(call)
		return call
	}

	v := ast.NewVariable(nameTok, name)
	p.attachScope(v)
	return v
}

// isObjectLiteralAhead runs the object-literal lookahead (spec.md §4.2.3)
// without consuming any tokens: lexer.Lexer.Peek already buffers
// non-destructively, so there is no cursor to save and restore here (see
// DESIGN.md's note on the Peek-based redesign of the source's
// save-state/restore-state discipline).
func (p *Parser) isObjectLiteralAhead() bool {
	name := p.current.Lexeme
	if p.oracle != nil && p.oracle.IsBuiltin(name) {
		return false
	}
	if p.scope != nil {
		if _, ok := p.scope.GetFunction(name); ok {
			return false
		}
	}

	t1 := p.peek(0)
	t2 := p.peek(1)

	if t1.Type == token.COMMA {
		// "ID ," — comma-separated keys without values.
		return true
	}

	if !isObjectValueStart(t1.Type) {
		return false
	}

	if t1.Type == token.NUMBER {
		// "ID NUMBER" requires a third token of ',' or ':' to avoid
		// misreading a call like "test_func 42" as an object literal.
		return t2.Type == token.COMMA || t2.Type == token.COLON
	}

	if t1.Type == token.IDENT {
		// "ID ID" requires no following '(', binary operator, '.', or '['.
		switch t2.Type {
		case token.LPAREN, token.DOT, token.LBRACK:
			return false
		}
		_, isBin := precedenceOf(t2.Type)
		return !isBin
	}

	// STRING/TRUE/FALSE/NULL/UNDECIDABLE/'[' accept conservatively provided
	// the following token is not '(' and not a binary operator — this also
	// covers the "ID VALUE , ID" five-token pattern, since a following
	// comma satisfies that condition trivially.
	if t2.Type == token.LPAREN {
		return false
	}
	_, isBin := precedenceOf(t2.Type)
	return !isBin
}

func isObjectValueStart(tt token.Type) bool {
	switch tt {
	case token.STRING, token.NUMBER, token.TRUE, token.FALSE, token.NULL, token.UNDECIDABLE, token.LBRACK, token.IDENT:
		return true
	default:
		return false
	}
}

// parseObjectLiteral parses a record literal of "KEY [VALUE]" pairs
// separated by commas, matching whatever isObjectLiteralAhead accepted. A
// key with no value (immediately followed by ',' or a statement terminator)
// stores a nil value (ast.Object.String renders that as "<missing>").
func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.current
	var keys []string
	var values []ast.Expression

	for p.check(token.IDENT) {
		keyTok := p.current
		p.advance()

		if p.check(token.COMMA) || p.isStandaloneAhead() {
			keys = append(keys, keyTok.Lexeme)
			values = append(values, nil)
		} else {
			val := p.parseTernary()
			keys = append(keys, keyTok.Lexeme)
			values = append(values, val)
		}

		if p.check(token.COMMA) {
			p.advance()
			continue
		}
		break
	}

	obj := ast.NewObject(tok, keys, values)
	p.attachScope(obj)
	return obj
}
