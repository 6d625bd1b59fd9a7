package parser

import (
	"fmt"
	"strings"

	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/token"
)

// parseCommaExpression implements spec.md §4.2.2 level 1: at
// statement-expression level only, a top-level comma-separated list becomes
// an array literal. Callers that are not at statement-expression level
// (conditions, iterables, property paths…) call parseTernary directly so a
// stray comma there is left for an enclosing construct to interpret.
func (p *Parser) parseCommaExpression() ast.Expression {
	tok := p.current
	first := p.parseTernary()
	if !p.check(token.COMMA) {
		return first
	}
	elements := []ast.Expression{first}
	// Only the first element is the statement-expression head; a bare name
	// in a later element is not promoted by is_standalone.
	saved := p.ctx.flags
	p.ctx.flags = p.ctx.withStandaloneCall(false).flags
	for p.check(token.COMMA) {
		p.advance()
		elements = append(elements, p.parseTernary())
	}
	p.ctx.flags = saved
	return ast.NewArray(tok, elements)
}

// parseTernary and parseNullCoalescing are reserved precedence levels
// (spec.md §4.2.2 levels 2-3): both currently pass straight through to the
// binary grammar.
func (p *Parser) parseTernary() ast.Expression {
	return p.parseNullCoalescing()
}

func (p *Parser) parseNullCoalescing() ast.Expression {
	return p.parseBinary(1)
}

// parseBinary is the Pratt-style precedence-climbing entry point for level
// 4 of spec.md §4.2.2. The right operand is parsed with the operator's
// precedence+1, so an operator of the same level ends it and operators
// associate to the left: "a - b - c" is (a - b) - c.
func (p *Parser) parseBinary(minPrecedence int) ast.Expression {
	left := p.parseUnary()
	for {
		prec, ok := precedenceOf(p.current.Type)
		if !ok || prec < minPrecedence {
			return left
		}
		opTok := p.current
		p.advance()
		// A binary operand is never the statement-expression head, so a
		// bare name there must not be promoted by is_standalone even if
		// the outer statement-expression permitted it (spec.md §4.2.3).
		saved := p.ctx.flags
		p.ctx.flags = p.ctx.withStandaloneCall(false).flags
		right := p.parseBinary(prec + 1)
		p.ctx.flags = saved
		left = ast.NewBinaryOp(opTok, left, right)
	}
}

// parseUnary handles the prefix operators 'not' and '-' (spec.md §4.2.2
// level 5).
func (p *Parser) parseUnary() ast.Expression {
	if p.check(token.NOT) || p.check(token.MINUS) {
		opTok := p.current
		p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryOp(opTok, operand)
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary and then the postfix chain of '.name' and
// '[expr]' accesses (spec.md §4.2.2 level 7), promoting a property access to
// a method call wherever it is immediately followed by argument-shaped
// tokens.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.DOT):
			dotTok := p.current
			p.advance()
			if !p.check(token.IDENT) {
				p.errorAt(p.current, ErrExpectedIdent, "expected property name after '.'")
				return expr
			}
			name := p.current.Lexeme
			p.advance()
			pa := ast.NewPropertyAccess(dotTok, expr, name)
			if p.hasArgsAhead() {
				expr = p.promoteMethodCall(pa)
			} else {
				expr = pa
			}
		case p.check(token.LBRACK):
			brTok := p.current
			p.advance()
			index := p.parseTernary()
			p.expect(token.RBRACK, ErrUnexpectedToken, "expected ']'")
			expr = ast.NewIndexAccess(brTok, expr, index)
		default:
			return expr
		}
	}
}

// promoteMethodCall builds the FunctionCall a property access is promoted
// into when immediately followed by argument-shaped tokens (spec.md
// §4.2.5's "method-call promotion").
func (p *Parser) promoteMethodCall(callee *ast.PropertyAccess) *ast.FunctionCall {
	args := p.parseCallArguments()
	call := ast.NewFunctionCall(callee.Tok, callee, args)
	p.attachScope(call)
	return call
}

// hasArgsAhead implements the has_args test shared by the identifier
// disambiguation rule and method-call promotion (spec.md §4.2.3): the next
// token is none of {NEWLINE, EOF, DEDENT, ')', ']', ',', '.', '['} and is
// not a binary operator.
func (p *Parser) hasArgsAhead() bool {
	switch p.current.Type {
	case token.NEWLINE, token.EOF, token.DEDENT, token.RPAREN, token.RBRACK, token.COMMA, token.DOT, token.LBRACK:
		return false
	}
	if _, isBin := precedenceOf(p.current.Type); isBin {
		return false
	}
	return true
}

// isCallTerminator reports whether tt ends a bare (comma-free) argument
// list: the terminator set spec.md §4.2.3 names, plus any binary operator
// (which is left for an enclosing expression to consume).
func isCallTerminator(tt token.Type) bool {
	switch tt {
	case token.NEWLINE, token.EOF, token.DEDENT, token.RPAREN, token.RBRACK, token.COMMA:
		return true
	}
	_, isBin := precedenceOf(tt)
	return isBin
}

// parseCallArguments collects a function call's (or method call's)
// arguments: juxtaposed expressions with no separating comma, since this
// surface syntax never uses one there (spec.md §4.2.3's collection rule).
// Each argument is parsed at the unary level rather than the full binary
// grammar, exactly so that a trailing binary operator ends the argument
// list instead of being swallowed into the last argument.
func (p *Parser) parseCallArguments() []ast.Expression {
	saved := p.ctx.flags
	p.ctx.flags = p.ctx.withFunctionCall(true).withStandaloneCall(false).flags
	defer func() { p.ctx.flags = saved }()

	var args []ast.Expression
	for !isCallTerminator(p.current.Type) {
		args = append(args, p.parseUnary())
	}
	return args
}

// parseNewArguments collects a `new ClassName …` argument list. Unlike a
// plain function call, spec.md §4.2.5 allows commas here as optional
// separators rather than treating one as a hard terminator.
func (p *Parser) parseNewArguments() []ast.Expression {
	saved := p.ctx.flags
	p.ctx.flags = p.ctx.withFunctionCall(true).withStandaloneCall(false).flags
	defer func() { p.ctx.flags = saved }()

	var args []ast.Expression
	for {
		switch p.current.Type {
		case token.NEWLINE, token.EOF, token.DEDENT, token.RPAREN, token.RBRACK:
			return args
		case token.COMMA:
			p.advance()
			continue
		}
		if _, isBin := precedenceOf(p.current.Type); isBin {
			return args
		}
		args = append(args, p.parseUnary())
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current
	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumberLiteral(tok, strconvNumber(tok.Lexeme))
	case token.STRING:
		p.advance()
		return ast.NewStringLiteral(tok, tok.Lexeme)
	case token.TRUE:
		p.advance()
		return ast.NewBoolLiteral(tok, true)
	case token.FALSE:
		p.advance()
		return ast.NewBoolLiteral(tok, false)
	case token.NULL:
		p.advance()
		return ast.NewNullLiteral(tok)
	case token.UNDECIDABLE:
		p.advance()
		return ast.NewUndecidableLiteral(tok)
	case token.LPAREN:
		p.advance()
		expr := p.parseCommaExpression()
		p.expect(token.RPAREN, ErrUnexpectedToken, "expected ')'")
		return expr
	case token.LBRACK:
		return p.parseArrayLiteral()
	case token.ELLIPSIS:
		return p.parseSpread()
	case token.NEW:
		return p.parseNewExpression()
	case token.IDENT:
		return p.parseIdentifierExpression()
	default:
		p.errorAt(tok, ErrNoPrefixParse, fmt.Sprintf("unexpected token %s", tok.Type))
		p.synchronize()
		return ast.NewNoop(tok)
	}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.current
	p.advance()
	var elems []ast.Expression
	for !p.check(token.RBRACK) && !p.check(token.EOF) {
		elems = append(elems, p.parseTernary())
		if p.check(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.RBRACK, ErrUnexpectedToken, "expected ']'")
	return ast.NewArray(tok, elems)
}

func (p *Parser) parseSpread() ast.Expression {
	tok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected identifier after '...'")
		return ast.NewNoop(tok)
	}
	varTok := p.current
	name := varTok.Lexeme
	p.advance()
	return ast.NewSpread(tok, ast.NewVariable(varTok, name))
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.current
	p.advance()
	if !p.check(token.IDENT) {
		p.errorAt(p.current, ErrExpectedIdent, "expected class name after 'new'")
		return ast.NewNoop(tok)
	}
	className := p.current.Lexeme
	p.advance()
	args := p.parseNewArguments()
	return ast.NewNewExpression(tok, className, args)
}

// asFileReference recognizes the `"@ path[.prop…]"` string-literal form
// spec.md §4.2.5 requires `put` to parse as a FileReference rather than a
// plain string, and builds that node.
func asFileReference(value ast.Expression) (ast.Expression, bool) {
	lit, ok := value.(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralString || !strings.HasPrefix(lit.Str, "@ ") {
		return nil, false
	}
	rest := strings.TrimPrefix(lit.Str, "@ ")
	parts := strings.Split(rest, ".")
	target := ast.Expression(ast.NewVariable(lit.Tok, parts[0]))
	var path *ast.PropertyPath
	if len(parts) > 1 {
		path = ast.NewPropertyPath(lit.Tok, parts[1:])
	}
	return ast.NewFileReference(lit.Tok, target, path), true
}
