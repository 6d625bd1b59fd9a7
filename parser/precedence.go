package parser

import "github.com/akaoio/zen/token"

// precedenceOf reports the binary-operator precedence of tt (spec.md
// §4.2.2's table), and whether tt is a binary operator at all.
func precedenceOf(tt token.Type) (int, bool) {
	switch tt {
	case token.OR:
		return 1, true
	case token.AND:
		return 2, true
	case token.ASSIGN, token.NOT_EQ:
		return 3, true
	case token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ:
		return 4, true
	case token.PLUS, token.MINUS, token.DOTDOT:
		return 5, true
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return 6, true
	default:
		return 0, false
	}
}

// isCompoundAssignOp reports whether tt opens a compound-assignment (+= -=
// *= /= %=).
func isCompoundAssignOp(tt token.Type) bool {
	switch tt {
	case token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.ASTERISK_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN:
		return true
	default:
		return false
	}
}
