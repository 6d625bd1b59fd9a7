package parser

import (
	"fmt"

	"github.com/akaoio/zen/token"
)

// Error code constants for programmatic error handling, grounded on the
// teacher's internal/parser/error.go constant block.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrExpectedIndent   = "E_EXPECTED_INDENT"
	ErrExpectedDedent   = "E_EXPECTED_DEDENT"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrInvalidExpression = "E_INVALID_EXPRESSION"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrRestParamNotLast = "E_REST_PARAM_NOT_LAST"
	ErrInvalidSyntax    = "E_INVALID_SYNTAX"
)

// ParserError is a structured parse error with position information,
// mirroring the teacher's ParserError type.
type ParserError struct {
	Message string
	Code    string
	Pos     token.Position
	Length  int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// newParserError builds a ParserError anchored at tok.
func newParserError(tok token.Token, code, message string) *ParserError {
	return &ParserError{Message: message, Code: code, Pos: tok.Pos, Length: tok.Length()}
}
