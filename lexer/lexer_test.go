package lexer

import (
	"testing"

	"github.com/akaoio/zen/token"
)

func collectTypes(l *Lexer) []token.Type {
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			return types
		}
	}
}

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `set x 5
x += 1
y = x != 2 and x <= 3`

	tests := []struct {
		expectedLexeme string
		expectedType   token.Type
	}{
		{"set", token.SET},
		{"x", token.IDENT},
		{"5", token.NUMBER},
		{"", token.NEWLINE},
		{"x", token.IDENT},
		{"+=", token.PLUS_ASSIGN},
		{"1", token.NUMBER},
		{"", token.NEWLINE},
		{"y", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"!=", token.NOT_EQ},
		{"2", token.NUMBER},
		{"and", token.AND},
		{"x", token.IDENT},
		{"<=", token.LESS_EQ},
		{"3", token.NUMBER},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (lexeme=%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	input := "1 3.14 3..5 42."
	l := New(input)

	want := []struct {
		typ    token.Type
		lexeme string
	}{
		{token.NUMBER, "1"},
		{token.NUMBER, "3.14"},
		{token.NUMBER, "3"},
		{token.DOTDOT, ".."},
		{token.NUMBER, "5"},
		{token.NUMBER, "42"},
		{token.DOT, "."},
		{token.EOF, ""},
	}
	for i, w := range want {
		tok := l.Next()
		if tok.Type != w.typ || tok.Lexeme != w.lexeme {
			t.Fatalf("tests[%d] - got %s(%q), want %s(%q)", i, tok.Type, tok.Lexeme, w.typ, w.lexeme)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"hello\nworld\t\"quoted\""`)
	tok := l.Next()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := "hello\nworld\t\"quoted\""
	if tok.Lexeme != want {
		t.Fatalf("got %q, want %q", tok.Lexeme, want)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors()))
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("set x @")
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lex error for '@', got %d", len(l.Errors()))
	}
}

// Indentation: the layout algorithm must emit a single INDENT when a nested
// line is deeper than its enclosing line, and one DEDENT per level popped
// when indentation decreases, with nothing beyond NEWLINE on an unchanged
// level.
func TestIndentationBasic(t *testing.T) {
	input := "if x\n    set y 1\n    set z 2\nset w 3"
	l := New(input)

	types := collectTypes(l)
	want := []token.Type{
		token.IF, token.IDENT, token.NEWLINE,
		token.INDENT,
		token.SET, token.IDENT, token.NUMBER, token.NEWLINE,
		token.SET, token.IDENT, token.NUMBER, token.NEWLINE,
		token.DEDENT,
		token.SET, token.IDENT, token.NUMBER,
		token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(types), types, len(want), want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s (full: %v)", i, types[i], want[i], types)
		}
	}
}

func TestIndentationNested(t *testing.T) {
	input := "if a\n    if b\n        set c 1\n    set d 2\nset e 3"
	l := New(input)
	types := collectTypes(l)

	indentCount, dedentCount := 0, 0
	for _, tt := range types {
		if tt == token.INDENT {
			indentCount++
		}
		if tt == token.DEDENT {
			dedentCount++
		}
	}
	if indentCount != 2 {
		t.Errorf("expected 2 INDENT tokens, got %d", indentCount)
	}
	if dedentCount != 2 {
		t.Errorf("expected 2 DEDENT tokens (one per level), got %d", dedentCount)
	}
}

func TestBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	input := "if a\n    set b 1\n\n    # a comment\n    set c 2\nset d 3"
	l := New(input)
	types := collectTypes(l)

	indentCount, dedentCount := 0, 0
	for _, tt := range types {
		if tt == token.INDENT {
			indentCount++
		}
		if tt == token.DEDENT {
			dedentCount++
		}
	}
	if indentCount != 1 || dedentCount != 1 {
		t.Errorf("blank/comment lines should not change indentation: got %d INDENT, %d DEDENT", indentCount, dedentCount)
	}
}

func TestMismatchedDedentReportsError(t *testing.T) {
	// Dedent to a column that was never pushed.
	input := "if a\n        set b 1\n    set c 2"
	l := New(input)
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
	}
	if len(l.Errors()) == 0 {
		t.Fatalf("expected a lex error for the mismatched dedent level")
	}
}

func TestEOFWithoutTrailingNewlineFlushesDedents(t *testing.T) {
	input := "if a\n    set b 1"
	l := New(input)
	types := collectTypes(l)
	if types[len(types)-1] != token.EOF {
		t.Fatalf("stream must end in EOF, got %s", types[len(types)-1])
	}
	if types[len(types)-2] != token.DEDENT {
		t.Fatalf("expected a DEDENT flushed before EOF, got %s", types[len(types)-2])
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("set x 1")
	first := l.Peek(0)
	second := l.Peek(0)
	if first != second {
		t.Fatalf("repeated Peek(0) should be stable: %v != %v", first, second)
	}
	ahead := l.Peek(2)
	if ahead.Type != token.NUMBER {
		t.Fatalf("Peek(2) = %s, want NUMBER", ahead.Type)
	}
	next := l.Next()
	if next.Type != token.SET {
		t.Fatalf("Next() after Peek should still return the first token, got %s", next.Type)
	}
}

func TestBOMIsStripped(t *testing.T) {
	l := New("\xef\xbb\xbfset x 1")
	tok := l.Next()
	if tok.Type != token.SET {
		t.Fatalf("expected SET after BOM strip, got %s", tok.Type)
	}
}

func TestCRLFFoldedToLF(t *testing.T) {
	l := New("set x 1\r\nset y 2")
	types := collectTypes(l)
	newlineCount := 0
	for _, tt := range types {
		if tt == token.NEWLINE {
			newlineCount++
		}
	}
	if newlineCount != 1 {
		t.Fatalf("expected exactly 1 NEWLINE for one CRLF line ending, got %d", newlineCount)
	}
}

func TestUnicodeIdentifierColumnsAreRuneCounted(t *testing.T) {
	l := New(`café x`)
	tok := l.Next()
	if tok.Type != token.IDENT || tok.Lexeme != "café" {
		t.Fatalf("expected IDENT(café), got %s(%q)", tok.Type, tok.Lexeme)
	}
	// "café" is 4 runes but 5 bytes, so x sits at rune column 6.
	next := l.Next()
	if next.Pos.Column != 6 {
		t.Fatalf("expected x at column 6 (rune-counted), got %d", next.Pos.Column)
	}
}
