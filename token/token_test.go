package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		lexeme   string
		expected Type
	}{
		{"set", SET},
		{"function", FUNCTION},
		{"if", IF},
		{"else", ELSE},
		{"while", WHILE},
		{"for", FOR},
		{"in", IN},
		{"return", RETURN},
		{"break", BREAK},
		{"continue", CONTINUE},
		{"get", GET},
		{"put", PUT},
		{"import", IMPORT},
		{"from", FROM},
		{"export", EXPORT},
		{"class", CLASS},
		{"extends", EXTENDS},
		{"new", NEW},
		{"try", TRY},
		{"catch", CATCH},
		{"throw", THROW},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"undecidable", UNDECIDABLE},
		{"and", AND},
		{"or", OR},
		{"not", NOT},
		{"myVar", IDENT},
		{"method", IDENT}, // soft keyword: only the parser treats this specially
		{"Point", IDENT},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.lexeme); got != tt.expected {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.lexeme, got, tt.expected)
		}
	}
}

func TestTypeString(t *testing.T) {
	if SET.String() != "set" {
		t.Errorf("SET.String() = %q, want %q", SET.String(), "set")
	}
	if got := Type(9999).String(); got != "Type(9999)" {
		t.Errorf("unknown type String() = %q, want Type(9999)", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	if got := p.String(); got != "3:7" {
		t.Errorf("Position.String() = %q, want %q", got, "3:7")
	}
}

func TestTokenLength(t *testing.T) {
	tok := Token{Type: IDENT, Lexeme: "café"}
	if got := tok.Length(); got != 4 {
		t.Errorf("Length() of %q = %d, want 4 (rune count, not byte count)", tok.Lexeme, got)
	}

	layout := Token{Type: NEWLINE}
	if got := layout.Length(); got != 1 {
		t.Errorf("Length() of layout token = %d, want 1", got)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENT, Lexeme: "x", Pos: Position{Line: 1, Column: 5}}
	want := `IDENT("x")@1:5`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

func TestTokenClone(t *testing.T) {
	tok := Token{Type: NUMBER, Lexeme: "42", Pos: Position{Line: 2, Column: 1}}
	clone := tok.Clone()
	if clone != tok {
		t.Errorf("Clone() = %+v, want %+v", clone, tok)
	}
}
