package diagnostics

import (
	"strings"
	"testing"

	"github.com/akaoio/zen/token"
)

func pos(line, col int) token.Position {
	return token.Position{Line: line, Column: col}
}

func TestFormatIncludesHeaderSourceLineAndCaret(t *testing.T) {
	d := New(pos(2, 5), "unexpected token", "set x 1\nset y @\n", "script.zen")
	out := d.Format(false)

	if !strings.Contains(out, "script.zen:2:5") {
		t.Errorf("expected header with file:line:col, got %q", out)
	}
	if !strings.Contains(out, "set y @") {
		t.Errorf("expected source line to be quoted, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("expected a caret, got %q", out)
	}
	if !strings.Contains(out, "unexpected token") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestFormatWithoutFileUsesLineHeader(t *testing.T) {
	d := New(pos(1, 1), "boom", "x", "")
	out := d.Format(false)
	if !strings.HasPrefix(out, "error at line 1:1") {
		t.Errorf("expected line-only header, got %q", out)
	}
}

func TestFormatOutOfRangeLineOmitsSourceContext(t *testing.T) {
	d := New(pos(99, 1), "boom", "only one line", "f.zen")
	out := d.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("expected no source line gutter for an out-of-range line, got %q", out)
	}
}

func TestErrorMatchesUncolorizedFormat(t *testing.T) {
	d := New(pos(1, 1), "boom", "x", "f.zen")
	if d.Error() != d.Format(false) {
		t.Errorf("Error() should equal Format(false)")
	}
}

func TestFormatAllEmpty(t *testing.T) {
	if got := FormatAll(nil, false); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty string", got)
	}
}

func TestFormatAllSingleOmitsNumbering(t *testing.T) {
	d := New(pos(1, 1), "boom", "x", "f.zen")
	out := FormatAll([]*Diagnostic{d}, false)
	if strings.Contains(out, "[1/1]") {
		t.Errorf("a single diagnostic should not be numbered, got %q", out)
	}
}

func TestFormatAllMultipleNumbersEach(t *testing.T) {
	a := New(pos(1, 1), "first", "x\ny", "f.zen")
	b := New(pos(2, 1), "second", "x\ny", "f.zen")
	out := FormatAll([]*Diagnostic{a, b}, false)

	if !strings.Contains(out, "2 error(s)") {
		t.Errorf("expected error count header, got %q", out)
	}
	if !strings.Contains(out, "[1/2]") || !strings.Contains(out, "[2/2]") {
		t.Errorf("expected both diagnostics to be numbered, got %q", out)
	}
}
