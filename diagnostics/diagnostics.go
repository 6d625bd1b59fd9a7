// Package diagnostics formats lexer and parser errors with source context
// and a caret pointing at the offending column, optionally colorized for a
// terminal.
//
// Grounded on the teacher's internal/errors/errors.go CompilerError type;
// ported from lexer.Position to token.Position and from the teacher's
// hand-rolled ANSI escapes to github.com/fatih/color, gated by
// github.com/mattn/go-isatty so piped/redirected output stays plain.
package diagnostics

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/akaoio/zen/token"
)

// Diagnostic is a single lex or parse error with enough context to render a
// source-pointing message.
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a Diagnostic anchored at pos.
func New(pos token.Position, message, source, file string) *Diagnostic {
	return &Diagnostic{Pos: pos, Message: message, Source: source, File: file}
}

func (d *Diagnostic) Error() string { return d.Format(false) }

// StderrIsTerminal reports whether os.Stderr looks like an interactive
// terminal — the signal the CLI uses to decide whether to colorize
// diagnostics by default.
func StderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// Format renders the diagnostic: a "file:line:col" header, the offending
// source line, a caret under the error column, then the message. When
// colorize is true, the header is bold, the caret is bold red.
func (d *Diagnostic) Format(colorize bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("line %d:%d", d.Pos.Line, d.Pos.Column)
	if d.File != "" {
		header = fmt.Sprintf("%s:%d:%d", d.File, d.Pos.Line, d.Pos.Column)
	}
	if colorize {
		sb.WriteString(color.New(color.Bold).Sprintf("error at %s\n", header))
	} else {
		sb.WriteString(fmt.Sprintf("error at %s\n", header))
	}

	if line := d.sourceLine(d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if colorize {
			sb.WriteString(color.New(color.FgRed, color.Bold).Sprint("^"))
		} else {
			sb.WriteString("^")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(d.Message)
	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, colorize bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(colorize)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(diags)))
		sb.WriteString(d.Format(colorize))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
