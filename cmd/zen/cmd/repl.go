package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/builtin"
	"github.com/akaoio/zen/diagnostics"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
)

// Color definitions for REPL output.
var (
	replBlue   = color.New(color.FgBlue)
	replYellow = color.New(color.FgYellow)
	replRed    = color.New(color.FgRed)
	replGreen  = color.New(color.FgGreen)
	replCyan   = color.New(color.FgCyan)
)

var replPrompt string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-parse-print loop",
	Long: `Start an interactive session that reads zen source line by line,
parses each line, and prints the resulting AST (or any lex/parse errors).

Since this binary implements no evaluator, the REPL shows what the parser
produced rather than a computed value. Type '.exit' or press Ctrl+D to quit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replPrompt, "prompt", "zen> ", "prompt string shown before each line")
}

// Repl holds the display strings around an interactive session, mirroring
// how the reference REPL this is modeled on separates banner assembly from
// the read loop itself.
type Repl struct {
	Banner string
	Prompt string
	Scope  *scope.Scope
	Oracle builtin.Oracle
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, prompt string) *Repl {
	return &Repl{
		Banner: banner,
		Prompt: prompt,
		Scope:  scope.New(),
		Oracle: builtin.NewStaticOracle(),
	}
}

func (r *Repl) printBanner(w io.Writer) {
	line := strings.Repeat("-", 60)
	replBlue.Fprintf(w, "%s\n", line)
	replGreen.Fprintf(w, "%s\n", r.Banner)
	replBlue.Fprintf(w, "%s\n", line)
	replCyan.Fprintln(w, "Type zen source and press enter.")
	replCyan.Fprintln(w, "Type '.exit' to quit, up/down arrows for history.")
	replBlue.Fprintf(w, "%s\n", line)
}

// Start runs the main read-parse-print loop until EOF, an error from
// readline, or the user typing ".exit".
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF (Ctrl+D) or readline.ErrInterrupt (Ctrl+C)
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return nil
		}

		r.evalLine(w, line)
	}
}

// evalLine parses one line of input against the REPL's persistent scope and
// prints either the resulting statements or any diagnostics.
func (r *Repl) evalLine(w io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			replRed.Fprintf(w, "[internal error] %v\n", rec)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l, r.Oracle)
	program := p.Parse(r.Scope)

	colorize := diagnostics.StderrIsTerminal()

	for _, e := range l.Errors() {
		d := diagnostics.New(e.Pos, e.Message, line, "<repl>")
		replRed.Fprintf(w, "%s\n", d.Format(colorize))
	}
	for _, pe := range p.Errors() {
		d := diagnostics.New(pe.Pos, pe.Message, line, "<repl>")
		replRed.Fprintf(w, "%s\n", d.Format(colorize))
	}
	if len(l.Errors()) > 0 {
		return
	}
	if p.HasErrors() {
		return
	}

	for _, stmt := range program.Statements {
		printStatement(w, stmt)
	}
}

func printStatement(w io.Writer, stmt ast.Statement) {
	replYellow.Fprintf(w, "%s\n", stmt.String())
}

func runRepl(cmd *cobra.Command, args []string) error {
	r := NewRepl("zen - interactive front end", replPrompt)
	return r.Start(cmd.OutOrStdout())
}
