package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akaoio/zen/diagnostics"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/token"
)

var (
	lexEvalExpr string
	showPos     bool
	showType    bool
	onlyErrors  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a zen file or expression",
	Long: `Tokenize (lex) a zen program and print the resulting tokens,
including the synthetic NEWLINE/INDENT/DEDENT layout tokens.

Examples:
  # Tokenize a script file
  zen lex script.zen

  # Tokenize an inline expression
  zen lex -e "set x 5"

  # Show token types and positions
  zen lex --show-type --show-pos script.zen

  # Show only lex errors (illegal tokens)
  zen lex --only-errors script.zen`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal/error tokens")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input)

	tokenCount := 0
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			if !onlyErrors {
				tokenCount++
				printToken(tok)
			}
			break
		}
		if onlyErrors {
			continue
		}
		tokenCount++
		printToken(tok)
	}

	lexErrors := l.Errors()
	if onlyErrors {
		for _, e := range lexErrors {
			d := diagnostics.New(e.Pos, e.Message, input, filename)
			fmt.Fprintln(os.Stderr, d.Format(shouldColorize(cmd)))
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if len(lexErrors) > 0 {
			fmt.Printf("Errors: %d\n", len(lexErrors))
		}
	}

	if len(lexErrors) > 0 {
		return fmt.Errorf("found %d lex error(s)", len(lexErrors))
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type)
	}

	switch {
	case tok.Type == token.EOF:
		output += " EOF"
	case tok.Type == token.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Lexeme)
	case tok.Lexeme == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}

// readSource resolves the shared "-e EXPR, else file arg" input convention
// used by both lex and parse, returning an error when neither is given. It
// does not read stdin; parse does that itself before calling it.
func readSource(eval string, args []string) (input, name string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func shouldColorize(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		return false
	}
	return diagnostics.StderrIsTerminal()
}
