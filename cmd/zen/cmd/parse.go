package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akaoio/zen/ast"
	"github.com/akaoio/zen/builtin"
	"github.com/akaoio/zen/diagnostics"
	"github.com/akaoio/zen/lexer"
	"github.com/akaoio/zen/parser"
	"github.com/akaoio/zen/scope"
)

var (
	parseEvalExpr string
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse zen source code and display the AST",
	Long: `Parse zen source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to show the full tree
structure instead of the compact debug rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input, filename string
	var err error

	if parseEvalExpr != "" || len(args) > 0 {
		input, filename, err = readSource(parseEvalExpr, args)
		if err != nil {
			return err
		}
	} else {
		data, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			return fmt.Errorf("error reading stdin: %w", rerr)
		}
		input, filename = string(data), "<stdin>"
	}

	l := lexer.New(input)
	p := parser.New(l, builtin.NewStaticOracle())
	program := p.Parse(scope.New())

	colorize := shouldColorize(cmd)
	if len(l.Errors()) > 0 {
		fmt.Fprintln(os.Stderr, "Lex errors:")
		for _, e := range l.Errors() {
			d := diagnostics.New(e.Pos, e.Message, input, filename)
			fmt.Fprintln(os.Stderr, d.Format(colorize))
		}
	}
	if p.HasErrors() {
		fmt.Fprintln(os.Stderr, "Parse errors:")
		for _, pe := range p.Errors() {
			d := diagnostics.New(pe.Pos, pe.Message, input, filename)
			fmt.Fprintln(os.Stderr, d.Format(colorize))
		}
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	} else {
		fmt.Println(program.String())
	}

	if len(l.Errors()) > 0 || p.HasErrors() {
		return fmt.Errorf("parsing failed with %d lex error(s), %d parse error(s)", len(l.Errors()), p.ErrorCount())
	}
	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	switch n := node.(type) {
	case *ast.Compound:
		fmt.Printf("%sCompound (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.VariableDefinition:
		fmt.Printf("%sVariableDefinition: %s\n", prefix, n.Name)
		dumpASTNode(n.Init, indent+1)
	case *ast.FunctionDefinition:
		fmt.Printf("%sFunctionDefinition: %s(%v)\n", prefix, n.Name, n.Params)
		dumpASTNode(n.Body, indent+1)
	case *ast.ClassDefinition:
		fmt.Printf("%sClassDefinition: %s extends %q\n", prefix, n.Name, n.Parent)
		for _, m := range n.Methods {
			dumpASTNode(m, indent+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", prefix)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Body, indent+1)
		if n.ElseBody != nil {
			dumpASTNode(n.ElseBody, indent+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", prefix)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ForIn:
		fmt.Printf("%sForIn: %s\n", prefix, n.IteratorName)
		dumpASTNode(n.Iterable, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", prefix)
		dumpASTNode(n.Expr, indent+1)
	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Operand, indent+1)
	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall\n", prefix)
		dumpASTNode(n.Callee, indent+1)
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.PropertyAccess:
		fmt.Printf("%sPropertyAccess: %s\n", prefix, n.Name)
		dumpASTNode(n.Object, indent+1)
	case *ast.Variable:
		fmt.Printf("%sVariable: %s\n", prefix, n.Name)
	case *ast.Literal:
		fmt.Printf("%sLiteral: %s\n", prefix, n.String())
	case *ast.Object:
		fmt.Printf("%sObject: %v\n", prefix, n.Keys)
	case *ast.Array:
		fmt.Printf("%sArray (%d elements)\n", prefix, len(n.Elements))
		for _, e := range n.Elements {
			dumpASTNode(e, indent+1)
		}
	default:
		fmt.Printf("%s%T: %s\n", prefix, node, node.String())
	}
}
