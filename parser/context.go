package parser

import "github.com/akaoio/zen/token"

// ContextFlags are the mutable parsing-mode flags spec.md §4.2 requires:
// the same syntax (an identifier, or a class-body statement) parses
// differently depending on which of these is set when the parser reaches
// it. Grounded on the teacher's internal/parser/context.go ContextFlags
// struct; narrowed to the four flags spec.md names plus AllowStandaloneCall.
type ContextFlags struct {
	// InVariableAssignment is set while parsing the right-hand side of
	// `set NAME ...`. It is the flag the object-literal lookahead rule
	// (spec.md §4.2.3) gates on.
	InVariableAssignment bool

	// InMethodBody is set while parsing inside a class method body.
	InMethodBody bool

	// InFunctionCall is set while parsing function/method argument lists.
	InFunctionCall bool

	// InPrintStatement is reserved for future use; spec.md §4.2 and §9
	// both note the source probes this flag but never sets it. Kept for
	// parity, never read by any production in this parser.
	InPrintStatement bool

	// AllowStandaloneCall is set only for the single primary parsed
	// directly off a statement-expression (parseStatement's default
	// case): that is the one position where a bare NAME immediately
	// followed by NEWLINE/EOF/DEDENT is promoted to a zero-argument
	// FunctionCall (spec.md §4.2.3's is_standalone test, scenarios S1/S3).
	// It is clear in every other position: a return/throw value or a for-in
	// iterable is parsed with it never set, and collecting call arguments,
	// the operand of a binary operator, a compound-assignment value, and
	// the later elements of a comma expression clear it first, so the same
	// bare name used there stays a plain Variable instead.
	AllowStandaloneCall bool
}

// ParseContext bundles the mode flags with a block-nesting stack. No
// production in this parser pushes onto the stack, so it stays empty and
// error messages do not name an enclosing construct. Grounded on the
// teacher's internal/parser/context.go ParseContext type, dropped down from
// its EnableSemanticAnalysis/ParsingPostCondition fields (this parser
// performs no semantic analysis — spec.md's Non-goals) to the ContextFlags
// above.
type ParseContext struct {
	flags      ContextFlags
	blockStack []blockContext
}

type blockContext struct {
	Kind string
	Pos  token.Position
}

// newParseContext returns a ParseContext with every flag clear.
func newParseContext() *ParseContext {
	return &ParseContext{}
}

// withVariableAssignment returns a copy of ctx with InVariableAssignment
// set to v — used to save/restore the flag around parsing a `set`
// initializer rather than mutating ambient state that would otherwise
// leak across an unrelated nested parse (spec.md §9's own recommended
// redesign: "prefer to parameterize... rather than carrying mutable state
// on the parser").
func (ctx ParseContext) withVariableAssignment(v bool) ParseContext {
	ctx.flags.InVariableAssignment = v
	return ctx
}

func (ctx ParseContext) withMethodBody(v bool) ParseContext {
	ctx.flags.InMethodBody = v
	return ctx
}

func (ctx ParseContext) withFunctionCall(v bool) ParseContext {
	ctx.flags.InFunctionCall = v
	return ctx
}

func (ctx ParseContext) withStandaloneCall(v bool) ParseContext {
	ctx.flags.AllowStandaloneCall = v
	return ctx
}

func (ctx *ParseContext) pushBlock(kind string, pos token.Position) {
	ctx.blockStack = append(ctx.blockStack, blockContext{Kind: kind, Pos: pos})
}

func (ctx *ParseContext) popBlock() {
	if len(ctx.blockStack) > 0 {
		ctx.blockStack = ctx.blockStack[:len(ctx.blockStack)-1]
	}
}

func (ctx *ParseContext) currentBlock() *blockContext {
	if len(ctx.blockStack) == 0 {
		return nil
	}
	return &ctx.blockStack[len(ctx.blockStack)-1]
}
