// Package builtin defines the Oracle interface the parser consults to tell
// built-in function names apart from user-defined ones during the
// identifier-disambiguation rule (spec.md §4.2.3) and the object-literal
// lookahead (spec.md §4.2.3). The standard library of built-in functions
// itself — what each one does at runtime — is an external collaborator
// (spec.md §1): this package only ever answers "is this name one of
// yours?".
//
// Grounded on the teacher's BuiltinChecker interface
// (internal/semantic/pass_context.go), narrowed to the single predicate
// spec.md §6 specifies; the reference name catalogue below is supplemented
// from akashmaji946-go-mix's std/*.go package-per-domain builtin naming.
package builtin

// Oracle answers whether name is a recognized built-in function. The
// parser never enumerates or invokes built-ins, only asks this one
// question.
type Oracle interface {
	IsBuiltin(name string) bool
}

// coreNames is the minimum set spec.md §6 requires every Oracle
// implementation to recognize.
var coreNames = []string{
	"print", "input",
	"readFile", "writeFile", "appendFile", "fileExists",
	"length", "upper", "lower", "trim", "split", "contains", "replace",
}

// extendedNames supplements the core set with the broader surface a
// real interpreter's standard library tends to expose, grounded on
// akashmaji946-go-mix's per-domain std packages (math, arrays, maps,
// strings, json, time).
var extendedNames = []string{
	// std/math.go-shaped
	"abs", "floor", "ceil", "round", "sqrt", "pow", "min", "max",
	// std/arrays.go-shaped
	"push", "pop", "slice", "join", "map", "filter", "reduce", "sort", "reverse",
	// std/strings.go-shaped
	"startsWith", "endsWith", "indexOf", "repeat", "padStart", "padEnd",
	// std/maps.go-shaped
	"keys", "values", "has",
	// std/json.go-shaped
	"toJSON", "fromJSON",
	// std/time.go-shaped
	"now", "sleep",
	// std/format.go-shaped
	"format",
}

// StaticOracle is a reference Oracle backed by a fixed name set. It exists
// so the parser and its tests have a concrete, dependency-free Oracle to
// run against; a real embedding evaluator is expected to supply its own
// Oracle backed by its actual standard-library registry.
type StaticOracle struct {
	names map[string]struct{}
}

// NewStaticOracle builds a StaticOracle seeded with the core builtin names
// spec.md §6 requires, the supplemented extended names above, and any
// additional names the caller provides.
func NewStaticOracle(extra ...string) *StaticOracle {
	o := &StaticOracle{names: make(map[string]struct{}, len(coreNames)+len(extendedNames)+len(extra))}
	for _, n := range coreNames {
		o.names[n] = struct{}{}
	}
	for _, n := range extendedNames {
		o.names[n] = struct{}{}
	}
	for _, n := range extra {
		o.names[n] = struct{}{}
	}
	return o
}

// IsBuiltin reports whether name is registered.
func (o *StaticOracle) IsBuiltin(name string) bool {
	_, ok := o.names[name]
	return ok
}

// NoneOracle recognizes no names. Useful in tests that want to exercise
// the disambiguation rule's has_args/is_standalone paths in isolation from
// the is_builtin path.
type NoneOracle struct{}

// IsBuiltin always returns false.
func (NoneOracle) IsBuiltin(string) bool { return false }
