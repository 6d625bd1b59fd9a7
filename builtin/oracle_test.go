package builtin

import "testing"

func TestStaticOracleCoreNames(t *testing.T) {
	o := NewStaticOracle()
	for _, name := range []string{"print", "input", "readFile", "length", "split", "contains"} {
		if !o.IsBuiltin(name) {
			t.Errorf("expected %q to be a recognized builtin", name)
		}
	}
}

func TestStaticOracleExtendedNames(t *testing.T) {
	o := NewStaticOracle()
	for _, name := range []string{"abs", "push", "startsWith", "keys", "toJSON", "now"} {
		if !o.IsBuiltin(name) {
			t.Errorf("expected %q to be a recognized extended builtin", name)
		}
	}
}

func TestStaticOracleUnknownName(t *testing.T) {
	o := NewStaticOracle()
	if o.IsBuiltin("notARealBuiltin") {
		t.Error("unexpected name should not be recognized as builtin")
	}
}

func TestStaticOracleExtraNames(t *testing.T) {
	o := NewStaticOracle("myCustomBuiltin")
	if !o.IsBuiltin("myCustomBuiltin") {
		t.Error("extra name passed to NewStaticOracle should be recognized")
	}
}

func TestNoneOracleRecognizesNothing(t *testing.T) {
	var o NoneOracle
	if o.IsBuiltin("print") {
		t.Error("NoneOracle should never recognize any name, even a core one")
	}
}
