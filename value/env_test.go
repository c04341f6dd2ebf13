package value

import (
	"math/big"
	"testing"

	"github.com/jonathanlim222/uplc/uplc"
)

func conValue(n int64) *Value {
	return Con(uplc.NewInteger(big.NewInt(n)))
}

func TestEmptyEnvLookupFails(t *testing.T) {
	if _, ok := Empty.Lookup(0); ok {
		t.Errorf("Lookup on empty env succeeded")
	}
	if Empty.Len() != 0 {
		t.Errorf("Empty.Len() = %d; want 0", Empty.Len())
	}
}

func TestExtendBindsAtIndexZero(t *testing.T) {
	e := Empty.Extend(conValue(1)).Extend(conValue(2))
	v0, ok := e.Lookup(0)
	if !ok || v0.Constant.Integer.Int64() != 2 {
		t.Fatalf("Lookup(0) = %v, %v; want the most recently extended value (2)", v0, ok)
	}
	v1, ok := e.Lookup(1)
	if !ok || v1.Constant.Integer.Int64() != 1 {
		t.Fatalf("Lookup(1) = %v, %v; want the first-bound value (1)", v1, ok)
	}
	if _, ok := e.Lookup(2); ok {
		t.Errorf("Lookup(2) succeeded on a two-binding env")
	}
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	base := Empty.Extend(conValue(10))
	_ = base.Extend(conValue(20))
	v, ok := base.Lookup(0)
	if !ok || v.Constant.Integer.Int64() != 10 {
		t.Errorf("extending a child env mutated the parent: Lookup(0) = %v, %v", v, ok)
	}
}

func TestLen(t *testing.T) {
	e := Empty.Extend(conValue(1)).Extend(conValue(2)).Extend(conValue(3))
	if e.Len() != 3 {
		t.Errorf("Len() = %d; want 3", e.Len())
	}
}
