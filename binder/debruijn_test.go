package binder

import "testing"

func TestZeroIsInnermost(t *testing.T) {
	if Zero().Index() != 0 {
		t.Errorf("Zero().Index() = %d; want 0", Zero().Index())
	}
}

func TestNewVarIndex(t *testing.T) {
	v := NewVar(3)
	if v.Index() != 3 {
		t.Errorf("NewVar(3).Index() = %d; want 3", v.Index())
	}
}

func TestParamNameIsPlaceholder(t *testing.T) {
	if Zero().Name() != "_" {
		t.Errorf("Name() = %q; want \"_\"", Zero().Name())
	}
}

func TestString(t *testing.T) {
	if got := NewVar(7).String(); got != "7" {
		t.Errorf("String() = %q; want %q", got, "7")
	}
}

func TestSatisfiesVarAndParamInterfaces(t *testing.T) {
	var _ Var = DeBruijn(0)
	var _ Param = DeBruijn(0)
}
