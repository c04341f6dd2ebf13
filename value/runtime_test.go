package value

import (
	"math/big"
	"testing"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/uplc"
)

func TestNewRuntimeIsUnready(t *testing.T) {
	rt := NewRuntime(builtin.AddInteger)
	if rt.IsReady() {
		t.Errorf("fresh AddInteger runtime reported IsReady() = true")
	}
	if !rt.IsArrow() {
		t.Errorf("fresh AddInteger runtime reported IsArrow() = false")
	}
}

func TestPushToSaturation(t *testing.T) {
	rt := NewRuntime(builtin.AddInteger)
	rt = rt.Push(Con(uplc.NewInteger(big.NewInt(2))))
	if rt.IsReady() {
		t.Fatalf("AddInteger with 1 of 2 args reported IsReady() = true")
	}
	rt = rt.Push(Con(uplc.NewInteger(big.NewInt(3))))
	if !rt.IsReady() {
		t.Fatalf("AddInteger with 2 of 2 args reported IsReady() = false")
	}
	if len(rt.Args) != 2 {
		t.Errorf("len(Args) = %d; want 2", len(rt.Args))
	}
}

func TestPushDoesNotMutateOriginal(t *testing.T) {
	rt0 := NewRuntime(builtin.AddInteger)
	rt1 := rt0.Push(Con(uplc.NewInteger(big.NewInt(1))))
	if len(rt0.Args) != 0 {
		t.Errorf("Push mutated the receiver: len(rt0.Args) = %d; want 0", len(rt0.Args))
	}
	if len(rt1.Args) != 1 {
		t.Errorf("len(rt1.Args) = %d; want 1", len(rt1.Args))
	}
}

func TestForceArityGating(t *testing.T) {
	rt := NewRuntime(builtin.IfThenElse)
	if !rt.NeedsForce() {
		t.Fatalf("fresh IfThenElse runtime reported NeedsForce() = false")
	}
	rt = rt.Force()
	if rt.NeedsForce() {
		t.Errorf("IfThenElse after one Force still reported NeedsForce() = true")
	}
	rt = rt.Push(Con(uplc.NewBool(true)))
	rt = rt.Push(Con(uplc.NewInteger(big.NewInt(1))))
	rt = rt.Push(Con(uplc.NewInteger(big.NewInt(2))))
	if !rt.IsReady() {
		t.Errorf("fully forced and applied IfThenElse reported IsReady() = false")
	}
}

func TestForceDoesNotMutateOriginal(t *testing.T) {
	rt0 := NewRuntime(builtin.IfThenElse)
	rt1 := rt0.Force()
	if rt0.Forces != 0 {
		t.Errorf("Force mutated the receiver: rt0.Forces = %d; want 0", rt0.Forces)
	}
	if rt1.Forces != 1 {
		t.Errorf("rt1.Forces = %d; want 1", rt1.Forces)
	}
}

func TestBuiltinIDAccessor(t *testing.T) {
	v := Builtin(NewRuntime(builtin.MultiplyInteger))
	if v.BuiltinID() != builtin.MultiplyInteger {
		t.Errorf("BuiltinID() = %v; want MultiplyInteger", v.BuiltinID())
	}
}
