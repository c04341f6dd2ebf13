package data

import (
	"math/big"
	"testing"
)

func TestEqualsReflexiveAndStructural(t *testing.T) {
	a := Constr(0, []*Data{Int(big.NewInt(1)), Bytes([]byte("x"))})
	b := Constr(0, []*Data{Int(big.NewInt(1)), Bytes([]byte("x"))})
	c := Constr(1, []*Data{Int(big.NewInt(1)), Bytes([]byte("x"))})

	if !Equals(a, a) {
		t.Errorf("Equals(a, a) = false; want true")
	}
	if !Equals(a, b) {
		t.Errorf("Equals(a, b) = false; want true for structurally identical Constr nodes")
	}
	if Equals(a, c) {
		t.Errorf("Equals(a, c) = true; want false for differing constructor tags")
	}
}

func TestEqualsMapIsPositionalNotSetLike(t *testing.T) {
	m1 := Map([]Pair{{Int(big.NewInt(1)), Int(big.NewInt(2))}, {Int(big.NewInt(3)), Int(big.NewInt(4))}})
	m2 := Map([]Pair{{Int(big.NewInt(3)), Int(big.NewInt(4))}, {Int(big.NewInt(1)), Int(big.NewInt(2))}})
	if Equals(m1, m2) {
		t.Errorf("Equals() treated differently-ordered maps as equal; map equality must be positional")
	}
}

func TestEqualsListLengthMismatch(t *testing.T) {
	a := List([]*Data{Int(big.NewInt(1))})
	b := List([]*Data{Int(big.NewInt(1)), Int(big.NewInt(2))})
	if Equals(a, b) {
		t.Errorf("Equals() = true for lists of different length")
	}
}

func TestExMemIsCompositional(t *testing.T) {
	leaf := Int(big.NewInt(1))
	leafMem := ExMem(leaf)
	nested := List([]*Data{leaf, leaf})
	if ExMem(nested) <= 2*leafMem {
		t.Errorf("ExMem(nested list) = %d; want more than 2x leaf weight (%d) to account for the node overhead", ExMem(nested), leafMem)
	}
}

func TestExMemNilIsZero(t *testing.T) {
	if ExMem(nil) != 0 {
		t.Errorf("ExMem(nil) = %d; want 0", ExMem(nil))
	}
}
