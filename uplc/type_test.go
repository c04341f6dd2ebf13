package uplc

import "testing"

func TestTypeEqualsAtomic(t *testing.T) {
	cases := []struct {
		name string
		a, b *Type
		want bool
	}{
		{"integer/integer", TInteger(), TInteger(), true},
		{"integer/bytestring", TInteger(), TByteString(), false},
		{"bool/bool", TBool(), TBool(), true},
		{"unit/data", TUnit(), TData(), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equals(tc.b); got != tc.want {
				t.Errorf("Equals() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestTypeEqualsStructural(t *testing.T) {
	a := TList(TPair(TInteger(), TByteString()))
	b := TList(TPair(TInteger(), TByteString()))
	c := TList(TPair(TByteString(), TInteger()))

	if !a.Equals(b) {
		t.Errorf("expected structurally identical List(Pair(Integer,ByteString)) types to be equal")
	}
	if a.Equals(c) {
		t.Errorf("expected List(Pair(Integer,ByteString)) and List(Pair(ByteString,Integer)) to differ")
	}
}

func TestTypeString(t *testing.T) {
	got := TList(TPair(TInteger(), TByteString())).String()
	want := "list (pair (integer) (bytestring))"
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
