package machine

import (
	"testing"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/uplc"
)

func bsTerm(b []byte) *uplc.Term { return uplc.NewConstant(uplc.NewByteString(b)) }

func TestAppendByteString(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.AppendByteString, bsTerm([]byte("foo")), bsTerm([]byte("bar"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Value.Constant.ByteString); got != "foobar" {
		t.Errorf("appendByteString = %q; want %q", got, "foobar")
	}
}

func TestConsByteStringV1Wraps(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.ConsByteString, intTerm(256+5), bsTerm([]byte("x"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := res.Value.Constant.ByteString
	if len(got) != 2 || got[0] != 5 {
		t.Errorf("consByteString(261, \"x\") = %v; want [5 'x'] (mod 256 under V1 semantics)", got)
	}
}

func TestSliceByteStringWindowIsMinSkipPlusTakeAndLength(t *testing.T) {
	// Window end is min(skip+take, len), not min(skip+take, len-skip).
	res, err := run(t, applyBuiltin(builtin.SliceByteString, intTerm(1), intTerm(100), bsTerm([]byte("abcde"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := string(res.Value.Constant.ByteString); got != "bcde" {
		t.Errorf("sliceByteString(1,100,\"abcde\") = %q; want %q", got, "bcde")
	}
}

func TestLengthOfByteString(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.LengthOfByteString, bsTerm([]byte("abcde"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Value.Constant.Integer.Int64(); got != 5 {
		t.Errorf("lengthOfByteString = %d; want 5", got)
	}
}

func TestIndexByteStringOutOfRangeIsFatal(t *testing.T) {
	_, err := run(t, applyBuiltin(builtin.IndexByteString, bsTerm([]byte("ab")), intTerm(5)))
	if err == nil {
		t.Errorf("expected an error for an out-of-range index")
	}
}

func TestEqualsByteString(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.EqualsByteString, bsTerm([]byte("x")), bsTerm([]byte("x"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Value.Constant.Bool {
		t.Errorf("equalsByteString(\"x\",\"x\") = false; want true")
	}
}
