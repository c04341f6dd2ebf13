package machine

import (
	"encoding/hex"
	"testing"

	"github.com/jonathanlim222/uplc/builtin"
)

func TestSha2_256KnownVector(t *testing.T) {
	// SHA-256 of the empty string.
	res, err := run(t, applyBuiltin(builtin.Sha2_256, bsTerm(nil)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := hex.EncodeToString(res.Value.Constant.ByteString); got != want {
		t.Errorf("sha2_256(\"\") = %s; want %s", got, want)
	}
}

func TestSha3_256OutputLength(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.Sha3_256, bsTerm([]byte("abc"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(res.Value.Constant.ByteString); got != 32 {
		t.Errorf("sha3_256 output length = %d; want 32", got)
	}
}

func TestBlake2b_224OutputLength(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.Blake2b_224, bsTerm([]byte("abc"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(res.Value.Constant.ByteString); got != 28 {
		t.Errorf("blake2b_224 output length = %d; want 28", got)
	}
}

func TestRipemd_160OutputLength(t *testing.T) {
	res, err := run(t, applyBuiltin(builtin.Ripemd_160, bsTerm([]byte("abc"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := len(res.Value.Constant.ByteString); got != 20 {
		t.Errorf("ripemd_160 output length = %d; want 20", got)
	}
}

func TestKeccak_256DiffersFromSha3_256(t *testing.T) {
	r1, err := run(t, applyBuiltin(builtin.Keccak_256, bsTerm([]byte("abc"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, err := run(t, applyBuiltin(builtin.Sha3_256, bsTerm([]byte("abc"))))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if hex.EncodeToString(r1.Value.Constant.ByteString) == hex.EncodeToString(r2.Value.Constant.ByteString) {
		t.Errorf("keccak_256 and sha3_256 produced identical output; they use different padding and must differ")
	}
}
