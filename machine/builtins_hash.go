package machine

import (
	"crypto/sha256"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/value"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is a required Plutus hash, not a security choice of ours.
	"golang.org/x/crypto/sha3"
)

// Fixed-output-size hashes: Sha2_256/Sha3_256/Keccak_256 each produce 32
// bytes, Blake2b_224 produces 28, Blake2b_256 produces 32, and Ripemd_160
// produces 20.
func init() {
	register(builtin.Sha2_256, hashBuiltin(func(b []byte) []byte {
		h := sha256.Sum256(b)
		return h[:]
	}))
	register(builtin.Sha3_256, hashBuiltin(func(b []byte) []byte {
		h := sha3.Sum256(b)
		return h[:]
	}))
	register(builtin.Blake2b_256, hashBuiltin(func(b []byte) []byte {
		h := blake2b.Sum256(b)
		return h[:]
	}))
	register(builtin.Blake2b_224, hashBuiltin(func(b []byte) []byte {
		h, _ := blake2b.New(28, nil)
		h.Write(b)
		return h.Sum(nil)
	}))
	register(builtin.Keccak_256, hashBuiltin(func(b []byte) []byte {
		h := sha3.NewLegacyKeccak256()
		h.Write(b)
		return h.Sum(nil)
	}))
	register(builtin.Ripemd_160, hashBuiltin(func(b []byte) []byte {
		h := ripemd160.New()
		h.Write(b)
		return h.Sum(nil)
	}))
}

func hashBuiltin(hashFn func([]byte) []byte) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultByteString(hashFn(b.ByteString)), nil
	}
}
