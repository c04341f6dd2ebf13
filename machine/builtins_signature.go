package machine

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/value"
)

// ecdsaMessageSize is the fixed digest length ECDSA-secp256k1 verification
// expects: the message argument is always treated as a pre-computed digest,
// never hashed here, so any other length is a fatal shape error rather than
// a clean verification failure.
const ecdsaMessageSize = 32

// Signature verification delegates entirely to well-reviewed third-party
// parsers (btcsuite/btcd's secp256k1 package pair); a parse failure is
// fatal, distinct from a clean "signature did not verify" bool.
func init() {
	register(builtin.VerifyEd25519Signature, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		pk, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		msg, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		sig, err := expectByteString(rt, 2)
		if err != nil {
			return nil, err
		}
		if len(pk.ByteString) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: verifyEd25519Signature: public key must be %d bytes, got %d", ErrShape, ed25519.PublicKeySize, len(pk.ByteString))
		}
		if len(sig.ByteString) != ed25519.SignatureSize {
			return nil, fmt.Errorf("%w: verifyEd25519Signature: signature must be %d bytes, got %d", ErrShape, ed25519.SignatureSize, len(sig.ByteString))
		}
		ok := ed25519.Verify(ed25519.PublicKey(pk.ByteString), msg.ByteString, sig.ByteString)
		return m.resultBool(ok), nil
	})

	register(builtin.VerifyEcdsaSecp256k1Signature, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		pk, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		msg, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		sig, err := expectByteString(rt, 2)
		if err != nil {
			return nil, err
		}
		pub, err := btcec.ParsePubKey(pk.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: verifyEcdsaSecp256k1Signature: invalid public key: %v", ErrShape, err)
		}
		parsed, err := ecdsa.ParseDERSignature(sig.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: verifyEcdsaSecp256k1Signature: invalid signature: %v", ErrShape, err)
		}
		if len(msg.ByteString) != ecdsaMessageSize {
			return nil, fmt.Errorf("%w: verifyEcdsaSecp256k1Signature: message must be a %d-byte digest, got %d", ErrShape, ecdsaMessageSize, len(msg.ByteString))
		}
		ok := parsed.Verify(msg.ByteString, pub)
		return m.resultBool(ok), nil
	})

	register(builtin.VerifySchnorrSecp256k1Signature, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		pk, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		msg, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		sig, err := expectByteString(rt, 2)
		if err != nil {
			return nil, err
		}
		pub, err := schnorr.ParsePubKey(pk.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: verifySchnorrSecp256k1Signature: invalid public key: %v", ErrShape, err)
		}
		parsed, err := schnorr.ParseSignature(sig.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: verifySchnorrSecp256k1Signature: invalid signature: %v", ErrShape, err)
		}
		ok := parsed.Verify(msg.ByteString, pub)
		return m.resultBool(ok), nil
	})
}
