// Package blsutil adapts gnark-crypto's BLS12-381 implementation to the
// narrow surface the machine's Bls12_381_* builtins need: add/negate/scale
// points in G1 and G2, compress/uncompress, hash-to-curve, and the
// Miller-loop / final-exponentiation pairing pipeline.
//
// The machine package never imports gnark-crypto directly; it goes through
// this package's free functions instead of inlining the crypto library
// calls into the dispatch table.
package blsutil

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1 is a point on the BLS12-381 G1 curve in affine form.
type G1 = bls12381.G1Affine

// G2 is a point on the BLS12-381 G2 curve in affine form.
type G2 = bls12381.G2Affine

// MlResult is an element of the pairing target group, either a raw
// Miller-loop accumulator (pre final exponentiation) or a fully reduced
// value; both share the same representation (fp12 elements), matching the
// UPLC contract that MillerLoop/MulMlResult operate on un-reduced values and
// FinalVerify performs the reduction itself.
type MlResult = bls12381.GT

// ScalarPeriod is the order of the G1/G2 prime-order subgroup (the "r" of
// BLS12-381). Scalars passed to ScalarMul are reduced modulo this value
// before multiplication, per spec.
var ScalarPeriod = fr.Modulus()

// ErrInvalidEncoding is returned when Compress/Uncompress input does not
// decode to a valid curve point.
var ErrInvalidEncoding = errors.New("blsutil: invalid point encoding")

// G1Generator returns the canonical G1 generator point.
func G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// G2Generator returns the canonical G2 generator point.
func G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// G1Add returns a+b using add-or-double (handles a==b and either input being
// the identity).
func G1Add(a, b *G1) G1 {
	var ja, jb bls12381.G1Jac
	ja.FromAffine(a)
	jb.FromAffine(b)
	ja.AddAssign(&jb)
	var out G1
	out.FromJacobian(&ja)
	return out
}

// G1Neg returns -a.
func G1Neg(a *G1) G1 {
	var ja bls12381.G1Jac
	ja.FromAffine(a)
	ja.Neg(&ja)
	var out G1
	out.FromJacobian(&ja)
	return out
}

// G1ScalarMul returns scalar*p, reducing scalar modulo ScalarPeriod first.
func G1ScalarMul(p *G1, scalar *big.Int) G1 {
	s := new(big.Int).Mod(scalar, ScalarPeriod)
	var jp bls12381.G1Jac
	jp.FromAffine(p)
	jp.ScalarMultiplication(&jp, s)
	var out G1
	out.FromJacobian(&jp)
	return out
}

// G1Equal reports whether a and b are the same point.
func G1Equal(a, b *G1) bool { return a.Equal(b) }

// G1Compress returns the 48-byte compressed encoding of p.
func G1Compress(p *G1) []byte {
	b := p.Bytes()
	return b[:]
}

// G1Uncompress decodes a compressed (or uncompressed) G1 point.
func G1Uncompress(buf []byte) (G1, error) {
	var out G1
	if _, err := out.SetBytes(buf); err != nil {
		return G1{}, ErrInvalidEncoding
	}
	return out, nil
}

// G1HashToGroup hashes msg onto a G1 point using dst as the hash-to-curve
// domain separation tag. Callers must enforce len(dst) <= 255 themselves;
// gnark-crypto does not impose that limit.
func G1HashToGroup(msg, dst []byte) (G1, error) {
	return bls12381.HashToG1(msg, dst)
}

// G2Add returns a+b.
func G2Add(a, b *G2) G2 {
	var ja, jb bls12381.G2Jac
	ja.FromAffine(a)
	jb.FromAffine(b)
	ja.AddAssign(&jb)
	var out G2
	out.FromJacobian(&ja)
	return out
}

// G2Neg returns -a.
func G2Neg(a *G2) G2 {
	var ja bls12381.G2Jac
	ja.FromAffine(a)
	ja.Neg(&ja)
	var out G2
	out.FromJacobian(&ja)
	return out
}

// G2ScalarMul returns scalar*p, reducing scalar modulo ScalarPeriod first.
func G2ScalarMul(p *G2, scalar *big.Int) G2 {
	s := new(big.Int).Mod(scalar, ScalarPeriod)
	var jp bls12381.G2Jac
	jp.FromAffine(p)
	jp.ScalarMultiplication(&jp, s)
	var out G2
	out.FromJacobian(&jp)
	return out
}

// G2Equal reports whether a and b are the same point.
func G2Equal(a, b *G2) bool { return a.Equal(b) }

// G2Compress returns the 96-byte compressed encoding of p.
func G2Compress(p *G2) []byte {
	b := p.Bytes()
	return b[:]
}

// G2Uncompress decodes a compressed (or uncompressed) G2 point.
func G2Uncompress(buf []byte) (G2, error) {
	var out G2
	if _, err := out.SetBytes(buf); err != nil {
		return G2{}, ErrInvalidEncoding
	}
	return out, nil
}

// G2HashToGroup hashes msg onto a G2 point using dst as the domain
// separation tag. See G1HashToGroup for the dst length contract.
func G2HashToGroup(msg, dst []byte) (G2, error) {
	return bls12381.HashToG2(msg, dst)
}

// MillerLoop computes the (un-reduced) Miller-loop accumulator for e(g1,g2).
func MillerLoop(g1 *G1, g2 *G2) (MlResult, error) {
	return bls12381.MillerLoop([]bls12381.G1Affine{*g1}, []bls12381.G2Affine{*g2})
}

// MulMlResult multiplies two pairing-target-group accumulators.
func MulMlResult(a, b *MlResult) MlResult {
	var out MlResult
	out.Mul(a, b)
	return out
}

// FinalVerify reports whether the final exponentiation of a equals that of
// b, i.e. whether the two (un-reduced) Miller-loop results represent the
// same element of the reduced pairing target group.
func FinalVerify(a, b *MlResult) bool {
	fa := bls12381.FinalExponentiation(a)
	fb := bls12381.FinalExponentiation(b)
	return fa.Equal(&fb)
}
