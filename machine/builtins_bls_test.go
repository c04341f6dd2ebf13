package machine

import (
	"math/big"
	"testing"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/internal/blsutil"
	"github.com/jonathanlim222/uplc/uplc"
)

func g1Term(p blsutil.G1) *uplc.Term { return uplc.NewConstant(uplc.NewG1(p)) }
func g2Term(p blsutil.G2) *uplc.Term { return uplc.NewConstant(uplc.NewG2(p)) }

func TestG1AddNegIsIdentity(t *testing.T) {
	g := blsutil.G1Generator()
	neg := blsutil.G1Neg(&g)
	sum := applyBuiltin(builtin.Bls12_381_G1_Add, g1Term(g), g1Term(neg))
	identity := blsutil.G1Add(&g, &neg)
	term := applyBuiltin(builtin.Bls12_381_G1_Equal, sum, g1Term(identity))
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Value.Constant.Bool {
		t.Errorf("G1_add(g, G1_neg(g)) did not equal the identity element")
	}
}

func TestG1ScalarMulByOneIsIdentityFunction(t *testing.T) {
	g := blsutil.G1Generator()
	term := applyBuiltin(builtin.Bls12_381_G1_Equal,
		applyBuiltin(builtin.Bls12_381_G1_ScalarMul, intTerm(1), g1Term(g)),
		g1Term(g),
	)
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Value.Constant.Bool {
		t.Errorf("G1_scalarMul(1, g) != g")
	}
}

func TestG1CompressUncompressRoundTrips(t *testing.T) {
	g := blsutil.G1Generator()
	term := applyBuiltin(builtin.Bls12_381_G1_Equal,
		applyBuiltin(builtin.Bls12_381_G1_Uncompress, applyBuiltin(builtin.Bls12_381_G1_Compress, g1Term(g))),
		g1Term(g),
	)
	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Value.Constant.Bool {
		t.Errorf("G1_uncompress(G1_compress(g)) != g")
	}
}

func TestFinalVerifyDetectsMismatch(t *testing.T) {
	g1 := blsutil.G1Generator()
	g2 := blsutil.G2Generator()
	scaled := blsutil.G1ScalarMul(&g1, big.NewInt(2))

	ml1 := applyBuiltin(builtin.Bls12_381_MillerLoop, g1Term(g1), g2Term(g2))
	ml2 := applyBuiltin(builtin.Bls12_381_MillerLoop, g1Term(scaled), g2Term(g2))
	term := applyBuiltin(builtin.Bls12_381_FinalVerify, ml1, ml2)

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Bool {
		t.Errorf("finalVerify(e(g1,g2), e(2*g1,g2)) = true; want false")
	}
}

func TestG1HashToGroupRejectsOversizedDST(t *testing.T) {
	dst := make([]byte, maxDSTLen+1)
	term := applyBuiltin(builtin.Bls12_381_G1_HashToGroup, bsTerm([]byte("msg")), bsTerm(dst))
	if _, err := run(t, term); err == nil {
		t.Errorf("expected an error for a DST longer than %d bytes", maxDSTLen)
	}
}
