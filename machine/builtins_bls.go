package machine

import (
	"fmt"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/internal/blsutil"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// maxDSTLen bounds a BLS hash-to-curve domain separation tag: anything
// longer is a fatal shape error.
const maxDSTLen = 255

func init() {
	register(builtin.Bls12_381_G1_Add, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG1(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectG1(rt, 1)
		if err != nil {
			return nil, err
		}
		out := blsutil.G1Add(a.G1, b.G1)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG1(), G1: &out})), nil
	})

	register(builtin.Bls12_381_G1_Neg, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG1(rt, 0)
		if err != nil {
			return nil, err
		}
		out := blsutil.G1Neg(a.G1)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG1(), G1: &out})), nil
	})

	register(builtin.Bls12_381_G1_ScalarMul, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		s, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		p, err := expectG1(rt, 1)
		if err != nil {
			return nil, err
		}
		out := blsutil.G1ScalarMul(p.G1, s.Integer)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG1(), G1: &out})), nil
	})

	register(builtin.Bls12_381_G1_Equal, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG1(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectG1(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(blsutil.G1Equal(a.G1, b.G1)), nil
	})

	register(builtin.Bls12_381_G1_Compress, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG1(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultByteString(blsutil.G1Compress(a.G1)), nil
	})

	register(builtin.Bls12_381_G1_Uncompress, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		p, err := blsutil.G1Uncompress(b.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: bls12_381_G1_uncompress: %v", ErrShape, err)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG1(), G1: &p})), nil
	})

	register(builtin.Bls12_381_G1_HashToGroup, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		msg, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		dst, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		if len(dst.ByteString) > maxDSTLen {
			return nil, fmt.Errorf("%w: bls12_381_G1_hashToGroup: dst longer than %d bytes", ErrShape, maxDSTLen)
		}
		p, err := blsutil.G1HashToGroup(msg.ByteString, dst.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: bls12_381_G1_hashToGroup: %v", ErrShape, err)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG1(), G1: &p})), nil
	})

	register(builtin.Bls12_381_G2_Add, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG2(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectG2(rt, 1)
		if err != nil {
			return nil, err
		}
		out := blsutil.G2Add(a.G2, b.G2)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG2(), G2: &out})), nil
	})

	register(builtin.Bls12_381_G2_Neg, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG2(rt, 0)
		if err != nil {
			return nil, err
		}
		out := blsutil.G2Neg(a.G2)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG2(), G2: &out})), nil
	})

	register(builtin.Bls12_381_G2_ScalarMul, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		s, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		p, err := expectG2(rt, 1)
		if err != nil {
			return nil, err
		}
		out := blsutil.G2ScalarMul(p.G2, s.Integer)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG2(), G2: &out})), nil
	})

	register(builtin.Bls12_381_G2_Equal, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG2(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectG2(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(blsutil.G2Equal(a.G2, b.G2)), nil
	})

	register(builtin.Bls12_381_G2_Compress, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectG2(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultByteString(blsutil.G2Compress(a.G2)), nil
	})

	register(builtin.Bls12_381_G2_Uncompress, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		p, err := blsutil.G2Uncompress(b.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: bls12_381_G2_uncompress: %v", ErrShape, err)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG2(), G2: &p})), nil
	})

	register(builtin.Bls12_381_G2_HashToGroup, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		msg, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		dst, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		if len(dst.ByteString) > maxDSTLen {
			return nil, fmt.Errorf("%w: bls12_381_G2_hashToGroup: dst longer than %d bytes", ErrShape, maxDSTLen)
		}
		p, err := blsutil.G2HashToGroup(msg.ByteString, dst.ByteString)
		if err != nil {
			return nil, fmt.Errorf("%w: bls12_381_G2_hashToGroup: %v", ErrShape, err)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TG2(), G2: &p})), nil
	})

	register(builtin.Bls12_381_MillerLoop, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		g1, err := expectG1(rt, 0)
		if err != nil {
			return nil, err
		}
		g2, err := expectG2(rt, 1)
		if err != nil {
			return nil, err
		}
		ml, err := blsutil.MillerLoop(g1.G1, g2.G2)
		if err != nil {
			return nil, fmt.Errorf("%w: bls12_381_millerLoop: %v", ErrShape, err)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TMlResult(), MlResult: &ml})), nil
	})

	register(builtin.Bls12_381_MulMlResult, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectMlResult(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectMlResult(rt, 1)
		if err != nil {
			return nil, err
		}
		out := blsutil.MulMlResult(a.MlResult, b.MlResult)
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TMlResult(), MlResult: &out})), nil
	})

	register(builtin.Bls12_381_FinalVerify, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectMlResult(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectMlResult(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(blsutil.FinalVerify(a.MlResult, b.MlResult)), nil
	})
}
