package machine

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// maxByteStringSize bounds IntegerToByteString/ReplicateByte: a requested
// size above this is a fatal shape error.
const maxByteStringSize = 8192

// The bitstring suite treats a byte string of length len as an unsigned
// big-endian integer over 8*len bits: bit index 0 is the least significant
// bit (the low bit of the last byte), increasing toward the most
// significant bit (the high bit of byte 0). That orientation is exactly
// what math/big.Int.SetBytes/FillBytes already implement, so ReadBit,
// WriteBits, ShiftByteString and RotateByteString are expressed as integer
// bit operations rather than manual byte/shift arithmetic.
func init() {
	register(builtin.IntegerToByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		beC, err := expectBool(rt, 0)
		if err != nil {
			return nil, err
		}
		sizeC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		inputC, err := expectInteger(rt, 2)
		if err != nil {
			return nil, err
		}
		if sizeC.Integer.Sign() < 0 {
			return nil, fmt.Errorf("%w: integerToByteString: negative size", ErrShape)
		}
		if !sizeC.Integer.IsInt64() || sizeC.Integer.Int64() > maxByteStringSize {
			return nil, fmt.Errorf("%w: integerToByteString: size exceeds %d", ErrShape, maxByteStringSize)
		}
		if inputC.Integer.Sign() < 0 {
			return nil, fmt.Errorf("%w: integerToByteString: negative input", ErrShape)
		}
		size := int(sizeC.Integer.Int64())
		minimal := minimalBigEndianBytes(inputC.Integer)
		if size == 0 {
			if len(minimal) > maxByteStringSize {
				return nil, fmt.Errorf("%w: integerToByteString: minimal encoding exceeds %d bytes", ErrShape, maxByteStringSize)
			}
			size = len(minimal)
		} else if len(minimal) > size {
			return nil, fmt.Errorf("%w: integerToByteString: input does not fit in %d bytes", ErrShape, size)
		}

		out := m.arena.AllocBytes(size)
		if beC.Bool {
			copy(out[size-len(minimal):], minimal)
		} else {
			for i, b := range minimal {
				out[i] = b
			}
			reverseBytes(out[:len(minimal)])
			// non-minimal trailing bytes are already zero.
		}
		return m.resultByteString(out), nil
	})

	register(builtin.ByteStringToInteger, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		beC, err := expectBool(rt, 0)
		if err != nil {
			return nil, err
		}
		bsC, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		src := append([]byte(nil), bsC.ByteString...)
		if !beC.Bool {
			reverseBytes(src)
		}
		return m.resultInteger(new(big.Int).SetBytes(src)), nil
	})

	register(builtin.AndByteString, biBitwise(func(a, b byte) byte { return a & b }, 0xFF))
	register(builtin.OrByteString, biBitwise(func(a, b byte) byte { return a | b }, 0x00))
	register(builtin.XorByteString, biBitwise(func(a, b byte) byte { return a ^ b }, 0x00))

	register(builtin.ComplementByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		out := m.arena.AllocBytes(len(a.ByteString))
		for i, b := range a.ByteString {
			out[i] = b ^ 0xFF
		}
		return m.resultByteString(out), nil
	})

	register(builtin.ReadBit, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		idxC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		nBits := 8 * len(bsC.ByteString)
		idx, ok := smallNonNegativeInt(idxC.Integer, nBits)
		if !ok {
			return nil, fmt.Errorf("%w: readBit: index out of range [0,%d)", ErrShape, nBits)
		}
		v := new(big.Int).SetBytes(bsC.ByteString)
		return m.resultBool(v.Bit(idx) == 1), nil
	})

	register(builtin.WriteBits, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		idxListC, err := expectList(rt, 1)
		if err != nil {
			return nil, err
		}
		if idxListC.Typ.Elem.Kind != uplc.KInteger {
			return nil, fmt.Errorf("%w: writeBits: index list must be list of integer", ErrTypeError)
		}
		valC, err := expectBool(rt, 2)
		if err != nil {
			return nil, err
		}
		nBits := 8 * len(bsC.ByteString)
		v := new(big.Int).SetBytes(bsC.ByteString)
		for _, ic := range idxListC.List {
			idx, ok := smallNonNegativeInt(ic.Integer, nBits)
			if !ok {
				return nil, fmt.Errorf("%w: writeBits: index out of range [0,%d)", ErrShape, nBits)
			}
			if valC.Bool {
				v.SetBit(v, idx, 1)
			} else {
				v.SetBit(v, idx, 0)
			}
		}
		out := v.FillBytes(m.arena.AllocBytes(len(bsC.ByteString)))
		return m.resultByteString(out), nil
	})

	register(builtin.ReplicateByte, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		sizeC, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		byteC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		if sizeC.Integer.Sign() < 0 || !sizeC.Integer.IsInt64() || sizeC.Integer.Int64() > maxByteStringSize {
			return nil, fmt.Errorf("%w: replicateByte: size out of range [0,%d]", ErrShape, maxByteStringSize)
		}
		if byteC.Integer.Sign() < 0 || !byteC.Integer.IsInt64() || byteC.Integer.Int64() > 255 {
			return nil, fmt.Errorf("%w: replicateByte: byte out of range [0,255]", ErrShape)
		}
		out := m.arena.AllocBytes(int(sizeC.Integer.Int64()))
		b := byte(byteC.Integer.Int64())
		for i := range out {
			out[i] = b
		}
		return m.resultByteString(out), nil
	})

	register(builtin.ShiftByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		nC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		nBits := 8 * len(bsC.ByteString)
		if nBits == 0 {
			return m.resultByteString(m.arena.CopyBytes(bsC.ByteString)), nil
		}
		n := clampShiftAmount(nC.Integer, nBits)
		v := new(big.Int).SetBytes(bsC.ByteString)
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(nBits)), big.NewInt(1))
		switch {
		case n >= 0:
			v.Lsh(v, uint(n))
		default:
			v.Rsh(v, uint(-n))
		}
		v.And(v, mask)
		out := v.FillBytes(m.arena.AllocBytes(len(bsC.ByteString)))
		return m.resultByteString(out), nil
	})

	register(builtin.RotateByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		nC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		nBits := 8 * len(bsC.ByteString)
		if nBits == 0 {
			return m.resultByteString(m.arena.CopyBytes(bsC.ByteString)), nil
		}
		rot := new(big.Int).Mod(nC.Integer, big.NewInt(int64(nBits))).Int64()
		v := new(big.Int).SetBytes(bsC.ByteString)
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(nBits)), big.NewInt(1))
		left := new(big.Int).Lsh(v, uint(rot))
		left.And(left, mask)
		right := new(big.Int).Rsh(v, uint(int64(nBits)-rot))
		left.Or(left, right)
		out := left.FillBytes(m.arena.AllocBytes(len(bsC.ByteString)))
		return m.resultByteString(out), nil
	})

	register(builtin.CountSetBits, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		count := 0
		for _, b := range bsC.ByteString {
			count += bits.OnesCount8(b)
		}
		return m.resultInteger(bigFromInt(count)), nil
	})

	register(builtin.FindFirstSetBit, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		bsC, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		v := new(big.Int).SetBytes(bsC.ByteString)
		if v.Sign() == 0 {
			return m.resultInteger(big.NewInt(-1)), nil
		}
		return m.resultInteger(bigFromInt(int(v.TrailingZeroBits()))), nil
	})
}

func biBitwise(op func(a, b byte) byte, identityByte byte) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		padC, err := expectBool(rt, 0)
		if err != nil {
			return nil, err
		}
		a, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		b, err := expectByteString(rt, 2)
		if err != nil {
			return nil, err
		}
		la, lb := a.ByteString, b.ByteString
		if padC.Bool {
			n := len(la)
			if len(lb) > n {
				n = len(lb)
			}
			out := m.arena.AllocBytes(n)
			for i := 0; i < n; i++ {
				x, y := identityByte, identityByte
				if i < len(la) {
					x = la[i]
				}
				if i < len(lb) {
					y = lb[i]
				}
				out[i] = op(x, y)
			}
			return m.resultByteString(out), nil
		}
		n := len(la)
		if len(lb) < n {
			n = len(lb)
		}
		out := m.arena.AllocBytes(n)
		for i := 0; i < n; i++ {
			out[i] = op(la[i], lb[i])
		}
		return m.resultByteString(out), nil
	}
}

// minimalBigEndianBytes returns v's shortest unsigned big-endian encoding;
// zero encodes as an empty slice.
func minimalBigEndianBytes(v *big.Int) []byte {
	return v.Bytes()
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// smallNonNegativeInt reports whether v fits as an int in [0,limit).
func smallNonNegativeInt(v *big.Int, limit int) (int, bool) {
	if v.Sign() < 0 || !v.IsInt64() {
		return 0, false
	}
	n := v.Int64()
	if n >= int64(limit) {
		return 0, false
	}
	return int(n), true
}

// clampShiftAmount reduces an arbitrary-precision shift amount to an int
// magnitude, saturating at ±nBits: once |n| reaches nBits every bit has
// already been shifted out, so the subsequent Lsh/Rsh/mask sequence zeroes
// the result at that magnitude regardless of how much further n grows.
func clampShiftAmount(n *big.Int, nBits int) int {
	if n.IsInt64() {
		v := n.Int64()
		if v > int64(nBits) {
			return nBits
		}
		if v < -int64(nBits) {
			return -nBits
		}
		return int(v)
	}
	if n.Sign() > 0 {
		return nBits
	}
	return -nBits
}
