package machine

import "math/big"

func bigFromInt(n int) *big.Int {
	return big.NewInt(int64(n))
}

func bigFromUint64(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// clampNonNegative clamps v into [0, max]: negative values become 0,
// values above max (or too large to fit an int) saturate to max.
func clampNonNegative(v *big.Int, max int) int {
	if v.Sign() < 0 {
		return 0
	}
	if !v.IsInt64() {
		return max
	}
	n := v.Int64()
	if n > int64(max) {
		return max
	}
	return int(n)
}

// mod256 reduces v modulo 256 using floored semantics, so the result always
// lands in [0,255] regardless of v's sign. Used by ConsByteString under V1
// semantics.
func mod256(v *big.Int) byte {
	r := new(big.Int).Mod(v, big.NewInt(256))
	return byte(r.Int64())
}
