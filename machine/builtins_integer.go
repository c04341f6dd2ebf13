package machine

import (
	"fmt"
	"math/big"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/value"
)

// Integer arithmetic is built on math/big, with two division conventions:
// DivideInteger/ModInteger floor (sign follows the divisor),
// QuotientInteger/RemainderInteger truncate (sign follows the dividend).
// Truncation is big.Int's Quo/Rem; flooring is floorDivMod below.
func init() {
	register(builtin.AddInteger, biBinaryInt(func(a, b *big.Int) *big.Int {
		return new(big.Int).Add(a, b)
	}))
	register(builtin.SubtractInteger, biBinaryInt(func(a, b *big.Int) *big.Int {
		return new(big.Int).Sub(a, b)
	}))
	register(builtin.MultiplyInteger, biBinaryInt(func(a, b *big.Int) *big.Int {
		return new(big.Int).Mul(a, b)
	}))

	register(builtin.DivideInteger, biDivision(func(a, b *big.Int) (*big.Int, error) {
		if b.Sign() == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrShape)
		}
		q, _ := floorDivMod(a, b)
		return q, nil
	}))
	register(builtin.ModInteger, biDivision(func(a, b *big.Int) (*big.Int, error) {
		if b.Sign() == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrShape)
		}
		_, r := floorDivMod(a, b)
		return r, nil
	}))
	register(builtin.QuotientInteger, biDivision(func(a, b *big.Int) (*big.Int, error) {
		if b.Sign() == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrShape)
		}
		q := new(big.Int).Quo(a, b)
		return q, nil
	}))
	register(builtin.RemainderInteger, biDivision(func(a, b *big.Int) (*big.Int, error) {
		if b.Sign() == 0 {
			return nil, fmt.Errorf("%w: division by zero", ErrShape)
		}
		r := new(big.Int).Rem(a, b)
		return r, nil
	}))

	register(builtin.EqualsInteger, biCompareInt(func(c int) bool { return c == 0 }))
	register(builtin.LessThanInteger, biCompareInt(func(c int) bool { return c < 0 }))
	register(builtin.LessThanEqualsInteger, biCompareInt(func(c int) bool { return c <= 0 }))
}

// floorDivMod implements floored division/modulus: quotient rounds toward
// negative infinity and the remainder's sign follows the divisor. big.Int's
// Euclidean DivMod (Euclid) always gives a non-negative remainder, which is
// not what floored semantics want when the divisor is negative, so it is
// derived from QuoRem with a correction term instead of used directly.
func floorDivMod(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

func biBinaryInt(op func(a, b *big.Int) *big.Int) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultInteger(op(a.Integer, b.Integer)), nil
	}
}

func biDivision(op func(a, b *big.Int) (*big.Int, error)) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		result, err := op(a.Integer, b.Integer)
		if err != nil {
			return nil, err
		}
		return m.resultInteger(result), nil
	}
}

func biCompareInt(pred func(cmp int) bool) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(pred(a.Integer.Cmp(b.Integer))), nil
	}
}
