package machine

import (
	"bytes"
	"fmt"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/value"
)

func init() {
	register(builtin.AppendByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		out := m.arena.AllocBytes(len(a.ByteString) + len(b.ByteString))
		copy(out, a.ByteString)
		copy(out[len(a.ByteString):], b.ByteString)
		return m.resultByteString(out), nil
	})

	register(builtin.ConsByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		n, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		var head byte
		switch m.semantics {
		case SemanticsV1:
			head = mod256(n.Integer)
		case SemanticsV2:
			if !n.Integer.IsInt64() || n.Integer.Sign() < 0 || n.Integer.Int64() > 255 {
				return nil, fmt.Errorf("%w: consByteString: byte %s out of range [0,255]", ErrShape, n.Integer)
			}
			head = byte(n.Integer.Int64())
		}
		out := m.arena.AllocBytes(len(b.ByteString) + 1)
		out[0] = head
		copy(out[1:], b.ByteString)
		return m.resultByteString(out), nil
	})

	register(builtin.SliceByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		skipC, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		takeC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		bsC, err := expectByteString(rt, 2)
		if err != nil {
			return nil, err
		}
		bs := bsC.ByteString
		n := len(bs)
		skip := clampNonNegative(skipC.Integer, n)
		take := clampNonNegative(takeC.Integer, n)
		// The window end is min(skip+take, n), not min(skip+take, n-skip).
		end := skip + take
		if end > n {
			end = n
		}
		if skip > end {
			skip = end
		}
		out := m.arena.AllocBytes(end - skip)
		copy(out, bs[skip:end])
		return m.resultByteString(out), nil
	})

	register(builtin.LengthOfByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultInteger(bigFromInt(len(b.ByteString))), nil
	})

	register(builtin.IndexByteString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		iC, err := expectInteger(rt, 1)
		if err != nil {
			return nil, err
		}
		if !iC.Integer.IsInt64() {
			return nil, fmt.Errorf("%w: indexByteString: index out of range", ErrShape)
		}
		i := iC.Integer.Int64()
		if i < 0 || i >= int64(len(b.ByteString)) {
			return nil, fmt.Errorf("%w: indexByteString: index %d out of range [0,%d)", ErrShape, i, len(b.ByteString))
		}
		return m.resultInteger(bigFromInt(int(b.ByteString[i]))), nil
	})

	register(builtin.EqualsByteString, biCompareBytes(func(c int) bool { return c == 0 }))
	register(builtin.LessThanByteString, biCompareBytes(func(c int) bool { return c < 0 }))
	register(builtin.LessThanEqualsByteString, biCompareBytes(func(c int) bool { return c <= 0 }))
}

func biCompareBytes(pred func(cmp int) bool) builtinFunc {
	return func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectByteString(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(pred(bytes.Compare(a.ByteString, b.ByteString))), nil
	}
}

