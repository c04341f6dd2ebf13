package machine

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/value"
)

func init() {
	register(builtin.AppendString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectString(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectString(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultString(a.String + b.String), nil
	})

	register(builtin.EqualsString, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectString(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectString(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(a.String == b.String), nil
	})

	register(builtin.EncodeUtf8, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		s, err := expectString(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultByteString([]byte(s.String)), nil
	})

	register(builtin.DecodeUtf8, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b.ByteString) {
			return nil, fmt.Errorf("%w: decodeUtf8: invalid UTF-8", ErrShape)
		}
		return m.resultString(string(b.ByteString)), nil
	})
}
