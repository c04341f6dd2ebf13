package machine

import (
	"fmt"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// Polymorphic builtins never inspect the Force-required type parameters at
// runtime (Force only gates saturation); their arguments at the
// non-Data/non-pair/non-list positions are already fully reduced Values, so
// IfThenElse/ChooseUnit/ChooseList/Trace select among them with no further
// evaluation of branches that go unselected.
func init() {
	register(builtin.IfThenElse, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		cond, err := expectBool(rt, 0)
		if err != nil {
			return nil, err
		}
		if cond.Bool {
			return rt.Args[1], nil
		}
		return rt.Args[2], nil
	})

	register(builtin.ChooseUnit, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		if _, err := expectCon(rt, 0, "unit"); err != nil {
			return nil, err
		}
		return rt.Args[1], nil
	})

	register(builtin.Trace, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		msg, err := expectString(rt, 0)
		if err != nil {
			return nil, err
		}
		m.trace(msg.String)
		return rt.Args[1], nil
	})

	register(builtin.FstPair, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		p, err := expectPair(rt, 0)
		if err != nil {
			return nil, err
		}
		return value.Con(p.Pair[0]), nil
	})

	register(builtin.SndPair, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		p, err := expectPair(rt, 0)
		if err != nil {
			return nil, err
		}
		return value.Con(p.Pair[1]), nil
	})

	register(builtin.ChooseList, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		if len(l.List) == 0 {
			return rt.Args[1], nil
		}
		return rt.Args[2], nil
	})

	register(builtin.MkCons, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		elem, err := expectCon(rt, 0, "list element")
		if err != nil {
			return nil, err
		}
		l, err := expectList(rt, 1)
		if err != nil {
			return nil, err
		}
		if !elem.Typ.Equals(l.Typ.Elem) {
			return nil, fmt.Errorf("%w: mkCons: element type %s does not match list element type %s", ErrTypeError, elem.Typ, l.Typ.Elem)
		}
		out := make([]*uplc.Constant, 0, len(l.List)+1)
		out = append(out, elem)
		out = append(out, l.List...)
		return value.Con(m.newConstant(uplc.Constant{Typ: l.Typ, List: out})), nil
	})

	register(builtin.HeadList, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		if len(l.List) == 0 {
			return nil, fmt.Errorf("%w: headList: empty list", ErrShape)
		}
		return value.Con(l.List[0]), nil
	})

	register(builtin.TailList, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		if len(l.List) == 0 {
			return nil, fmt.Errorf("%w: tailList: empty list", ErrShape)
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: l.Typ, List: l.List[1:]})), nil
	})

	register(builtin.NullList, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultBool(len(l.List) == 0), nil
	})
}
