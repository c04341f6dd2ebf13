package machine

import (
	"fmt"
	"math/big"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/costmodel"
	"github.com/jonathanlim222/uplc/data"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// builtinFunc is one builtin's pure computation: given the machine (for
// arena allocation and Trace's log side channel) and a saturated Runtime,
// produce the result Value or a fatal error. Cost accounting happens once,
// centrally, in dispatch — builtinFunc implementations never touch the
// budget themselves.
type builtinFunc func(m *Machine, rt *value.Runtime) (*value.Value, error)

// dispatchTable is populated by each builtins_*.go file's init(), keeping
// every builtin's registration next to its implementation. BuiltinId is the
// single source of truth for identity, arity and force-arity; this table
// drives dispatch off it rather than a hand-written switch.
var dispatchTable = make(map[builtin.Id]builtinFunc, builtin.Count)

func register(id builtin.Id, fn builtinFunc) {
	dispatchTable[id] = fn
}

// dispatch computes operand ex-memory sizes, debits the cost table's charge
// for this builtin, then invokes its pure computation.
func (m *Machine) dispatch(rt *value.Runtime) (*value.Value, error) {
	fn, ok := dispatchTable[rt.Fun]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no dispatch entry", ErrTypeError, rt.Fun)
	}

	sizes := make([]int64, len(rt.Args))
	for i, a := range rt.Args {
		sizes[i] = argExMem(a)
	}
	cost, err := m.table.BuiltinCost(rt.Fun, sizes)
	if err != nil {
		return nil, err
	}
	if err := m.charge(cost); err != nil {
		return nil, err
	}

	return fn(m, rt)
}

// argExMem sizes a builtin argument for cost purposes. Only Con-kind
// arguments carry a Constant ex-memory size; function-shaped arguments
// (used by polymorphic builtins like IfThenElse/ChooseList) contribute 0,
// matching their O(1) dispatch cost.
func argExMem(v *value.Value) int64 {
	if v.Kind != value.VCon {
		return 0
	}
	return costmodel.ConstantExMem(v.Constant)
}

// expectCon requires arg i to be a Con-kind value and returns its Constant,
// or a type error naming the expected shape.
func expectCon(rt *value.Runtime, i int, shape string) (*uplc.Constant, error) {
	v := rt.Args[i]
	if v.Kind != value.VCon {
		return nil, fmt.Errorf("%w: argument %d: expected %s, got a non-constant value", ErrTypeError, i, shape)
	}
	return v.Constant, nil
}

func expectInteger(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "integer")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KInteger {
		return nil, fmt.Errorf("%w: argument %d: expected integer, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectByteString(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "bytestring")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KByteString {
		return nil, fmt.Errorf("%w: argument %d: expected bytestring, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectString(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "string")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KString {
		return nil, fmt.Errorf("%w: argument %d: expected string, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectBool(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "bool")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KBool {
		return nil, fmt.Errorf("%w: argument %d: expected bool, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectData(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "data")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KData {
		return nil, fmt.Errorf("%w: argument %d: expected data, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectList(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "list")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KList {
		return nil, fmt.Errorf("%w: argument %d: expected list, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectPair(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "pair")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KPair {
		return nil, fmt.Errorf("%w: argument %d: expected pair, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectG1(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "bls12_381_G1_element")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KG1 {
		return nil, fmt.Errorf("%w: argument %d: expected G1 element, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func expectG2(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "bls12_381_G2_element")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KG2 {
		return nil, fmt.Errorf("%w: argument %d: expected G2 element, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}

func (m *Machine) resultInteger(v *big.Int) *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TInteger(), Integer: v}))
}

func (m *Machine) resultByteString(b []byte) *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TByteString(), ByteString: b}))
}

func (m *Machine) resultString(s string) *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TString(), String: s}))
}

func (m *Machine) resultBool(b bool) *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TBool(), Bool: b}))
}

func (m *Machine) resultUnit() *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TUnit()}))
}

func (m *Machine) resultData(d *data.Data) *value.Value {
	return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TData(), Data: d}))
}

func expectMlResult(rt *value.Runtime, i int) (*uplc.Constant, error) {
	c, err := expectCon(rt, i, "bls12_381_mlresult")
	if err != nil {
		return nil, err
	}
	if c.Typ.Kind != uplc.KMlResult {
		return nil, fmt.Errorf("%w: argument %d: expected MlResult, got %s", ErrTypeError, i, c.Typ)
	}
	return c, nil
}
