package machine

import (
	"fmt"

	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/data"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// Data (PlutusData) construction/projection builtins. Construction checks
// element shapes once at the boundary: ConstrData requires the list
// element type to be Data, MapData requires Pair(Data,Data); projection is
// fatal on a mismatched variant.
func init() {
	register(builtin.ConstrData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		tag, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		fields, err := expectList(rt, 1)
		if err != nil {
			return nil, err
		}
		if fields.Typ.Elem.Kind != uplc.KData {
			return nil, fmt.Errorf("%w: constrData: field list must be list of data", ErrTypeError)
		}
		if !tag.Integer.IsUint64() {
			return nil, fmt.Errorf("%w: constrData: tag out of range", ErrShape)
		}
		items := make([]*data.Data, len(fields.List))
		for i, f := range fields.List {
			items[i] = f.Data
		}
		return m.resultData(data.Constr(tag.Integer.Uint64(), items)), nil
	})

	register(builtin.MapData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		if l.Typ.Elem.Kind != uplc.KPair || l.Typ.Elem.Fst.Kind != uplc.KData || l.Typ.Elem.Snd.Kind != uplc.KData {
			return nil, fmt.Errorf("%w: mapData: list element must be pair of (data,data)", ErrTypeError)
		}
		pairs := make([]data.Pair, len(l.List))
		for i, e := range l.List {
			pairs[i] = data.Pair{Key: e.Pair[0].Data, Value: e.Pair[1].Data}
		}
		return m.resultData(data.Map(pairs)), nil
	})

	register(builtin.ListData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		l, err := expectList(rt, 0)
		if err != nil {
			return nil, err
		}
		if l.Typ.Elem.Kind != uplc.KData {
			return nil, fmt.Errorf("%w: listData: list element must be data", ErrTypeError)
		}
		items := make([]*data.Data, len(l.List))
		for i, e := range l.List {
			items[i] = e.Data
		}
		return m.resultData(data.List(items)), nil
	})

	register(builtin.IData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		n, err := expectInteger(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultData(data.Int(n.Integer)), nil
	})

	register(builtin.BData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		b, err := expectByteString(rt, 0)
		if err != nil {
			return nil, err
		}
		return m.resultData(data.Bytes(b.ByteString)), nil
	})

	register(builtin.UnConstrData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		if d.Data.Kind != data.KConstr {
			return nil, fmt.Errorf("%w: unConstrData: not a Constr", ErrShape)
		}
		tagConst := m.newConstant(uplc.Constant{Typ: uplc.TInteger(), Integer: bigFromUint64(d.Data.Tag)})
		fieldConsts := make([]*uplc.Constant, len(d.Data.Fields))
		for i, f := range d.Data.Fields {
			fieldConsts[i] = m.newConstant(uplc.Constant{Typ: uplc.TData(), Data: f})
		}
		listConst := m.newConstant(uplc.Constant{Typ: uplc.TList(uplc.TData()), List: fieldConsts})
		pair, err := uplc.NewPair(uplc.TInteger(), uplc.TList(uplc.TData()), tagConst, listConst)
		if err != nil {
			return nil, err
		}
		return value.Con(pair), nil
	})

	register(builtin.UnMapData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		if d.Data.Kind != data.KMap {
			return nil, fmt.Errorf("%w: unMapData: not a Map", ErrShape)
		}
		pairTy := uplc.TPair(uplc.TData(), uplc.TData())
		items := make([]*uplc.Constant, len(d.Data.Pairs))
		for i, p := range d.Data.Pairs {
			k := m.newConstant(uplc.Constant{Typ: uplc.TData(), Data: p.Key})
			v := m.newConstant(uplc.Constant{Typ: uplc.TData(), Data: p.Value})
			pc, err := uplc.NewPair(uplc.TData(), uplc.TData(), k, v)
			if err != nil {
				return nil, err
			}
			items[i] = pc
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TList(pairTy), List: items})), nil
	})

	register(builtin.UnListData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		if d.Data.Kind != data.KList {
			return nil, fmt.Errorf("%w: unListData: not a List", ErrShape)
		}
		items := make([]*uplc.Constant, len(d.Data.List))
		for i, e := range d.Data.List {
			items[i] = m.newConstant(uplc.Constant{Typ: uplc.TData(), Data: e})
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TList(uplc.TData()), List: items})), nil
	})

	register(builtin.UnIData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		if d.Data.Kind != data.KInteger {
			return nil, fmt.Errorf("%w: unIData: not an Integer", ErrShape)
		}
		return m.resultInteger(d.Data.Integer), nil
	})

	register(builtin.UnBData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		if d.Data.Kind != data.KByteString {
			return nil, fmt.Errorf("%w: unBData: not a ByteString", ErrShape)
		}
		return m.resultByteString(d.Data.ByteString), nil
	})

	register(builtin.EqualsData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectData(rt, 1)
		if err != nil {
			return nil, err
		}
		return m.resultBool(data.Equals(a.Data, b.Data)), nil
	})

	register(builtin.SerialiseData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		out, err := data.Serialise(d.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: serialiseData: %v", ErrShape, err)
		}
		return m.resultByteString(out), nil
	})

	register(builtin.MkPairData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		a, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		b, err := expectData(rt, 1)
		if err != nil {
			return nil, err
		}
		pair, err := uplc.NewPair(uplc.TData(), uplc.TData(), a, b)
		if err != nil {
			return nil, err
		}
		return value.Con(pair), nil
	})

	register(builtin.MkNilData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		if _, err := expectCon(rt, 0, "unit"); err != nil {
			return nil, err
		}
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TList(uplc.TData()), List: nil})), nil
	})

	register(builtin.MkNilPairData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		if _, err := expectCon(rt, 0, "unit"); err != nil {
			return nil, err
		}
		pairTy := uplc.TPair(uplc.TData(), uplc.TData())
		return value.Con(m.newConstant(uplc.Constant{Typ: uplc.TList(pairTy), List: nil})), nil
	})

	register(builtin.ChooseData, func(m *Machine, rt *value.Runtime) (*value.Value, error) {
		d, err := expectData(rt, 0)
		if err != nil {
			return nil, err
		}
		switch d.Data.Kind {
		case data.KConstr:
			return rt.Args[1], nil
		case data.KMap:
			return rt.Args[2], nil
		case data.KList:
			return rt.Args[3], nil
		case data.KInteger:
			return rt.Args[4], nil
		case data.KByteString:
			return rt.Args[5], nil
		default:
			return nil, fmt.Errorf("%w: chooseData: unknown Data variant", ErrTypeError)
		}
	})
}
