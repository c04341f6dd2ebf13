package uplc

import (
	"fmt"
	"math/big"

	"github.com/jonathanlim222/uplc/data"
	"github.com/jonathanlim222/uplc/internal/blsutil"
)

// Constant is a first-class value that may appear directly in source code.
// Every Constant carries both its runtime Type and a payload; only the
// field(s) matching Typ.Kind are meaningful.
//
// ProtoList and ProtoPair invariants (every element/component matches the
// declared Type) are enforced once, at construction time, by NewList and
// NewPair; nothing downstream re-checks them.
type Constant struct {
	Typ *Type

	Integer    *big.Int
	ByteString []byte
	String     string
	Bool       bool
	List       []*Constant // valid iff Typ.Kind == KList
	Pair       [2]*Constant // valid iff Typ.Kind == KPair
	Data       *data.Data
	G1         *blsutil.G1
	G2         *blsutil.G2
	MlResult   *blsutil.MlResult
}

// NewInteger builds an Integer constant.
func NewInteger(v *big.Int) *Constant { return &Constant{Typ: TInteger(), Integer: v} }

// NewByteString builds a ByteString constant.
func NewByteString(b []byte) *Constant { return &Constant{Typ: TByteString(), ByteString: b} }

// NewString builds a String constant.
func NewString(s string) *Constant { return &Constant{Typ: TString(), String: s} }

// NewUnit builds the Unit constant.
func NewUnit() *Constant { return &Constant{Typ: TUnit()} }

// NewBool builds a Bool constant.
func NewBool(b bool) *Constant { return &Constant{Typ: TBool(), Bool: b} }

// NewData builds a Data constant.
func NewData(d *data.Data) *Constant { return &Constant{Typ: TData(), Data: d} }

// NewG1 builds a G1Element constant.
func NewG1(p blsutil.G1) *Constant { return &Constant{Typ: TG1(), G1: &p} }

// NewG2 builds a G2Element constant.
func NewG2(p blsutil.G2) *Constant { return &Constant{Typ: TG2(), G2: &p} }

// NewMlResult builds an MlResult constant.
func NewMlResult(v blsutil.MlResult) *Constant { return &Constant{Typ: TMlResult(), MlResult: &v} }

// NewList builds a ProtoList constant. It is an error (returned, not
// panicked — callers at the builtin boundary turn this into a fatal type
// error) for any element's Typ to differ structurally from elemTyp.
func NewList(elemTyp *Type, elems []*Constant) (*Constant, error) {
	for i, e := range elems {
		if !e.Typ.Equals(elemTyp) {
			return nil, fmt.Errorf("uplc: list element %d has type %s, want %s", i, e.Typ, elemTyp)
		}
	}
	return &Constant{Typ: TList(elemTyp), List: elems}, nil
}

// NewPair builds a ProtoPair constant, checking both component types.
func NewPair(fstTyp, sndTyp *Type, fst, snd *Constant) (*Constant, error) {
	if !fst.Typ.Equals(fstTyp) {
		return nil, fmt.Errorf("uplc: pair fst has type %s, want %s", fst.Typ, fstTyp)
	}
	if !snd.Typ.Equals(sndTyp) {
		return nil, fmt.Errorf("uplc: pair snd has type %s, want %s", snd.Typ, sndTyp)
	}
	return &Constant{Typ: TPair(fstTyp, sndTyp), Pair: [2]*Constant{fst, snd}}, nil
}
