// Package data implements PlutusData, the self-describing structural datum
// format: five variants — Constr, Map, List, Integer, ByteString — plus the
// canonical CBOR codec backing the SerialiseData builtin.
package data

import (
	"math/big"
)

// Kind tags which variant of PlutusData a Data node holds.
type Kind uint8

const (
	KConstr Kind = iota
	KMap
	KList
	KInteger
	KByteString
)

// Pair is one (key, value) entry of a Map node. Order is preserved and
// duplicate keys are allowed; equality and lookup are positional, never
// deduplicated.
type Pair struct {
	Key   *Data
	Value *Data
}

// Data is one node of a PlutusData tree. Only the field(s) matching Kind
// are meaningful.
type Data struct {
	Kind        Kind
	Tag         uint64  // KConstr
	Fields      []*Data // KConstr
	Pairs       []Pair  // KMap
	List        []*Data // KList
	Integer     *big.Int
	ByteString  []byte
}

// Constr builds a Constr(tag, fields) node.
func Constr(tag uint64, fields []*Data) *Data {
	return &Data{Kind: KConstr, Tag: tag, Fields: fields}
}

// Map builds a Map node from an ordered list of pairs.
func Map(pairs []Pair) *Data {
	return &Data{Kind: KMap, Pairs: pairs}
}

// List builds a List node.
func List(items []*Data) *Data {
	return &Data{Kind: KList, List: items}
}

// Int builds an Integer node.
func Int(v *big.Int) *Data {
	return &Data{Kind: KInteger, Integer: v}
}

// Bytes builds a ByteString node.
func Bytes(b []byte) *Data {
	return &Data{Kind: KByteString, ByteString: b}
}

// Equals is structural equality over the whole tree.
func Equals(a, b *Data) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KConstr:
		if a.Tag != b.Tag || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !Equals(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case KMap:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equals(a.Pairs[i].Key, b.Pairs[i].Key) || !Equals(a.Pairs[i].Value, b.Pairs[i].Value) {
				return false
			}
		}
		return true
	case KList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equals(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KInteger:
		return a.Integer.Cmp(b.Integer) == 0
	case KByteString:
		if len(a.ByteString) != len(b.ByteString) {
			return false
		}
		for i := range a.ByteString {
			if a.ByteString[i] != b.ByteString[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ExMem is the cost model's structural-weight function for Data. It
// follows the Plutus convention of charging 4 units per node plus the
// weight of an Integer leaf's magnitude, matching the way
// costmodel.IntegerExMem charges per 64-bit limb: every node costs a flat
// 4, Integer leaves additionally cost their 64-bit word count (minimum 1),
// and ByteString leaves additionally cost their length in 8-byte words,
// rounded up.
func ExMem(d *Data) int64 {
	if d == nil {
		return 0
	}
	switch d.Kind {
	case KConstr:
		total := int64(4)
		for _, f := range d.Fields {
			total += ExMem(f)
		}
		return total
	case KMap:
		total := int64(4)
		for _, p := range d.Pairs {
			total += ExMem(p.Key) + ExMem(p.Value)
		}
		return total
	case KList:
		total := int64(4)
		for _, it := range d.List {
			total += ExMem(it)
		}
		return total
	case KInteger:
		return 4 + integerExMem(d.Integer)
	case KByteString:
		return 4 + int64((len(d.ByteString)+7)/8)
	default:
		return 0
	}
}

func integerExMem(v *big.Int) int64 {
	bits := v.BitLen()
	if bits == 0 {
		return 1
	}
	return int64((bits + 63) / 64)
}
