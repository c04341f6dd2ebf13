package costmodel

import (
	"math/big"
	"unicode/utf8"

	"github.com/jonathanlim222/uplc/data"
	"github.com/jonathanlim222/uplc/uplc"
)

// wordSize is the machine word width ex-memory is quantised to: integers
// cost one unit per 64 bits, ceiling-rounded.
const wordSize = 64

// constSize is the ex-memory charge for every constant-shape value —
// Unit, Bool, and the BLS12-381 group/pairing types, none of which scale
// with operand size.
const constSize int64 = 1

// IntegerExMem returns the ex-memory of an arbitrary-precision integer:
// ceil(bitlen/64), minimum 1 (zero's bit length is 0 but it still occupies
// one machine word).
func IntegerExMem(v *big.Int) int64 {
	bits := v.BitLen()
	words := (bits + wordSize - 1) / wordSize
	if words == 0 {
		words = 1
	}
	return int64(words)
}

// ByteStringExMem returns the ex-memory of a byte string: its length in
// bytes, minimum 1.
func ByteStringExMem(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64(len(b))
}

// StringExMem returns the ex-memory of a string: its length in runes, not
// its byte length.
func StringExMem(s string) int64 {
	n := int64(utf8.RuneCountInString(s))
	if n == 0 {
		return 1
	}
	return n
}

// DataExMem returns the ex-memory of a structural Data value, delegating to
// data.ExMem which already implements the structural weight rule.
func DataExMem(d *data.Data) int64 {
	return data.ExMem(d)
}

// ListExMem returns the ex-memory of a ProtoList constant: the compositional
// sum of its elements' ex-memories.
func ListExMem(elems []*uplc.Constant) int64 {
	var total int64
	for _, e := range elems {
		total += ConstantExMem(e)
	}
	return total
}

// PairExMem returns the ex-memory of a ProtoPair constant: the sum of both
// components' ex-memories.
func PairExMem(fst, snd *uplc.Constant) int64 {
	return ConstantExMem(fst) + ConstantExMem(snd)
}

// ConstantExMem dispatches on a Constant's runtime Type to compute its
// ex-memory, the single entry point the cost table uses to size builtin
// operands.
func ConstantExMem(c *uplc.Constant) int64 {
	switch c.Typ.Kind {
	case uplc.KInteger:
		return IntegerExMem(c.Integer)
	case uplc.KByteString:
		return ByteStringExMem(c.ByteString)
	case uplc.KString:
		return StringExMem(c.String)
	case uplc.KUnit, uplc.KBool, uplc.KG1, uplc.KG2, uplc.KMlResult:
		return constSize
	case uplc.KData:
		return DataExMem(c.Data)
	case uplc.KList:
		return ListExMem(c.List)
	case uplc.KPair:
		return PairExMem(c.Pair[0], c.Pair[1])
	default:
		return constSize
	}
}
