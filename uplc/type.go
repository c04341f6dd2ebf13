// Package uplc holds the data model of the source language: Constant,
// Type, and Term. Values, Environments and Runtime records live in the
// sibling value package since they are machine-time constructs, not things
// that appear in source code — the two are kept deliberately separate
// rather than unified into one value domain.
package uplc

import "strings"

// Kind is the tag of a structural Type descriptor.
type Kind uint8

const (
	KInteger Kind = iota
	KByteString
	KString
	KUnit
	KBool
	KData
	KG1
	KG2
	KMlResult
	KList
	KPair
)

var kindNames = [...]string{
	KInteger:    "integer",
	KByteString: "bytestring",
	KString:    "string",
	KUnit:      "unit",
	KBool:      "bool",
	KData:      "data",
	KG1:        "bls12_381_G1_element",
	KG2:        "bls12_381_G2_element",
	KMlResult:  "bls12_381_mlresult",
	KList:      "list",
	KPair:      "pair",
}

// Type is a structural type descriptor. Atomic kinds carry no children;
// List carries Elem; Pair carries Fst and Snd. Types compare structurally
// via Equals, never by identity.
type Type struct {
	Kind Kind
	Elem *Type // set iff Kind == KList
	Fst  *Type // set iff Kind == KPair
	Snd  *Type // set iff Kind == KPair
}

var (
	tInteger    = &Type{Kind: KInteger}
	tByteString = &Type{Kind: KByteString}
	tString     = &Type{Kind: KString}
	tUnit       = &Type{Kind: KUnit}
	tBool       = &Type{Kind: KBool}
	tData       = &Type{Kind: KData}
	tG1         = &Type{Kind: KG1}
	tG2         = &Type{Kind: KG2}
	tMlResult   = &Type{Kind: KMlResult}
)

// Atomic type constructors. These return shared singletons since atomic
// types carry no state; List/Pair always allocate since they carry children.
func TInteger() *Type    { return tInteger }
func TByteString() *Type { return tByteString }
func TString() *Type     { return tString }
func TUnit() *Type       { return tUnit }
func TBool() *Type       { return tBool }
func TData() *Type       { return tData }
func TG1() *Type         { return tG1 }
func TG2() *Type         { return tG2 }
func TMlResult() *Type   { return tMlResult }

// TList builds List(elem).
func TList(elem *Type) *Type { return &Type{Kind: KList, Elem: elem} }

// TPair builds Pair(fst,snd).
func TPair(fst, snd *Type) *Type { return &Type{Kind: KPair, Fst: fst, Snd: snd} }

// Equals reports whether t and other describe the same structural type.
func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KList:
		return t.Elem.Equals(other.Elem)
	case KPair:
		return t.Fst.Equals(other.Fst) && t.Snd.Equals(other.Snd)
	default:
		return true
	}
}

// String renders t the way Plutus Core type annotations are conventionally
// printed, e.g. "list (pair integer bytestring)".
func (t *Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	switch t.Kind {
	case KList:
		b.WriteString("list (")
		t.Elem.write(b)
		b.WriteString(")")
	case KPair:
		b.WriteString("pair (")
		t.Fst.write(b)
		b.WriteString(") (")
		t.Snd.write(b)
		b.WriteString(")")
	default:
		b.WriteString(kindNames[t.Kind])
	}
}
