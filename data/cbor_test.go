package data

import (
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestSerialiseIntegerRoundTrips(t *testing.T) {
	d := Int(big.NewInt(424242))
	enc, err := Serialise(d)
	if err != nil {
		t.Fatalf("Serialise: %v", err)
	}
	var got big.Int
	if err := cbor.Unmarshal(enc, &got); err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}
	if got.Cmp(d.Integer) != 0 {
		t.Errorf("decoded integer = %v; want %v", &got, d.Integer)
	}
}

func TestSerialiseByteStringRoundTrips(t *testing.T) {
	d := Bytes([]byte("plutus"))
	enc, err := Serialise(d)
	if err != nil {
		t.Fatalf("Serialise: %v", err)
	}
	var got []byte
	if err := cbor.Unmarshal(enc, &got); err != nil {
		t.Fatalf("cbor.Unmarshal: %v", err)
	}
	if string(got) != "plutus" {
		t.Errorf("decoded bytestring = %q; want %q", got, "plutus")
	}
}

func TestSerialiseConstrUsesCompactTag(t *testing.T) {
	d := Constr(2, []*Data{Int(big.NewInt(1))})
	enc, err := Serialise(d)
	if err != nil {
		t.Fatalf("Serialise: %v", err)
	}
	var raw cbor.RawTag
	if err := cbor.Unmarshal(enc, &raw); err != nil {
		t.Fatalf("cbor.Unmarshal RawTag: %v", err)
	}
	want := uint64(constrTagBase + 2)
	if raw.Number != want {
		t.Errorf("constr tag = %d; want %d", raw.Number, want)
	}
}

func TestSerialiseMapUsesTag259(t *testing.T) {
	d := Map([]Pair{{Int(big.NewInt(1)), Int(big.NewInt(2))}})
	enc, err := Serialise(d)
	if err != nil {
		t.Fatalf("Serialise: %v", err)
	}
	var raw cbor.RawTag
	if err := cbor.Unmarshal(enc, &raw); err != nil {
		t.Fatalf("cbor.Unmarshal RawTag: %v", err)
	}
	if raw.Number != 259 {
		t.Errorf("map tag = %d; want 259", raw.Number)
	}
}

func TestIntegerFromBytes(t *testing.T) {
	if v, ok := IntegerFromBytes(int64(5)); !ok || v.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("IntegerFromBytes(int64(5)) = %v, %v; want 5, true", v, ok)
	}
	big7 := big.NewInt(7)
	if v, ok := IntegerFromBytes(*big7); !ok || v.Cmp(big7) != 0 {
		t.Errorf("IntegerFromBytes(big.Int{7}) = %v, %v; want 7, true", v, ok)
	}
	if _, ok := IntegerFromBytes("nope"); ok {
		t.Errorf("IntegerFromBytes(string) = ok; want not ok")
	}
}
