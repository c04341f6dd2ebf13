// Package builtin defines BuiltinId, the single source of truth for every
// primitive operation's name, arity and force-arity. Tables driven by it
// keep the rest of the core extensible without switch-site edits. The
// machine package owns the actual dispatch logic; this package only owns
// identity and shape.
package builtin

// Id identifies one primitive operation. The zero value is not a valid
// builtin; constants start at 1 so an unset/zeroed Id is visibly wrong.
type Id uint8

const (
	_ Id = iota

	AddInteger
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger

	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString

	Sha2_256
	Sha3_256
	Blake2b_256
	Blake2b_224
	Keccak_256
	Ripemd_160

	VerifyEd25519Signature
	VerifyEcdsaSecp256k1Signature
	VerifySchnorrSecp256k1Signature

	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8

	IfThenElse
	ChooseUnit
	Trace

	FstPair
	SndPair

	ChooseList
	MkCons
	HeadList
	TailList
	NullList

	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData
	SerialiseData
	MkPairData
	MkNilData
	MkNilPairData

	Bls12_381_G1_Add
	Bls12_381_G1_Neg
	Bls12_381_G1_ScalarMul
	Bls12_381_G1_Equal
	Bls12_381_G1_Compress
	Bls12_381_G1_Uncompress
	Bls12_381_G1_HashToGroup

	Bls12_381_G2_Add
	Bls12_381_G2_Neg
	Bls12_381_G2_ScalarMul
	Bls12_381_G2_Equal
	Bls12_381_G2_Compress
	Bls12_381_G2_Uncompress
	Bls12_381_G2_HashToGroup

	Bls12_381_MillerLoop
	Bls12_381_MulMlResult
	Bls12_381_FinalVerify

	IntegerToByteString
	ByteStringToInteger
	AndByteString
	OrByteString
	XorByteString
	ComplementByteString
	ReadBit
	WriteBits
	ReplicateByte
	ShiftByteString
	RotateByteString
	CountSetBits
	FindFirstSetBit

	idCount
)

type info struct {
	name       string
	arity      int
	forceArity int
}

var table = [idCount]info{
	AddInteger:            {"addInteger", 2, 0},
	SubtractInteger:       {"subtractInteger", 2, 0},
	MultiplyInteger:       {"multiplyInteger", 2, 0},
	DivideInteger:         {"divideInteger", 2, 0},
	QuotientInteger:       {"quotientInteger", 2, 0},
	RemainderInteger:      {"remainderInteger", 2, 0},
	ModInteger:            {"modInteger", 2, 0},
	EqualsInteger:         {"equalsInteger", 2, 0},
	LessThanInteger:       {"lessThanInteger", 2, 0},
	LessThanEqualsInteger: {"lessThanEqualsInteger", 2, 0},

	AppendByteString:         {"appendByteString", 2, 0},
	ConsByteString:           {"consByteString", 2, 0},
	SliceByteString:          {"sliceByteString", 3, 0},
	LengthOfByteString:       {"lengthOfByteString", 1, 0},
	IndexByteString:          {"indexByteString", 2, 0},
	EqualsByteString:         {"equalsByteString", 2, 0},
	LessThanByteString:       {"lessThanByteString", 2, 0},
	LessThanEqualsByteString: {"lessThanEqualsByteString", 2, 0},

	Sha2_256:    {"sha2_256", 1, 0},
	Sha3_256:    {"sha3_256", 1, 0},
	Blake2b_256: {"blake2b_256", 1, 0},
	Blake2b_224: {"blake2b_224", 1, 0},
	Keccak_256:  {"keccak_256", 1, 0},
	Ripemd_160:  {"ripemd_160", 1, 0},

	VerifyEd25519Signature:         {"verifyEd25519Signature", 3, 0},
	VerifyEcdsaSecp256k1Signature:   {"verifyEcdsaSecp256k1Signature", 3, 0},
	VerifySchnorrSecp256k1Signature: {"verifySchnorrSecp256k1Signature", 3, 0},

	AppendString: {"appendString", 2, 0},
	EqualsString: {"equalsString", 2, 0},
	EncodeUtf8:   {"encodeUtf8", 1, 0},
	DecodeUtf8:   {"decodeUtf8", 1, 0},

	IfThenElse: {"ifThenElse", 3, 1},
	ChooseUnit: {"chooseUnit", 2, 1},
	Trace:      {"trace", 2, 1},

	FstPair: {"fstPair", 1, 2},
	SndPair: {"sndPair", 1, 2},

	ChooseList: {"chooseList", 3, 2},
	MkCons:     {"mkCons", 2, 1},
	HeadList:   {"headList", 1, 1},
	TailList:   {"tailList", 1, 1},
	NullList:   {"nullList", 1, 1},

	ChooseData:    {"chooseData", 6, 1},
	ConstrData:    {"constrData", 2, 0},
	MapData:       {"mapData", 1, 0},
	ListData:      {"listData", 1, 0},
	IData:         {"iData", 1, 0},
	BData:         {"bData", 1, 0},
	UnConstrData:  {"unConstrData", 1, 0},
	UnMapData:     {"unMapData", 1, 0},
	UnListData:    {"unListData", 1, 0},
	UnIData:       {"unIData", 1, 0},
	UnBData:       {"unBData", 1, 0},
	EqualsData:    {"equalsData", 2, 0},
	SerialiseData: {"serialiseData", 1, 0},
	MkPairData:    {"mkPairData", 2, 0},
	MkNilData:     {"mkNilData", 1, 0},
	MkNilPairData: {"mkNilPairData", 1, 0},

	Bls12_381_G1_Add:        {"bls12_381_G1_add", 2, 0},
	Bls12_381_G1_Neg:        {"bls12_381_G1_neg", 1, 0},
	Bls12_381_G1_ScalarMul:  {"bls12_381_G1_scalarMul", 2, 0},
	Bls12_381_G1_Equal:      {"bls12_381_G1_equal", 2, 0},
	Bls12_381_G1_Compress:   {"bls12_381_G1_compress", 1, 0},
	Bls12_381_G1_Uncompress: {"bls12_381_G1_uncompress", 1, 0},
	Bls12_381_G1_HashToGroup: {"bls12_381_G1_hashToGroup", 2, 0},

	Bls12_381_G2_Add:        {"bls12_381_G2_add", 2, 0},
	Bls12_381_G2_Neg:        {"bls12_381_G2_neg", 1, 0},
	Bls12_381_G2_ScalarMul:  {"bls12_381_G2_scalarMul", 2, 0},
	Bls12_381_G2_Equal:      {"bls12_381_G2_equal", 2, 0},
	Bls12_381_G2_Compress:   {"bls12_381_G2_compress", 1, 0},
	Bls12_381_G2_Uncompress: {"bls12_381_G2_uncompress", 1, 0},
	Bls12_381_G2_HashToGroup: {"bls12_381_G2_hashToGroup", 2, 0},

	Bls12_381_MillerLoop:  {"bls12_381_millerLoop", 2, 0},
	Bls12_381_MulMlResult: {"bls12_381_mulMlResult", 2, 0},
	Bls12_381_FinalVerify: {"bls12_381_finalVerify", 2, 0},

	IntegerToByteString:  {"integerToByteString", 3, 0},
	ByteStringToInteger:  {"byteStringToInteger", 2, 0},
	AndByteString:        {"andByteString", 3, 0},
	OrByteString:         {"orByteString", 3, 0},
	XorByteString:        {"xorByteString", 3, 0},
	ComplementByteString: {"complementByteString", 1, 0},
	ReadBit:              {"readBit", 2, 0},
	WriteBits:            {"writeBits", 3, 0},
	ReplicateByte:        {"replicateByte", 2, 0},
	ShiftByteString:      {"shiftByteString", 2, 0},
	RotateByteString:     {"rotateByteString", 2, 0},
	CountSetBits:         {"countSetBits", 1, 0},
	FindFirstSetBit:      {"findFirstSetBit", 1, 0},
}

// String returns the builtin's canonical lowerCamelCase name, as used in
// flat-encoded programs and error messages.
func (id Id) String() string {
	if id == 0 || int(id) >= len(table) {
		return "<invalid builtin>"
	}
	return table[id].name
}

// Arity returns the number of term arguments the builtin must be applied to
// before it is ready to dispatch.
func (id Id) Arity() int { return table[id].arity }

// ForceArity returns the number of Force operations the builtin must absorb
// before it is ready to dispatch.
func (id Id) ForceArity() int { return table[id].forceArity }

// Valid reports whether id names a real builtin.
func (id Id) Valid() bool { return id > 0 && int(id) < len(table) }

// Count is the number of defined builtins, for table-sizing callers.
const Count = int(idCount) - 1
