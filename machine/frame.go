package machine

import (
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// FrameKind tags which pending-context shape a Frame records.
type FrameKind uint8

const (
	FAwaitFunTerm FrameKind = iota
	FAwaitArg
	FApplyValue
	FForce
	FConstr
	FCases
)

// Frame is one entry of the machine's explicit Kontinuation stack. Only the
// field(s) matching Kind are meaningful.
type Frame struct {
	Kind FrameKind

	// FAwaitFunTerm: waiting for the function value; ArgTerm/Env name what
	// to Compute next once it arrives.
	ArgTerm *uplc.Term
	Env     *value.Env

	// FAwaitArg: the function value is known; awaiting an argument Term's
	// value.
	Fun *value.Value

	// FApplyValue: the function value is not yet known, but the argument
	// is already a Value (reached via Case/Constr destructuring rather
	// than Apply). Used to replay left-to-right application over
	// already-evaluated constructor fields.
	ArgValue *value.Value

	// FConstr
	ConstrTag uint64
	Done      []*value.Value
	Remaining []*uplc.Term

	// FCases
	Branches []*uplc.Term
}
