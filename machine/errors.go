package machine

import "errors"

// The error taxonomy. Every machine/dispatch failure wraps one of these
// sentinels with fmt.Errorf("%w: ...", Err..., detail) so callers can
// classify a failure with errors.Is while still getting a readable
// message.
var (
	// ErrBudgetExhausted fires when a debit drives either budget component
	// negative.
	ErrBudgetExhausted = errors.New("machine: budget exhausted")

	// ErrExplicitError fires when reduction reaches an Error term.
	ErrExplicitError = errors.New("machine: explicit error term")

	// ErrOpenTerm fires when a Var's de Bruijn index has no binding in the
	// current environment.
	ErrOpenTerm = errors.New("machine: open term: unbound variable")

	// ErrTypeError fires at a builtin boundary (or Force/Apply reduction)
	// when a value does not have the shape the position requires.
	ErrTypeError = errors.New("machine: type error")

	// ErrShape fires for in-builtin shape violations: empty list head/tail,
	// out-of-bounds index, bad key/signature lengths, oversized DST,
	// division by zero, negative or oversized sizes, invalid BLS encoding,
	// bad UTF-8, ConsByteString V2 range violation.
	ErrShape = errors.New("machine: shape error")

	// ErrCaseMissingBranch fires when a Constr tag has no matching Case
	// branch.
	ErrCaseMissingBranch = errors.New("machine: case branch missing")

	// ErrOverApplication fires when an already-saturated builtin receives
	// another argument or Force.
	ErrOverApplication = errors.New("machine: over-application")

	// ErrNotSaturated fires when the top-level result is a Builtin runtime
	// that never reached readiness.
	ErrNotSaturated = errors.New("machine: builtin did not saturate")
)
