// Package value implements the CEK machine's runtime value domain: the
// result of fully reducing a Term. Values are produced only by the machine
// package's Return mode; this package owns their shape and the
// Environment/Runtime helper types the machine closes lambdas and
// partially-applied builtins over.
package value

import (
	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/uplc"
)

// Kind tags which of the five value forms a Value is.
type Kind uint8

const (
	VCon Kind = iota
	VLambda
	VDelay
	VConstr
	VBuiltin
)

// Value is the result of fully reducing a Term under the CEK machine. Only
// the field(s) matching Kind are meaningful.
type Value struct {
	Kind Kind

	// VCon
	Constant *uplc.Constant

	// VLambda
	Param *uplc.Term // the lambda's originating term, for Body/Param access
	Env   *Env

	// VDelay
	Body    *uplc.Term
	DelayEnv *Env

	// VConstr
	ConstrTag  uint64
	ConstrArgs []*Value

	// VBuiltin
	Builtin *Runtime
}

// Con wraps a fully evaluated Constant as a Value.
func Con(c *uplc.Constant) *Value { return &Value{Kind: VCon, Constant: c} }

// Lambda closes a Lambda term's body over env.
func Lambda(lamTerm *uplc.Term, env *Env) *Value {
	return &Value{Kind: VLambda, Param: lamTerm, Env: env}
}

// Delay closes a Delay term's body over env.
func Delay(body *uplc.Term, env *Env) *Value {
	return &Value{Kind: VDelay, Body: body, DelayEnv: env}
}

// Constr builds a fully evaluated data constructor value.
func Constr(tag uint64, args []*Value) *Value {
	return &Value{Kind: VConstr, ConstrTag: tag, ConstrArgs: args}
}

// Builtin wraps a (possibly partially applied) builtin runtime as a Value.
func Builtin(rt *Runtime) *Value { return &Value{Kind: VBuiltin, Builtin: rt} }

// BuiltinID is a convenience accessor for the Id of a VBuiltin value's
// runtime.
func (v *Value) BuiltinID() builtin.Id { return v.Builtin.Fun }
