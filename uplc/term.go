package uplc

import (
	"github.com/jonathanlim222/uplc/binder"
	"github.com/jonathanlim222/uplc/builtin"
)

// TermKind tags which of the ten term forms a Term node is.
type TermKind uint8

const (
	TVar TermKind = iota
	TLambda
	TApply
	TForce
	TDelay
	TConstant
	TBuiltin
	TError
	TConstr
	TCase
)

// Term is one arena-owned, immutable node of the source language AST. Only
// the field(s) matching Kind are meaningful. Terms are built once (by an
// external parser this package does not implement) and never mutated;
// sharing a *Term across multiple call sites is always safe.
type Term struct {
	Kind TermKind

	// TVar
	Var binder.Var

	// TLambda
	Param binder.Param
	Body  *Term // TLambda, TForce, TDelay body

	// TApply
	Fun *Term
	Arg *Term

	// TConstant
	Constant *Constant

	// TBuiltin
	Builtin builtin.Id

	// TConstr
	ConstrTag    uint64
	ConstrFields []*Term

	// TCase
	Scrutinee *Term
	Branches  []*Term
}

// NewVar builds a Var term.
func NewVar(v binder.Var) *Term { return &Term{Kind: TVar, Var: v} }

// NewLambda builds a Lambda term.
func NewLambda(param binder.Param, body *Term) *Term {
	return &Term{Kind: TLambda, Param: param, Body: body}
}

// NewApply builds an Apply term.
func NewApply(fun, arg *Term) *Term { return &Term{Kind: TApply, Fun: fun, Arg: arg} }

// NewForce builds a Force term.
func NewForce(body *Term) *Term { return &Term{Kind: TForce, Body: body} }

// NewDelay builds a Delay term.
func NewDelay(body *Term) *Term { return &Term{Kind: TDelay, Body: body} }

// NewConstant builds a Constant term.
func NewConstant(c *Constant) *Term { return &Term{Kind: TConstant, Constant: c} }

// NewBuiltin builds a Builtin term.
func NewBuiltin(id builtin.Id) *Term { return &Term{Kind: TBuiltin, Builtin: id} }

// NewError builds an Error term.
func NewError() *Term { return &Term{Kind: TError} }

// NewConstr builds a Constr term.
func NewConstr(tag uint64, fields []*Term) *Term {
	return &Term{Kind: TConstr, ConstrTag: tag, ConstrFields: fields}
}

// NewCase builds a Case term.
func NewCase(scrutinee *Term, branches []*Term) *Term {
	return &Term{Kind: TCase, Scrutinee: scrutinee, Branches: branches}
}
