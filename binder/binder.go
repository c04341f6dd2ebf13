// Package binder implements the binder abstraction the machine depends on:
// give me the value at index i from the innermost frame, never a specific
// wire representation. Var is the contract a variable occurrence must
// satisfy; Param is the (empty) contract a parameter binder must satisfy.
// Everything outside this package — the wire encode/decode strategy, named
// vs. named-de-Bruijn representations — is an external collaborator's
// concern.
package binder

// Var is a variable occurrence as it appears in a Term.Var node. The
// machine's only requirement is Index(): the de Bruijn "distance to binder"
// count, 0 = innermost.
type Var interface {
	Index() int
}

// Param is a lambda or Case-branch parameter binder. The CEK machine reads
// nothing from it at evaluation time — in the canonical de Bruijn form a
// parameter binder carries no information on the wire; Name exists purely
// for diagnostics.
type Param interface {
	Name() string
}
