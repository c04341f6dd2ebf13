package binder

import "strconv"

// DeBruijn is the canonical concrete Var/Param implementation: a variable
// occurrence carries only its integer index (0 = innermost); a parameter
// binder carries no information at all.
type DeBruijn int

// NewVar builds a variable occurrence at de Bruijn index idx.
func NewVar(idx int) DeBruijn { return DeBruijn(idx) }

// Zero is the innermost-binding variable occurrence (index 0).
func Zero() DeBruijn { return DeBruijn(0) }

// Index implements Var.
func (d DeBruijn) Index() int { return int(d) }

// Name implements Param. De Bruijn parameter binders carry no name; "_" is
// used for disassembly/error messages only.
func (d DeBruijn) Name() string { return "_" }

// String renders the index for diagnostics.
func (d DeBruijn) String() string { return strconv.Itoa(int(d)) }
