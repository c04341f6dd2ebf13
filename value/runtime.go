package value

import "github.com/jonathanlim222/uplc/builtin"

// Runtime is a builtin application in progress: zero or more Force
// operations already absorbed, zero or more argument Values already
// supplied. The machine grows one by repeated FrameForce/FrameAwaitArg
// reduction until IsReady reports true, then dispatches. Every method
// returns a new Runtime rather than mutating the receiver, so a partially
// applied builtin captured in one Value is never disturbed by further
// application elsewhere.
type Runtime struct {
	Fun    builtin.Id
	Forces int
	Args   []*Value
}

// NewRuntime starts a fresh, unapplied runtime for fun.
func NewRuntime(fun builtin.Id) *Runtime {
	return &Runtime{Fun: fun}
}

// NeedsForce reports whether the next expected reduction is a Force rather
// than an argument application.
func (r *Runtime) NeedsForce() bool {
	return r.Forces < r.Fun.ForceArity()
}

// Force absorbs one Force operation, returning the resulting runtime.
func (r *Runtime) Force() *Runtime {
	return &Runtime{Fun: r.Fun, Forces: r.Forces + 1, Args: r.Args}
}

// Push absorbs one more argument value, returning the resulting runtime.
func (r *Runtime) Push(arg *Value) *Runtime {
	args := make([]*Value, len(r.Args)+1)
	copy(args, r.Args)
	args[len(r.Args)] = arg
	return &Runtime{Fun: r.Fun, Forces: r.Forces, Args: args}
}

// IsReady reports whether every Force and argument the builtin requires has
// been absorbed, so it is ready to dispatch.
func (r *Runtime) IsReady() bool {
	return r.Forces >= r.Fun.ForceArity() && len(r.Args) >= r.Fun.Arity()
}

// IsArrow reports whether the runtime is still expecting further
// application (either a Force or an argument) — i.e. whether, as a value,
// it behaves like a function rather than a saturated call ready to run.
func (r *Runtime) IsArrow() bool {
	return !r.IsReady()
}
