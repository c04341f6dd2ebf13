package value

// Env is an immutable cons-list environment: extending it never mutates the
// parent, so a single Env can be safely captured by many closures. Lookup
// walks outward from the innermost binding, consistent with de Bruijn
// index 0 meaning "nearest enclosing binder".
type Env struct {
	head *Value
	tail *Env
}

// Empty is the environment with no bindings.
var Empty = (*Env)(nil)

// Extend returns a new environment with v bound at index 0, pushing every
// existing binding out by one.
func (e *Env) Extend(v *Value) *Env {
	return &Env{head: v, tail: e}
}

// Lookup returns the value bound at de Bruijn index idx (0 = innermost), and
// false if idx has no binding (an open term reached the machine).
func (e *Env) Lookup(idx int) (*Value, bool) {
	for cur := e; cur != nil; cur = cur.tail {
		if idx == 0 {
			return cur.head, true
		}
		idx--
	}
	return nil, false
}

// Len reports how many bindings are visible in e.
func (e *Env) Len() int {
	n := 0
	for cur := e; cur != nil; cur = cur.tail {
		n++
	}
	return n
}
