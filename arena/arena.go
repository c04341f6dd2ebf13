// Package arena implements the bump-allocated region that owns every Term,
// Value, Environment, Runtime record, big integer, byte string and Data node
// built during a single evaluation.
//
// An Arena never frees piecemeal: its lifetime is exactly one evaluation
// and the whole region is reclaimed at once when the caller drops its
// reference. Go's garbage collector makes manual reclamation unnecessary,
// so Arena's job is narrower than a general-purpose bump allocator: it
// exists to (a) batch-allocate the byte-heavy leaves — ByteString contents
// and Data byte payloads — into a small number of backing buffers instead
// of one `make([]byte, ...)` per node, and (b) give every other owned type
// (Term, Value, Env, Runtime, *big.Int) a single shared home so the "one
// arena per evaluation" ownership contract is explicit in the code, not
// just a convention.
package arena

// defaultChunkSize is the size of each backing buffer the byte pool grows
// by. Chosen to comfortably hold a typical script's byte string constants
// without many chunk rollovers.
const defaultChunkSize = 64 * 1024

// Arena is a single-evaluation allocation region. The zero value is not
// usable; use New.
type Arena struct {
	chunks    [][]byte
	cur       []byte
	allocated uint64
}

// New creates an empty Arena.
func New() *Arena {
	a := &Arena{}
	a.newChunk(defaultChunkSize)
	return a
}

func (a *Arena) newChunk(size uint64) {
	chunk := make([]byte, 0, size)
	a.chunks = append(a.chunks, chunk)
	a.cur = a.chunks[len(a.chunks)-1]
}

// AllocBytes returns a fresh, zero-initialized byte slice of length n backed
// by the arena's pool. Callers that need the slice to outlive this
// evaluation should copy it out explicitly; Go's GC keeps it alive
// regardless, but the arena itself is meant to be dropped as a unit.
func (a *Arena) AllocBytes(n int) []byte {
	if n == 0 {
		return nil
	}
	if cap(a.cur)-len(a.cur) < n {
		size := uint64(defaultChunkSize)
		if uint64(n) > size {
			size = uint64(n)
		}
		a.newChunk(size)
	}
	start := len(a.cur)
	a.cur = a.cur[:start+n]
	a.allocated += uint64(n)
	return a.cur[start : start+n : start+n]
}

// CopyBytes copies src into a fresh arena-owned slice and returns it.
func (a *Arena) CopyBytes(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	dst := a.AllocBytes(len(src))
	copy(dst, src)
	return dst
}

// Used returns the total number of bytes handed out by AllocBytes/CopyBytes,
// for diagnostics only; it is not consulted by the cost model, whose
// ex-memory sizing is purely a function of operand values.
func (a *Arena) Used() uint64 { return a.allocated }

// Alloc places v in a freshly boxed location logically owned by the arena
// and returns a pointer to it. Used for Term, Value, Env and Runtime nodes,
// which are reference types by nature (they are shared via pointers once
// constructed) but conceptually belong to this evaluation's arena.
func Alloc[T any](a *Arena, v T) *T {
	p := new(T)
	*p = v
	return p
}
