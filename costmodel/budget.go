// Package costmodel implements the (cpu, mem) budget pair, the ex-memory
// sizing functions that feed cost computation, and the cost table mapping
// named machine steps and builtin IDs to cost functions. Budget debiting
// follows the familiar gas-metering shape — a running counter debited per
// step, negative balance aborting the run — generalised from a single
// counter to a (cpu, mem) pair.
package costmodel

import "fmt"

// Budget is a strict, monotonically-debited pair of 64-bit signed counters.
// Going negative in either component is a fatal, unrecoverable condition:
// the caller must stop evaluating immediately.
type Budget struct {
	CPU int64
	Mem int64
}

// ErrExhausted is a sentinel for an exhausted budget. The machine package
// does not use it; it reports exhaustion with its own ErrBudgetExhausted.
var ErrExhausted = fmt.Errorf("costmodel: budget exhausted")

// Exhausted reports whether either component has gone negative.
func (b Budget) Exhausted() bool {
	return b.CPU < 0 || b.Mem < 0
}

// Debit subtracts cost from b, returning the new budget. It never clamps:
// a negative result is the out-of-budget signal callers must check via
// Exhausted immediately after debiting.
func (b Budget) Debit(cost Cost) Budget {
	return Budget{CPU: b.CPU - cost.CPU, Mem: b.Mem - cost.Mem}
}

// Cost is the (cpu, mem) charge produced by a single cost function
// evaluation.
type Cost struct {
	CPU int64
	Mem int64
}

// Add combines two costs, used when a builtin's total charge is the sum of
// several operand-derived components.
func (c Cost) Add(o Cost) Cost {
	return Cost{CPU: c.CPU + o.CPU, Mem: c.Mem + o.Mem}
}
