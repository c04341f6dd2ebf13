// Package machine implements the CEK-style abstract machine: explicit
// Compute/Return modes over a Frame stack, and the builtin dispatch table
// it calls into once a Runtime record saturates. Reduction is a metered
// step loop — each machine action debits a (cpu, mem) budget pair rather
// than a single gas counter, and a tree-shaped control (as opposed to a
// flat instruction stream) moves between the two explicit modes instead of
// a single program counter.
package machine

import (
	"fmt"

	"github.com/jonathanlim222/uplc/arena"
	"github.com/jonathanlim222/uplc/costmodel"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// Semantics selects a machine-wide builtin behaviour flag; today it only
// affects ConsByteString's out-of-range handling.
type Semantics uint8

const (
	SemanticsV1 Semantics = iota
	SemanticsV2
)

// Machine is one evaluation: a single-owner arena, a strictly-debited
// budget, a cost table, a trace log, and the Kontinuation stack. All of it
// is mutated only by the owning Machine, never concurrently.
type Machine struct {
	arena     *arena.Arena
	table     *costmodel.Table
	semantics Semantics
	budget    costmodel.Budget
	log       []string
	stack     []Frame
}

// New constructs a Machine with its own arena, ready to Run exactly one
// Term. A Machine is not reusable across Run calls with a fresh budget;
// build a new one per evaluation, since the arena's lifetime is one
// evaluation.
func New(table *costmodel.Table, budget costmodel.Budget, semantics Semantics) *Machine {
	return &Machine{
		arena:     arena.New(),
		table:     table,
		semantics: semantics,
		budget:    budget,
	}
}

// Result is everything the machine returns on success: the normal form,
// the trace log in dispatch order, and the remaining budget.
type Result struct {
	Value  *value.Value
	Log    []string
	Budget costmodel.Budget
}

// Run reduces term under env (normally value.Empty for a closed top-level
// program) to a final Value, or returns the first fatal error encountered.
// The partial log and the budget at time of failure are always returned
// alongside the error so a caller can render diagnostics even on failure.
func (m *Machine) Run(term *uplc.Term, env *value.Env) (Result, error) {
	if err := m.chargeStep(costmodel.StepStartup); err != nil {
		return m.failure(), err
	}

	ctrl, curEnv := term, env
	var ret *value.Value
	computing := true

	for {
		if computing {
			v, cont, err := m.stepCompute(ctrl, curEnv)
			if err != nil {
				return m.failure(), err
			}
			if cont != nil {
				ctrl, curEnv = cont.term, cont.env
				continue
			}
			ret = v
			computing = false
			continue
		}

		if len(m.stack) == 0 {
			if ret.Kind == value.VBuiltin && !ret.Builtin.IsReady() {
				return m.failure(), fmt.Errorf("%w: %s", ErrNotSaturated, ret.Builtin.Fun)
			}
			return m.success(ret), nil
		}

		fr := m.pop()
		v, cont, err := m.stepReturn(fr, ret)
		if err != nil {
			return m.failure(), err
		}
		if cont != nil {
			ctrl, curEnv = cont.term, cont.env
			computing = true
			continue
		}
		ret = v
	}
}

func (m *Machine) success(v *value.Value) Result {
	return Result{Value: v, Log: m.log, Budget: m.budget}
}

func (m *Machine) failure() Result {
	return Result{Log: m.log, Budget: m.budget}
}

// continuation names what the machine should Compute next.
type continuation struct {
	term *uplc.Term
	env  *value.Env
}

func (m *Machine) push(f Frame) {
	m.stack = append(m.stack, f)
}

func (m *Machine) pop() Frame {
	n := len(m.stack) - 1
	f := m.stack[n]
	m.stack = m.stack[:n]
	return f
}

func (m *Machine) trace(msg string) {
	m.log = append(m.log, msg)
}

// charge debits cost from the budget and reports budget exhaustion
// immediately: exhaustion is detected at the very next debit, not
// pre-checked before a step runs.
func (m *Machine) charge(cost costmodel.Cost) error {
	m.budget = m.budget.Debit(cost)
	if m.budget.Exhausted() {
		return fmt.Errorf("%w: cpu=%d mem=%d", ErrBudgetExhausted, m.budget.CPU, m.budget.Mem)
	}
	return nil
}

func (m *Machine) chargeStep(s costmodel.Step) error {
	return m.charge(m.table.StepCost(s))
}

// newConstant arena-allocates a Constant built during builtin dispatch,
// rather than letting it escape to the Go heap independently of the
// evaluation's single-owner arena.
func (m *Machine) newConstant(c uplc.Constant) *uplc.Constant {
	return arena.Alloc(m.arena, c)
}
