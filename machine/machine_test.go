package machine

import (
	"errors"
	"math/big"
	"testing"

	"github.com/jonathanlim222/uplc/binder"
	"github.com/jonathanlim222/uplc/builtin"
	"github.com/jonathanlim222/uplc/costmodel"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

func intConst(n int64) *uplc.Constant { return uplc.NewInteger(big.NewInt(n)) }

func hugeBudget() costmodel.Budget {
	return costmodel.Budget{CPU: 1 << 40, Mem: 1 << 40}
}

func run(t *testing.T, term *uplc.Term) (Result, error) {
	t.Helper()
	m := New(costmodel.Default(), hugeBudget(), SemanticsV1)
	return m.Run(term, value.Empty)
}

// S1: the identity function applied to an integer constant reduces to that
// integer.
func TestIdentityAppliedToInteger(t *testing.T) {
	identity := uplc.NewLambda(binder.Zero(), uplc.NewVar(binder.Zero()))
	term := uplc.NewApply(identity, uplc.NewConstant(intConst(42)))

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Kind != value.VCon || res.Value.Constant.Integer.Int64() != 42 {
		t.Fatalf("result = %+v; want Con(42)", res.Value)
	}
}

// S2: forcing a Delay evaluates its body under the environment the Delay
// captured.
func TestForceOfDelay(t *testing.T) {
	term := uplc.NewForce(uplc.NewDelay(uplc.NewConstant(intConst(7))))

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Integer.Int64() != 7 {
		t.Fatalf("result = %v; want 7", res.Value.Constant.Integer)
	}
}

// S3: a fully saturated AddInteger dispatches and produces the sum.
func TestAddIntegerSaturatesAndDispatches(t *testing.T) {
	term := uplc.NewApply(
		uplc.NewApply(uplc.NewBuiltin(builtin.AddInteger), uplc.NewConstant(intConst(2))),
		uplc.NewConstant(intConst(3)),
	)

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Integer.Int64() != 5 {
		t.Fatalf("result = %v; want 5", res.Value.Constant.Integer)
	}
}

// S4: division by zero is a fatal shape error, not a panic or a silent
// result.
func TestDivideByZeroIsFatal(t *testing.T) {
	term := uplc.NewApply(
		uplc.NewApply(uplc.NewBuiltin(builtin.DivideInteger), uplc.NewConstant(intConst(10))),
		uplc.NewConstant(intConst(0)),
	)

	_, err := run(t, term)
	if !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v; want ErrShape", err)
	}
}

// S5: IfThenElse only evaluates the selected branch; the other branch's
// Error term is never reached.
func TestIfThenElseIsLazyInBranches(t *testing.T) {
	chosen := uplc.NewDelay(uplc.NewConstant(intConst(99)))
	unchosen := uplc.NewDelay(uplc.NewError())

	term := uplc.NewForce(uplc.NewApply(
		uplc.NewApply(
			uplc.NewApply(uplc.NewForce(uplc.NewBuiltin(builtin.IfThenElse)), uplc.NewConstant(uplc.NewBool(true))),
			chosen,
		),
		unchosen,
	))

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Integer.Int64() != 99 {
		t.Fatalf("result = %v; want 99", res.Value.Constant.Integer)
	}
}

// S6: Trace accumulates its message into the log and still returns its
// second argument.
func TestTraceAccumulatesLogAndPassesThrough(t *testing.T) {
	term := uplc.NewApply(
		uplc.NewApply(uplc.NewForce(uplc.NewBuiltin(builtin.Trace)), uplc.NewConstant(uplc.NewString("hello"))),
		uplc.NewConstant(intConst(1)),
	)

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Integer.Int64() != 1 {
		t.Fatalf("result = %v; want 1", res.Value.Constant.Integer)
	}
	found := false
	for _, line := range res.Log {
		if line == "hello" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Log = %v; want an entry for \"hello\"", res.Log)
	}
}

// S7: a deeply nested AddInteger tower exceeds a deliberately tiny budget;
// the machine reports exhaustion with a negative budget component rather
// than looping or panicking.
func TestBudgetExhaustionStopsEvaluation(t *testing.T) {
	term := uplc.NewConstant(intConst(0))
	for i := 0; i < 500; i++ {
		term = uplc.NewApply(
			uplc.NewApply(uplc.NewBuiltin(builtin.AddInteger), term),
			uplc.NewConstant(intConst(1)),
		)
	}

	m := New(costmodel.Default(), costmodel.Budget{CPU: 10, Mem: 10}, SemanticsV1)
	res, err := m.Run(term, value.Empty)
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v; want ErrBudgetExhausted", err)
	}
	if !res.Budget.Exhausted() {
		t.Fatalf("Budget = %+v; want Exhausted() = true", res.Budget)
	}
}

func TestOpenTermIsFatal(t *testing.T) {
	term := uplc.NewVar(binder.NewVar(0))
	_, err := run(t, term)
	if !errors.Is(err, ErrOpenTerm) {
		t.Fatalf("err = %v; want ErrOpenTerm", err)
	}
}

func TestExplicitErrorTermIsFatal(t *testing.T) {
	_, err := run(t, uplc.NewError())
	if !errors.Is(err, ErrExplicitError) {
		t.Fatalf("err = %v; want ErrExplicitError", err)
	}
}

func TestUnsaturatedBuiltinAtTopLevelIsFatal(t *testing.T) {
	term := uplc.NewApply(uplc.NewBuiltin(builtin.AddInteger), uplc.NewConstant(intConst(1)))
	_, err := run(t, term)
	if !errors.Is(err, ErrNotSaturated) {
		t.Fatalf("err = %v; want ErrNotSaturated", err)
	}
}

func TestConstrAndCaseDispatchToCorrectBranch(t *testing.T) {
	// Constr(1, [42]) destructured by a Case with two branches; branch 1
	// is a lambda that returns its argument unchanged.
	scrutinee := uplc.NewConstr(1, []*uplc.Term{uplc.NewConstant(intConst(42))})
	branch0 := uplc.NewLambda(binder.Zero(), uplc.NewError())
	branch1 := uplc.NewLambda(binder.Zero(), uplc.NewVar(binder.Zero()))
	term := uplc.NewCase(scrutinee, []*uplc.Term{branch0, branch1})

	res, err := run(t, term)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Value.Constant.Integer.Int64() != 42 {
		t.Fatalf("result = %v; want 42", res.Value.Constant.Integer)
	}
}

func TestCaseMissingBranchIsFatal(t *testing.T) {
	scrutinee := uplc.NewConstr(5, nil)
	branch0 := uplc.NewLambda(binder.Zero(), uplc.NewConstant(intConst(0)))
	term := uplc.NewCase(scrutinee, []*uplc.Term{branch0})

	_, err := run(t, term)
	if !errors.Is(err, ErrCaseMissingBranch) {
		t.Fatalf("err = %v; want ErrCaseMissingBranch", err)
	}
}
