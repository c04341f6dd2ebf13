package machine

import (
	"fmt"

	"github.com/jonathanlim222/uplc/costmodel"
	"github.com/jonathanlim222/uplc/uplc"
	"github.com/jonathanlim222/uplc/value"
)

// stepCompute implements the Compute-mode reduction rules. It either
// returns a Value directly (cont == nil) or names the next subterm/env to
// Compute (cont != nil); exactly one of the two is set on success.
func (m *Machine) stepCompute(t *uplc.Term, env *value.Env) (*value.Value, *continuation, error) {
	switch t.Kind {
	case uplc.TVar:
		if err := m.chargeStep(costmodel.StepVar); err != nil {
			return nil, nil, err
		}
		v, ok := env.Lookup(t.Var.Index())
		if !ok {
			return nil, nil, fmt.Errorf("%w: index %d", ErrOpenTerm, t.Var.Index())
		}
		return v, nil, nil

	case uplc.TLambda:
		if err := m.chargeStep(costmodel.StepLambda); err != nil {
			return nil, nil, err
		}
		return value.Lambda(t, env), nil, nil

	case uplc.TDelay:
		if err := m.chargeStep(costmodel.StepDelay); err != nil {
			return nil, nil, err
		}
		return value.Delay(t.Body, env), nil, nil

	case uplc.TConstant:
		if err := m.chargeStep(costmodel.StepConstant); err != nil {
			return nil, nil, err
		}
		return value.Con(t.Constant), nil, nil

	case uplc.TBuiltin:
		if err := m.chargeStep(costmodel.StepBuiltin); err != nil {
			return nil, nil, err
		}
		return value.Builtin(value.NewRuntime(t.Builtin)), nil, nil

	case uplc.TApply:
		if err := m.chargeStep(costmodel.StepApply); err != nil {
			return nil, nil, err
		}
		m.push(Frame{Kind: FAwaitFunTerm, ArgTerm: t.Arg, Env: env})
		return nil, &continuation{term: t.Fun, env: env}, nil

	case uplc.TForce:
		if err := m.chargeStep(costmodel.StepForce); err != nil {
			return nil, nil, err
		}
		m.push(Frame{Kind: FForce})
		return nil, &continuation{term: t.Body, env: env}, nil

	case uplc.TError:
		return nil, nil, ErrExplicitError

	case uplc.TConstr:
		if err := m.chargeStep(costmodel.StepConstr); err != nil {
			return nil, nil, err
		}
		if len(t.ConstrFields) == 0 {
			return value.Constr(t.ConstrTag, nil), nil, nil
		}
		m.push(Frame{
			Kind:      FConstr,
			ConstrTag: t.ConstrTag,
			Done:      nil,
			Remaining: t.ConstrFields[1:],
			Env:       env,
		})
		return nil, &continuation{term: t.ConstrFields[0], env: env}, nil

	case uplc.TCase:
		if err := m.chargeStep(costmodel.StepCase); err != nil {
			return nil, nil, err
		}
		m.push(Frame{Kind: FCases, Branches: t.Branches, Env: env})
		return nil, &continuation{term: t.Scrutinee, env: env}, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown term kind %d", ErrTypeError, t.Kind)
	}
}

// stepReturn implements the Return-mode reduction rules against the frame
// popped from the top of the stack. Exactly one of (*value.Value,
// *continuation) is set on success.
func (m *Machine) stepReturn(fr Frame, v *value.Value) (*value.Value, *continuation, error) {
	switch fr.Kind {
	case FForce:
		return m.returnForce(v)

	case FAwaitFunTerm:
		m.push(Frame{Kind: FAwaitArg, Fun: v})
		return nil, &continuation{term: fr.ArgTerm, env: fr.Env}, nil

	case FAwaitArg:
		return m.apply(fr.Fun, v)

	case FApplyValue:
		return m.apply(v, fr.ArgValue)

	case FConstr:
		done := append(append([]*value.Value{}, fr.Done...), v)
		if len(fr.Remaining) == 0 {
			return value.Constr(fr.ConstrTag, done), nil, nil
		}
		m.push(Frame{
			Kind:      FConstr,
			ConstrTag: fr.ConstrTag,
			Done:      done,
			Remaining: fr.Remaining[1:],
			Env:       fr.Env,
		})
		return nil, &continuation{term: fr.Remaining[0], env: fr.Env}, nil

	case FCases:
		return m.returnCases(fr, v)

	default:
		return nil, nil, fmt.Errorf("%w: unknown frame kind %d", ErrTypeError, fr.Kind)
	}
}

// returnForce handles Return against a FrameForce: unwrap a Delay once, or
// absorb one Force into a builtin Runtime, dispatching if that completes
// saturation.
func (m *Machine) returnForce(v *value.Value) (*value.Value, *continuation, error) {
	switch v.Kind {
	case value.VDelay:
		return nil, &continuation{term: v.Body, env: v.DelayEnv}, nil

	case value.VBuiltin:
		rt := v.Builtin
		if !rt.NeedsForce() {
			return nil, nil, fmt.Errorf("%w: %s has no remaining forces to absorb", ErrOverApplication, rt.Fun)
		}
		rt2 := rt.Force()
		if rt2.IsReady() {
			result, err := m.dispatch(rt2)
			return result, nil, err
		}
		return value.Builtin(rt2), nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: cannot force a non-delay, non-builtin value", ErrTypeError)
	}
}

// apply implements the Apply-position Return rule shared by FrameAwaitArg
// and FrameApplyValue: fn is the function value, arg is the already-known
// argument value.
func (m *Machine) apply(fn, arg *value.Value) (*value.Value, *continuation, error) {
	switch fn.Kind {
	case value.VLambda:
		return nil, &continuation{term: fn.Param.Body, env: fn.Env.Extend(arg)}, nil

	case value.VBuiltin:
		rt := fn.Builtin
		if rt.NeedsForce() {
			return nil, nil, fmt.Errorf("%w: %s still requires a Force before arguments", ErrShape, rt.Fun)
		}
		if len(rt.Args) >= rt.Fun.Arity() {
			return nil, nil, fmt.Errorf("%w: %s already saturated", ErrOverApplication, rt.Fun)
		}
		rt2 := rt.Push(arg)
		if rt2.IsReady() {
			result, err := m.dispatch(rt2)
			return result, nil, err
		}
		return value.Builtin(rt2), nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: cannot apply a non-function value", ErrTypeError)
	}
}

// returnCases handles Return against a FrameCases: the scrutinee must be a
// Constr; its tag selects a branch, and its fields are replayed as a
// left-to-right application chain against that branch.
func (m *Machine) returnCases(fr Frame, v *value.Value) (*value.Value, *continuation, error) {
	if v.Kind != value.VConstr {
		return nil, nil, fmt.Errorf("%w: case scrutinee is not a constructor value", ErrTypeError)
	}
	if v.ConstrTag >= uint64(len(fr.Branches)) {
		return nil, nil, fmt.Errorf("%w: tag %d", ErrCaseMissingBranch, v.ConstrTag)
	}
	branch := fr.Branches[v.ConstrTag]
	for i := len(v.ConstrArgs) - 1; i >= 0; i-- {
		m.push(Frame{Kind: FApplyValue, ArgValue: v.ConstrArgs[i]})
	}
	return nil, &continuation{term: branch, env: fr.Env}, nil
}
