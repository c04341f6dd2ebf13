package costmodel

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jonathanlim222/uplc/builtin"
)

// Step names the fixed per-reduction-step costs: startup at machine init,
// and a charge for each of the named machine actions — variable, constant,
// lambda, delay, force, apply, builtin, constr, case.
type Step uint8

const (
	StepStartup Step = iota
	StepVar
	StepConstant
	StepLambda
	StepDelay
	StepForce
	StepApply
	StepBuiltin
	StepConstr
	StepCase

	stepCount
)

// Combine selects which of a builtin's operand ex-memory sizes a LinearCost
// is evaluated against. Real cost models vary per builtin (some scale with
// one argument, some with the largest, some with the sum); rather than hand
// a bespoke Go func per builtin this table stores the shape declaratively
// so it round-trips through TOML.
type Combine uint8

const (
	CombineConstant Combine = iota // ignores sizes entirely
	CombineArg0
	CombineArg1
	CombineArg2
	CombineMax
	CombineMin
	CombineSum
)

func (c Combine) apply(sizes []int64) int64 {
	switch c {
	case CombineConstant:
		return 0
	case CombineArg0:
		return arg(sizes, 0)
	case CombineArg1:
		return arg(sizes, 1)
	case CombineArg2:
		return arg(sizes, 2)
	case CombineMax:
		m := int64(0)
		for i, s := range sizes {
			if i == 0 || s > m {
				m = s
			}
		}
		return m
	case CombineMin:
		var m int64
		for i, s := range sizes {
			if i == 0 || s < m {
				m = s
			}
		}
		return m
	case CombineSum:
		var total int64
		for _, s := range sizes {
			total += s
		}
		return total
	default:
		return 0
	}
}

func arg(sizes []int64, i int) int64 {
	if i < len(sizes) {
		return sizes[i]
	}
	return 0
}

// LinearCost computes Intercept + Slope*size, the shape every builtin and
// step cost in this table uses (a degenerate Slope of 0 gives a constant
// cost, which covers the many builtins whose charge does not scale with
// operand size).
type LinearCost struct {
	Intercept int64 `toml:"intercept"`
	Slope     int64 `toml:"slope"`
}

func (l LinearCost) of(size int64) int64 {
	return l.Intercept + l.Slope*size
}

// BuiltinCost is one builtin's (cpu, mem) cost function.
type BuiltinCost struct {
	Combine Combine    `toml:"combine"`
	CPU     LinearCost `toml:"cpu"`
	Mem     LinearCost `toml:"mem"`
}

func (bc BuiltinCost) eval(sizes []int64) Cost {
	x := bc.Combine.apply(sizes)
	return Cost{CPU: bc.CPU.of(x), Mem: bc.Mem.of(x)}
}

// Table is the full cost model: a fixed per-step cost for each named
// machine action, plus one BuiltinCost per BuiltinId mapping operand
// ex-memory sizes to a (cpu, mem) cost pair.
type Table struct {
	Steps    [stepCount]Cost                `toml:"steps"`
	Builtins map[string]BuiltinCost         `toml:"builtins"`
}

// StepCost returns the fixed cost charged for step s.
func (t *Table) StepCost(s Step) Cost {
	return t.Steps[s]
}

// BuiltinCost returns the cost of dispatching id given its arguments'
// ex-memory sizes.
func (t *Table) BuiltinCost(id builtin.Id, argSizes []int64) (Cost, error) {
	bc, ok := t.Builtins[id.String()]
	if !ok {
		return Cost{}, fmt.Errorf("costmodel: no cost entry for builtin %s", id)
	}
	return bc.eval(argSizes), nil
}

// LoadTOML reads a cost table from a TOML file, the format the AMBIENT
// STACK's configuration layer uses for every tunable in this core.
func LoadTOML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("costmodel: reading %s: %w", path, err)
	}
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("costmodel: parsing %s: %w", path, err)
	}
	if t.Builtins == nil {
		t.Builtins = map[string]BuiltinCost{}
	}
	return &t, nil
}

// Default returns a structurally complete cost table with modest, uniform
// placeholder constants: every step charges a small flat cpu/mem amount,
// every builtin charges a flat cost scaled by the largest operand. It is
// meant as a working default for callers who have not loaded a tuned
// production table, not as a faithful reproduction of any particular
// network's parameters.
func Default() *Table {
	flatStep := Cost{CPU: 100, Mem: 100}
	var t Table
	for i := range t.Steps {
		t.Steps[i] = flatStep
	}
	t.Steps[StepStartup] = Cost{CPU: 1000, Mem: 1000}

	t.Builtins = make(map[string]BuiltinCost, builtin.Count)
	for id := 1; id <= builtin.Count; id++ {
		t.Builtins[builtin.Id(id).String()] = BuiltinCost{
			Combine: CombineMax,
			CPU:     LinearCost{Intercept: 200, Slope: 50},
			Mem:     LinearCost{Intercept: 10, Slope: 1},
		}
	}
	return &t
}
