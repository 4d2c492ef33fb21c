// Package program holds a solver-agnostic mixed-integer linear program as a
// plain value object: variables with bounds and objective coefficients, sparse
// linear constraints, and a constant objective offset. A Program is built once
// per optimization run and consumed exactly once by a solver backend; it is
// never shared across concurrent runs.
package program

import "fmt"

type VarType int

const (
	Continuous VarType = iota
	Binary
)

// Variable is one column of the program. Cost is the objective coefficient.
type Variable struct {
	Name  string
	Type  VarType
	Lower float64
	Upper float64
	Cost  float64
}

type Op int

const (
	LE Op = iota // Σ terms ≤ RHS
	GE           // Σ terms ≥ RHS
	EQ           // Σ terms = RHS
)

// Term is a single coefficient in a sparse constraint row.
type Term struct {
	Var   int
	Coeff float64
}

type Constraint struct {
	Name  string
	Terms []Term
	Op    Op
	RHS   float64
}

// Program is always a minimization; builders encode maximization by negating
// costs if they ever need it.
type Program struct {
	Vars        []Variable
	Constraints []Constraint

	// Offset is a constant added to the objective value (e.g. the fixed part
	// of the chiller temperature penalty).
	Offset float64

	index map[string]int
}

func New() *Program {
	return &Program{index: make(map[string]int)}
}

// AddVar registers a variable and returns its column index. Duplicate names
// panic: builders own their naming scheme and a collision is a programming
// error, not runtime input.
func (p *Program) AddVar(v Variable) int {
	if _, ok := p.index[v.Name]; ok {
		panic(fmt.Sprintf("program: duplicate variable %q", v.Name))
	}
	idx := len(p.Vars)
	p.Vars = append(p.Vars, v)
	p.index[v.Name] = idx
	return idx
}

func (p *Program) AddConstraint(c Constraint) {
	p.Constraints = append(p.Constraints, c)
}

// Lookup returns the column index of a named variable.
func (p *Program) Lookup(name string) (int, bool) {
	idx, ok := p.index[name]
	return idx, ok
}

// MustLookup is Lookup for names the builder is known to have registered.
func (p *Program) MustLookup(name string) int {
	idx, ok := p.index[name]
	if !ok {
		panic(fmt.Sprintf("program: unknown variable %q", name))
	}
	return idx
}

// BinaryVars returns the column indices of all binary variables, in order.
func (p *Program) BinaryVars() []int {
	var out []int
	for i, v := range p.Vars {
		if v.Type == Binary {
			out = append(out, i)
		}
	}
	return out
}

// Objective evaluates the objective at the given assignment, including the
// constant offset.
func (p *Program) Objective(values []float64) float64 {
	obj := p.Offset
	for i, v := range p.Vars {
		if i < len(values) {
			obj += v.Cost * values[i]
		}
	}
	return obj
}
