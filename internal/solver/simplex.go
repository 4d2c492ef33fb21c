package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"datacenter-optimizer/internal/program"
)

// simplexBackend is the pure-Go fallback: gonum's simplex for LP relaxations,
// wrapped in branch & bound over the binary columns. It is always available,
// so the fallback chain can never be empty in a default build.
//
// It is sized for the production linear model (tens of binaries). The
// advanced variant's hundreds of binaries generally need one of the cgo
// backends; the time limit keeps this one from spinning forever on them.
type simplexBackend struct {
	// maxNodes caps the branch & bound tree as a second line of defense
	// behind the wall-clock limit.
	maxNodes int
}

func newSimplexBackend() *simplexBackend {
	return &simplexBackend{maxNodes: 200000}
}

func (s *simplexBackend) Name() string    { return "simplex" }
func (s *simplexBackend) Available() bool { return true }

const (
	integralityTol = 1e-6
	pruneTol       = 1e-9
	simplexTol     = 1e-7
)

var errNodeInfeasible = errors.New("node infeasible")

func (s *simplexBackend) Solve(p *program.Program, timeLimit time.Duration) (*Solution, error) {
	deadline := time.Now().Add(timeLimit)
	binaries := p.BinaryVars()

	type node struct {
		fixed map[int]float64 // binary column -> forced value
	}

	var (
		incumbent    []float64
		incumbentObj = math.Inf(1)
	)

	stack := []node{{fixed: map[int]float64{}}}
	visited := 0

	for len(stack) > 0 {
		if time.Now().After(deadline) || visited >= s.maxNodes {
			return &Solution{Status: StatusTimeLimit}, nil
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		values, obj, err := s.solveRelaxation(p, n.fixed)
		switch {
		case errors.Is(err, errNodeInfeasible):
			continue
		case errors.Is(err, lp.ErrUnbounded):
			// A child node is never less constrained than the root, so any
			// unbounded relaxation means the program itself is unbounded.
			return &Solution{Status: StatusUnbounded}, nil
		case err != nil:
			return nil, fmt.Errorf("simplex relaxation: %w", err)
		}

		if obj >= incumbentObj-pruneEps(incumbentObj) {
			continue
		}

		branch := -1
		worst := integralityTol
		for _, col := range binaries {
			frac := math.Abs(values[col] - math.Round(values[col]))
			if frac > worst {
				worst = frac
				branch = col
			}
		}

		if branch < 0 {
			// Integral assignment. The relaxation may sit a tolerance away
			// from the true vertex, and that drift grows with coefficient
			// magnitude, so re-solve with every binary pinned to its rounded
			// value before accepting the incumbent.
			values, obj, err = s.polish(p, values, binaries)
			switch {
			case errors.Is(err, errNodeInfeasible):
				continue
			case err != nil:
				return nil, fmt.Errorf("simplex polish: %w", err)
			}
			if obj < incumbentObj {
				incumbent = values
				incumbentObj = obj
			}
			continue
		}

		// Explore the rounded-nearest side first (pushed last).
		near := math.Round(values[branch])
		far := 1 - near
		for _, v := range []float64{far, near} {
			child := node{fixed: make(map[int]float64, len(n.fixed)+1)}
			for k, val := range n.fixed {
				child.fixed[k] = val
			}
			child.fixed[branch] = v
			stack = append(stack, child)
		}
	}

	if incumbent == nil {
		return &Solution{Status: StatusInfeasible}, nil
	}
	return &Solution{
		Status:    StatusOptimal,
		Values:    incumbent,
		Objective: incumbentObj,
	}, nil
}

// pruneEps widens the prune cutoff with the incumbent's magnitude so that a
// large-capacity program is pruned no more aggressively, relative to its
// objective, than a small one.
func pruneEps(incumbentObj float64) float64 {
	if math.IsInf(incumbentObj, 1) {
		return pruneTol
	}
	return pruneTol * math.Max(1, math.Abs(incumbentObj))
}

// polish re-solves the relaxation with all binaries fixed at their rounded
// values, putting the continuous columns on the exact restricted optimum.
func (s *simplexBackend) polish(p *program.Program, values []float64, binaries []int) ([]float64, float64, error) {
	fixed := make(map[int]float64, len(binaries))
	for _, col := range binaries {
		fixed[col] = math.Round(values[col])
	}
	return s.solveRelaxation(p, fixed)
}

// solveRelaxation solves the LP relaxation of p with the given binary columns
// fixed. The program is converted to standard form manually (shift by lower
// bounds, slack per row) so the solution maps back to program columns without
// the free-variable splitting lp.Convert would introduce.
func (s *simplexBackend) solveRelaxation(p *program.Program, fixed map[int]float64) ([]float64, float64, error) {
	n := len(p.Vars)
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i, v := range p.Vars {
		lower[i], upper[i] = v.Lower, v.Upper
		if f, ok := fixed[i]; ok {
			lower[i], upper[i] = f, f
		}
		if math.IsInf(lower[i], -1) {
			return nil, 0, fmt.Errorf("variable %s: unbounded-below variables are not supported", v.Name)
		}
		if upper[i] < lower[i] {
			return nil, 0, errNodeInfeasible
		}
	}

	// Rows: one per constraint, plus one upper-bound row per column with a
	// finite upper bound. Columns: program vars (shifted to y = x - lower)
	// plus one slack per inequality row.
	rows := len(p.Constraints)
	slacks := 0
	for _, c := range p.Constraints {
		if c.Op != program.EQ {
			slacks++
		}
	}
	boundRows := 0
	for i := range p.Vars {
		if !math.IsInf(upper[i], 1) {
			boundRows++
		}
	}
	rows += boundRows
	cols := n + slacks + boundRows

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	obj := make([]float64, cols)
	for i, v := range p.Vars {
		obj[i] = v.Cost
	}

	row := 0
	slack := n
	for _, c := range p.Constraints {
		rhs := c.RHS
		for _, t := range c.Terms {
			a.Set(row, t.Var, t.Coeff)
			rhs -= t.Coeff * lower[t.Var]
		}
		switch c.Op {
		case program.LE:
			a.Set(row, slack, 1)
			slack++
		case program.GE:
			a.Set(row, slack, -1)
			slack++
		}
		b[row] = rhs
		row++
	}
	for i := range p.Vars {
		if math.IsInf(upper[i], 1) {
			continue
		}
		a.Set(row, i, 1)
		a.Set(row, slack, 1)
		b[row] = upper[i] - lower[i]
		slack++
		row++
	}

	_, x, err := lp.Simplex(obj, a, b, simplexTol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, 0, errNodeInfeasible
		}
		return nil, 0, err
	}

	values := make([]float64, n)
	for i := range values {
		v := x[i] + lower[i]
		// Clamp numeric drift back into bounds.
		if v < lower[i] {
			v = lower[i]
		}
		if v > upper[i] {
			v = upper[i]
		}
		values[i] = v
	}
	return values, p.Objective(values), nil
}
