//go:build lpsolve

package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/draffensperger/golp"

	"datacenter-optimizer/internal/program"
)

// lpsolveBackend drives lp_solve through the golp cgo binding. Compiled in
// with the "lpsolve" build tag; requires liblpsolve55 at runtime.
//
// golp does not wrap set_bounds or set_timeout, so upper bounds become
// explicit constraint rows and the caller's time limit is not forwarded.
type lpsolveBackend struct{}

func newLPSolveBackend() Backend { return &lpsolveBackend{} }

func (l *lpsolveBackend) Name() string    { return "lpsolve" }
func (l *lpsolveBackend) Available() bool { return true }

func (l *lpsolveBackend) Solve(p *program.Program, timeLimit time.Duration) (*Solution, error) {
	_ = timeLimit

	n := len(p.Vars)
	lp := golp.NewLP(0, n)

	obj := make([]float64, n)
	for i, v := range p.Vars {
		lp.SetColName(i, v.Name)
		obj[i] = v.Cost
		if v.Type == program.Binary {
			lp.SetInt(i, true)
		}
	}
	lp.SetObjFn(obj)

	for _, c := range p.Constraints {
		entries := make([]golp.Entry, 0, len(c.Terms))
		for _, t := range c.Terms {
			entries = append(entries, golp.Entry{Col: t.Var, Val: t.Coeff})
		}
		var ct golp.ConstraintType
		switch c.Op {
		case program.LE:
			ct = golp.LE
		case program.GE:
			ct = golp.GE
		case program.EQ:
			ct = golp.EQ
		}
		if err := lp.AddConstraintSparse(entries, ct, c.RHS); err != nil {
			return nil, fmt.Errorf("lpsolve add constraint %s: %w", c.Name, err)
		}
	}

	// Variable bounds as rows (lp_solve's default column domain is [0, +inf)).
	for i, v := range p.Vars {
		single := []golp.Entry{{Col: i, Val: 1}}
		if !math.IsInf(v.Upper, 1) {
			if err := lp.AddConstraintSparse(single, golp.LE, v.Upper); err != nil {
				return nil, fmt.Errorf("lpsolve bound %s: %w", v.Name, err)
			}
		}
		if v.Lower > 0 {
			if err := lp.AddConstraintSparse(single, golp.GE, v.Lower); err != nil {
				return nil, fmt.Errorf("lpsolve bound %s: %w", v.Name, err)
			}
		}
	}

	switch ret := lp.Solve(); ret {
	case golp.OPTIMAL:
	case golp.INFEASIBLE:
		return &Solution{Status: StatusInfeasible}, nil
	case golp.UNBOUNDED:
		return &Solution{Status: StatusUnbounded}, nil
	case golp.SUBOPTIMAL:
		return &Solution{Status: StatusTimeLimit}, nil
	default:
		return nil, fmt.Errorf("lpsolve: solve returned %v", ret)
	}

	values := lp.Variables()
	if len(values) != n {
		return nil, fmt.Errorf("lpsolve: expected %d variables, got %d", n, len(values))
	}
	out := make([]float64, n)
	copy(out, values)
	return &Solution{
		Status:    StatusOptimal,
		Values:    out,
		Objective: p.Objective(out),
	}, nil
}
