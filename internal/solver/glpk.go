//go:build glpk

package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lukpank/go-glpk/glpk"

	"datacenter-optimizer/internal/program"
)

// glpkBackend drives GNU GLPK's branch-and-cut MIP solver through cgo.
// Compiled in with the "glpk" build tag; requires libglpk at runtime.
type glpkBackend struct{}

func newGLPKBackend() Backend { return &glpkBackend{} }

func (g *glpkBackend) Name() string    { return "glpk" }
func (g *glpkBackend) Available() bool { return true }

func (g *glpkBackend) Solve(p *program.Program, timeLimit time.Duration) (*Solution, error) {
	_ = timeLimit // the binding does not expose iocp.tm_lim

	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName("dcopt")
	lp.SetObjDir(glpk.MIN)

	n := len(p.Vars)
	lp.AddCols(n)
	for i, v := range p.Vars {
		col := i + 1
		lp.SetColName(col, v.Name)
		lp.SetObjCoef(col, v.Cost)
		switch {
		case v.Lower == v.Upper:
			lp.SetColBnds(col, glpk.FX, v.Lower, v.Upper)
		case !math.IsInf(v.Upper, 1):
			lp.SetColBnds(col, glpk.DB, v.Lower, v.Upper)
		default:
			lp.SetColBnds(col, glpk.LO, v.Lower, 0)
		}
		if v.Type == program.Binary {
			lp.SetColKind(col, glpk.BV)
		}
	}

	lp.AddRows(len(p.Constraints))
	for i, c := range p.Constraints {
		row := i + 1
		lp.SetRowName(row, c.Name)
		ind := make([]int32, 1, len(c.Terms)+1)
		val := make([]float64, 1, len(c.Terms)+1)
		for _, t := range c.Terms {
			ind = append(ind, int32(t.Var+1))
			val = append(val, t.Coeff)
		}
		lp.SetMatRow(row, ind, val)
		switch c.Op {
		case program.LE:
			lp.SetRowBnds(row, glpk.UP, 0, c.RHS)
		case program.GE:
			lp.SetRowBnds(row, glpk.LO, c.RHS, 0)
		case program.EQ:
			lp.SetRowBnds(row, glpk.FX, c.RHS, c.RHS)
		}
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(true)
	if err := lp.Intopt(iocp); err != nil {
		if errors.Is(err, glpk.ENOPFS) {
			return &Solution{Status: StatusInfeasible}, nil
		}
		if errors.Is(err, glpk.ENODFS) {
			return &Solution{Status: StatusUnbounded}, nil
		}
		return nil, fmt.Errorf("glpk intopt: %w", err)
	}

	switch lp.MipStatus() {
	case glpk.OPT:
	case glpk.NOFEAS:
		return &Solution{Status: StatusInfeasible}, nil
	case glpk.FEAS:
		return &Solution{Status: StatusTimeLimit}, nil
	default:
		return nil, fmt.Errorf("glpk: unexpected MIP status %v", lp.MipStatus())
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = lp.MipColVal(i + 1)
	}
	return &Solution{
		Status:    StatusOptimal,
		Values:    values,
		Objective: p.Objective(values),
	}, nil
}
