//go:build !glpk

package solver

import (
	"errors"
	"time"

	"datacenter-optimizer/internal/program"
)

// Without the "glpk" build tag the backend is registered but unavailable, so
// the fallback chain (and NoSolverAvailableError reporting) still sees it.
type glpkBackend struct{}

func newGLPKBackend() Backend { return &glpkBackend{} }

func (g *glpkBackend) Name() string    { return "glpk" }
func (g *glpkBackend) Available() bool { return false }

func (g *glpkBackend) Solve(*program.Program, time.Duration) (*Solution, error) {
	return nil, errors.New("glpk backend not compiled in (build with -tags glpk)")
}
