//go:build !lpsolve

package solver

import (
	"errors"
	"time"

	"datacenter-optimizer/internal/program"
)

// Without the "lpsolve" build tag the backend is registered but unavailable.
type lpsolveBackend struct{}

func newLPSolveBackend() Backend { return &lpsolveBackend{} }

func (l *lpsolveBackend) Name() string    { return "lpsolve" }
func (l *lpsolveBackend) Available() bool { return false }

func (l *lpsolveBackend) Solve(*program.Program, time.Duration) (*Solution, error) {
	return nil, errors.New("lpsolve backend not compiled in (build with -tags lpsolve)")
}
