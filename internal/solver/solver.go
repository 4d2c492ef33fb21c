// Package solver adapts abstract MILP programs to concrete solver backends.
//
// Backends form an ordered candidate list. Solve tries the caller's preferred
// backend first and falls through the rest on unavailability or internal
// failure; a backend that runs and reports infeasible/unbounded/time-limit
// stops the chain, because the instance itself is bad and another solver
// cannot fix it.
package solver

import (
	"fmt"
	"log"
	"time"

	"datacenter-optimizer/internal/program"
)

// DefaultTimeLimit bounds a single solve when the caller does not set one.
const DefaultTimeLimit = 300 * time.Second

// Backend is a uniform solve interface over one solver library.
type Backend interface {
	Name() string

	// Available reports whether the backend can actually be invoked in this
	// runtime (build tag compiled in, shared library present).
	Available() bool

	// Solve runs the backend to proven optimality or failure. It returns an
	// error only for backend-internal problems; infeasible, unbounded and
	// time-limit outcomes are reported through Solution.Status.
	Solve(p *program.Program, timeLimit time.Duration) (*Solution, error)
}

// Backends returns the candidate list in default preference order:
// GLPK, then lp_solve, then the pure-Go simplex fallback.
func Backends() []Backend {
	return []Backend{
		newGLPKBackend(),
		newLPSolveBackend(),
		newSimplexBackend(),
	}
}

// Names lists all known backend identifiers with availability flags.
func Names() map[string]bool {
	out := make(map[string]bool)
	for _, b := range Backends() {
		out[b.Name()] = b.Available()
	}
	return out
}

// Solve runs the program against the backend list, honoring the preference.
// An empty preference keeps the default order; a preference that names no
// registered backend is rejected rather than silently ignored. The returned
// Solution is always optimal; every other outcome is a typed error.
func Solve(p *program.Program, preference string, timeLimit time.Duration) (*Solution, error) {
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	backends := Backends()
	if preference != "" && !registered(backends, preference) {
		return nil, &UnknownBackendError{Name: preference}
	}
	candidates := orderByPreference(backends, preference)

	attempted := make([]string, 0, len(candidates))
	var lastErr error
	for _, b := range candidates {
		attempted = append(attempted, b.Name())
		if !b.Available() {
			continue
		}

		sol, err := b.Solve(p, timeLimit)
		if err != nil {
			// Backend-internal failure: fall through to the next candidate.
			log.Printf("solver %s failed: %v", b.Name(), err)
			lastErr = err
			continue
		}

		switch sol.Status {
		case StatusOptimal:
			sol.Backend = b.Name()
			return sol, nil
		case StatusInfeasible:
			return nil, &InfeasibleError{Backend: b.Name()}
		case StatusUnbounded:
			return nil, &UnboundedError{Backend: b.Name()}
		case StatusTimeLimit:
			return nil, &TimeoutError{Backend: b.Name(), Limit: timeLimit}
		default:
			return nil, fmt.Errorf("solver %s: unexpected status %s", b.Name(), sol.Status)
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all available solver backends failed: %w", lastErr)
	}
	return nil, &NoSolverAvailableError{Attempted: attempted}
}

func registered(backends []Backend, name string) bool {
	for _, b := range backends {
		if b.Name() == name {
			return true
		}
	}
	return false
}

func orderByPreference(backends []Backend, preference string) []Backend {
	if preference == "" {
		return backends
	}
	ordered := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if b.Name() == preference {
			ordered = append(ordered, b)
		}
	}
	for _, b := range backends {
		if b.Name() != preference {
			ordered = append(ordered, b)
		}
	}
	return ordered
}
