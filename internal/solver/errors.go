package solver

import (
	"fmt"
	"strings"
	"time"
)

// NoSolverAvailableError means every candidate backend was absent from the
// runtime. It lists what was attempted so operators can see which build tags
// or shared libraries are missing.
type NoSolverAvailableError struct {
	Attempted []string
}

func (e *NoSolverAvailableError) Error() string {
	return fmt.Sprintf("no solver backend available (attempted: %s)", strings.Join(e.Attempted, ", "))
}

// UnknownBackendError reports a solver preference that names no registered
// backend, available or not.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown solver backend %q", e.Name)
}

// InfeasibleError means a backend ran to completion and proved the program
// has no feasible solution. Retrying with a different backend will not help.
type InfeasibleError struct {
	Backend string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("solver %s: program is infeasible", e.Backend)
}

// UnboundedError means the objective can decrease without limit. Under the
// production model's bounds this indicates a builder bug, not bad input.
type UnboundedError struct {
	Backend string
}

func (e *UnboundedError) Error() string {
	return fmt.Sprintf("solver %s: program is unbounded", e.Backend)
}

// TimeoutError means the time limit elapsed before optimality was proven.
type TimeoutError struct {
	Backend string
	Limit   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("solver %s: time limit %s elapsed without proven optimum", e.Backend, e.Limit)
}
