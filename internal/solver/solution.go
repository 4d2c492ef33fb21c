package solver

// Status is a backend-independent termination status.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusTimeLimit:
		return "time_limit"
	default:
		return "unknown"
	}
}

// Solution carries the raw solver output for one program.
type Solution struct {
	Status    Status
	Values    []float64 // one entry per program variable, in column order
	Objective float64
	Backend   string
}

func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// Value returns the assignment for a column, or 0 if the index is out of
// range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.Values) {
		return 0
	}
	return s.Values[index]
}
