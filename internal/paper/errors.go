package paper

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateGesture is returned when the two gesture points coincide
	// and no crease can be derived from them.
	ErrDegenerateGesture = errors.New("paper: degenerate gesture")

	// ErrDivisionByZero is returned by complex division by zero. The fold
	// line resolver never produces a line that leads here.
	ErrDivisionByZero = errors.New("paper: division by zero")

	// ErrTopologyAnomaly is the sentinel wrapped by TopologyError.
	ErrTopologyAnomaly = errors.New("paper: topology anomaly")
)

// TopologyError reports a facet whose boundary crosses the fold line a number
// of times other than zero or two.
type TopologyError struct {
	Facet int // index in the state being folded, -1 if unknown
	Cuts  int
}

func (e *TopologyError) Error() string {
	if e.Facet < 0 {
		return fmt.Sprintf("paper: topology anomaly: %d cut points", e.Cuts)
	}
	return fmt.Sprintf("paper: topology anomaly: facet %d has %d cut points", e.Facet, e.Cuts)
}

func (e *TopologyError) Unwrap() error { return ErrTopologyAnomaly }
