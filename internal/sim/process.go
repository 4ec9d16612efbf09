package sim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPID             = errors.New("invalid pid")
	ErrInvalidArrival         = errors.New("invalid arrival time")
	ErrInvalidBurst           = errors.New("invalid burst time")
	ErrInvalidQuantum         = errors.New("invalid time quantum")
	ErrUnknownAlgorithm       = errors.New("unknown algorithm")
	ErrMissingSimulationState = errors.New("missing simulation state")
)

// unset marks FirstStart/Completion as not yet assigned by a run.
const unset = -1

// Process is one schedulable unit of work. PID, Arrival and Burst are fixed
// at construction; Remaining, FirstStart and Completion are filled in while
// an algorithm runs.
type Process struct {
	PID        string
	Arrival    int
	Burst      int
	Remaining  int
	FirstStart int
	Completion int
}

// NewProcess validates a descriptor and builds a process ready to simulate.
func NewProcess(pid string, arrival, burst int) (*Process, error) {
	if pid == "" {
		return nil, fmt.Errorf("%w: pid must not be empty", ErrInvalidPID)
	}
	if burst <= 0 {
		return nil, fmt.Errorf("%w: process %s has non-positive burst time %d", ErrInvalidBurst, pid, burst)
	}
	if arrival < 0 {
		return nil, fmt.Errorf("%w: process %s has negative arrival time %d", ErrInvalidArrival, pid, arrival)
	}
	return &Process{
		PID:        pid,
		Arrival:    arrival,
		Burst:      burst,
		Remaining:  burst,
		FirstStart: unset,
		Completion: unset,
	}, nil
}

// Started reports whether the process has been dispatched at least once.
func (p *Process) Started() bool { return p.FirstStart != unset }

// Finished reports whether the process has consumed its whole burst.
func (p *Process) Finished() bool { return p.Completion != unset }

// Clone returns an independent copy ready for a fresh run: Remaining is reset
// to Burst and the derived fields are cleared.
func (p *Process) Clone() *Process {
	return &Process{
		PID:        p.PID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		Remaining:  p.Burst,
		FirstStart: unset,
		Completion: unset,
	}
}

func cloneAll(procs []*Process) []*Process {
	working := make([]*Process, len(procs))
	for i, p := range procs {
		working[i] = p.Clone()
	}
	return working
}
