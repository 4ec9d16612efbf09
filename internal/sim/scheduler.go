package sim

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the dispatch disciplines.
type Algorithm string

const (
	FCFS Algorithm = "fcfs"
	SJF  Algorithm = "sjf"
	RR   Algorithm = "rr"
)

// ParseAlgorithm maps a selector string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case FCFS:
		return FCFS, nil
	case SJF:
		return SJF, nil
	case RR:
		return RR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is one completed simulation: the normalized timeline, the working
// copies the run mutated, the per-process metrics and the aggregate summary.
type Result struct {
	Algorithm  Algorithm
	Processes  []*Process
	Timeline   []Segment
	PerProcess map[string]ProcessMetrics
	Summary    Summary
}

// Run simulates procs under the chosen algorithm. The caller's processes are
// cloned first, so one descriptor set can be run any number of times, under
// any algorithm, without one run seeing another's state. quantum is consulted
// only by RR.
func Run(algorithm Algorithm, procs []*Process, quantum int) (*Result, error) {
	working := cloneAll(procs)

	var (
		timeline []Segment
		err      error
	)
	switch algorithm {
	case FCFS:
		timeline = simulateFCFS(working)
	case SJF:
		timeline = simulateSJF(working)
	case RR:
		timeline, err = simulateRR(working, quantum)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
	}
	if err != nil {
		return nil, err
	}

	perProcess, summary, err := ComputeMetrics(working)
	if err != nil {
		return nil, err
	}
	return &Result{
		Algorithm:  algorithm,
		Processes:  working,
		Timeline:   Normalize(timeline),
		PerProcess: perProcess,
		Summary:    summary,
	}, nil
}
