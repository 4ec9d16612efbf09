package sim

import "fmt"

// ProcessMetrics are the per-process scheduling statistics.
type ProcessMetrics struct {
	Waiting    int
	Turnaround int
	Response   int
	Completion int
}

// Summary aggregates the per-process statistics over a whole run.
type Summary struct {
	AvgWaiting     float64
	AvgTurnaround  float64
	AvgResponse    float64
	Throughput     float64
	CPUUtilization float64
	TotalTime      int
}

// ComputeMetrics derives statistics from a fully simulated working set. A
// process without FirstStart or Completion means an algorithm defect, not bad
// input; that case is reported as ErrMissingSimulationState and should not be
// retried. An empty set yields an empty map and a zero summary.
func ComputeMetrics(procs []*Process) (map[string]ProcessMetrics, Summary, error) {
	perProcess := make(map[string]ProcessMetrics, len(procs))
	if len(procs) == 0 {
		return perProcess, Summary{}, nil
	}

	var (
		sumWaiting    int
		sumTurnaround int
		sumResponse   int
		sumBurst      int
		earliest      = procs[0].Arrival
		latest        int
	)
	for _, p := range procs {
		if !p.Started() || !p.Finished() {
			return nil, Summary{}, fmt.Errorf("%w: process %s was never fully simulated", ErrMissingSimulationState, p.PID)
		}
		turnaround := p.Completion - p.Arrival
		waiting := turnaround - p.Burst
		response := p.FirstStart - p.Arrival
		perProcess[p.PID] = ProcessMetrics{
			Waiting:    waiting,
			Turnaround: turnaround,
			Response:   response,
			Completion: p.Completion,
		}

		sumWaiting += waiting
		sumTurnaround += turnaround
		sumResponse += response
		sumBurst += p.Burst
		if p.Arrival < earliest {
			earliest = p.Arrival
		}
		if p.Completion > latest {
			latest = p.Completion
		}
	}

	n := float64(len(procs))
	total := latest - earliest
	summary := Summary{
		AvgWaiting:    float64(sumWaiting) / n,
		AvgTurnaround: float64(sumTurnaround) / n,
		AvgResponse:   float64(sumResponse) / n,
		TotalTime:     total,
	}
	if total > 0 {
		summary.CPUUtilization = float64(sumBurst) / float64(total) * 100
		summary.Throughput = n / float64(total)
	}
	return perProcess, summary, nil
}
