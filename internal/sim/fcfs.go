package sim

import "sort"

// simulateFCFS runs every process to completion in (arrival, pid) order,
// emitting an idle segment whenever the clock has to wait for the next
// arrival. No process is ever preempted.
func simulateFCFS(procs []*Process) []Segment {
	order := make([]*Process, len(procs))
	copy(order, procs)
	sort.Slice(order, func(i, j int) bool {
		if order[i].Arrival != order[j].Arrival {
			return order[i].Arrival < order[j].Arrival
		}
		return order[i].PID < order[j].PID
	})

	timeline := make([]Segment, 0, len(order))
	t := 0
	for _, p := range order {
		if t < p.Arrival {
			timeline = append(timeline, idleSegment(t, p.Arrival))
			t = p.Arrival
		}
		p.FirstStart = t
		timeline = append(timeline, busySegment(t, t+p.Burst, p.PID))
		t += p.Burst
		p.Remaining = 0
		p.Completion = t
	}
	return timeline
}
