package sim

import (
	"fmt"
	"sort"
)

// simulateRR runs quantum-sized slices off a FIFO ready queue. Arrivals that
// happen during a slice are admitted before the preempted process is put
// back, so a newcomer landing exactly on a quantum boundary goes in ahead of
// it. Requeueing before admitting would produce a non-standard schedule.
func simulateRR(procs []*Process, quantum int) ([]Segment, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidQuantum, quantum)
	}
	if len(procs) == 0 {
		return nil, nil
	}

	byArrival := make([]*Process, len(procs))
	copy(byArrival, procs)
	sort.Slice(byArrival, func(i, j int) bool {
		if byArrival[i].Arrival != byArrival[j].Arrival {
			return byArrival[i].Arrival < byArrival[j].Arrival
		}
		return byArrival[i].PID < byArrival[j].PID
	})

	var (
		queue    readyQueue
		admitted = make(map[*Process]bool, len(procs))
		timeline = make([]Segment, 0, len(procs))
		pending  = len(procs)
	)

	// admit appends every not-yet-queued process that has arrived by t,
	// in (arrival, pid) order. Called every time the clock advances.
	admit := func(t int) {
		for _, p := range byArrival {
			if !admitted[p] && p.Arrival <= t {
				queue.Enqueue(p)
				admitted[p] = true
			}
		}
	}

	t := byArrival[0].Arrival
	admit(t)

	for pending > 0 {
		if queue.Len() == 0 {
			next := nextArrival(procs, t)
			timeline = append(timeline, idleSegment(t, next))
			t = next
			admit(t)
			continue
		}

		p := queue.Dequeue()
		if !p.Started() {
			p.FirstStart = t
		}
		run := quantum
		if p.Remaining < run {
			run = p.Remaining
		}
		timeline = append(timeline, busySegment(t, t+run, p.PID))
		t += run
		p.Remaining -= run

		admit(t)
		if p.Remaining > 0 {
			queue.Enqueue(p)
		} else {
			p.Completion = t
			pending--
		}
	}
	return timeline, nil
}
