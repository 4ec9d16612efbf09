package sim

// simulateSJF picks, at every completion boundary, the arrived unfinished
// process with the smallest burst; ties go to the earlier arrival, then the
// lexicographically smaller pid. A process that is running is never
// displaced, even if a shorter job arrives mid-burst.
func simulateSJF(procs []*Process) []Segment {
	if len(procs) == 0 {
		return nil
	}

	timeline := make([]Segment, 0, len(procs))
	t := minArrival(procs)
	finished := 0
	for finished < len(procs) {
		var pick *Process
		for _, p := range procs {
			if p.Finished() || p.Arrival > t {
				continue
			}
			if pick == nil || shorterJob(p, pick) {
				pick = p
			}
		}
		if pick == nil {
			next := nextArrival(procs, t)
			timeline = append(timeline, idleSegment(t, next))
			t = next
			continue
		}

		pick.FirstStart = t
		timeline = append(timeline, busySegment(t, t+pick.Burst, pick.PID))
		t += pick.Burst
		pick.Remaining = 0
		pick.Completion = t
		finished++
	}
	return timeline
}

func shorterJob(a, b *Process) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}

func minArrival(procs []*Process) int {
	min := procs[0].Arrival
	for _, p := range procs[1:] {
		if p.Arrival < min {
			min = p.Arrival
		}
	}
	return min
}

// nextArrival returns the earliest arrival strictly after t among unfinished
// processes. Callers only reach for it when at least one such process exists.
func nextArrival(procs []*Process, t int) int {
	next := -1
	for _, p := range procs {
		if p.Finished() || p.Arrival <= t {
			continue
		}
		if next == -1 || p.Arrival < next {
			next = p.Arrival
		}
	}
	return next
}
