package sim

// IdleSubject labels timeline intervals where no process holds the CPU.
const IdleSubject = "IDLE"

// Segment is one interval of CPU occupancy. Idle is an explicit marker so an
// idle interval can never be confused with a segment whose pid went missing.
type Segment struct {
	Start int
	End   int
	PID   string
	Idle  bool
}

func busySegment(start, end int, pid string) Segment {
	return Segment{Start: start, End: end, PID: pid}
}

func idleSegment(start, end int) Segment {
	return Segment{Start: start, End: end, Idle: true}
}

// Subject returns the pid occupying the interval, or IdleSubject.
func (s Segment) Subject() string {
	if s.Idle {
		return IdleSubject
	}
	return s.PID
}

// Duration returns the length of the interval.
func (s Segment) Duration() int { return s.End - s.Start }

// Normalize merges adjacent segments that share a subject and touch exactly
// (prev.End == next.Start). Same-subject segments separated by a gap are left
// alone. Ordering and endpoints are otherwise preserved.
func Normalize(segments []Segment) []Segment {
	if len(segments) == 0 {
		return nil
	}
	merged := make([]Segment, 0, len(segments))
	merged = append(merged, segments[0])
	for _, seg := range segments[1:] {
		last := &merged[len(merged)-1]
		if last.Subject() == seg.Subject() && last.End == seg.Start {
			last.End = seg.End
			continue
		}
		merged = append(merged, seg)
	}
	return merged
}
