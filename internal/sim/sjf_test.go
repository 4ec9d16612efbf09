package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSJFWorkedExample(t *testing.T) {
	result, err := Run(SJF, workedExample(t), 0)
	require.NoError(t, err)

	// P3 (burst 2) overtakes P2 (burst 3) once both have arrived.
	assert.Equal(t, []Segment{
		busySegment(0, 5, "P1"),
		busySegment(5, 7, "P3"),
		busySegment(7, 10, "P2"),
		busySegment(10, 14, "P4"),
	}, result.Timeline)

	assert.InDelta(t, 2.5, result.Summary.AvgWaiting, 1e-9)
	assert.InDelta(t, 2.5, result.Summary.AvgResponse, 1e-9)
}

func TestSJFNeverDisplacesRunningProcess(t *testing.T) {
	// P2's strictly shorter burst arrives one unit after P1 is dispatched.
	procs := procsFor(t,
		procDesc{"P1", 0, 10},
		procDesc{"P2", 1, 1},
	)
	result, err := Run(SJF, procs, 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		busySegment(0, 10, "P1"),
		busySegment(10, 11, "P2"),
	}, result.Timeline)
}

func TestSJFStartsAtMinArrivalWithoutLeadingIdle(t *testing.T) {
	procs := procsFor(t,
		procDesc{"P1", 4, 3},
		procDesc{"P2", 12, 2},
	)
	result, err := Run(SJF, procs, 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		busySegment(4, 7, "P1"),
		idleSegment(7, 12),
		busySegment(12, 14, "P2"),
	}, result.Timeline)
}

func TestSJFTieBreaks(t *testing.T) {
	// Equal bursts: earlier arrival wins; equal both: smaller pid wins.
	procs := procsFor(t,
		procDesc{"P3", 0, 8},
		procDesc{"B", 1, 2},
		procDesc{"A", 1, 2},
		procDesc{"C", 0, 2},
	)
	result, err := Run(SJF, procs, 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		busySegment(0, 2, "C"),
		busySegment(2, 4, "A"),
		busySegment(4, 6, "B"),
		busySegment(6, 14, "P3"),
	}, result.Timeline)
}

// Every dispatch must pick a burst no longer than any other arrived,
// unfinished process at that instant.
func TestSJFOptimalAtEachDispatch(t *testing.T) {
	procs := procsFor(t,
		procDesc{"P1", 0, 7},
		procDesc{"P2", 1, 5},
		procDesc{"P3", 2, 1},
		procDesc{"P4", 3, 2},
		procDesc{"P5", 15, 4},
		procDesc{"P6", 16, 3},
	)
	result, err := Run(SJF, procs, 0)
	require.NoError(t, err)

	byPID := make(map[string]*Process)
	for _, p := range result.Processes {
		byPID[p.PID] = p
	}
	for _, seg := range result.Timeline {
		if seg.Idle {
			continue
		}
		dispatched := byPID[seg.PID]
		for _, other := range result.Processes {
			if other.PID == dispatched.PID {
				continue
			}
			arrived := other.Arrival <= seg.Start
			unfinished := other.Completion > seg.Start
			if arrived && unfinished {
				assert.LessOrEqual(t, dispatched.Burst, other.Burst,
					"dispatched %s at t=%d over shorter %s", dispatched.PID, seg.Start, other.PID)
			}
		}
	}
}
