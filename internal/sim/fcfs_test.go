package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFSWorkedExample(t *testing.T) {
	result, err := Run(FCFS, workedExample(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		busySegment(0, 5, "P1"),
		busySegment(5, 8, "P2"),
		busySegment(8, 10, "P3"),
		busySegment(10, 14, "P4"),
	}, result.Timeline)

	assert.Equal(t, 0, result.PerProcess["P1"].Waiting)
	assert.Equal(t, 3, result.PerProcess["P2"].Waiting)
	assert.Equal(t, 4, result.PerProcess["P3"].Waiting)
	assert.Equal(t, 4, result.PerProcess["P4"].Waiting)
	assert.InDelta(t, 2.75, result.Summary.AvgWaiting, 1e-9)
	assert.InDelta(t, 100.0, result.Summary.CPUUtilization, 1e-9)
}

func TestFCFSLeadingAndInteriorIdle(t *testing.T) {
	procs := procsFor(t,
		procDesc{"P1", 3, 2},
		procDesc{"P2", 9, 1},
	)
	result, err := Run(FCFS, procs, 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		idleSegment(0, 3),
		busySegment(3, 5, "P1"),
		idleSegment(5, 9),
		busySegment(9, 10, "P2"),
	}, result.Timeline)

	// Total time spans min arrival to max completion, not the leading idle.
	assert.Equal(t, 7, result.Summary.TotalTime)
}

func TestFCFSSimultaneousArrivalsBreakTiesByPID(t *testing.T) {
	procs := procsFor(t,
		procDesc{"P2", 0, 3},
		procDesc{"P1", 0, 3},
	)
	result, err := Run(FCFS, procs, 0)
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		busySegment(0, 3, "P1"),
		busySegment(3, 6, "P2"),
	}, result.Timeline)
}

func TestFCFSNeverPreempts(t *testing.T) {
	procs := procsFor(t,
		procDesc{"P1", 0, 9},
		procDesc{"P2", 1, 1},
	)
	result, err := Run(FCFS, procs, 0)
	require.NoError(t, err)

	// One dispatch per process, in arrival order.
	assert.Len(t, result.Timeline, 2)
	assert.Equal(t, busySegment(0, 9, "P1"), result.Timeline[0])
	assert.Equal(t, busySegment(9, 10, "P2"), result.Timeline[1])
}
