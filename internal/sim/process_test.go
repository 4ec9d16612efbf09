package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	tests := []struct {
		name    string
		pid     string
		arrival int
		burst   int
		wantErr error
	}{
		{
			name:    "valid process",
			pid:     "P1",
			arrival: 0,
			burst:   5,
		},
		{
			name:    "positive arrival",
			pid:     "P2",
			arrival: 12,
			burst:   1,
		},
		{
			name:    "empty pid",
			pid:     "",
			arrival: 0,
			burst:   5,
			wantErr: ErrInvalidPID,
		},
		{
			name:    "zero burst",
			pid:     "P3",
			arrival: 0,
			burst:   0,
			wantErr: ErrInvalidBurst,
		},
		{
			name:    "negative burst",
			pid:     "P4",
			arrival: 0,
			burst:   -3,
			wantErr: ErrInvalidBurst,
		},
		{
			name:    "negative arrival",
			pid:     "P5",
			arrival: -1,
			burst:   4,
			wantErr: ErrInvalidArrival,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProcess(tt.pid, tt.arrival, tt.burst)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pid, p.PID)
			assert.Equal(t, tt.burst, p.Remaining)
			assert.False(t, p.Started())
			assert.False(t, p.Finished())
		})
	}
}

func TestProcessClone(t *testing.T) {
	p, err := NewProcess("P1", 2, 7)
	require.NoError(t, err)

	// Simulate a finished run on the original.
	p.Remaining = 0
	p.FirstStart = 2
	p.Completion = 9

	c := p.Clone()
	assert.Equal(t, "P1", c.PID)
	assert.Equal(t, 2, c.Arrival)
	assert.Equal(t, 7, c.Burst)
	assert.Equal(t, 7, c.Remaining)
	assert.False(t, c.Started())
	assert.False(t, c.Finished())

	// Mutating the clone must not touch the original.
	c.Remaining = 3
	c.FirstStart = 4
	assert.Equal(t, 0, p.Remaining)
	assert.Equal(t, 2, p.FirstStart)
}
