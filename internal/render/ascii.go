// Package render turns normalized timelines into display artifacts. It only
// reads the engine's output; it never feeds anything back into a run.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"procsim/internal/sim"
)

// Gantt lays the timeline out as one labeled bar with a tick row underneath.
func Gantt(timeline []sim.Segment) string {
	if len(timeline) == 0 {
		return "(empty timeline)"
	}

	var bar strings.Builder
	ticks := []string{fmt.Sprint(timeline[0].Start)}
	for _, seg := range timeline {
		width := seg.Duration()
		if width < 1 {
			width = 1
		}
		bar.WriteString("|")
		bar.WriteString(center(seg.Subject(), width*2))
		ticks = append(ticks, fmt.Sprint(seg.End))
	}
	bar.WriteString("|")
	return bar.String() + "\n" + strings.Join(ticks, " ")
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := width - len(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// ScheduleTable writes the per-process rows of a finished run with the
// averages in the footer.
func ScheduleTable(w io.Writer, result *sim.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Completion", "Wait", "Turnaround", "Response"})
	for _, p := range result.Processes {
		m := result.PerProcess[p.PID]
		table.Append([]string{
			p.PID,
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.FirstStart),
			fmt.Sprint(m.Completion),
			fmt.Sprint(m.Waiting),
			fmt.Sprint(m.Turnaround),
			fmt.Sprint(m.Response),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Avg\n%.2f", result.Summary.AvgWaiting),
		fmt.Sprintf("Avg\n%.2f", result.Summary.AvgTurnaround),
		fmt.Sprintf("Avg\n%.2f", result.Summary.AvgResponse),
	})
	table.Render()
}
