package render

import (
	"fmt"
	"sort"
	"strings"

	"procsim/internal/sim"
)

const cellPx = 40

// SVGGantt draws the timeline as one row per process plus an idle row at the
// bottom, with a unit grid and tick labels.
func SVGGantt(timeline []sim.Segment) string {
	if len(timeline) == 0 {
		return "<svg width='600' height='120'></svg>"
	}

	pids := subjectRows(timeline)
	rowIndex := make(map[string]int, len(pids))
	for i, pid := range pids {
		rowIndex[pid] = i
	}
	rowFor := func(seg sim.Segment) int {
		if seg.Idle {
			return len(pids)
		}
		return rowIndex[seg.PID]
	}

	span := 0
	for _, seg := range timeline {
		if seg.End > span {
			span = seg.End
		}
	}
	rows := len(pids) + 1
	height := 40*rows + 50
	width := (span + 2) * cellPx
	if width < 600 {
		width = 600
	}

	var rects, labels, grid, ylabels []string
	for _, seg := range timeline {
		y := 45 + rowFor(seg)*40
		x := (seg.Start + 1) * cellPx
		w := seg.Duration() * cellPx
		fill := "#999999"
		opacity := "0.35"
		if !seg.Idle {
			fill = colorForPID(rowIndex[seg.PID])
			opacity = "0.85"
		}
		rects = append(rects, fmt.Sprintf("<rect x='%d' y='%d' width='%d' height='24' rx='6' ry='6' fill='%s' opacity='%s'/>", x, y, w, fill, opacity))
		labels = append(labels, fmt.Sprintf("<text x='%d' y='%d' font-size='12' fill='#fff' text-anchor='middle'>%s</text>", x+w/2, y+16, seg.Subject()))
	}

	for i := 0; i <= span; i++ {
		x := (i + 1) * cellPx
		grid = append(grid, fmt.Sprintf("<line x1='%d' y1='20' x2='%d' y2='%d' stroke='#eee'/>", x, x, height-20))
		grid = append(grid, fmt.Sprintf("<text x='%d' y='%d' font-size='11' fill='#666'>%d</text>", x-4, height-6, i))
	}

	for i, pid := range pids {
		ylabels = append(ylabels, fmt.Sprintf("<text x='10' y='%d' font-size='12' fill='#555'>%s</text>", 60+i*40, pid))
	}
	ylabels = append(ylabels, fmt.Sprintf("<text x='10' y='%d' font-size='12' fill='#555'>%s</text>", 60+len(pids)*40, sim.IdleSubject))

	return fmt.Sprintf(
		"<svg width='%d' height='%d' class='rounded-xl border bg-white' xmlns='http://www.w3.org/2000/svg'>"+
			"<g>%s</g><g>%s</g><g>%s</g><g>%s</g>"+
			"<text x='10' y='16' font-size='12' fill='#333'>Time</text></svg>",
		width, height,
		strings.Join(grid, ""), strings.Join(ylabels, ""), strings.Join(rects, ""), strings.Join(labels, ""))
}

func subjectRows(timeline []sim.Segment) []string {
	seen := make(map[string]bool)
	var pids []string
	for _, seg := range timeline {
		if seg.Idle || seen[seg.PID] {
			continue
		}
		seen[seg.PID] = true
		pids = append(pids, seg.PID)
	}
	sort.Strings(pids)
	return pids
}

// colorForPID walks an hsl hue wheel so adjacent rows stay distinguishable.
func colorForPID(row int) string {
	return fmt.Sprintf("hsl(%d,80%%,45%%)", (row*67)%360)
}
