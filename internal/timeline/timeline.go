// Package timeline draws per-process character timelines and Gantt slices
// from computed schedules.
package timeline

import (
	"strings"

	"github.com/Barritosaurus/schedsim/internal/scheduler"
)

const (
	Idle    = '_'
	Waiting = '-'
	Running = '#'
)

type (
	// Row is one process line of the timeline.
	Row struct {
		ID    int64
		Cells string
	}

	// Slice is a contiguous stretch of CPU time. Idle slices have no ID.
	Slice struct {
		ID    int64
		Start int64
		Stop  int64
		Idle  bool
	}
)

// Render produces one row per result, in the order given. Every row has
// exactly total cells, one per time unit from 0 to total-1.
func Render(results []scheduler.Result, total int64) []Row {
	if total < 0 {
		total = 0
	}
	rows := make([]Row, 0, len(results))
	for _, r := range results {
		start := r.Completion - r.Process.BurstTime

		var b strings.Builder
		b.Grow(int(total))
		for t := int64(0); t < total; t++ {
			switch {
			case t >= start && t < r.Completion:
				b.WriteByte(Running)
			case t >= r.Process.ArrivalTime && t < start:
				b.WriteByte(Waiting)
			default:
				b.WriteByte(Idle)
			}
		}
		rows = append(rows, Row{ID: r.Process.ID, Cells: b.String()})
	}

	return rows
}

// Gantt lists the execution order of s as contiguous slices, with idle
// slices filling the gaps between processes.
func Gantt(s scheduler.Schedule) []Slice {
	var (
		clock  int64
		slices = make([]Slice, 0, len(s.Order))
	)
	for _, idx := range s.Order {
		r := s.Results[idx]
		if r.Start > clock {
			slices = append(slices, Slice{Start: clock, Stop: r.Start, Idle: true})
		}
		slices = append(slices, Slice{ID: r.Process.ID, Start: r.Start, Stop: r.Completion})
		clock = r.Completion
	}

	return slices
}
