package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Barritosaurus/schedsim/internal/scheduler"
	"github.com/Barritosaurus/schedsim/internal/timeline"
)

// Table outputs a schedule as a boxed title, a Gantt line and a table of
// timing given:
// • an output writer
// • a computed schedule
func Table(w io.Writer, s scheduler.Schedule) error {
	ew := &errWriter{w: w}
	outputTitle(ew, scheduler.Title(s.Policy))
	outputGantt(ew, timeline.Gantt(s))
	if ew.err != nil {
		return ew.err
	}

	rows := make([][]string, len(s.Results))
	for i, r := range s.Results {
		rows[i] = []string{
			fmt.Sprint(r.Process.ID),
			fmt.Sprint(r.Process.ArrivalTime),
			fmt.Sprint(r.Process.BurstTime),
			fmt.Sprint(r.Start),
			fmt.Sprint(r.Waiting),
			fmt.Sprint(r.Turnaround),
			fmt.Sprint(r.Completion),
		}
	}
	outputSchedule(ew, rows, scheduler.Summarize(s))

	return ew.err
}

func outputTitle(ew *errWriter, title string) {
	ew.printf("%s\n", strings.Repeat("-", len(title)*2))
	ew.printf("%s %s\n", strings.Repeat(" ", len(title)/2), title)
	ew.printf("%s\n", strings.Repeat("-", len(title)*2))
}

func outputGantt(ew *errWriter, gantt []timeline.Slice) {
	ew.printf("Gantt schedule\n")
	ew.printf("|")
	labels := make([]string, len(gantt))
	width := 8
	for i, sl := range gantt {
		labels[i] = fmt.Sprint(sl.ID)
		if sl.Idle {
			labels[i] = "idle"
		}
		// keep at least one space either side of the widest label
		width = max(width, len(labels[i])+2)
	}
	for _, label := range labels {
		padding := strings.Repeat(" ", (width-len(label))/2)
		ew.printf("%s%s%s|", padding, label, padding)
	}
	ew.printf("\n")
	for i, sl := range gantt {
		ew.printf("%d\t", sl.Start)
		if len(gantt)-1 == i {
			ew.printf("%d", sl.Stop)
		}
	}
	ew.printf("\n\n")
}

func outputSchedule(ew *errWriter, rows [][]string, m scheduler.Metrics) {
	ew.printf("Schedule table\n")
	if ew.err != nil {
		return
	}
	table := tablewriter.NewWriter(ew.w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Utilization\n%.2f%%", m.Utilization*100),
		fmt.Sprintf("Average\n%.2f", m.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
	outputSummary(ew, m)
}

func outputSummary(ew *errWriter, m scheduler.Metrics) {
	ew.printf("\nSummary\n")
	ew.printf("Processes: %d\n", m.Count)
	ew.printf("Idle time: %d\n", m.IdleTime)
	if m.Count == 0 {
		return
	}
	ew.printf("Longest wait: P%d (%d)\n", m.LongestWaitID, m.LongestWait)
	ew.printf("Shortest wait: P%d (%d)\n", m.ShortestWaitID, m.ShortestWait)
}
