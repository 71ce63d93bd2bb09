package scheduler

// Metrics summarizes a schedule.
type Metrics struct {
	Count             int
	AverageWaiting    float64
	AverageTurnaround float64
	Throughput        float64 // processes per time unit
	Utilization       float64 // busy time / elapsed time
	IdleTime          int64
	LongestWaitID     int64
	LongestWait       int64
	ShortestWaitID    int64
	ShortestWait      int64
}

// Summarize computes the averages and CPU figures for s. An empty schedule
// or one with no elapsed time yields zero values.
func Summarize(s Schedule) Metrics {
	m := Metrics{Count: len(s.Results)}
	if m.Count == 0 {
		return m
	}

	var (
		totalWait, totalTurnaround, busy int64
		longest, shortest                int
	)
	for i, r := range s.Results {
		totalWait += r.Waiting
		totalTurnaround += r.Turnaround
		busy += r.Process.BurstTime
		if r.Waiting > s.Results[longest].Waiting {
			longest = i
		}
		if r.Waiting < s.Results[shortest].Waiting {
			shortest = i
		}
	}

	count := float64(m.Count)
	m.AverageWaiting = float64(totalWait) / count
	m.AverageTurnaround = float64(totalTurnaround) / count
	m.LongestWaitID = s.Results[longest].Process.ID
	m.LongestWait = s.Results[longest].Waiting
	m.ShortestWaitID = s.Results[shortest].Process.ID
	m.ShortestWait = s.Results[shortest].Waiting
	if s.Elapsed > 0 {
		m.Throughput = count / float64(s.Elapsed)
		m.Utilization = float64(busy) / float64(s.Elapsed)
		m.IdleTime = s.Elapsed - busy
	}

	return m
}
