package domain

import "math"

type Progress struct {
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// NewProgress derives the percentage from the two counters, rounded to two
// decimals. An empty project is at 0.
func NewProgress(total, completed int) Progress {
	p := Progress{TotalTasks: total, CompletedTasks: completed}
	if total > 0 {
		pct := float64(completed) / float64(total) * 100
		p.ProgressPercentage = math.Round(pct*100) / 100
	}
	return p
}

// ProgressOf counts a live task set.
func ProgressOf(tasks []*Task) Progress {
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}
	return NewProgress(len(tasks), completed)
}
