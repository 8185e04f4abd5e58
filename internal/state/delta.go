// Package state persists scan snapshots and compares consecutive scans.
package state

import (
	"github.com/bartekus/planscan/internal/roadmap"
)

// Delta is the change between two scans of the same project.
type Delta struct {
	PreviousProgress float64 `json:"previous_progress"`
	CurrentProgress  float64 `json:"current_progress"`
	ProgressChange   float64 `json:"progress_change"`
	CompletedBefore  int     `json:"completed_before"`
	CompletedNow     int     `json:"completed_now"`
	TotalBefore      int     `json:"total_before"`
	TotalNow         int     `json:"total_now"`
}

// NewlyCompleted is the net change in completed steps.
func (d Delta) NewlyCompleted() int {
	return d.CompletedNow - d.CompletedBefore
}

// Compare computes the delta from prev to cur. A nil prev is treated as an
// empty previous scan.
func Compare(prev *Snapshot, cur roadmap.ProjectDocumentation) Delta {
	var d Delta
	if prev != nil {
		d.PreviousProgress = prev.Documentation.ProgressPercentage
		d.CompletedBefore, d.TotalBefore = prev.Documentation.Counts()
	}
	d.CurrentProgress = cur.ProgressPercentage
	d.CompletedNow, d.TotalNow = cur.Counts()
	d.ProgressChange = d.CurrentProgress - d.PreviousProgress
	return d
}
