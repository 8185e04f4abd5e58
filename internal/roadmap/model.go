// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package roadmap

import (
	"fmt"
)

// TasksStageName is the name of the stage synthesized for checklist items
// that appear without a preceding stage header.
const TasksStageName = "Tasks"

// Status is the derived completion state of a phase.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

// String returns the wire form of the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusCompleted:
		return "completed"
	default:
		return "not-started"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "not-started":
		*s = StatusNotStarted
	case "in-progress":
		*s = StatusInProgress
	case "completed":
		*s = StatusCompleted
	default:
		return fmt.Errorf("invalid phase status %q", string(b))
	}
	return nil
}

// StatusFromProgress derives a phase status from its completion percentage.
func StatusFromProgress(progress float64) Status {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Percentage returns 100*done/total, or 0 when total is 0.
func Percentage(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// Step is a single checklist line.
type Step struct {
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// Stage groups the steps found under one section header.
type Stage struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Phase is a milestone-level unit of planned work.
type Phase struct {
	Name     string  `json:"name"`
	Order    int     `json:"order"`
	Status   Status  `json:"status"`
	Stages   []Stage `json:"stages"`
	Progress float64 `json:"progress"`
}

// Counts returns the number of completed steps and the total number of steps
// across all stages of the phase.
func (p *Phase) Counts() (done, total int) {
	for _, st := range p.Stages {
		for _, step := range st.Steps {
			total++
			if step.IsCompleted {
				done++
			}
		}
	}
	return done, total
}

// computeProgress refreshes Progress and Status from the current step set.
func (p *Phase) computeProgress() {
	done, total := p.Counts()
	p.Progress = Percentage(done, total)
	p.Status = StatusFromProgress(p.Progress)
}

// ProjectDocumentation is the aggregate over every document of a project.
type ProjectDocumentation struct {
	Phases             []Phase  `json:"phases"`
	SourceFiles        []string `json:"source_files"`
	ProgressPercentage float64  `json:"progress_percentage"`
}

// Counts returns completed and total steps across every phase.
func (d *ProjectDocumentation) Counts() (done, total int) {
	for i := range d.Phases {
		pd, pt := d.Phases[i].Counts()
		done += pd
		total += pt
	}
	return done, total
}

// DocFileInfo describes a discovered document.
type DocFileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	RelativePath string `json:"relative_path"`
}
