// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package tasks flattens parsed documentation into board tasks, one per step.
package tasks

import (
	"fmt"

	"github.com/bartekus/planscan/internal/roadmap"
)

// Column is a board column.
type Column string

const (
	ColumnBacklog Column = "backlog"
	ColumnDone    Column = "done"
)

// Task is a single board card derived from a documentation step.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Column      Column   `json:"column"`
	Order       int      `json:"order"`
	Labels      []string `json:"labels"`
	Source      string   `json:"source"`
}

// FromDocumentation returns one task per step in phase, stage and step order.
// IDs are positional and stable for the same documentation.
func FromDocumentation(doc roadmap.ProjectDocumentation, projectID string) []Task {
	out := []Task{}
	order := 0

	for pi, phase := range doc.Phases {
		for si, stage := range phase.Stages {
			source := SourcePath(phase, stage)
			for i, step := range stage.Steps {
				column := ColumnBacklog
				if step.IsCompleted {
					column = ColumnDone
				}
				out = append(out, Task{
					ID:          fmt.Sprintf("doc-%s-step-%d-%d-%d", projectID, pi, si, i),
					Title:       step.Content,
					Description: "From: " + source,
					Column:      column,
					Order:       order,
					Labels:      []string{fmt.Sprintf("phase-%d", phase.Order)},
					Source:      source,
				})
				order++
			}
		}
	}
	return out
}

// SourcePath describes where a step came from, e.g. "Phase 2: Build > Tasks".
// Synthesized phases (order 0) omit the phase prefix.
func SourcePath(phase roadmap.Phase, stage roadmap.Stage) string {
	if phase.Order > 0 {
		return fmt.Sprintf("Phase %d: %s > %s", phase.Order, phase.Name, stage.Name)
	}
	return fmt.Sprintf("%s > %s", phase.Name, stage.Name)
}

// CountByColumn tallies tasks per column.
func CountByColumn(tasks []Task) map[Column]int {
	counts := map[Column]int{ColumnBacklog: 0, ColumnDone: 0}
	for _, t := range tasks {
		counts[t.Column]++
	}
	return counts
}
