// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package roadmap parses markdown planning documents into phases, stages and
// steps and aggregates completion across the documents of a project.
//
// Only four structural signals are recognized: phase headers, stage headers,
// checked checklist items and unchecked checklist items. Top-level headings
// are remembered as a fallback phase name. Every other line is narrative text.
package roadmap

import (
	"path/filepath"
	"strings"
)

// markdownExtensions are stripped from a document name when it is used as a
// fallback phase name.
var markdownExtensions = []string{".md", ".markdown", ".mdx"}

// Parse scans one document and returns its phases in document order.
// It is pure: the same text always yields the same phases.
func Parse(text, documentName string) []Phase {
	st := newParserState()
	for _, line := range strings.Split(text, "\n") {
		st.apply(Classify(line))
	}
	return st.finish(documentName)
}

// parserState is the in-progress parse of a single document.
type parserState struct {
	phases      []Phase
	openPhase   *Phase
	openStage   *Stage
	orphans     []Step
	lastHeading string
}

func newParserState() *parserState {
	return &parserState{}
}

func (s *parserState) apply(tok Token) {
	switch tok.Kind {
	case TokenPhaseHeader:
		s.openPhaseAt(tok.Order, tok.Text)
	case TokenHeading1:
		s.lastHeading = tok.Text
	case TokenStageHeader:
		s.openStageNamed(tok.Text)
	case TokenCheckedItem:
		s.addStep(Step{Content: tok.Text, IsCompleted: true})
	case TokenUncheckedItem:
		s.addStep(Step{Content: tok.Text, IsCompleted: false})
	}
}

// openPhaseAt closes the open stage and phase and starts a new phase.
// A stage that was opened before any phase existed is adopted by the new phase.
func (s *parserState) openPhaseAt(order int, name string) {
	var held *Stage
	if s.openPhase == nil {
		held = s.openStage
		s.openStage = nil
	}
	s.closeStage()
	s.closePhase()

	s.openPhase = &Phase{Name: name, Order: order, Status: StatusNotStarted, Stages: []Stage{}}
	if held != nil {
		s.openPhase.Stages = append(s.openPhase.Stages, *held)
	}
}

func (s *parserState) openStageNamed(name string) {
	s.closeStage()
	s.openStage = &Stage{Name: name, Steps: []Step{}}
}

// addStep places a step on the open stage, on a trailing "Tasks" stage of the
// open phase, or in the orphan buffer when no phase is open.
func (s *parserState) addStep(step Step) {
	switch {
	case s.openStage != nil:
		s.openStage.Steps = append(s.openStage.Steps, step)
	case s.openPhase != nil:
		stages := s.openPhase.Stages
		if n := len(stages); n == 0 || stages[n-1].Name != TasksStageName {
			s.openPhase.Stages = append(s.openPhase.Stages, Stage{Name: TasksStageName, Steps: []Step{}})
		}
		last := &s.openPhase.Stages[len(s.openPhase.Stages)-1]
		last.Steps = append(last.Steps, step)
	default:
		s.orphans = append(s.orphans, step)
	}
}

// closeStage attaches the open stage to the open phase. Without a phase the
// stage is discarded and its steps join the orphan buffer.
func (s *parserState) closeStage() {
	if s.openStage == nil {
		return
	}
	if s.openPhase != nil {
		s.openPhase.Stages = append(s.openPhase.Stages, *s.openStage)
	} else {
		s.orphans = append(s.orphans, s.openStage.Steps...)
	}
	s.openStage = nil
}

func (s *parserState) closePhase() {
	if s.openPhase == nil {
		return
	}
	s.phases = append(s.phases, *s.openPhase)
	s.openPhase = nil
}

// finish closes everything still open, synthesizes a phase for orphan steps
// when the document had no phase headers, and computes progress.
//
// Orphans in a document that also produced phases are dropped.
func (s *parserState) finish(documentName string) []Phase {
	s.closeStage()
	s.closePhase()

	if len(s.phases) == 0 && len(s.orphans) > 0 {
		name := s.lastHeading
		if name == "" {
			name = stripMarkdownExt(documentName)
		}
		s.phases = append(s.phases, Phase{
			Name:   name,
			Order:  0,
			Status: StatusNotStarted,
			Stages: []Stage{{Name: TasksStageName, Steps: s.orphans}},
		})
	}

	for i := range s.phases {
		s.phases[i].computeProgress()
	}
	return s.phases
}

func stripMarkdownExt(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return base
}
