// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/projection"
	"github.com/bartekus/planscan/internal/roadmap"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func checkFormat(command, format string) error {
	switch format {
	case formatText, formatJSON, formatMarkdown:
		return nil
	default:
		return clierr.Usagef("%s: unsupported format %q (want text, json or markdown)", command, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeDocumentation prints doc in the requested format.
func writeDocumentation(w io.Writer, format string, doc roadmap.ProjectDocumentation) error {
	switch format {
	case formatJSON:
		return writeJSON(w, doc)
	case formatMarkdown:
		_, err := io.WriteString(w, projection.RenderStatusReport(doc))
		return err
	default:
		_, err := io.WriteString(w, renderText(doc))
		return err
	}
}

// renderText is the terminal view: one block per phase with its stages and steps.
func renderText(doc roadmap.ProjectDocumentation) string {
	var b strings.Builder

	done, total := doc.Counts()
	fmt.Fprintf(&b, "Overall progress: %s (%d/%d steps)\n", projection.FormatPercent(doc.ProgressPercentage), done, total)
	if len(doc.Phases) == 0 {
		b.WriteString("No phases found.\n")
		return b.String()
	}

	for i := range doc.Phases {
		p := &doc.Phases[i]
		fmt.Fprintf(&b, "\n[%s] %s  %s\n", p.Status, projection.PhaseTitle(*p), projection.FormatPercent(p.Progress))
		for _, st := range p.Stages {
			sd := 0
			for _, step := range st.Steps {
				if step.IsCompleted {
					sd++
				}
			}
			fmt.Fprintf(&b, "  %s (%d/%d)\n", st.Name, sd, len(st.Steps))
			for _, step := range st.Steps {
				box := " "
				if step.IsCompleted {
					box = "x"
				}
				fmt.Fprintf(&b, "    [%s] %s\n", box, step.Content)
			}
		}
	}

	b.WriteString("\nSources:\n")
	for _, src := range doc.SourceFiles {
		fmt.Fprintf(&b, "  - %s\n", src)
	}
	return b.String()
}
