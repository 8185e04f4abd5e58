// SPDX-License-Identifier: AGPL-3.0-or-later

package projection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bartekus/planscan/internal/roadmap"
)

// DefaultReportPath is where `planscan report` writes, relative to the project root.
const DefaultReportPath = "docs/__generated__/documentation-progress.md"

// RenderStatusReport renders the summary, phase table, sources and checklist
// of a project's documentation.
func RenderStatusReport(doc roadmap.ProjectDocumentation) string {
	var b strings.Builder

	b.WriteString(RenderHeader(1, "Documentation Progress"))

	done, total := doc.Counts()
	fmt.Fprintf(&b, "- **Overall**: %s (%d/%d steps)\n", FormatPercent(doc.ProgressPercentage), done, total)
	fmt.Fprintf(&b, "- **Phases**: %d\n", len(doc.Phases))
	fmt.Fprintf(&b, "- **Sources**: %d\n", len(doc.SourceFiles))
	b.WriteString("\n")

	b.WriteString(RenderHeader(2, "Phases"))
	if len(doc.Phases) == 0 {
		b.WriteString("_No phases found._\n")
		return b.String()
	}

	rows := make([][]string, 0, len(doc.Phases))
	for i := range doc.Phases {
		p := &doc.Phases[i]
		pd, pt := p.Counts()
		rows = append(rows, []string{
			strconv.Itoa(p.Order),
			p.Name,
			p.Status.String(),
			FormatPercent(p.Progress),
			fmt.Sprintf("%d/%d", pd, pt),
		})
	}
	b.WriteString(RenderTable([]string{"Order", "Phase", "Status", "Progress", "Steps"}, rows))
	b.WriteString("\n")

	b.WriteString(RenderHeader(2, "Sources"))
	b.WriteString(RenderList(doc.SourceFiles))
	b.WriteString("\n")

	b.WriteString(RenderHeader(2, "Checklist"))
	for i := range doc.Phases {
		p := &doc.Phases[i]
		b.WriteString(RenderHeader(3, PhaseTitle(*p)))
		for _, st := range p.Stages {
			b.WriteString(RenderHeader(4, st.Name))
			if len(st.Steps) == 0 {
				b.WriteString("_No steps._\n\n")
				continue
			}
			items := make([]string, len(st.Steps))
			checked := make([]bool, len(st.Steps))
			for j, step := range st.Steps {
				items[j] = step.Content
				checked[j] = step.IsCompleted
			}
			b.WriteString(RenderChecklist(items, checked))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// PhaseTitle is "Phase N: name" for explicit phases and the bare name for
// synthesized ones.
func PhaseTitle(p roadmap.Phase) string {
	if p.Order > 0 {
		return fmt.Sprintf("Phase %d: %s", p.Order, p.Name)
	}
	return p.Name
}

// FormatPercent renders a percentage with one decimal.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
