package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MilestoneScenario(t *testing.T) {
	input := `# Milestone 1: Setup
## Install
- [x] Install deps
- [ ] Configure CI
# Milestone 2: Build
- [x] Compile
`
	phases := Parse(input, "ROADMAP.md")
	require.Len(t, phases, 2)

	p1 := phases[0]
	assert.Equal(t, "Setup", p1.Name)
	assert.Equal(t, 1, p1.Order)
	assert.Equal(t, 50.0, p1.Progress)
	assert.Equal(t, StatusInProgress, p1.Status)
	require.Len(t, p1.Stages, 1)
	assert.Equal(t, "Install", p1.Stages[0].Name)
	assert.Equal(t, []Step{
		{Content: "Install deps", IsCompleted: true},
		{Content: "Configure CI", IsCompleted: false},
	}, p1.Stages[0].Steps)

	p2 := phases[1]
	assert.Equal(t, "Build", p2.Name)
	assert.Equal(t, 2, p2.Order)
	assert.Equal(t, 100.0, p2.Progress)
	assert.Equal(t, StatusCompleted, p2.Status)
	require.Len(t, p2.Stages, 1)
	assert.Equal(t, TasksStageName, p2.Stages[0].Name)
	assert.Equal(t, []Step{{Content: "Compile", IsCompleted: true}}, p2.Stages[0].Steps)
}

func TestParse_ChecklistOnlyUsesFileName(t *testing.T) {
	input := "- [ ] First\n- [x] Second\n* [ ] Third\n"

	phases := Parse(input, "TODO.md")
	require.Len(t, phases, 1)

	p := phases[0]
	assert.Equal(t, "TODO", p.Name)
	assert.Equal(t, 0, p.Order)
	require.Len(t, p.Stages, 1)
	assert.Equal(t, TasksStageName, p.Stages[0].Name)
	assert.Equal(t, []Step{
		{Content: "First", IsCompleted: false},
		{Content: "Second", IsCompleted: true},
		{Content: "Third", IsCompleted: false},
	}, p.Stages[0].Steps)
}

func TestParse_HeadingFallbackName(t *testing.T) {
	input := `# Release Checklist

Some narrative text.

- [x] Tag
- [ ] Announce
`
	phases := Parse(input, "release.md")
	require.Len(t, phases, 1)
	assert.Equal(t, "Release Checklist", phases[0].Name)
	assert.Equal(t, 50.0, phases[0].Progress)
}

func TestParse_LastHeadingWins(t *testing.T) {
	input := "# First\n- [ ] a\n# Second\n- [ ] b\n"

	phases := Parse(input, "doc.md")
	require.Len(t, phases, 1)
	assert.Equal(t, "Second", phases[0].Name)
	require.Len(t, phases[0].Stages, 1)
	assert.Len(t, phases[0].Stages[0].Steps, 2)
}

func TestParse_PhaseHeaderIsNotAHeadingFallback(t *testing.T) {
	input := "# Phase 1: Alpha\n"

	phases := Parse(input, "doc.md")
	require.Len(t, phases, 1)
	assert.Equal(t, "Alpha", phases[0].Name)
	assert.Equal(t, StatusNotStarted, phases[0].Status)
	assert.Empty(t, phases[0].Stages)
}

func TestParse_OrphansDroppedWhenPhasesExist(t *testing.T) {
	input := `- [x] Early orphan
# Phase 1: Real
- [ ] Work
`
	phases := Parse(input, "doc.md")
	require.Len(t, phases, 1)
	assert.Equal(t, "Real", phases[0].Name)
	done, total := phases[0].Counts()
	assert.Equal(t, 0, done)
	assert.Equal(t, 1, total)
}

func TestParse_StageBeforePhaseIsAdopted(t *testing.T) {
	input := `## Prep
- [x] Read docs
# Phase 1: Start
- [ ] Begin
`
	phases := Parse(input, "doc.md")
	require.Len(t, phases, 1)
	require.Len(t, phases[0].Stages, 2)
	assert.Equal(t, "Prep", phases[0].Stages[0].Name)
	assert.Equal(t, TasksStageName, phases[0].Stages[1].Name)
	assert.Equal(t, 50.0, phases[0].Progress)
}

func TestParse_StageWithoutPhaseBecomesOrphans(t *testing.T) {
	input := `## Backlog
- [ ] One
## Later
- [x] Two
`
	phases := Parse(input, "notes.markdown")
	require.Len(t, phases, 1)

	p := phases[0]
	assert.Equal(t, "notes", p.Name)
	require.Len(t, p.Stages, 1)
	assert.Equal(t, TasksStageName, p.Stages[0].Name)
	assert.Equal(t, []Step{
		{Content: "One", IsCompleted: false},
		{Content: "Two", IsCompleted: true},
	}, p.Stages[0].Steps)
}

func TestParse_MultipleStages(t *testing.T) {
	input := `## Phase 1: Core
### Parser
- [x] Classifier
- [x] State machine
### Aggregator
- [ ] Merge
## Notes
Just words.
`
	phases := Parse(input, "plan.md")
	require.Len(t, phases, 1)

	p := phases[0]
	require.Len(t, p.Stages, 3)
	assert.Equal(t, "Parser", p.Stages[0].Name)
	assert.Equal(t, "Aggregator", p.Stages[1].Name)
	assert.Equal(t, "Notes", p.Stages[2].Name)
	assert.Empty(t, p.Stages[2].Steps)
	assert.InDelta(t, 66.666, p.Progress, 0.01)
	assert.Equal(t, StatusInProgress, p.Status)
}

func TestParse_NoStructure(t *testing.T) {
	assert.Empty(t, Parse("", "empty.md"))
	assert.Empty(t, Parse("# Title\n\nJust prose.\n- a bullet\n", "prose.md"))
	assert.Empty(t, Parse("- [ X ] padded box\n", "padded.md"))
}

func TestParse_CRLF(t *testing.T) {
	input := "# Milestone 1: Win\r\n- [x] Done\r\n- [ ] Todo\r\n"

	phases := Parse(input, "win.md")
	require.Len(t, phases, 1)
	assert.Equal(t, "Win", phases[0].Name)
	assert.Equal(t, "Done", phases[0].Stages[0].Steps[0].Content)
}

func TestParse_Idempotent(t *testing.T) {
	input := `# Milestone 1: Setup
## Install
- [x] Install deps
- [ ] Configure CI
- [ ] orphan free
`
	assert.Equal(t, Parse(input, "a.md"), Parse(input, "a.md"))
}

func TestParse_StatusMatchesProgress(t *testing.T) {
	input := `# Phase 1: A
- [ ] a
# Phase 2: B
- [x] b
- [ ] c
# Phase 3: C
- [x] d
# Phase 4: Empty
`
	for _, p := range Parse(input, "doc.md") {
		assert.GreaterOrEqual(t, p.Progress, 0.0)
		assert.LessOrEqual(t, p.Progress, 100.0)
		assert.Equal(t, StatusFromProgress(p.Progress), p.Status, "phase %s", p.Name)
	}
}

func TestParserState_Transitions(t *testing.T) {
	st := newParserState()

	st.addStep(Step{Content: "orphan"})
	assert.Len(t, st.orphans, 1)

	st.openStageNamed("Held")
	st.addStep(Step{Content: "held step"})
	require.NotNil(t, st.openStage)
	assert.Nil(t, st.openPhase)

	st.openPhaseAt(3, "Three")
	require.NotNil(t, st.openPhase)
	assert.Nil(t, st.openStage)
	require.Len(t, st.openPhase.Stages, 1)
	assert.Equal(t, "Held", st.openPhase.Stages[0].Name)

	st.addStep(Step{Content: "a"})
	st.addStep(Step{Content: "b", IsCompleted: true})
	require.Len(t, st.openPhase.Stages, 2)
	assert.Equal(t, TasksStageName, st.openPhase.Stages[1].Name)
	assert.Len(t, st.openPhase.Stages[1].Steps, 2)

	phases := st.finish("doc.md")
	require.Len(t, phases, 1)
	assert.Equal(t, 3, phases[0].Order)
	assert.InDelta(t, 33.333, phases[0].Progress, 0.01)
}

func TestStripMarkdownExt(t *testing.T) {
	assert.Equal(t, "README", stripMarkdownExt("README.md"))
	assert.Equal(t, "guide", stripMarkdownExt("docs/guide.MARKDOWN"))
	assert.Equal(t, "page", stripMarkdownExt("page.mdx"))
	assert.Equal(t, "notes.txt", stripMarkdownExt("notes.txt"))
	assert.Equal(t, "CHANGELOG", stripMarkdownExt("CHANGELOG"))
}

func TestParse_BlankItemsAndHeadingsIgnored(t *testing.T) {
	input := "# Notes\n#   \n- [x]  \n- [ ] real\n"
	phases := Parse(input, "todo.md")
	require.Len(t, phases, 1)

	assert.Equal(t, "Notes", phases[0].Name)
	require.Len(t, phases[0].Stages, 1)
	assert.Equal(t, []Step{{Content: "real", IsCompleted: false}}, phases[0].Stages[0].Steps)
	assert.Equal(t, 0.0, phases[0].Progress)
	assert.Equal(t, StatusNotStarted, phases[0].Status)
}
