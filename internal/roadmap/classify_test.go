package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Token
	}{
		{
			name: "milestone header",
			line: "# Milestone 1: Setup",
			want: Token{Kind: TokenPhaseHeader, Text: "Setup", Order: 1},
		},
		{
			name: "phase header at level two with dash",
			line: "## Phase 12 - Ship it",
			want: Token{Kind: TokenPhaseHeader, Text: "Ship it", Order: 12},
		},
		{
			name: "part header with dot",
			line: "# Part 3. Polish",
			want: Token{Kind: TokenPhaseHeader, Text: "Polish", Order: 3},
		},
		{
			name: "step keyword with space only",
			line: "## Step 2 Deploy",
			want: Token{Kind: TokenPhaseHeader, Text: "Deploy", Order: 2},
		},
		{
			name: "keyword is case insensitive",
			line: "# PHASE 4: Loud",
			want: Token{Kind: TokenPhaseHeader, Text: "Loud", Order: 4},
		},
		{
			name: "phase keyword at level three is a stage",
			line: "### Phase 5: Deep",
			want: Token{Kind: TokenStageHeader, Text: "Phase 5: Deep"},
		},
		{
			name: "phase header without a name is a heading",
			line: "# Phase 1",
			want: Token{Kind: TokenHeading1, Text: "Phase 1"},
		},
		{
			name: "ordinal digits are not split into a name",
			line: "# Phase 12",
			want: Token{Kind: TokenHeading1, Text: "Phase 12"},
		},
		{
			name: "top level heading",
			line: "# Project Roadmap",
			want: Token{Kind: TokenHeading1, Text: "Project Roadmap"},
		},
		{
			name: "stage header level two",
			line: "## Install",
			want: Token{Kind: TokenStageHeader, Text: "Install"},
		},
		{
			name: "stage header level three",
			line: "### Wiring",
			want: Token{Kind: TokenStageHeader, Text: "Wiring"},
		},
		{
			name: "level four heading is plain text",
			line: "#### Too deep",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "checked lowercase",
			line: "- [x] Done",
			want: Token{Kind: TokenCheckedItem, Text: "Done"},
		},
		{
			name: "checked uppercase",
			line: "- [X] Done",
			want: Token{Kind: TokenCheckedItem, Text: "Done"},
		},
		{
			name: "unchecked",
			line: "- [ ] Todo",
			want: Token{Kind: TokenUncheckedItem, Text: "Todo"},
		},
		{
			name: "indented asterisk bullet",
			line: "   * [ ] Nested",
			want: Token{Kind: TokenUncheckedItem, Text: "Nested"},
		},
		{
			name: "plus bullet",
			line: "+ [x] Plus",
			want: Token{Kind: TokenCheckedItem, Text: "Plus"},
		},
		{
			name: "padded checkbox is plain text",
			line: "- [ X ] Padded",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "no bullet is plain text",
			line: "[x] bare",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "plain bullet",
			line: "- just a note",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "hash without space",
			line: "#hashtag",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "carriage return is trimmed",
			line: "- [x] Windows\r",
			want: Token{Kind: TokenCheckedItem, Text: "Windows"},
		},
		{
			name: "checked item without text is plain text",
			line: "- [x]  ",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "unchecked item without text is plain text",
			line: "- [ ] \t",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "blank top level heading is plain text",
			line: "#   ",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "blank stage header is plain text",
			line: "##  ",
			want: Token{Kind: TokenPlainText},
		},
		{
			name: "empty line",
			line: "",
			want: Token{Kind: TokenPlainText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "phase-header", TokenPhaseHeader.String())
	assert.Equal(t, "plain-text", TokenKind(99).String())
}
