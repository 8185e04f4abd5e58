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
	"regexp"
	"strconv"
	"strings"
)

// TokenKind identifies the structural role of a single line.
type TokenKind int

const (
	TokenPlainText TokenKind = iota
	TokenHeading1
	TokenPhaseHeader
	TokenStageHeader
	TokenCheckedItem
	TokenUncheckedItem
)

func (k TokenKind) String() string {
	switch k {
	case TokenHeading1:
		return "heading1"
	case TokenPhaseHeader:
		return "phase-header"
	case TokenStageHeader:
		return "stage-header"
	case TokenCheckedItem:
		return "checked-item"
	case TokenUncheckedItem:
		return "unchecked-item"
	default:
		return "plain-text"
	}
}

// Token is the classification of one line.
// Text holds the captured name or step content; Order is only set for phase headers.
type Token struct {
	Kind  TokenKind
	Text  string
	Order int
}

var (
	phaseHeaderRe   = regexp.MustCompile(`^#{1,2}\s+(?i:milestone|phase|part|step)\s+(\d+)(?:\s*[:.\-]\s*|\s+)(.+)$`)
	heading1Re      = regexp.MustCompile(`^#\s+(\S.*)$`)
	stageHeaderRe   = regexp.MustCompile(`^#{2,3}\s+(\S.*)$`)
	checkedItemRe   = regexp.MustCompile(`^\s*[-*+]\s+\[[xX]\]\s+(\S.*)$`)
	uncheckedItemRe = regexp.MustCompile(`^\s*[-*+]\s+\[ \]\s+(\S.*)$`)
)

// Classify maps a line to a token. Precedence is fixed: phase headers win
// over top-level headings and stage headers; checklist items are only
// considered for lines that are not headers.
func Classify(line string) Token {
	line = strings.TrimRight(line, "\r")

	if m := phaseHeaderRe.FindStringSubmatch(line); m != nil {
		order, err := strconv.Atoi(m[1])
		name := strings.TrimSpace(m[2])
		if err == nil && name != "" {
			return Token{Kind: TokenPhaseHeader, Text: name, Order: order}
		}
	}
	if m := heading1Re.FindStringSubmatch(line); m != nil {
		return Token{Kind: TokenHeading1, Text: strings.TrimSpace(m[1])}
	}
	if m := stageHeaderRe.FindStringSubmatch(line); m != nil {
		return Token{Kind: TokenStageHeader, Text: strings.TrimSpace(m[1])}
	}
	if m := checkedItemRe.FindStringSubmatch(line); m != nil {
		return Token{Kind: TokenCheckedItem, Text: strings.TrimSpace(m[1])}
	}
	if m := uncheckedItemRe.FindStringSubmatch(line); m != nil {
		return Token{Kind: TokenUncheckedItem, Text: strings.TrimSpace(m[1])}
	}
	return Token{Kind: TokenPlainText}
}
