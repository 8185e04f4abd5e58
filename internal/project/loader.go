// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package project wires config, discovery and aggregation for one project root.
package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bartekus/planscan/internal/config"
	"github.com/bartekus/planscan/internal/roadmap"
	"github.com/bartekus/planscan/internal/scanner"
)

// Loader discovers and parses the documents of a project.
type Loader struct {
	reader     roadmap.Reader
	log        *slog.Logger
	configPath string
}

// NewLoader returns a Loader reading from r (the filesystem when nil).
func NewLoader(r roadmap.Reader, log *slog.Logger) *Loader {
	if r == nil {
		r = roadmap.OSReader{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{reader: r, log: log}
}

// WithConfigFile makes the loader read config from path instead of
// <root>/.planscan.yaml.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configPath = path
	return l
}

// Config loads the project config of root.
func (l *Loader) Config(root string) (config.Config, error) {
	if l.configPath != "" {
		return config.LoadFile(l.configPath)
	}
	return config.Load(root)
}

// Discover returns the documents considered for root.
func (l *Loader) Discover(ctx context.Context, root string) ([]roadmap.DocFileInfo, error) {
	cfg, err := l.Config(root)
	if err != nil {
		return nil, err
	}
	opts := cfg.ScannerOptions()
	opts.Logger = l.log
	docs, err := scanner.New(root, opts).Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering documents: %w", err)
	}
	return docs, nil
}

// Load discovers and aggregates every document of root.
func (l *Loader) Load(ctx context.Context, root string) (roadmap.ProjectDocumentation, error) {
	start := time.Now()

	infos, err := l.Discover(ctx, root)
	if err != nil {
		return roadmap.ProjectDocumentation{}, err
	}
	doc, err := roadmap.Load(ctx, l.reader, infos)
	if err != nil {
		return roadmap.ProjectDocumentation{}, err
	}

	l.log.Debug("parsed documentation",
		"root", root,
		"documents", len(infos),
		"sources", len(doc.SourceFiles),
		"phases", len(doc.Phases),
		"progress", doc.ProgressPercentage,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}
