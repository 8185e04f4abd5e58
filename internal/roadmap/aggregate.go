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
	"context"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Document is the raw text of one discovered document.
type Document struct {
	Text         string
	Name         string
	RelativePath string
}

// Aggregate parses every document and merges the results.
// Documents that yield no phases contribute nothing, not even a source file.
func Aggregate(docs []Document) ProjectDocumentation {
	out := ProjectDocumentation{
		Phases:      []Phase{},
		SourceFiles: []string{},
	}

	for _, d := range docs {
		phases := Parse(d.Text, d.Name)
		if len(phases) == 0 {
			continue
		}
		out.SourceFiles = append(out.SourceFiles, d.RelativePath)
		out.Phases = append(out.Phases, phases...)
	}

	sort.SliceStable(out.Phases, func(i, j int) bool {
		return out.Phases[i].Order < out.Phases[j].Order
	})

	done, total := out.Counts()
	out.ProgressPercentage = Percentage(done, total)
	return out
}

// Reader reads the raw content of a document.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads documents from the local filesystem.
type OSReader struct{}

// ReadFile implements Reader.
func (OSReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // paths come from discovery
}

// ReadError reports a document that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading document %s: %v", e.Path, e.Err)
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ReadError) Unwrap() error { return e.Err }

// Load reads every document concurrently and aggregates them in discovery order.
// A single unreadable document fails the whole load; no partial result is returned.
func Load(ctx context.Context, r Reader, infos []DocFileInfo) (ProjectDocumentation, error) {
	if r == nil {
		r = OSReader{}
	}

	docs := make([]Document, len(infos))
	g, ctx := errgroup.WithContext(ctx)
	for i, info := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.ReadFile(info.Path)
			if err != nil {
				return &ReadError{Path: info.Path, Err: err}
			}
			docs[i] = Document{
				Text:         string(data),
				Name:         info.Name,
				RelativePath: info.RelativePath,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ProjectDocumentation{}, err
	}

	return Aggregate(docs), nil
}
