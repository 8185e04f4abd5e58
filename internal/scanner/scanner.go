// Package scanner discovers the planning documents of a project.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bartekus/planscan/internal/roadmap"
)

// ParentPrefix marks relative paths of documents found in the parent directory.
const ParentPrefix = "../"

// DefaultRootFiles returns the base names (without extension) of root-level
// documents that are always considered.
func DefaultRootFiles() []string {
	return []string{"README", "CHANGELOG", "ROADMAP", "TODO", "PLAN", "PLANNING", "MILESTONES"}
}

// DefaultDocDirs returns the conventional documentation directories.
func DefaultDocDirs() []string {
	return []string{"docs", "doc", "planning", "plans", "roadmap", ".github"}
}

// Options controls what Discover looks at.
type Options struct {
	RootFiles    []string
	DocDirs      []string
	ExcludeDirs  []string
	ParentLookup bool
	Logger       *slog.Logger
}

// DefaultOptions returns the options used when a project has no config.
func DefaultOptions() Options {
	return Options{
		RootFiles:    DefaultRootFiles(),
		DocDirs:      DefaultDocDirs(),
		ExcludeDirs:  DefaultExcludeDirs(),
		ParentLookup: true,
	}
}

// Scanner finds markdown documents under a project root.
type Scanner struct {
	root string
	opts Options
	log  *slog.Logger
}

// New creates a new Scanner for the given project root.
func New(root string, opts Options) *Scanner {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Scanner{root: root, opts: opts, log: log}
}

// Discover returns root-level documents, then documents under the doc
// directories, then (with ParentLookup) documents under the parent's doc
// directories. Each group is sorted; a file is reported once.
func (s *Scanner) Discover(ctx context.Context) ([]roadmap.DocFileInfo, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", s.root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", root)
	}

	var out []roadmap.DocFileInfo
	seen := make(map[string]bool)
	add := func(docs []roadmap.DocFileInfo) {
		for _, d := range docs {
			if seen[d.Path] {
				continue
			}
			seen[d.Path] = true
			out = append(out, d)
		}
	}

	rootDocs, err := s.rootFiles(root)
	if err != nil {
		return nil, err
	}
	add(rootDocs)

	dirDocs, err := s.docDirFiles(ctx, root, "")
	if err != nil {
		return nil, err
	}
	add(dirDocs)

	if s.opts.ParentLookup {
		parent := filepath.Dir(root)
		if parent != root {
			parentDocs, err := s.docDirFiles(ctx, parent, ParentPrefix)
			if err != nil {
				return nil, err
			}
			add(parentDocs)
		}
	}

	s.log.Debug("discovered documents", "root", root, "count", len(out))
	return out, nil
}

// rootFiles matches entries directly under root against the configured names.
func (s *Scanner) rootFiles(root string) ([]roadmap.DocFileInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", root, err)
	}

	wanted := make(map[string]bool, len(s.opts.RootFiles))
	for _, n := range s.opts.RootFiles {
		wanted[strings.ToUpper(n)] = true
	}

	var docs []roadmap.DocFileInfo
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		if ext != "" && !shouldIncludeExtension(name, MarkdownExtensions()) {
			continue
		}
		if !wanted[strings.ToUpper(strings.TrimSuffix(name, ext))] {
			continue
		}
		docs = append(docs, roadmap.DocFileInfo{
			Path:         filepath.Join(root, name),
			Name:         name,
			RelativePath: name,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelativePath < docs[j].RelativePath })
	return docs, nil
}

// docDirFiles walks every configured doc directory under base.
func (s *Scanner) docDirFiles(ctx context.Context, base, prefix string) ([]roadmap.DocFileInfo, error) {
	var rels []string
	for _, dir := range s.opts.DocDirs {
		found, err := s.walk(ctx, base, dir)
		if err != nil {
			return nil, err
		}
		rels = append(rels, found...)
	}

	rels = FilterFiles(rels, FilterOptions{
		ExcludeDirs:       s.opts.ExcludeDirs,
		IncludeExtensions: MarkdownExtensions(),
	})

	docs := make([]roadmap.DocFileInfo, 0, len(rels))
	for _, rel := range rels {
		docs = append(docs, roadmap.DocFileInfo{
			Path:         filepath.Join(base, filepath.FromSlash(rel)),
			Name:         filepath.Base(rel),
			RelativePath: prefix + rel,
		})
	}
	return docs, nil
}

// walk returns slash-separated paths relative to base of every regular file
// under base/dir. A missing dir yields nothing.
func (s *Scanner) walk(ctx context.Context, base, dir string) ([]string, error) {
	start := filepath.Join(base, dir)
	info, err := os.Stat(start)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", start, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var found []string
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != start && isExcludedDir(d.Name(), s.opts.ExcludeDirs) {
				s.log.Debug("skipping directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", start, err)
	}
	return found, nil
}
