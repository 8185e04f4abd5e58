// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config loads the optional .planscan.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/planscan/internal/scanner"
)

// FileName is the project config file looked up in the project root.
const FileName = ".planscan.yaml"

// CurrentVersion is the only supported config version.
const CurrentVersion = 1

// Config models .planscan.yaml.
type Config struct {
	Version      int      `yaml:"version"`
	RootFiles    []string `yaml:"root_files,omitempty"`
	DocDirs      []string `yaml:"doc_dirs,omitempty"`
	ExcludeDirs  []string `yaml:"exclude_dirs,omitempty"`
	ParentLookup *bool    `yaml:"parent_lookup,omitempty"`
	StateDir     string   `yaml:"state_dir,omitempty"`
}

// DefaultStateDir is where scan snapshots are kept, relative to the project root.
const DefaultStateDir = ".planscan"

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Version: CurrentVersion}
}

// Load reads root/.planscan.yaml. A missing file yields Default().
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. The file must exist.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path chosen by the user
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks version and paths.
func (c Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported version %d (want %d)", c.Version, CurrentVersion)
	}
	for _, d := range c.DocDirs {
		if d == "" || filepath.IsAbs(d) {
			return fmt.Errorf("doc_dirs entry %q must be a non-empty relative path", d)
		}
	}
	return nil
}

// ScannerOptions maps the config onto discovery options. Unset lists fall
// back to the defaults; exclude_dirs extends the default excludes.
func (c Config) ScannerOptions() scanner.Options {
	opts := scanner.DefaultOptions()
	if len(c.RootFiles) > 0 {
		opts.RootFiles = append([]string(nil), c.RootFiles...)
	}
	if len(c.DocDirs) > 0 {
		opts.DocDirs = append([]string(nil), c.DocDirs...)
	}
	opts.ExcludeDirs = append(opts.ExcludeDirs, c.ExcludeDirs...)
	if c.ParentLookup != nil {
		opts.ParentLookup = *c.ParentLookup
	}
	return opts
}

// ResolveStateDir returns the snapshot directory anchored at root.
func (c Config) ResolveStateDir(root string) string {
	dir := c.StateDir
	if dir == "" {
		dir = DefaultStateDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
