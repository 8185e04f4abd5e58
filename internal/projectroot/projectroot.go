// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the root of the project a command runs in.
package projectroot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Markers are the entries whose presence marks a project root, in priority order.
var Markers = []string{".planscan.yaml", ".git"}

// Find walks up from start until a directory containing one of Markers is
// found. When none is found the absolute start directory is returned.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := abs; ; {
		for _, m := range Markers {
			_, err := os.Stat(filepath.Join(dir, m))
			if err == nil {
				return dir, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("checking %s: %w", filepath.Join(dir, m), err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
