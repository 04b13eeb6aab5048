// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlob resolves pattern against dir and returns the matching paths
// relative to dir, sorted. Dot files only match a pattern whose last element
// starts with a dot.
//
// When nothing matches, the pattern is returned unchanged and matched is
// false, mirroring how a POSIX shell passes an unmatched word through.
func ExpandGlob(dir, pattern string) (paths []string, matched bool, err error) {
	if pattern == "" {
		return nil, false, errors.New("source pattern must not be empty")
	}

	full := pattern
	if !filepath.IsAbs(pattern) {
		full = filepath.Join(dir, pattern)
	}

	found, err := filepath.Glob(full)
	if err != nil {
		return nil, false, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
	}

	wantHidden := strings.HasPrefix(filepath.Base(pattern), ".")
	for _, p := range found {
		if !wantHidden && strings.HasPrefix(filepath.Base(p), ".") {
			continue
		}
		if !filepath.IsAbs(pattern) {
			rel, err := filepath.Rel(dir, p)
			if err != nil {
				return nil, false, err
			}
			p = rel
		}
		paths = append(paths, p)
	}

	if len(paths) == 0 {
		return []string{pattern}, false, nil
	}
	sort.Strings(paths)
	return paths, true, nil
}
