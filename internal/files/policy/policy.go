// Package policy decides which paths are excluded from every traversal.
package policy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// Policy is an immutable skip list. A path is skipped when its string form
// contains any listed substring (case-sensitive), or when it matches one of
// the optional doublestar glob patterns.
//
// Glob patterns containing a "/" are matched against the whole slash-separated
// path; patterns without one are matched against the final path element, so
// "*.tmp" skips every .tmp file wherever it lives.
//
// Policy is safe for concurrent use.
type Policy struct {
	substrings []string
	globs      []string
}

// New builds a policy from substrings and glob patterns.
// Empty substrings are ignored (they would match every path).
// Returns an ErrInvalidConfig error if a glob pattern is malformed.
func New(substrings []string, globs []string) (*Policy, error) {
	p := &Policy{}
	for _, s := range substrings {
		if s != "" {
			p.substrings = append(p.substrings, s)
		}
	}
	for _, g := range globs {
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("skip glob %q is not a valid pattern: %w", g, fsnav.ErrInvalidConfig)
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// Default returns the policy built from fsnav.DefaultSkipPaths.
func Default() *Policy {
	p, _ := New(fsnav.DefaultSkipPaths, nil)
	return p
}

// ShouldSkip reports whether path must be excluded from traversal.
func (p *Policy) ShouldSkip(path string) bool {
	if path == "" {
		return false
	}
	for _, s := range p.substrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	if len(p.globs) == 0 {
		return false
	}

	// Globs are written relative, so drop the volume and leading separators
	slashPath := strings.TrimLeft(filepath.ToSlash(strings.TrimPrefix(path, filepath.VolumeName(path))), "/")
	base := filepath.Base(path)
	for _, g := range p.globs {
		subject := slashPath
		if !strings.Contains(g, "/") {
			subject = base
		}
		if doublestar.MatchUnvalidated(g, subject) {
			return true
		}
	}
	return false
}

// Substrings returns a copy of the substring skip list.
func (p *Policy) Substrings() []string {
	return append([]string(nil), p.substrings...)
}

// Globs returns a copy of the glob skip list.
func (p *Policy) Globs() []string {
	return append([]string(nil), p.globs...)
}
