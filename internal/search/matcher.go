// Package search provides the case-insensitive name predicate used by the
// search command.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether term occurs in name, ignoring case.
// Both strings are case-folded without regard to locale, so "STRASSE"
// matches "straße". An empty term matches every name.
func Matches(name, term string) bool {
	return NewMatcher(term).Match(name)
}

// Matcher tests names against a term folded once up front.
type Matcher struct {
	term string
}

// NewMatcher prepares term for repeated matching during a traversal.
func NewMatcher(term string) *Matcher {
	return &Matcher{term: fold(term)}
}

// Match reports whether the matcher's term occurs in name, ignoring case.
func (m *Matcher) Match(name string) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(fold(name), m.term)
}

// Term returns the folded term.
func (m *Matcher) Term() string {
	return m.term
}

// cases.Caser is stateful and not safe for concurrent use, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
