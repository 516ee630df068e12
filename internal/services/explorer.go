package services

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vvka-141/fsnav/internal/files/walker"
	"github.com/vvka-141/fsnav/internal/search"
	"github.com/vvka-141/fsnav/pkg/fsnav"
)

// Explorer implements the display and search commands on top of the walker.
// Listings go to out; traversal warnings go to errOut.
// Thread-Safety: NOT safe for concurrent calls that share writers.
type Explorer struct {
	session *Session
	walker  *walker.Walker
	out     io.Writer
	errOut  io.Writer
	logger  fsnav.Logger
}

// NewExplorer creates an Explorer.
// Panics if any dependency is nil.
func NewExplorer(session *Session, w *walker.Walker, out, errOut io.Writer, logger fsnav.Logger) *Explorer {
	if session == nil {
		panic("session cannot be nil")
	}
	if w == nil {
		panic("walker cannot be nil")
	}
	if out == nil || errOut == nil {
		panic("writers cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Explorer{
		session: session,
		walker:  w,
		out:     out,
		errOut:  errOut,
		logger:  logger,
	}
}

// Display prints every entry beneath dir, grouped under a header for each
// directory as it is expanded, and returns the number of entries listed.
//
// Output shape:
//
//	Displaying contents of: /data
//
//	[DIR] /data
//	  [DIR] docs
//	  [FILE] notes.txt
//
//	[DIR] /data/docs
//	  [FILE] readme.md
//
//	Total items found: 3
func (e *Explorer) Display(dir string) (int, error) {
	root := e.session.Resolve(dir)

	info, err := e.walker.Stat(root)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(e.out, "Displaying contents of: %s\n\n", root)

	if !info.IsDir() {
		result, err := e.walker.Walk(root, func(entry fsnav.DirectoryEntry) fsnav.VisitAction {
			fmt.Fprintf(e.out, "%s %s\n", entry.Kind.Tag(), entry.Path)
			return fsnav.Continue
		})
		if err != nil {
			return 0, err
		}
		fmt.Fprintf(e.out, "\nTotal items found: %d\n", result.ItemsVisited)
		return result.ItemsVisited, nil
	}

	result, err := e.walker.Walk(root,
		func(entry fsnav.DirectoryEntry) fsnav.VisitAction {
			fmt.Fprintf(e.out, "  %s %s\n", entry.Kind.Tag(), entry.Name)
			return fsnav.Continue
		},
		walker.OnExpand(func(d string) {
			fmt.Fprintf(e.out, "\n[DIR] %s\n", d)
		}),
		walker.OnWarning(e.printWarning),
	)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(e.out, "\nTotal items found: %d\n", result.ItemsVisited)
	return result.ItemsVisited, nil
}

// Search prints the absolute path of every entry beneath dir whose name
// contains term, ignoring case, and returns the number of matches.
//
// Returns a *fsnav.PathError with kind ErrEmptySearchTerm for an empty term
// or the root's stat failure kind when dir cannot be examined.
func (e *Explorer) Search(dir, term string) (int, error) {
	if term == "" {
		return 0, fsnav.NewPathError("search", dir, fsnav.ErrEmptySearchTerm, nil)
	}

	root := e.session.Resolve(dir)
	if _, err := e.walker.Stat(root); err != nil {
		return 0, err
	}

	fmt.Fprintf(e.out, "Searching for '%s' in: %s\n", term, root)

	matcher := search.NewMatcher(term)
	matches := 0
	result, err := e.walker.Walk(root,
		func(entry fsnav.DirectoryEntry) fsnav.VisitAction {
			if matcher.Match(entry.Name) {
				matches++
				fmt.Fprintf(e.out, "%s %s\n", entry.Kind.Tag(), absolute(entry.Path))
			}
			return fsnav.Continue
		},
		walker.OnWarning(e.printWarning),
	)
	if err != nil {
		return 0, err
	}

	e.logger.Verbose("Search for %q visited %d entries", term, result.ItemsVisited)
	fmt.Fprintf(e.out, "\nFound %d matches for '%s'\n", matches, term)
	return matches, nil
}

func (e *Explorer) printWarning(w fsnav.Warning) {
	fmt.Fprintf(e.errOut, "Warning: Some entries in %s could not be accessed\n", w.Path)
	e.logger.Verbose("%s", w.String())
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
