package fsnav

import "fmt"

// EntryKind classifies a traversal entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// Tag returns the bracketed label printed in listings.
func (k EntryKind) Tag() string {
	if k == KindDirectory {
		return "[DIR]"
	}
	return "[FILE]"
}

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// DirectoryEntry is a single item produced during traversal.
// It is only valid for the duration of the visit callback.
type DirectoryEntry struct {
	// Path is the entry's full path (absolute when the traversal root was absolute)
	Path string

	// Name is the final path element
	Name string

	Kind EntryKind
}

// IsDir reports whether the entry is a directory.
func (e DirectoryEntry) IsDir() bool {
	return e.Kind == KindDirectory
}

// VisitAction tells the traversal engine whether to keep going.
type VisitAction int

const (
	Continue VisitAction = iota
	Stop
)

// Warning is a non-fatal problem met during traversal, typically a
// directory that could not be fully enumerated.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// TraversalResult summarizes a completed (or stopped) traversal.
type TraversalResult struct {
	ItemsVisited int
	Warnings     []Warning
}

// DeleteResult describes a successful removal.
type DeleteResult struct {
	Path  string
	IsDir bool

	// ContainedItems counts the entries removed beneath a directory (0 for files)
	ContainedItems int
}

// RenameResult describes a successful rename.
type RenameResult struct {
	From string
	To   string
}
