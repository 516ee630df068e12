package components

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/fsnav/internal/files/filesystem"
)

// PathCompleter provides tab-completion and cycling for filesystem paths.
// Relative input is completed against the shell's working directory and
// the completed text keeps the form the user typed.
//
// Usage:
//
//	completer := NewPathCompleter(fsProvider, session.Cwd, false)
//
//	// On Tab press:
//	completed := completer.Next(word)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	fsProvider filesystem.FileSystemProvider
	cwd        func() string
	homeDir    func() (string, error)
	dirsOnly   bool

	matches    []string
	cycleIndex int
	parent     string
	lastResult string
}

// NewPathCompleter creates a new path completer.
// If dirsOnly is true, only directories are matched.
func NewPathCompleter(fsProvider filesystem.FileSystemProvider, cwd func() string, dirsOnly bool) *PathCompleter {
	return &PathCompleter{
		fsProvider: fsProvider,
		cwd:        cwd,
		dirsOnly:   dirsOnly,
	}
}

// WithHomeDir lets "~/" prefixes be completed.
func (c *PathCompleter) WithHomeDir(fn func() (string, error)) *PathCompleter {
	c.homeDir = fn
	return c
}

// Next returns the next completion for the given input.
// The first call extends input to the longest prefix shared by all matches;
// pressing Tab again on an unchanged result cycles through the matches.
func (c *PathCompleter) Next(input string) string {
	if c.matches != nil && input == c.lastResult {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		c.lastResult = c.formatMatch(c.parent, c.matches[c.cycleIndex])
		return c.lastResult
	}

	parent, prefix := splitPath(input)
	c.matches = c.findMatches(parent, prefix)
	c.parent = parent
	c.cycleIndex = 0

	if len(c.matches) == 0 {
		c.Reset()
		return input
	}

	if len(c.matches) > 1 {
		common := longestCommonPrefix(c.matches)
		if len(common) > len(prefix) {
			// Next Tab starts the cycle at the first match
			c.cycleIndex = -1
			c.lastResult = joinTyped(parent, common)
			return c.lastResult
		}
	}

	c.lastResult = c.formatMatch(parent, c.matches[c.cycleIndex])
	return c.lastResult
}

// Matches returns the candidates found by the last Next call.
func (c *PathCompleter) Matches() []string {
	return c.matches
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.parent = ""
	c.lastResult = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []string {
	infos, err := c.fsProvider.ReadDir(c.resolve(parent))
	if err != nil && len(infos) == 0 {
		return nil
	}

	var matches []string
	lowPrefix := strings.ToLower(prefix)

	for _, info := range infos {
		name := info.Name()
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		if c.dirsOnly && !c.isDir(filepath.Join(c.resolve(parent), name)) {
			continue
		}
		matches = append(matches, name)
	}

	sort.Strings(matches)
	return matches
}

func (c *PathCompleter) formatMatch(parent, name string) string {
	result := joinTyped(parent, name)

	// Directories get a trailing separator so the next Tab descends
	if c.isDir(filepath.Join(c.resolve(parent), name)) {
		result += string(filepath.Separator)
	}

	return result
}

func (c *PathCompleter) isDir(path string) bool {
	info, err := c.fsProvider.Stat(path)
	return err == nil && info.IsDir()
}

// resolve maps the typed parent onto an absolute directory.
func (c *PathCompleter) resolve(parent string) string {
	if c.homeDir != nil && (parent == "~" || strings.HasPrefix(parent, "~/")) {
		if home, err := c.homeDir(); err == nil && home != "" {
			return filepath.Join(home, parent[1:])
		}
	}
	if filepath.IsAbs(parent) {
		return parent
	}
	return filepath.Join(c.cwd(), parent)
}

// joinTyped appends name to the parent as the user typed it,
// leaving bare names bare.
func joinTyped(parent, name string) string {
	if parent == "." {
		return name
	}
	if strings.HasSuffix(parent, "/") || strings.HasSuffix(parent, string(filepath.Separator)) {
		return parent + name
	}
	return parent + string(filepath.Separator) + name
}

// splitPath splits an input into parent directory and name prefix.
//
//	"src/com" → ("src", "com")
//	"src/"    → ("src", "")
//	"/"       → ("/", "")
//	"my"      → (".", "my")
//	""        → (".", "")
//	"."       → (".", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}

	if strings.HasSuffix(input, string(filepath.Separator)) || strings.HasSuffix(input, "/") {
		trimmed := strings.TrimRight(input, `/\`)
		if trimmed == "" {
			return string(filepath.Separator), ""
		}
		return trimmed, ""
	}

	parent = filepath.Dir(input)
	prefix = filepath.Base(input)
	return parent, prefix
}

// longestCommonPrefix finds the longest common prefix among strs, comparing
// runes case-insensitively. The result is a prefix of strs[0].
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	first := strs[0]
	rest := make([]string, len(strs)-1)
	copy(rest, strs[1:])

	for i, ch := range first {
		for k, s := range rest {
			r, size := utf8.DecodeRuneInString(s)
			if size == 0 || !equalFoldRune(ch, r) {
				return first[:i]
			}
			rest[k] = s[size:]
		}
	}
	return first
}

// equalFoldRune reports whether a and b are equal under simple Unicode case folding.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
