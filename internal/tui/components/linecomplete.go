package components

import (
	"sort"
	"strings"
)

// Completer completes a whole input line on Tab.
type Completer interface {
	Complete(line string) string
	Reset()
}

// LineCompleter completes the command word against a fixed list of commands
// and every later word as a path. Arguments to directory commands such as
// "cd" only complete to directories.
type LineCompleter struct {
	commands    []string
	dirCommands map[string]bool
	paths       *PathCompleter
	dirs        *PathCompleter
}

// NewLineCompleter creates a completer for a shell with the given commands.
func NewLineCompleter(commands []string, dirCommands []string, paths, dirs *PathCompleter) *LineCompleter {
	sorted := append([]string(nil), commands...)
	sort.Strings(sorted)

	dirSet := make(map[string]bool, len(dirCommands))
	for _, cmd := range dirCommands {
		dirSet[cmd] = true
	}
	return &LineCompleter{
		commands:    sorted,
		dirCommands: dirSet,
		paths:       paths,
		dirs:        dirs,
	}
}

// Complete implements Completer.
func (c *LineCompleter) Complete(line string) string {
	start := strings.LastIndexAny(line, " \t") + 1
	head, word := line[:start], line[start:]

	command := strings.Fields(head)
	if len(command) == 0 {
		return c.completeCommand(line)
	}

	completer := c.paths
	if c.dirCommands[command[0]] {
		completer = c.dirs
	}
	return head + completer.Next(word)
}

// Reset implements Completer.
func (c *LineCompleter) Reset() {
	c.paths.Reset()
	c.dirs.Reset()
}

func (c *LineCompleter) completeCommand(prefix string) string {
	trimmed := strings.TrimLeft(prefix, " \t")
	if trimmed == "" {
		return prefix
	}

	var matches []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, trimmed) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return prefix
	case 1:
		return matches[0] + " "
	}
	return longestCommonPrefix(matches)
}
