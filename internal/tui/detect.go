package tui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// EnvNonInteractive forces plain line input when set to 1, true or yes.
const EnvNonInteractive = "FSNAV_NON_INTERACTIVE"

// Mode selects how the shell reads its input.
type Mode int

const (
	// ModeNonInteractive reads plain newline-terminated lines (pipes, scripts, CI).
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the line editor with completion and history.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// terminalEnv is what mode detection looks at.
type terminalEnv struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
	stdin      int
	stdout     int
}

// DetectMode decides between the line editor and plain line reads.
//
// Returns ModeNonInteractive if:
//   - FSNAV_NON_INTERACTIVE is 1, true or yes
//   - CI is set (common CI/CD convention)
//   - TERM is "dumb", which the line editor cannot drive
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise. NO_COLOR only removes styling.
func DetectMode() Mode {
	return detectMode(terminalEnv{
		getenv:     os.Getenv,
		isTerminal: term.IsTerminal,
		stdin:      int(os.Stdin.Fd()),
		stdout:     int(os.Stdout.Fd()),
	})
}

func detectMode(p terminalEnv) Mode {
	switch strings.ToLower(strings.TrimSpace(p.getenv(EnvNonInteractive))) {
	case "1", "true", "yes":
		return ModeNonInteractive
	}
	if p.getenv("CI") != "" {
		return ModeNonInteractive
	}
	if p.getenv("TERM") == "dumb" {
		return ModeNonInteractive
	}
	if !p.isTerminal(p.stdin) || !p.isTerminal(p.stdout) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
