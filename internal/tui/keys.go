package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vvka-141/fsnav/internal/tui/components"
)

// DefaultLineKeys returns the key bindings of the interactive line editor.
func DefaultLineKeys() components.LineInputKeys {
	return components.LineInputKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "discard line"),
		),
		EndOfInput: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "exit"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous command"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next command"),
		),
	}
}

// LineHelpText returns a one-line summary of the editor keys.
func LineHelpText() string {
	return "tab complete • ↑/↓ history • ctrl+c discard line • ctrl+d exit"
}
