package tui

import (
	"fmt"
	"strings"
)

// Confirm asks a yes/no question on reader.
// Empty input picks defaultYes; read failures count as "no".
func Confirm(reader LineReader, message string, defaultYes bool) bool {
	choices := "[y/N]"
	if defaultYes {
		choices = "[Y/n]"
	}

	response, err := reader.ReadLine(fmt.Sprintf("%s %s: ", message, choices))
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}
