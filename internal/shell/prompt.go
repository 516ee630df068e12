package shell

import "github.com/vvka-141/fsnav/pkg/fsnav"

// RenderPrompt shows cwd followed by "> ". Paths longer than maxWidth
// characters are cut to an ellipsis and their last maxWidth-3 characters.
// maxWidth values below fsnav.MinPromptMaxWidth fall back to the default.
func RenderPrompt(cwd string, maxWidth int) string {
	if maxWidth < fsnav.MinPromptMaxWidth {
		maxWidth = fsnav.DefaultPromptMaxWidth
	}

	runes := []rune(cwd)
	if len(runes) <= maxWidth {
		return cwd + "> "
	}

	tail := maxWidth - len(fsnav.PromptEllipsis)
	return fsnav.PromptEllipsis + string(runes[len(runes)-tail:]) + "> "
}
