package tui

import (
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/charmbracelet/x/ansi"
)

func truncateLine(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// fitWidth truncates every line of a frame to the window width. Frames are
// left alone until the first resize or when the window is very narrow.
func fitWidth(frame string, width int) string {
	if width < config.MinRenderWidth {
		return frame
	}
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		lines[i] = truncateLine(line, width)
	}
	return strings.Join(lines, "\n")
}
