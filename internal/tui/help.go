package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

func helpMarkdown(title string, k keyMap) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, b := range k.bindings() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		fmt.Fprintf(&sb, "| `%s` | %s |\n", h.Key, h.Desc)
	}
	sb.WriteString("\nSlides are separated by a blank line. A slide that starts with `!` shows the image at the path that follows.\n")
	return sb.String()
}

// renderHelp renders the help screen for the given terminal width.
func renderHelp(title string, k keyMap, width int) (string, error) {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("creating help renderer: %w", err)
	}
	return r.Render(helpMarkdown(title, k))
}
