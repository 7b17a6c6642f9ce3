// Package format reshapes raw agent replies into the light display format the
// web client renders.
package format

import "strings"

// Header separators never grow past 8 characters regardless of depth.
const maxHeaderSep = 8

// Reply rewrites markdown-like agent output for display: the first **...**
// pair becomes <strong> tags (later pairs are intentionally left untouched —
// downstream rendering depends on this), dash and bullet markers become
// uniform bullets, and # headers become =-decorated title lines.
func Reply(text string) string {
	text = strings.Replace(text, "**", "<strong>", 1)
	text = strings.Replace(text, "**", "</strong>", 1)

	lines := strings.Split(text, "\n")
	formatted := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- "):
			formatted = append(formatted, "• "+strings.TrimPrefix(line, "- "))
		case strings.HasPrefix(line, "• "):
			formatted = append(formatted, "• "+strings.TrimPrefix(line, "• "))
		case strings.HasPrefix(line, "#"):
			formatted = append(formatted, headerLine(line))
		default:
			formatted = append(formatted, line)
		}
	}

	return strings.Join(formatted, "\n")
}

// headerLine turns "## Some title" into "\n==== Some title ====\n" so the
// title ends up surrounded by blank lines once the output is rejoined.
func headerLine(line string) string {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	text := strings.TrimSpace(strings.TrimLeft(line, "# "))

	width := level * 2
	if width > maxHeaderSep {
		width = maxHeaderSep
	}
	sep := strings.Repeat("=", width)

	return "\n" + sep + " " + text + " " + sep + "\n"
}
