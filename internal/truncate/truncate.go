// Package truncate fits arbitrary clipboard text into the fixed character grid
// of the HUD. Widths are counted in runes, never bytes, so multi-byte text is
// cut at the same character boundary as ASCII.
package truncate

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended wherever content is cut.
const Ellipsis = "..."

var ellipsisWidth = utf8.RuneCountInString(Ellipsis)

// Policy is the (width, lines) pair applied to clipboard text before display.
type Policy struct {
	MaxWidth int // runes per line
	MaxLines int // must be >= 1
}

// DefaultPolicy is 100 characters by 5 lines.
var DefaultPolicy = Policy{MaxWidth: 100, MaxLines: 5}

// Apply truncates text according to p.
func (p Policy) Apply(text string) string {
	return Text(text, p.MaxWidth, p.MaxLines)
}

// Text splits text on '\n', cuts every line to maxWidth runes and keeps at
// most maxLines lines. When lines are dropped the last kept line ends in an
// ellipsis. Empty and leading/trailing lines are preserved.
func Text(text string, maxWidth, maxLines int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Line(line, maxWidth)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		if maxLines > 0 {
			last := maxLines - 1
			lines[last] = appendEllipsis(lines[last], maxWidth)
		}
	}

	return strings.Join(lines, "\n")
}

// Line cuts a single line to maxWidth runes, replacing the tail with an
// ellipsis. Lines that already fit are returned unchanged.
func Line(line string, maxWidth int) string {
	if utf8.RuneCountInString(line) <= maxWidth {
		return line
	}
	return cut(line, maxWidth)
}

// appendEllipsis marks line as continued, re-cutting it if line plus the
// ellipsis would overflow maxWidth.
func appendEllipsis(line string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(line)+ellipsisWidth <= maxWidth {
		return line + Ellipsis
	}
	return cut(line, maxWidth)
}

// cut keeps the first maxWidth-3 runes of s and appends the ellipsis. Widths
// too small for any content yield a prefix of the ellipsis itself.
func cut(s string, maxWidth int) string {
	if maxWidth <= ellipsisWidth {
		return prefix(Ellipsis, maxWidth)
	}
	return prefix(s, maxWidth-ellipsisWidth) + Ellipsis
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
