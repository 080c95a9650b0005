package tostr

import "github.com/mattn/go-runewidth"

// truncate shortens s to at most width terminal columns. Widths of three or
// less have no room for the ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
