package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" ██", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// bigClock renders text in block glyphs. It falls back to the plain text when
// the result would be wider than maxWidth or a rune has no glyph.
func bigClock(text string, maxWidth int) string {
	var rows [glyphHeight][]string
	for _, r := range text {
		g, ok := glyphs[r]
		if !ok {
			return text
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	lines := make([]string, glyphHeight)
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}
	if maxWidth > 0 && ansi.StringWidth(lines[0]) > maxWidth {
		return text
	}
	return strings.Join(lines, "\n")
}
