package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/codeplus/internal/grapheme"
)

// graphemeCell is one drawn grapheme cluster of a line.
type graphemeCell struct {
	Text   string // as drawn; tabs are expanded to spaces
	Offset int    // rune offset of the cluster in the block text
	Runes  int
	Width  int
	Run    int // index of the text node the cluster came from
}

// splitCells breaks text into drawn cells starting at visual column col and
// rune offset off. Newlines are not expected in text.
func splitCells(text string, off, col, tabWidth, run int) []graphemeCell {
	clusters := graphemeutil.Split(text)
	out := make([]graphemeCell, 0, len(clusters))
	for _, c := range clusters {
		w := graphemeCellWidth(c, col, tabWidth)
		drawn := c
		if c == "\t" {
			drawn = strings.Repeat(" ", w)
		}
		n := utf8.RuneCountInString(c)
		out = append(out, graphemeCell{Text: drawn, Offset: off, Runes: n, Width: w, Run: run})
		off += n
		col += w
	}
	return out
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	mod := visualCol % tabWidth
	adv := tabWidth - mod
	if adv < 1 {
		return 1
	}
	return adv
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
