package editor

import (
	"fmt"
	"strconv"
)

// gutterDigits returns the digit count of the largest line number.
func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// gutterWidth is the width of the line number column plus its separator,
// or 0 when line numbers are off.
func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(len(m.layout.lines)) + 1
}

func (m *Model) renderGutter(row, digits int, active bool) string {
	numStyle := m.cfg.Style.LineNum
	if m.focused && active {
		numStyle = m.cfg.Style.LineNumActive
	}
	return numStyle.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
