package buffer

import (
	"strings"
	"unicode/utf8"
)

// Indent is the fixed indentation inserted by IndentForward and removed by
// IndentBackward.
const Indent = "  "

// OpKind identifies a content mutation.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpPasteReplace
	OpDeleteBackward
	OpDeleteForward
	OpIndentForward
	OpIndentBackward
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpPasteReplace:
		return "paste"
	case OpDeleteBackward:
		return "delete-backward"
	case OpDeleteForward:
		return "delete-forward"
	case OpIndentForward:
		return "indent"
	case OpIndentBackward:
		return "outdent"
	default:
		return "unknown"
	}
}

// Op is one content mutation.
//
// Selection is the span selected when the operation was issued. For insert,
// paste and delete operations a non-empty Selection is replaced; indent
// operations ignore it.
type Op struct {
	Kind      OpKind
	Text      string
	Selection Span
}

func Insert(s string) Op { return Op{Kind: OpInsert, Text: s} }

func PasteReplace(s string, sel Span) Op {
	return Op{Kind: OpPasteReplace, Text: s, Selection: sel}
}

func DeleteBackward() Op { return Op{Kind: OpDeleteBackward} }

func DeleteForward() Op { return Op{Kind: OpDeleteForward} }

func IndentForward() Op { return Op{Kind: OpIndentForward} }

func IndentBackward() Op { return Op{Kind: OpIndentBackward} }

// Apply computes the text and caret that result from applying op to oldText
// with the caret at the given linear offset. The caret is clamped into the
// text first. Operations that cannot apply (deleting before the start,
// outdenting a line without indentation) return oldText and the clamped caret
// unchanged.
func Apply(oldText string, op Op, caret int) (newText string, newCaret int) {
	runes := []rune(oldText)
	caret = clampInt(caret, 0, len(runes))
	sel := op.Selection.Clamp(len(runes))

	switch op.Kind {
	case OpInsert:
		if !sel.IsEmpty() {
			return splice(runes, sel.Start, sel.End, op.Text)
		}
		if op.Text == "" {
			return oldText, caret
		}
		return splice(runes, caret, caret, op.Text)

	case OpPasteReplace:
		if !sel.IsEmpty() {
			return splice(runes, sel.Start, sel.End, NormalizeNewlines(op.Text))
		}
		if op.Text == "" {
			return oldText, caret
		}
		return splice(runes, caret, caret, NormalizeNewlines(op.Text))

	case OpDeleteBackward:
		if !sel.IsEmpty() {
			return splice(runes, sel.Start, sel.End, "")
		}
		if caret == 0 {
			return oldText, caret
		}
		return splice(runes, caret-1, caret, "")

	case OpDeleteForward:
		if !sel.IsEmpty() {
			return splice(runes, sel.Start, sel.End, "")
		}
		if caret == len(runes) {
			return oldText, caret
		}
		text, _ := splice(runes, caret, caret+1, "")
		return text, caret

	case OpIndentForward:
		return splice(runes, caret, caret, Indent)

	case OpIndentBackward:
		start := LineStart(runes, caret)
		if !hasRunePrefix(runes[start:], Indent) {
			return oldText, caret
		}
		n := utf8.RuneCountInString(Indent)
		text, _ := splice(runes, start, start+n, "")
		next := caret - n
		if next < start {
			next = start
		}
		return text, next
	}

	return oldText, caret
}

// NormalizeNewlines converts "\r\n" and lone "\r" line endings to "\n".
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// LineStart returns the offset just after the nearest '\n' before caret, or 0.
func LineStart(runes []rune, caret int) int {
	caret = clampInt(caret, 0, len(runes))
	for i := caret - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func splice(runes []rune, start, end int, ins string) (string, int) {
	insRunes := []rune(ins)
	out := make([]rune, 0, len(runes)-(end-start)+len(insRunes))
	out = append(out, runes[:start]...)
	out = append(out, insRunes...)
	out = append(out, runes[end:]...)
	return string(out), start + len(insRunes)
}

func hasRunePrefix(runes []rune, prefix string) bool {
	i := 0
	for _, r := range prefix {
		if i >= len(runes) || runes[i] != r {
			return false
		}
		i++
	}
	return true
}
