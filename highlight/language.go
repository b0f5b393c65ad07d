package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// PlainText is the language id meaning "no highlighting".
const PlainText = "plaintext"

var plainAliases = map[string]bool{
	"":           true,
	PlainText:    true,
	"plain":      true,
	"plain text": true,
	"text":       true,
	"txt":        true,
	"纯文本":        true,
}

// lexerAliases maps menu ids that Chroma does not register under the same name.
var lexerAliases = map[string]string{
	"git":   "diff",
	"shell": "bash",
}

var defaultLanguages = []string{
	"Plain Text",
	"CSS",
	"Python",
	"Git",
	"JavaScript",
	"Go",
	"C",
	"C++",
	"Rust",
	"Java",
}

// DefaultLanguages returns the language menu used when none is configured.
func DefaultLanguages() []string {
	return append([]string(nil), defaultLanguages...)
}

// Normalize returns the lookup id for a language label: trimmed, lower-cased,
// and PlainText for every plain-text alias.
func Normalize(language string) string {
	id := strings.ToLower(strings.TrimSpace(language))
	if plainAliases[id] {
		return PlainText
	}
	return id
}

// IsPlain reports whether language means "no highlighting".
func IsPlain(language string) bool {
	return Normalize(language) == PlainText
}

// Supported reports whether a grammar is registered for language. Plain text
// is always supported.
func Supported(language string) bool {
	id := Normalize(language)
	if id == PlainText {
		return true
	}
	return lexerFor(id) != nil
}

// Canonical returns the Chroma lexer id a language label resolves to, e.g.
// "Git" resolves to "diff".
func Canonical(language string) string {
	id := Normalize(language)
	if alias, ok := lexerAliases[id]; ok {
		return alias
	}
	return id
}

func lexerFor(id string) chroma.Lexer {
	return lexers.Get(Canonical(id))
}
