package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/codeplus/internal/logging"
)

// Markup is the output of Render.
//
// When Highlighted is false, Source is the input text and must be inserted as
// text, never parsed. When Highlighted is true, Source is an HTML fragment of
// nested class-tagged spans.
type Markup struct {
	Source      string
	Highlighted bool
}

// Options configures a Renderer.
type Options struct {
	// Logger receives fallback warnings. Nil discards them.
	Logger *log.Logger

	// Style is the Chroma style used to decide which token classes get a
	// span. Empty means DefaultStyle.
	Style string
}

// Renderer highlights text. The zero value is not usable; call New.
type Renderer struct {
	logger    *log.Logger
	style     *chroma.Style
	formatter *html.Formatter
}

func New(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	name := opts.Style
	if name == "" {
		name = DefaultStyle
	}
	return &Renderer{
		logger: logger,
		style:  styles.Get(name),
		formatter: html.New(
			html.WithClasses(true),
			html.PreventSurroundingPre(true),
		),
	}
}

// Render highlights text as language. It never fails: unknown grammars and
// engine errors produce unhighlighted output and a logged warning.
func (r *Renderer) Render(text, language string) Markup {
	id := Normalize(language)
	if id == PlainText || text == "" {
		return Markup{Source: text}
	}

	lexer := lexerFor(id)
	if lexer == nil {
		r.logger.Warn("no grammar for language, rendering plain text", logging.FieldLanguage, language)
		return Markup{Source: text}
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		r.logger.Warn("tokenize failed, rendering plain text", logging.FieldLanguage, language, logging.FieldError, err)
		return Markup{Source: text}
	}
	tokens := clipTokens(it.Tokens(), len(text))

	var b strings.Builder
	if err := r.formatter.Format(&b, r.style, chroma.Literator(tokens...)); err != nil {
		r.logger.Warn("format failed, rendering plain text", logging.FieldLanguage, language, logging.FieldError, err)
		return Markup{Source: text}
	}
	return Markup{Source: b.String(), Highlighted: true}
}

// clipTokens trims the token stream to n bytes. Lexers configured with
// EnsureNL append a newline the input never had.
func clipTokens(tokens []chroma.Token, n int) []chroma.Token {
	out := make([]chroma.Token, 0, len(tokens))
	for _, tok := range tokens {
		if n <= 0 {
			break
		}
		if len(tok.Value) > n {
			v := tok.Value[:n]
			for len(v) > 0 && !utf8.ValidString(v) {
				v = v[:len(v)-1]
			}
			tok.Value = v
		}
		n -= len(tok.Value)
		if tok.Value != "" {
			out = append(out, tok)
		}
	}
	return out
}
