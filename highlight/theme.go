package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultStyle is the Chroma style used when none is configured.
const DefaultStyle = "monokai"

// Theme maps the class names emitted by Render to terminal styles.
type Theme struct {
	Name    string
	Base    lipgloss.Style
	classes map[string]lipgloss.Style
}

// NewTheme builds a Theme from a registered Chroma style. Unknown names
// resolve to Chroma's fallback style.
func NewTheme(name string) Theme {
	if name == "" {
		name = DefaultStyle
	}
	style := styles.Get(name)

	t := Theme{
		Name:    style.Name,
		Base:    entryStyle(style.Get(chroma.Background)),
		classes: make(map[string]lipgloss.Style, len(chroma.StandardTypes)),
	}
	for tt, class := range chroma.StandardTypes {
		if class == "" || tt == chroma.Background || tt == chroma.PreWrapper {
			continue
		}
		entry := style.Get(tt)
		if entry.IsZero() {
			continue
		}
		t.classes[class] = entryStyle(entry).Inherit(t.Base)
	}
	return t
}

// Style returns the style for a token class, and false for classes the
// theme does not color.
func (t Theme) Style(class string) (lipgloss.Style, bool) {
	st, ok := t.classes[class]
	return st, ok
}

// StyleFor returns the style of the first known class in classes, falling
// back to Base.
func (t Theme) StyleFor(classes ...string) lipgloss.Style {
	for _, c := range classes {
		if st, ok := t.classes[c]; ok {
			return st
		}
	}
	return t.Base
}

func entryStyle(e chroma.StyleEntry) lipgloss.Style {
	st := lipgloss.NewStyle()
	if e.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Background.IsSet() {
		st = st.Background(lipgloss.Color(e.Background.String()))
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
