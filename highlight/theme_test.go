package highlight

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme_ColorsKeywords(t *testing.T) {
	th := NewTheme("")
	if th.Name != DefaultStyle {
		t.Fatalf("Name=%q, want %q", th.Name, DefaultStyle)
	}
	kw := chroma.StandardTypes[chroma.Keyword]
	st, ok := th.Style(kw)
	if !ok {
		t.Fatalf("Style(%q) missing", kw)
	}
	if _, none := st.GetForeground().(lipgloss.NoColor); none {
		t.Fatalf("keyword style has no foreground")
	}
}

func TestTheme_StyleForFallsBackToBase(t *testing.T) {
	th := NewTheme("monokai")
	got := th.StyleFor("not-a-class")
	if got.GetForeground() != th.Base.GetForeground() {
		t.Fatalf("StyleFor(unknown) did not fall back to Base")
	}
}
