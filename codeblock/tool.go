package codeblock

// DefaultPlaceholder is the localization key shown in an empty block.
const DefaultPlaceholder = "Enter a code"

// PasteUnsupportedMessage is shown when the clipboard cannot be read.
const PasteUnsupportedMessage = "Paste is not supported, please enter it manually!"

// Class names of the block's own elements.
const (
	ClassWrapper        = "code-plus"
	ClassInside         = "code-plus__inside"
	ClassOutside        = "code-plus__outside"
	ClassLanguage       = "code-plus-language"
	ClassLanguageItem   = "code-plus-language-item"
	ClassLanguageOption = "code-plus-language-option"
	ClassCopy           = "code-plus-copy"
	ClassDrag           = "code-plus-drag"
)

// Localizer translates user-facing strings.
type Localizer interface {
	T(key string) string
}

// LocalizerFunc adapts a function to Localizer.
type LocalizerFunc func(key string) string

func (f LocalizerFunc) T(key string) string { return f(key) }

type identityLocalizer struct{}

func (identityLocalizer) T(key string) string { return key }

// Styles are the class names the host shares with its blocks.
type Styles struct {
	Block string
	Input string
}

// Classes lists the class names of a block.
type Classes struct {
	Wrapper []string
	Inside  []string
	Outside string
}

// ClassesFor combines the host styles with the block's own classes.
func ClassesFor(s Styles) Classes {
	return Classes{
		Wrapper: nonEmpty(s.Block, ClassWrapper),
		Inside:  nonEmpty(ClassInside, s.Input),
		Outside: ClassOutside,
	}
}

// Host is what a block needs from its host editor.
type Host struct {
	Localizer Localizer
	Styles    Styles
	ReadOnly  bool
}

// PasteConfig lists the tags the host routes to OnPaste.
type PasteConfig struct {
	Tags []string
}

// Toolbox is the block's entry in the host's insert menu.
type Toolbox struct {
	Title string
	Icon  string
}

// ToolInfo is the static descriptor a host reads before creating blocks.
type ToolInfo struct {
	IsReadOnlySupported bool
	EnableLineBreaks    bool
	PasteConfig         PasteConfig
	Sanitize            map[string]bool
	Toolbox             Toolbox
}

const bracketsIcon = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" fill="none" viewBox="0 0 24 24">` +
	`<path stroke="currentColor" stroke-linecap="round" stroke-linejoin="round" stroke-width="2" ` +
	`d="M9 8L5 12L9 16M15 8L19 12L15 16"/></svg>`

// Tool returns the descriptor of the code block tool.
func Tool() ToolInfo {
	return ToolInfo{
		IsReadOnlySupported: true,
		EnableLineBreaks:    true,
		PasteConfig:         PasteConfig{Tags: []string{"pre"}},
		Sanitize:            map[string]bool{"code": true},
		Toolbox:             Toolbox{Title: "Code", Icon: bracketsIcon},
	}
}

func nonEmpty(ss ...string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
