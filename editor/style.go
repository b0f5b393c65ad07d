package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor chrome. Token colors come from the theme.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	Toolbar    lipgloss.Style
	Language   lipgloss.Style
	CopyButton lipgloss.Style
	Copied     lipgloss.Style

	Menu         lipgloss.Style
	MenuSearch   lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	Handle lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),

		Toolbar:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Language:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		CopyButton: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Copied:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),

		Menu:         lipgloss.NewStyle(),
		MenuSearch:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItem:     lipgloss.NewStyle(),
		MenuSelected: lipgloss.NewStyle().Reverse(true),

		Handle: gutter,
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
