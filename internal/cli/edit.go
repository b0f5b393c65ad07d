package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/editor"
	"github.com/iw2rmb/codeplus/internal/config"
	"github.com/iw2rmb/codeplus/internal/logging"
)

// editOptions are the flags of the edit command.
type editOptions struct {
	language string
	readOnly bool
	lineNums bool
	logFile  string
}

func newEditCommand(flags *globalFlags) *cobra.Command {
	opts := editOptions{}

	cmd := &cobra.Command{
		Use:   "edit [record.json]",
		Short: "Edit a code block record in the terminal",
		Long: `Open a code block record in an interactive editor. A missing file
starts a new record; without a file the result is printed to stdout on quit.

Keys: ctrl+s saves, ctrl+q saves and quits, ctrl+l opens the language menu,
alt+c copies the block, ctrl+t toggles the expanded height.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("edit needs an interactive terminal")
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			cfg := flags.config()

			existing, data, err := loadRecord(path, cfg)
			if err != nil {
				return err
			}
			if opts.language != "" {
				data.Language = opts.language
			}

			logger, closeLog, err := editLogger(opts.logFile, flags.debug)
			if err != nil {
				return err
			}
			defer closeLog()
			logging.FromContext(cmd.Context()).Debug("editing record",
				logging.FieldPath, path, logging.FieldLanguage, data.Language, "log_file", opts.logFile)

			app := newEditApp(editorConfig(cfg, data, opts, logger), recordSink{path: path, existing: existing})
			final, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			done, ok := final.(editApp)
			if !ok {
				return nil
			}
			if done.err != nil {
				return done.err
			}
			if path == "" {
				out, err := done.editor.Data().MarshalJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "override the record language")
	cmd.Flags().BoolVar(&opts.readOnly, "read-only", false, "open the block read-only")
	cmd.Flags().BoolVarP(&opts.lineNums, "line-numbers", "n", true, "show the line number gutter")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while editing")

	return cmd
}

// loadRecord reads the record at path. A missing file, or no path at all,
// yields a new record in the configured default language.
func loadRecord(path string, cfg *config.Config) ([]byte, codeblock.Data, error) {
	fresh := codeblock.Data{Language: cfg.DefaultLanguage}
	if path == "" {
		return nil, fresh, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fresh, nil
	}
	if err != nil {
		return nil, codeblock.Data{}, fmt.Errorf("read %s: %w", path, err)
	}
	data, err := codeblock.ParseData(raw)
	if err != nil {
		return nil, codeblock.Data{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, data, nil
}

// editLogger returns the logger for an interactive session. The terminal
// belongs to the editor, so logs only go to a file.
func editLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := "info"
	if debug {
		level = "debug"
	}
	return logging.NewWithWriter(f, level), func() { _ = f.Close() }, nil
}

func editorConfig(cfg *config.Config, data codeblock.Data, opts editOptions, logger *log.Logger) editor.Config {
	ec := editor.Config{
		Data:         data,
		Languages:    cfg.Menu(),
		Theme:        cfg.Theme,
		Placeholder:  cfg.Placeholder,
		Localizer:    cfg.Localizer(),
		ReadOnly:     cfg.ReadOnly || opts.readOnly,
		Features:     cfg.BlockFeatures(),
		MinHeight:    cfg.Resize.MinHeight,
		ShowLineNums: opts.lineNums,
		Style:        editor.DefaultStyle(),
		Logger:       logger,
	}
	clip := editor.SystemClipboard{}
	if !clip.Unsupported() {
		ec.Clipboard = clip
	}
	return ec
}

// recordSink writes saved records back to disk.
type recordSink struct {
	path     string
	existing []byte
}

// save merges d into the record file, keeping unknown fields.
// A sink without a path does nothing.
func (s *recordSink) save(d codeblock.Data) error {
	if s.path == "" {
		return nil
	}
	out, err := d.MergeInto(s.existing)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.existing = out
	return nil
}

type appKeyMap struct {
	Save key.Binding
	Quit key.Binding
	Help key.Binding

	editor editor.KeyMap
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Save, k.Quit, k.Help}, k.editor.ShortHelp()...)
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Save, k.Quit, k.Help}}, k.editor.FullHelp()...)
}

// editApp hosts the editor with save and quit keys and a help footer.
type editApp struct {
	editor editor.Model
	help   help.Model
	keys   appKeyMap
	sink   *recordSink
	notice string
	err    error

	width, height int
}

func newEditApp(cfg editor.Config, sink recordSink) editApp {
	km := cfg.KeyMap
	if len(km.Left.Keys()) == 0 {
		km = editor.DefaultKeyMap()
		cfg.KeyMap = km
	}
	return editApp{
		editor: editor.New(cfg),
		help:   help.New(),
		keys: appKeyMap{
			Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
			Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
			Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
			editor: km,
		},
		sink: &sink,
	}
}

func (a editApp) Init() tea.Cmd { return a.editor.Init() }

func (a editApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.resize()
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Save):
			a.save()
			a.resize()
			return a, nil
		case key.Matches(msg, a.keys.Quit):
			a.save()
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.resize()
			return a, nil
		}
		if a.notice != "" {
			a.notice = ""
			a.resize()
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *editApp) save() {
	if err := a.sink.save(a.editor.Data()); err != nil {
		a.err = err
		a.notice = err.Error()
		return
	}
	a.err = nil
	if a.sink.path != "" {
		a.notice = "saved " + a.sink.path
	}
}

// resize gives the editor every row the footer does not use.
func (a *editApp) resize() {
	if a.height == 0 {
		return
	}
	a.editor = a.editor.SetSize(a.width, max(a.height-a.footerHeight(), 1))
}

func (a editApp) footerHeight() int {
	return lipgloss.Height(a.footer())
}

func (a editApp) footer() string {
	h := a.help.View(a.keys)
	if a.notice == "" {
		return h
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.notice, h)
}

func (a editApp) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), a.footer())
}
