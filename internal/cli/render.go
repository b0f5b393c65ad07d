package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/iw2rmb/codeplus/buffer"
	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/editor"
	"github.com/iw2rmb/codeplus/highlight"
	"github.com/iw2rmb/codeplus/internal/config"
	"github.com/iw2rmb/codeplus/internal/logging"
	"github.com/iw2rmb/codeplus/langdetect"
)

// renderOptions are the flags of the render command.
type renderOptions struct {
	language  string
	format    string
	color     string
	record    bool
	lineNums  bool
	showEmpty bool
}

func newRenderCommand(flags *globalFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Highlight source text once",
		Long: `Highlight a file, or stdin when no file is given, and print the
result. Without --lang the language is detected from the content.

Formats:
  html  class-tagged span markup, the same tree the editor highlights
  ansi  terminal colors using the configured theme
  json  the persisted record {"code", "language", "lineNumber"}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			raw, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			data, err := opts.data(raw)
			if err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context())
			logger.Debug("render", logging.FieldLanguage, data.Language, logging.FieldLength, len(data.Code))
			return opts.write(cmd.OutOrStdout(), flags.config(), data, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "language label (default: detect)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "ansi", "output format: html, ansi, or json")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize ansi output: auto, always, or never")
	cmd.Flags().BoolVar(&opts.record, "record", false, "read the input as a JSON record instead of source text")
	cmd.Flags().BoolVarP(&opts.lineNums, "line-numbers", "n", false, "show a line number gutter in ansi output")
	cmd.Flags().BoolVar(&opts.showEmpty, "placeholder", false, "print the placeholder for empty input in ansi output")

	return cmd
}

// data builds the record to render from raw input.
func (o renderOptions) data(raw []byte) (codeblock.Data, error) {
	var d codeblock.Data
	if o.record {
		parsed, err := codeblock.ParseData(raw)
		if err != nil {
			return codeblock.Data{}, err
		}
		d = parsed
	} else {
		d.Code = buffer.NormalizeNewlines(string(raw))
		d.Language = langdetect.Detect(d.Code)
	}
	if o.language != "" {
		d.Language = o.language
	}
	return d, nil
}

func (o renderOptions) write(w io.Writer, cfg *config.Config, d codeblock.Data, logger *log.Logger) error {
	switch o.format {
	case "html":
		m := highlight.New(highlight.Options{Logger: logger, Style: cfg.Theme}).Render(d.Code, d.Language)
		src := m.Source
		if !m.Highlighted {
			src = html.EscapeString(src)
		}
		_, err := fmt.Fprintln(w, src)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "ansi", "":
		if err := setColorProfile(o.color); err != nil {
			return err
		}
		if d.Code == "" && !o.showEmpty {
			return nil
		}
		ed := editor.New(editor.Config{
			Data:         d,
			Languages:    cfg.Menu(),
			Theme:        cfg.Theme,
			Placeholder:  cfg.Placeholder,
			Localizer:    cfg.Localizer(),
			ReadOnly:     true,
			ShowLineNums: o.lineNums,
			Style:        editor.DefaultStyle(),
			Logger:       logger,
		}).Blur()
		_, err := fmt.Fprintln(w, ed.Content())
		return err
	default:
		return fmt.Errorf("unknown format %q: want html, ansi, or json", o.format)
	}
}

// setColorProfile applies --color to lipgloss.
func setColorProfile(mode string) error {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "auto", "":
		if !isTerminal(os.Stdout) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	default:
		return fmt.Errorf("unknown color mode %q: want auto, always, or never", mode)
	}
	return nil
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
