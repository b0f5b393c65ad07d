package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeplus/codeblock"
	"github.com/iw2rmb/codeplus/highlight"
)

// languageEntry is one menu entry in JSON output.
type languageEntry struct {
	Label     string `json:"label"`
	Lexer     string `json:"lexer"`
	Supported bool   `json:"supported"`
}

func newLanguagesCommand(flags *globalFlags) *cobra.Command {
	var (
		filter string
		format string
	)

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the language menu",
		Long: `List the configured language menu. --filter applies the same
case-insensitive substring match as the menu's search field.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			labels := codeblock.FilterLanguages(flags.config().Menu(), filter)
			out := cmd.OutOrStdout()

			switch format {
			case "json":
				entries := make([]languageEntry, 0, len(labels))
				for _, label := range labels {
					entries = append(entries, languageEntry{
						Label:     label,
						Lexer:     highlight.Canonical(label),
						Supported: highlight.Supported(label),
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "text", "":
				for _, label := range labels {
					if _, err := fmt.Fprintln(out, label); err != nil {
						return fmt.Errorf("write output: %w", err)
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q: want text or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only list labels containing this text")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	return cmd
}
