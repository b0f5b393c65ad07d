package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeplus/internal/logging"
	"github.com/iw2rmb/codeplus/langdetect"
)

func newDetectCommand(flags *globalFlags) *cobra.Command {
	var menuOnly bool

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Guess the language of source text",
		Long: `Guess the language of a file, or of stdin when no file is given.
With --menu, print the matching language menu label instead, or nothing
when the guess is not on the menu.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			lang := langdetect.Detect(string(data))
			logging.FromContext(cmd.Context()).Debug("detected", logging.FieldLanguage, lang, logging.FieldLength, len(data))
			if menuOnly {
				lang = langdetect.Suggest(string(data), flags.config().Menu())
				if lang == "" {
					return nil
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), lang)
			return err
		},
	}

	cmd.Flags().BoolVar(&menuOnly, "menu", false, "print the matching language menu label")

	return cmd
}
