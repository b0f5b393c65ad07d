// Package cli provides the Cobra command structure for codeplus.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeplus/internal/config"
	"github.com/iw2rmb/codeplus/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string

	cfg *config.Config
}

// config returns the configuration loaded by the root pre-run hook, or
// the defaults when a command runs without it.
func (g *globalFlags) config() *config.Config {
	if g.cfg == nil {
		return config.Default()
	}
	return g.cfg
}

// NewRootCommand creates the root codeplus command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "codeplus",
		Short: "Caret-stable syntax highlighted code blocks",
		Long: `codeplus edits and renders code blocks: a plain text source with a
language, highlighted on every keystroke without losing the caret.

Blocks are stored as JSON records of the form
{"code": "...", "language": "...", "lineNumber": 0}.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			res, err := config.Load(config.LoadOptions{ExplicitPath: flags.configPath})
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags.cfg = res.Config

			logging.SetLevel(res.Config.LogLevel)
			if flags.debug {
				logging.SetLevel("debug")
			}
			ctx := logging.WithLogger(cmd.Context(), logging.Default())
			ctx = logging.With(ctx, logging.FieldCommand, cmd.Name())
			cmd.SetContext(ctx)

			if res.LoadedFrom != "" {
				logging.FromContext(ctx).Debug("config loaded", logging.FieldPath, res.LoadedFrom)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")

	// Add subcommands.
	rootCmd.AddCommand(newEditCommand(flags))
	rootCmd.AddCommand(newRenderCommand(flags))
	rootCmd.AddCommand(newLanguagesCommand(flags))
	rootCmd.AddCommand(newDetectCommand(flags))
	rootCmd.AddCommand(newConfigCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
