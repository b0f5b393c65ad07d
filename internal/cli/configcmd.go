package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codeplus/internal/config"
)

func newConfigCommand(flags *globalFlags) *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file and the
CODEPLUS_* environment variables, as YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if showEnv {
				vars := config.ListEnvVars()
				for _, name := range slices.Sorted(maps.Keys(vars)) {
					if _, err := fmt.Fprintf(out, "%-20s %s\n", name, vars[name]); err != nil {
						return fmt.Errorf("write output: %w", err)
					}
				}
				return nil
			}

			data, err := flags.config().ToYAML()
			if err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list the supported environment variables instead")

	return cmd
}
