package cli

import (
	"github.com/spf13/cobra"
)

func newConfigCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and
GLYPHEDIT_* environment variables have been merged, in the same TOML
format the config file uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.cfg.Encode(cmd.OutOrStdout())
		},
	}
}
