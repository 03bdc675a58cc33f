// Package cli provides the Cobra command structure for glyphedit.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/glyphedit/internal/config"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// session is the state shared by subcommands once the root command has
// loaded the configuration.
type session struct {
	cfg      *config.Config
	registry *lang.Registry
	logger   *log.Logger
	color    string
}

// NewRootCommand creates the root glyphedit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "glyphedit",
		Short: "Headless host for the glyphedit text editing core",
		Long: `glyphedit drives the embeddable editing core from the command line.

It colorizes source files with the built-in language definitions (or your
own YAML, TOML and Lua ones), replays YAML edit scripts against a real
editor instance, and prints the effective configuration.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if configPath != "" {
				s.cfg, err = config.Load(configPath)
			} else {
				s.cfg, err = config.LoadDefault()
			}
			if err != nil {
				return err
			}
			if debug {
				s.cfg.Log.Level = "debug"
			}

			s.logger = s.cfg.Log.Logger(cmd.ErrOrStderr())
			logging.SetDefault(s.logger)

			s.registry = lang.Builtin()
			// Failures are logged per file; the presets stay usable.
			_ = s.cfg.LoadLanguages(s.registry, s.logger)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&s.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newColorizeCommand(s))
	rootCmd.AddCommand(newLangsCommand(s))
	rootCmd.AddCommand(newReplayCommand(s))
	rootCmd.AddCommand(newConfigCommand(s))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
