package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/glyphedit/internal/script"
)

// ErrScriptsFailed is returned by replay when at least one script failed.
var ErrScriptsFailed = errors.New("scripts failed")

func newReplayCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script|dir>...",
		Short: "Replay YAML edit scripts",
		Long: `Replay edit scripts against fresh editor instances and check their
expectations. Directories are searched for *.yaml and *.yml files.

Editor settings from the configuration apply to every script; settings in
a script take precedence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := scriptPaths(args)
			if err != nil {
				return err
			}

			opts, err := s.cfg.EngineOptions(s.registry, s.logger)
			if err != nil {
				return err
			}
			runner := script.NewRunner(
				script.WithRegistry(s.registry),
				script.WithEngineOptions(opts...),
				script.WithLogger(s.logger),
			)

			out := cmd.OutOrStdout()
			styles := newStatusStyles(IsColorEnabled(s.color, out))
			failed := 0
			for _, path := range paths {
				steps, err := replayOne(cmd, runner, path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s\n     %s\n", styles.fail.Render("FAIL"), path, err)
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", styles.pass.Render("PASS"), path,
					styles.dim.Render(fmt.Sprintf("(%d steps)", steps)))
			}

			s.logger.Debug("replay finished", "scripts", len(paths), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrScriptsFailed, failed, len(paths))
			}
			return nil
		},
	}

	return cmd
}

func replayOne(cmd *cobra.Command, runner *script.Runner, path string) (int, error) {
	sc, err := script.Load(path)
	if err != nil {
		return 0, err
	}
	res, err := runner.Run(cmd.Context(), sc)
	if res != nil {
		return res.Steps, err
	}
	return 0, err
}

// scriptPaths expands directories into the script files they contain.
func scriptPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, err
			}
			paths = append(paths, matches...)
		}
	}
	if len(paths) == 0 {
		return nil, errors.New("no scripts found")
	}
	return paths, nil
}
