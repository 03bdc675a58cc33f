package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/glyphedit/internal/engine/lang"
)

type langsFlags struct {
	classes bool
}

func newLangsCommand(s *session) *cobra.Command {
	flags := &langsFlags{}

	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List language definitions",
		Long: `List every registered language definition: the built-in presets
followed by the files named in languages.paths.

With --classes the token classes usable in definition files are listed
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if flags.classes {
				return writeClasses(out)
			}
			for _, name := range s.registry.Names() {
				def, err := s.registry.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%-12s %4d keywords  %s\n",
					def.Name, len(def.Keywords), commentSummary(def)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.classes, "classes", false, "list token classes")

	return cmd
}

func commentSummary(def *lang.Definition) string {
	var parts []string
	if def.LineComment != "" {
		parts = append(parts, def.LineComment)
	}
	if def.CommentStart != "" && def.CommentEnd != "" {
		parts = append(parts, def.CommentStart+" "+def.CommentEnd)
	}
	if len(parts) == 0 {
		return "no comments"
	}
	return "comments: " + strings.Join(parts, ", ")
}

// writeClasses prints the token classes, from Default up to Space, with a
// readable title next to the name definition files use.
func writeClasses(w io.Writer) error {
	title := cases.Title(language.English)
	for class := lang.Default; class <= lang.Space; class++ {
		readable := title.String(strings.ReplaceAll(class.String(), "_", " "))
		if _, err := fmt.Fprintf(w, "%-20s %s\n", class, readable); err != nil {
			return err
		}
	}
	return nil
}
