package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/glyphedit/internal/engine"
	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

type colorizeFlags struct {
	language    string
	palette     string
	lineNumbers bool
	tokens      bool
}

// extensions maps file extensions to preset names.
var extensions = map[string]string{
	".json": "JSON",
	".as":   "AngelScript",
	".c":    "C",
	".h":    "C",
	".cc":   "C++",
	".cpp":  "C++",
	".cxx":  "C++",
	".hpp":  "C++",
	".hh":   "C++",
	".glsl": "GLSL",
	".vert": "GLSL",
	".frag": "GLSL",
	".hlsl": "HLSL",
	".fx":   "HLSL",
	".lua":  "Lua",
	".sql":  "SQL",
}

func newColorizeCommand(s *session) *cobra.Command {
	flags := &colorizeFlags{}

	cmd := &cobra.Command{
		Use:   "colorize [file]",
		Short: "Print a file with syntax colours",
		Long: `Load a file (or stdin when no file or "-" is given) into an editor,
run the colorizer to completion and print every line styled with the
active palette.

The language is taken from --lang, then the file extension, then the
editor.language setting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			text, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			def, err := s.detectLanguage(flags.language, path)
			if err != nil {
				return err
			}
			palette := s.cfg.PaletteColors()
			if flags.palette != "" {
				p, ok := lang.PaletteByName(flags.palette)
				if !ok {
					return fmt.Errorf("unknown palette %q", flags.palette)
				}
				palette = p
			}

			opts, err := s.cfg.EngineOptions(s.registry, s.logger)
			if err != nil {
				return err
			}
			e := engine.New(append(opts, engine.WithLanguage(def), engine.WithContent(text))...)
			e.Flush()
			s.logger.Debug("colorized", logging.FieldLanguage, def.Name, logging.FieldLines, e.LineCount())

			out := cmd.OutOrStdout()
			if flags.tokens {
				return writeTokens(out, e)
			}
			styles := newPaletteStyles(palette, IsColorEnabled(s.color, out))
			return writeColorized(out, e, styles, flags.lineNumbers)
		},
	}

	cmd.Flags().StringVarP(&flags.language, "lang", "l", "", "language definition to use")
	cmd.Flags().StringVar(&flags.palette, "palette", "", "palette: dark, light or retro")
	cmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", false, "prefix lines with their number")
	cmd.Flags().BoolVar(&flags.tokens, "tokens", false, "list tokens and their classes instead")

	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func (s *session) detectLanguage(name, path string) (*lang.Definition, error) {
	if name == "" {
		name = extensions[strings.ToLower(filepath.Ext(path))]
	}
	if name == "" {
		name = s.cfg.Editor.Language
	}
	return s.registry.Lookup(name)
}

// printedLines is the number of lines to print: a trailing empty line is
// only the newline ending the one before it.
func printedLines(e *engine.Editor) int {
	n := e.LineCount()
	if n > 1 && len(e.Glyphs(n-1)) == 0 {
		n--
	}
	return n
}

// writeColorized prints every line as runs of glyphs sharing a class.
func writeColorized(w io.Writer, e *engine.Editor, styles *paletteStyles, lineNumbers bool) error {
	n := printedLines(e)
	width := len(fmt.Sprint(n))
	var sb strings.Builder
	for i := range n {
		sb.Reset()
		if lineNumbers {
			sb.WriteString(styles.render(lang.LineNumber, fmt.Sprintf("%*d ", width, i+1)))
		}
		glyphs := e.Glyphs(i)
		for start := 0; start < len(glyphs); {
			class := glyphs[start].EffectiveClass()
			end := start + 1
			for end < len(glyphs) && glyphs[end].EffectiveClass() == class {
				end++
			}
			sb.WriteString(styles.render(class, glyphText(glyphs[start:end])))
			start = end
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// writeTokens prints one token per row: position, class and text.
func writeTokens(w io.Writer, e *engine.Editor) error {
	for i := range printedLines(e) {
		glyphs := e.Glyphs(i)
		for start := 0; start < len(glyphs); {
			class := glyphs[start].EffectiveClass()
			end := start + 1
			for end < len(glyphs) && glyphs[end].EffectiveClass() == class {
				end++
			}
			if class != lang.Default && class != lang.Space {
				_, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", i+1, start+1, class, glyphText(glyphs[start:end]))
				if err != nil {
					return err
				}
			}
			start = end
		}
	}
	return nil
}

func glyphText(glyphs []document.Glyph) string {
	var buf []byte
	for _, g := range glyphs {
		buf = g.Char.AppendTo(buf)
	}
	return string(buf)
}
