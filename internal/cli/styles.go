package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dshills/glyphedit/internal/engine/lang"
)

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// paletteStyles holds one lipgloss style per token class.
type paletteStyles struct {
	styles  [lang.PaletteMax]lipgloss.Style
	enabled bool
}

func newPaletteStyles(p *lang.Palette, colorEnabled bool) *paletteStyles {
	st := &paletteStyles{enabled: colorEnabled}
	for i := range st.styles {
		class := lang.PaletteIndex(i)
		style := lipgloss.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Foreground(lipgloss.Color(p.RGB(class)))
		switch class {
		case lang.Keyword, lang.Preprocessor:
			style = style.Bold(true)
		case lang.Comment, lang.MultiLineComment:
			style = style.Italic(true)
		}
		st.styles[i] = style
	}
	return st
}

// render styles text as class. Without colour the text is returned as is.
func (st *paletteStyles) render(class lang.PaletteIndex, text string) string {
	if !st.enabled || class >= lang.PaletteMax {
		return text
	}
	return st.styles[class].Render(text)
}

// statusStyles colours replay results.
type statusStyles struct {
	pass, fail, dim lipgloss.Style
}

func newStatusStyles(colorEnabled bool) statusStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return statusStyles{pass: plain, fail: plain, dim: plain}
	}
	return statusStyles{
		pass: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}
