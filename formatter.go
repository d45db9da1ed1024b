package dispatch

import (
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Formatter renders text with named styles. Styles degrade to plain text when the output is not a
// terminal or colour is disabled.
type Formatter struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// NewFormatter returns a formatter for output written to w. If noColor is true every style renders
// as plain text.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	f := &Formatter{
		renderer: r,
		styles: map[string]lipgloss.Style{
			"bold":         r.NewStyle().Bold(true),
			"dim":          r.NewStyle().Faint(true),
			"underline":    r.NewStyle().Underline(true),
			"heading":      r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			"red":          r.NewStyle().Foreground(lipgloss.Color("1")),
			"green":        r.NewStyle().Foreground(lipgloss.Color("2")),
			"yellow":       r.NewStyle().Foreground(lipgloss.Color("3")),
			"strong_red":   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			"strong_green": r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
			"strong_white": r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		},
	}
	return f
}

// Format renders text with the named style. Unknown styles return text unchanged.
func (f *Formatter) Format(text, style string) string {
	s, ok := f.styles[style]
	if !ok {
		return text
	}
	return s.Render(text)
}

// SetStyle adds or replaces a named style.
func (f *Formatter) SetStyle(name string, style lipgloss.Style) {
	f.styles[name] = style
}

// Renderer returns the underlying renderer, for building styles that match the output.
func (f *Formatter) Renderer() *lipgloss.Renderer {
	return f.renderer
}

// Styles returns the names of the available styles, sorted.
func (f *Formatter) Styles() []string {
	return slices.Sorted(maps.Keys(f.styles))
}
