package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Title renders text bold, shading each grapheme from Accent to Highlight.
func Title(text string) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	for i, c := range shades(len(clusters)) {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c)).
			Render(clusters[i]))
	}
	return b.String()
}

// shades returns n hex colors blended in HCL space from Accent to Highlight.
// A single shade is Accent itself.
func shades(n int) []string {
	from, _ := colorful.Hex(string(T().Accent))
	to, _ := colorful.Hex(string(T().Highlight))

	out := make([]string, n)
	for i := range n {
		step := 0.0
		if n > 1 {
			step = float64(i) / float64(n-1)
		}
		out[i] = from.BlendHcl(to, step).Clamped().Hex()
	}
	return out
}
