// Package popup draws centered boxes and lays them over the screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/songbook/internal/ui/render"
	"github.com/llehouerou/songbook/internal/ui/styles"
)

// Dialog is a box with a centered title, left-aligned content and a
// centered footer, sized to fit its content.
type Dialog struct {
	Title   string
	Content string
	Footer  string
}

// Render draws the dialog centered in a screenW x screenH area. Content
// wider than the screen is truncated.
func (d Dialog) Render(screenW, screenH int) string {
	t := styles.T().S()
	widest := max(widestLine(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	inner := max(min(widest, screenW-4), 1) // border + padding

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, t.Heading.Render(d.Title)), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.Truncate(line, inner))
	}
	if d.Footer != "" {
		footer := t.Hint.Render(render.Truncate(d.Footer, inner))
		lines = append(lines, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, footer))
	}

	box := boxStyle().
		Padding(0, 1).
		Width(inner + 2). // lipgloss width includes padding
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// Bordered wraps content in a padded box at least minWidth columns wide and
// centers it. The box never exceeds the screen width less a margin.
func Bordered(content string, minWidth, screenW, screenH int) string {
	width := boxWidth(content, minWidth, screenW)
	box := boxStyle().
		Padding(1, 2).
		Width(width - 2). // border
		Render(content)
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

func boxWidth(content string, minWidth, screenW int) int {
	w := max(widestLine(content)+6, minWidth) // padding + border
	return max(min(w, screenW-4), 6)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func widestLine(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Compose lays overlay over base. On each overlay line, the span from the
// first to the last non-space column replaces the same columns of base;
// blank overlay lines leave base untouched. Both may carry ANSI styling.
func Compose(base, overlay string, width int) string {
	lines := strings.Split(base, "\n")

	for i, over := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		plain := ansi.Strip(over)
		from := len(plain) - len(strings.TrimLeft(plain, " "))
		to := ansi.StringWidth(strings.TrimRight(plain, " "))
		if to <= from {
			continue
		}
		lines[i] = splice(lines[i], ansi.Cut(over, from, to), from, to, width)
	}

	return strings.Join(lines, "\n")
}

// splice replaces columns [from, to) of line with patch. line is padded to
// width first so the result is always width columns.
func splice(line, patch string, from, to, width int) string {
	line = padTo(line, width)
	head := padTo(ansi.Cut(line, 0, from), from)
	if to >= width {
		return head + patch
	}
	tail := ansi.Truncate(padTo(ansi.Cut(line, to, width), width-to), width-to, "")
	return head + patch + tail
}

func padTo(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
