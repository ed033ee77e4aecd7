package frame

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songbook/internal/keymap"
	"github.com/llehouerou/songbook/internal/ui"
	"github.com/llehouerou/songbook/internal/ui/popup"
	"github.com/llehouerou/songbook/internal/ui/render"
	"github.com/llehouerou/songbook/internal/ui/songtable"
	"github.com/llehouerou/songbook/internal/ui/styles"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

// AppTitle is shown in the header.
const AppTitle = "songbook"

// Render draws the screen. It returns an empty string until a size is known.
func Render(s State) string {
	if s.Width <= 0 || s.Height <= 0 {
		return ""
	}

	lines := []string{
		header(s),
		searchBox(s.Search, s.Width),
	}

	footer := []string{
		render.Truncate(keymap.Hints(keymap.ContextBrowse, keymap.ActionMoveUp, keymap.ActionMoveDown), s.Width),
		statusLine(s),
	}
	if s.Debug != "" {
		footer = append(footer, styles.T().S().Debug.Render(render.Truncate(s.Debug, s.Width)))
	}

	tableHeight := max(s.Height-1-ui.SearchBoxHeight-len(footer), ui.MinTableHeight)
	lines = append(lines, songtable.View(s.Songs, s.Selected, s.Width, tableHeight))
	lines = append(lines, styles.T().S().Hint.Render(footer[0]))
	lines = append(lines, footer[1:]...)

	base := strings.Join(lines, "\n")

	switch s.Popup {
	case PopupForm:
		return popup.Compose(base, formPopup(s.Form, s.Width, s.Height), s.Width)
	case PopupDelete:
		return popup.Compose(base, deletePopup(s.DeleteTarget, s.Width, s.Height), s.Width)
	default:
		return base
	}
}

func header(s State) string {
	count := humanize.Comma(int64(len(s.Songs))) + " songs"
	return render.Row(styles.Title(AppTitle), styles.T().S().Label.Render(count), s.Width)
}

func searchBox(v textfield.View, width int) string {
	label := styles.T().FieldLabel(v.Editing).Render("Search: ")
	inner := max(width-2, 1)
	line := label + FieldLine(v, inner-lipgloss.Width(label))

	border := styles.T().Border
	if v.Editing {
		border = styles.T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(inner).
		Render(line)
}

func statusLine(s State) string {
	if s.Status == "" {
		return ""
	}
	return styles.T().Status(s.StatusIsErr).Render(render.Truncate(s.Status, s.Width))
}

// FieldLine renders a field's text in width columns, drawing a block cursor
// while the field is being edited.
func FieldLine(v textfield.View, width int) string {
	if width <= 0 {
		return ""
	}
	if !v.Editing {
		return render.TruncateAndPad(v.Text, width)
	}

	visible, cur := render.Window(v.Text, v.Cursor, width)
	runes := []rune(visible)

	under := " "
	after := ""
	if cur < len(runes) {
		under = string(runes[cur])
		after = string(runes[cur+1:])
	}

	cursorStyle := lipgloss.NewStyle().Reverse(true)
	line := string(runes[:cur]) + cursorStyle.Render(under) + after
	return line + strings.Repeat(" ", max(width-lipgloss.Width(line), 0))
}

func formPopup(f Form, screenW, screenH int) string {
	t := styles.T()

	outer := max(screenW*ui.FormPopupWidthPct/100, ui.MinFormPopupWidth)
	inner := max(min(outer, screenW-4)-6, 10) // border + padding

	lines := make([]string, 0, 2*len(f.Fields)+3)
	lines = append(lines, t.S().Heading.Render(f.Title), "")
	for _, fv := range f.Fields {
		prefix := "  "
		if fv.Editing {
			prefix = "> "
		}
		lines = append(lines, t.FieldLabel(fv.Editing).Render(fv.Label), prefix+FieldLine(fv, inner-2))
	}
	lines = append(lines, "", t.S().Hint.Render(render.Truncate(keymap.Hints(keymap.ContextForm), inner)))

	return popup.Bordered(strings.Join(lines, "\n"), inner+6, screenW, screenH)
}

func deletePopup(target string, screenW, screenH int) string {
	content := "Are you sure you want to delete this song?"
	if target != "" {
		content += "\n\n" + target
	}
	return popup.Dialog{
		Title:   "Delete Song",
		Content: content,
		Footer:  keymap.Hints(keymap.ContextDelete),
	}.Render(screenW, screenH)
}
