// Package styles holds songbook's palette and the lipgloss styles built
// from it.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette.
type Theme struct {
	Accent    lipgloss.Color // title gradient start, table header, active labels
	Highlight lipgloss.Color // title gradient end, debug line

	Text  lipgloss.Color
	Muted lipgloss.Color
	Faint lipgloss.Color

	RowBackground lipgloss.Color // selected table row

	Border      lipgloss.Color // idle inputs and popups
	BorderFocus lipgloss.Color // the input being edited

	Success lipgloss.Color
	Failure lipgloss.Color

	styles *Styles
}

// Styles are the styles the screen is drawn with.
type Styles struct {
	Heading     lipgloss.Style // popup titles
	Label       lipgloss.Style // idle field labels, song count
	ActiveLabel lipgloss.Style // label of the input being edited
	Hint        lipgloss.Style // key hints
	TableHeader lipgloss.Style
	SelectedRow lipgloss.Style
	StatusOK    lipgloss.Style
	StatusErr   lipgloss.Style
	Debug       lipgloss.Style
}

var songbook = Theme{
	Accent:    lipgloss.Color("#a78bfa"),
	Highlight: lipgloss.Color("#f1a208"),

	Text:  lipgloss.Color("#c0c0c0"),
	Muted: lipgloss.Color("#808080"),
	Faint: lipgloss.Color("#585858"),

	RowBackground: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Failure: lipgloss.Color("#ff5555"),
}

// T returns the theme.
func T() *Theme {
	return &songbook
}

// S returns the styles, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.build()
	}
	return t.styles
}

// FieldLabel styles an input label by whether the input is being edited.
func (t *Theme) FieldLabel(editing bool) lipgloss.Style {
	if editing {
		return t.S().ActiveLabel
	}
	return t.S().Label
}

// Status styles the status line.
func (t *Theme) Status(isErr bool) lipgloss.Style {
	if isErr {
		return t.S().StatusErr
	}
	return t.S().StatusOK
}

func (t *Theme) build() *Styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		Heading:     fg(t.Text).Bold(true),
		Label:       fg(t.Muted),
		ActiveLabel: fg(t.Accent).Bold(true),
		Hint:        fg(t.Faint),
		TableHeader: fg(t.Accent).Bold(true),
		SelectedRow: fg(t.Text).Background(t.RowBackground).Bold(true),
		StatusOK:    fg(t.Success),
		StatusErr:   fg(t.Failure),
		Debug:       fg(t.Highlight),
	}
}
