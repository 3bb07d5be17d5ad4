package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/countdown/internal/models"
)

type Theme struct {
	ID             string
	Label          string
	From           lipgloss.Color
	To             lipgloss.Color
	Frame          lipgloss.Style
	Title          lipgloss.Style
	Clock          lipgloss.Style
	Status         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Swatch         lipgloss.Style
	SwatchActive   lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
}

var dimColor = lipgloss.Color("240")

func newTheme(t models.Theme) Theme {
	from, to := lipgloss.Color(t.From), lipgloss.Color(t.To)
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(from).
		Foreground(to).
		Bold(true).
		Padding(0, 1)
	swatch := lipgloss.NewStyle().
		Background(from).
		Foreground(to).
		Bold(true).
		Padding(0, 1)
	return Theme{
		ID:             t.ID,
		Label:          t.Label,
		From:           from,
		To:             to,
		Frame:          lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(from).Padding(1, 3),
		Title:          lipgloss.NewStyle().Foreground(to).Bold(true).Align(lipgloss.Center),
		Clock:          lipgloss.NewStyle().Foreground(to).Bold(true),
		Status:         lipgloss.NewStyle().Foreground(from).Italic(true),
		Button:         button,
		ButtonDisabled: button.BorderForeground(dimColor).Foreground(dimColor).Bold(false),
		Swatch:         swatch,
		SwatchActive:   swatch.Underline(true).Background(to).Foreground(from),
		Focused:        lipgloss.NewStyle().Foreground(to).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(dimColor),
	}
}

// ThemeSet holds the selectable themes in display order.
type ThemeSet struct {
	order  []models.Theme
	styles map[string]Theme
}

func NewThemeSet(themes []models.Theme) ThemeSet {
	s := ThemeSet{styles: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		if _, dup := s.styles[t.ID]; dup {
			continue
		}
		s.order = append(s.order, t)
		s.styles[t.ID] = newTheme(t)
	}
	return s
}

func (s ThemeSet) List() []models.Theme { return s.order }

// Resolve maps an identifier to its styles. Unknown identifiers fall back to
// the first theme so any string is safe to apply.
func (s ThemeSet) Resolve(id string) Theme {
	if t, ok := s.styles[id]; ok {
		return t
	}
	if len(s.order) > 0 {
		return s.styles[s.order[0].ID]
	}
	return newTheme(models.Theme{ID: id, Label: id, From: "63", To: "205"})
}
