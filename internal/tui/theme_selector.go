package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/models"
)

// ThemeChangedMsg carries the identifier chosen in the theme selector.
type ThemeChangedMsg struct {
	ID string
}

// ThemeSelector offers a fixed list of themes and reports the chosen
// identifier through OnSelect. It keeps no state of its own.
type ThemeSelector struct {
	Themes   []models.Theme
	OnSelect func(id string) tea.Msg
}

func NewThemeSelector(themes []models.Theme) ThemeSelector {
	return ThemeSelector{
		Themes:   themes,
		OnSelect: func(id string) tea.Msg { return ThemeChangedMsg{ID: id} },
	}
}

// Select activates the i-th theme (zero based).
func (s ThemeSelector) Select(i int) tea.Cmd {
	if i < 0 || i >= len(s.Themes) || s.OnSelect == nil {
		return nil
	}
	id := s.Themes[i].ID
	return func() tea.Msg { return s.OnSelect(id) }
}

// Next activates the theme after current, wrapping around.
func (s ThemeSelector) Next(current string) tea.Cmd {
	if len(s.Themes) == 0 {
		return nil
	}
	for i, t := range s.Themes {
		if t.ID == current {
			return s.Select((i + 1) % len(s.Themes))
		}
	}
	return s.Select(0)
}

func (s ThemeSelector) View(set ThemeSet, active string) string {
	buttons := make([]string, 0, len(s.Themes))
	for i, t := range s.Themes {
		th := set.Resolve(t.ID)
		label := strconv.Itoa(i+1) + " " + t.Label
		if t.ID == active {
			buttons = append(buttons, th.SwatchActive.Render(label))
			continue
		}
		buttons = append(buttons, th.Swatch.Render(label))
	}
	return strings.Join(buttons, " ")
}
