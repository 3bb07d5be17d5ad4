package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/countdown/internal/config"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	th := m.themes.Resolve(m.ctrl.Theme())
	inner := m.innerWidth()

	sections := []string{
		th.Title.Render(config.Title),
		"",
		m.renderInputRow(th),
		"",
		th.Clock.Render(bigClock(m.ctrl.Display(), inner)),
		th.Status.Render(FormatStatus(m.ctrl.State(), m.ctrl.TimeLeft())),
		"",
		m.renderButtons(th),
		m.progress.ViewAs(m.ctrl.Progress()),
		"",
		m.selector.View(m.themes, m.ctrl.Theme()),
		"",
		th.Dim.Render(truncateLabel(m.keys.HelpFor(m.focus), inner)),
	}
	frame := th.Frame.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	if m.width == 0 || m.height == 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

func (m Model) innerWidth() int {
	if m.width == 0 {
		return config.FrameWidth
	}
	w := m.width - 10
	if w < config.MinFrameWidth {
		w = config.MinFrameWidth
	}
	if w > config.FrameWidth {
		w = config.FrameWidth
	}
	return w
}

func (m Model) renderInputRow(th Theme) string {
	set := th.Button
	if m.focus == focusInput {
		set = set.BorderForeground(th.To)
	}
	field := m.input.View()
	if m.focus == focusInput {
		field = th.Focused.Render(field)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", set.Render("Set"))
}

func (m Model) renderButtons(th Theme) string {
	button := func(label string, enabled bool) string {
		if enabled {
			return th.Button.Render(label)
		}
		return th.ButtonDisabled.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		button(m.ctrl.StartLabel(), m.ctrl.CanStart()),
		" ",
		button("Pause", m.ctrl.CanPause()),
		" ",
		button("Reset", true),
	)
}
