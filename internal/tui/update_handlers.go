package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/util"
)

func (m Model) defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	controls := []focusArea{focusControls}
	input := []focusArea{focusInput}
	r.Register(KeyBinding{Key: "enter", Handler: Model.handleSetDuration, Description: "set", Focus: input})
	r.Register(KeyBinding{Key: "esc", Handler: Model.handleBlurInput, Description: "back", Focus: input})
	r.Register(KeyBinding{Key: "tab", Handler: Model.handleBlurInput, Focus: input})
	r.Register(KeyBinding{Key: "s", Handler: Model.handleStart, Description: "start", Focus: controls})
	r.Register(KeyBinding{Key: " ", Handler: Model.handleStart, Focus: controls})
	r.Register(KeyBinding{Key: "enter", Handler: Model.handleStart, Focus: controls})
	r.Register(KeyBinding{Key: "p", Handler: Model.handlePause, Description: "pause", Focus: controls})
	r.Register(KeyBinding{Key: "r", Handler: Model.handleReset, Description: "reset", Focus: controls})
	r.Register(KeyBinding{Key: "i", Handler: Model.handleFocusInput, Description: "duration", Focus: controls})
	r.Register(KeyBinding{Key: "tab", Handler: Model.handleFocusInput, Focus: controls})
	r.Register(KeyBinding{Key: "t", Handler: Model.handleNextTheme, Description: "theme", Focus: controls})
	for i := range m.selector.Themes {
		if i >= 9 {
			break
		}
		r.Register(KeyBinding{Key: strconv.Itoa(i + 1), Handler: Model.handlePickTheme, Focus: controls})
	}
	r.Register(KeyBinding{Key: "q", Handler: Model.handleQuit, Description: "quit", Focus: controls, Priority: 1})
	return r
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.fitProgress()
	return m, nil
}

func (m *Model) fitProgress() {
	if m.width > 0 {
		m.progress.Width = util.Clamp(m.width-16, config.MinFrameWidth-8, config.ProgressWidth)
	}
}

// handleTick advances the countdown and re-arms only the live stream.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if !m.ctrl.Tick(msg.Handle) {
		return m, nil
	}
	return m, m.sched.Schedule(msg.Handle)
}

func (m Model) handleThemeChanged(msg ThemeChangedMsg) (Model, tea.Cmd) {
	m.ctrl.SetTheme(msg.ID)
	m.progress = newProgress(m.themes.Resolve(msg.ID))
	m.fitProgress()
	return m, nil
}

// handleInputKey routes bound keys first; everything else is typed into the field.
func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSetDuration(_ string) (Model, tea.Cmd, bool) {
	if !m.ctrl.SetDuration(m.input.Value()) {
		m.log.Debug().Str("input", m.input.Value()).Msg("set ignored")
	}
	return m.handleBlurInput("")
}

func (m Model) handleBlurInput(_ string) (Model, tea.Cmd, bool) {
	m.focus = focusControls
	m.input.Blur()
	return m, nil, true
}

func (m Model) handleStart(_ string) (Model, tea.Cmd, bool) {
	h, ok := m.ctrl.Start()
	if !ok {
		return m, nil, true
	}
	return m, m.sched.Schedule(h), true
}

func (m Model) handlePause(_ string) (Model, tea.Cmd, bool) {
	m.ctrl.Pause()
	return m, nil, true
}

func (m Model) handleReset(_ string) (Model, tea.Cmd, bool) {
	m.ctrl.Reset()
	return m, nil, true
}

func (m Model) handleFocusInput(_ string) (Model, tea.Cmd, bool) {
	m.focus = focusInput
	return m, m.input.Focus(), true
}

func (m Model) handlePickTheme(key string) (Model, tea.Cmd, bool) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return m, nil, false
	}
	return m, m.selector.Select(n - 1), true
}

func (m Model) handleNextTheme(_ string) (Model, tea.Cmd, bool) {
	return m, m.selector.Next(m.ctrl.Theme()), true
}

func (m Model) handleQuit(_ string) (Model, tea.Cmd, bool) {
	next, cmd := m.quit()
	return next, cmd, true
}

// quit releases the tick stream before the program exits.
func (m Model) quit() (Model, tea.Cmd) {
	m.ctrl.Teardown()
	m.quitting = true
	return m, tea.Quit
}
