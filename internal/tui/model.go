package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
)

// focusArea selects which part of the widget receives keys.
type focusArea int

const (
	focusControls focusArea = iota
	focusInput
)

// Options configures a new Model.
type Options struct {
	Themes    []models.Theme
	Theme     string
	Duration  int // prefilled and confirmed when positive
	Scheduler Scheduler
	Logger    *zerolog.Logger
}

// Model is the root bubbletea model hosting one countdown.
type Model struct {
	ctrl     *countdown.Controller
	sched    Scheduler
	themes   ThemeSet
	selector ThemeSelector
	keys     *HandlerRegistry
	input    textinput.Model
	progress progress.Model
	focus    focusArea
	width    int
	height   int
	quitting bool
	log      zerolog.Logger
}

func NewModel(opts Options) Model {
	if len(opts.Themes) == 0 {
		opts.Themes = config.DefaultThemes()
	}
	if opts.Theme == "" {
		opts.Theme = opts.Themes[0].ID
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewScheduler(config.TickInterval)
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	ti := textinput.New()
	ti.Placeholder = config.InputPlaceholder
	ti.CharLimit = config.MaxDurationDigits
	ti.Width = config.InputWidth
	ti.Prompt = "> "

	themes := NewThemeSet(opts.Themes)
	m := Model{
		ctrl:     countdown.New(countdown.WithLogger(logger), countdown.WithTheme(opts.Theme)),
		sched:    opts.Scheduler,
		themes:   themes,
		selector: NewThemeSelector(themes.List()),
		input:    ti,
		log:      util.Module(logger, "tui"),
	}
	m.keys = m.defaultKeys()
	m.progress = newProgress(themes.Resolve(opts.Theme))

	if opts.Duration > 0 {
		m.input.SetValue(strconv.Itoa(opts.Duration))
		m.ctrl.SetDuration(strconv.Itoa(opts.Duration))
	}
	return m
}

func newProgress(th Theme) progress.Model {
	return progress.New(
		progress.WithGradient(string(th.From), string(th.To)),
		progress.WithWidth(config.ProgressWidth),
		progress.WithoutPercentage(),
	)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.focus == focusInput {
			return m.handleInputKey(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case ThemeChangedMsg:
		return m.handleThemeChanged(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Controller exposes the countdown state for the host program.
func (m Model) Controller() *countdown.Controller {
	return m.ctrl
}
