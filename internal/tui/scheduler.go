package tui

//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/countdown/internal/countdown"
)

// TickMsg delivers one tick for the stream identified by Handle.
type TickMsg struct {
	Handle countdown.TickHandle
	Time   time.Time
}

// Scheduler arms the next tick of a live stream.
type Scheduler interface {
	Schedule(h countdown.TickHandle) tea.Cmd
}

type intervalScheduler struct {
	interval time.Duration
}

// NewScheduler returns a Scheduler that fires once per interval.
func NewScheduler(interval time.Duration) Scheduler {
	return intervalScheduler{interval: interval}
}

func (s intervalScheduler) Schedule(h countdown.TickHandle) tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Handle: h, Time: t}
	})
}
