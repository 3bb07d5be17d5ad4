// Package countdown implements the countdown state machine and the ownership
// of its single periodic tick stream.
package countdown

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/util"
)

// TickHandle identifies one scheduled tick stream. Ticks carrying a handle
// the controller has released are ignored.
type TickHandle struct {
	ID uint64
}

// Controller owns the countdown state. It is not safe for concurrent use;
// the caller's event loop serializes all calls.
type Controller struct {
	duration    int
	hasDuration bool
	timeLeft    int
	state       models.RunState
	theme       string

	live   bool
	handle TickHandle
	seq    uint64

	log zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = util.Module(l, "countdown") }
}

// WithTheme sets the initial theme identifier.
func WithTheme(id string) Option {
	return func(c *Controller) { c.theme = id }
}

// New returns an idle controller with no duration set.
func New(opts ...Option) *Controller {
	c := &Controller{
		state: models.StateIdle,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParseDuration accepts a positive integer number of seconds.
func ParseDuration(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// SetDuration confirms a new duration. Invalid input leaves everything unchanged.
func (c *Controller) SetDuration(input string) bool {
	n, ok := ParseDuration(input)
	if !ok {
		c.log.Debug().Str("input", input).Msg("duration rejected")
		return false
	}
	c.release()
	c.duration = n
	c.hasDuration = true
	c.timeLeft = n
	c.state = models.StateIdle
	c.log.Debug().Int("duration", n).Msg("duration set")
	return true
}

// Start enters Running and returns the handle of the new tick stream. It is a
// no-op when nothing is left to count or a stream is already live.
func (c *Controller) Start() (TickHandle, bool) {
	if c.timeLeft <= 0 {
		c.log.Debug().Stringer("state", c.state).Msg("start ignored, nothing left")
		return TickHandle{}, false
	}
	if c.state == models.StateRunning && c.live {
		return TickHandle{}, false
	}
	c.release()
	c.state = models.StateRunning
	h := c.acquire()
	c.log.Debug().Uint64("handle", h.ID).Int("time_left", c.timeLeft).Msg("started")
	return h, true
}

// Pause stops the tick stream and keeps the remaining time.
func (c *Controller) Pause() bool {
	if c.state != models.StateRunning {
		c.log.Debug().Stringer("state", c.state).Msg("pause ignored")
		return false
	}
	c.release()
	c.state = models.StatePaused
	c.log.Debug().Int("time_left", c.timeLeft).Msg("paused")
	return true
}

// Reset returns to Idle with the confirmed duration, or zero if none.
func (c *Controller) Reset() {
	c.release()
	c.state = models.StateIdle
	c.timeLeft = 0
	if c.hasDuration {
		c.timeLeft = c.duration
	}
	c.log.Debug().Int("time_left", c.timeLeft).Msg("reset")
}

// Tick advances the countdown by one second if h is the live handle. It
// reports whether the stream should be re-armed. Reaching zero releases the
// handle but leaves the state Running.
func (c *Controller) Tick(h TickHandle) bool {
	if !c.live || h != c.handle {
		return false
	}
	if c.state != models.StateRunning {
		c.release()
		return false
	}
	c.timeLeft = max(c.timeLeft-1, 0)
	if c.timeLeft == 0 {
		c.release()
		c.log.Debug().Msg("countdown finished")
		return false
	}
	return true
}

// Teardown releases the tick stream; later ticks are ignored.
func (c *Controller) Teardown() {
	c.release()
}

// SetTheme stores the theme identifier as given.
func (c *Controller) SetTheme(id string) {
	c.theme = id
	c.log.Debug().Str("theme", id).Msg("theme changed")
}

func (c *Controller) Theme() string { return c.theme }

func (c *Controller) State() models.RunState { return c.state }

func (c *Controller) TimeLeft() int { return c.timeLeft }

// Duration returns the confirmed duration and whether one is set.
func (c *Controller) Duration() (int, bool) { return c.duration, c.hasDuration }

// ActiveTicks reports the number of live tick streams (0 or 1).
func (c *Controller) ActiveTicks() int {
	if c.live {
		return 1
	}
	return 0
}

// Handle returns the live handle, if any.
func (c *Controller) Handle() (TickHandle, bool) { return c.handle, c.live }

func (c *Controller) CanStart() bool {
	return c.timeLeft > 0 && !(c.state == models.StateRunning && c.live)
}

func (c *Controller) CanPause() bool { return c.state == models.StateRunning }

// Completed is true once a running countdown has reached zero.
func (c *Controller) Completed() bool {
	return c.state == models.StateRunning && c.timeLeft == 0
}

// StartLabel is "Resume" while paused.
func (c *Controller) StartLabel() string {
	if c.state == models.StatePaused {
		return "Resume"
	}
	return "Start"
}

// Display renders the remaining time as MM:SS.
func (c *Controller) Display() string { return FormatTime(c.timeLeft) }

// Progress is the elapsed fraction of the confirmed duration.
func (c *Controller) Progress() float64 {
	if !c.hasDuration {
		return 0
	}
	return util.Ratio(c.duration-c.timeLeft, c.duration)
}

func (c *Controller) acquire() TickHandle {
	c.seq++
	c.handle = TickHandle{ID: c.seq}
	c.live = true
	return c.handle
}

// release is the only place a handle is dropped.
func (c *Controller) release() {
	if !c.live {
		return
	}
	c.log.Debug().Uint64("handle", c.handle.ID).Msg("tick stream released")
	c.live = false
	c.handle = TickHandle{}
}
