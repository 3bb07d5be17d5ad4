package testutil

import (
	"strconv"

	"github.com/akyairhashvil/countdown/internal/countdown"
)

// ControllerBuilder provides fluent API for putting a controller in a known state.
type ControllerBuilder struct {
	opts     []countdown.Option
	duration int
	start    bool
	ticks    int
	pause    bool
}

func NewController() *ControllerBuilder {
	return &ControllerBuilder{}
}

func (b *ControllerBuilder) WithOptions(opts ...countdown.Option) *ControllerBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

func (b *ControllerBuilder) WithDuration(seconds int) *ControllerBuilder {
	b.duration = seconds
	return b
}

// Running starts the countdown after the duration is set.
func (b *ControllerBuilder) Running() *ControllerBuilder {
	b.start = true
	return b
}

// AfterTicks delivers n ticks on the live handle once running.
func (b *ControllerBuilder) AfterTicks(n int) *ControllerBuilder {
	b.ticks = n
	return b
}

// Paused pauses after any ticks have been delivered.
func (b *ControllerBuilder) Paused() *ControllerBuilder {
	b.pause = true
	return b
}

func (b *ControllerBuilder) Build() *countdown.Controller {
	c := countdown.New(b.opts...)
	if b.duration > 0 {
		c.SetDuration(strconv.Itoa(b.duration))
	}
	if b.start {
		h, ok := c.Start()
		for i := 0; ok && i < b.ticks; i++ {
			ok = c.Tick(h)
		}
	}
	if b.pause {
		c.Pause()
	}
	return c
}
