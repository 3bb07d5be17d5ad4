package countdown_test

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/akyairhashvil/countdown/internal/countdown"
	"github.com/akyairhashvil/countdown/internal/models"
	"github.com/akyairhashvil/countdown/internal/testutil"
	"github.com/akyairhashvil/countdown/internal/util"
)

func runTicks(t *testing.T, c *countdown.Controller, h countdown.TickHandle, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		c.Tick(h)
	}
}

func TestNewControllerDefaults(t *testing.T) {
	c := countdown.New()
	if c.State() != models.StateIdle {
		t.Fatalf("expected Idle, got %v", c.State())
	}
	if c.TimeLeft() != 0 {
		t.Fatalf("expected TimeLeft 0, got %d", c.TimeLeft())
	}
	if _, ok := c.Duration(); ok {
		t.Fatalf("expected duration to be unset")
	}
	if c.ActiveTicks() != 0 {
		t.Fatalf("expected no live tick stream")
	}
	if c.Display() != "00:00" {
		t.Fatalf("expected 00:00, got %q", c.Display())
	}
}

func TestParseDuration(t *testing.T) {
	valid := map[string]int{"1": 1, " 42 ": 42, "3661": 3661}
	for in, want := range valid {
		got, ok := countdown.ParseDuration(in)
		if !ok || got != want {
			t.Fatalf("ParseDuration(%q) = %d, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "0", "-3", "abc", "2.5", "1e3"} {
		if _, ok := countdown.ParseDuration(in); ok {
			t.Fatalf("ParseDuration(%q) should be rejected", in)
		}
	}
}

func TestSetDurationThenReset(t *testing.T) {
	for d := 1; d <= 500; d++ {
		c := countdown.New()
		if !c.SetDuration(strconv.Itoa(d)) {
			t.Fatalf("SetDuration(%d) rejected", d)
		}
		c.Reset()
		if c.TimeLeft() != d || c.State() != models.StateIdle {
			t.Fatalf("d=%d: TimeLeft=%d state=%v", d, c.TimeLeft(), c.State())
		}
	}
}

func TestRunsToZeroAndReleases(t *testing.T) {
	for d := 1; d <= 120; d++ {
		c := countdown.New()
		c.SetDuration(strconv.Itoa(d))
		h, ok := c.Start()
		if !ok {
			t.Fatalf("d=%d: Start failed", d)
		}
		rearms := 0
		for i := 0; i < d; i++ {
			if c.Tick(h) {
				rearms++
			}
		}
		if c.TimeLeft() != 0 {
			t.Fatalf("d=%d: TimeLeft=%d", d, c.TimeLeft())
		}
		if c.ActiveTicks() != 0 {
			t.Fatalf("d=%d: tick stream still live", d)
		}
		if rearms != d-1 {
			t.Fatalf("d=%d: expected %d re-arms, got %d", d, d-1, rearms)
		}
		if c.State() != models.StateRunning {
			t.Fatalf("d=%d: expected Running after completion, got %v", d, c.State())
		}
		if !c.Completed() {
			t.Fatalf("d=%d: expected Completed", d)
		}
	}
}

func TestTicksAfterCompletionAreIgnored(t *testing.T) {
	c := countdown.New()
	c.SetDuration("2")
	h, _ := c.Start()
	runTicks(t, c, h, 5)
	if c.TimeLeft() != 0 {
		t.Fatalf("expected 0, got %d", c.TimeLeft())
	}
	if _, ok := c.Start(); ok {
		t.Fatalf("Start after completion should be a no-op")
	}
	if c.Display() != "00:00" {
		t.Fatalf("expected display to hold at 00:00, got %q", c.Display())
	}
}

func TestPauseIsNoOpWhenNotRunning(t *testing.T) {
	c := countdown.New()
	for i := 0; i < 3; i++ {
		if c.Pause() {
			t.Fatalf("Pause on Idle should be a no-op")
		}
	}
	if c.State() != models.StateIdle {
		t.Fatalf("expected Idle, got %v", c.State())
	}

	p := testutil.NewController().WithDuration(5).Running().Paused().Build()
	if p.Pause() {
		t.Fatalf("second Pause should be a no-op")
	}
	if p.State() != models.StatePaused || p.TimeLeft() != 5 {
		t.Fatalf("unexpected state %v / %d", p.State(), p.TimeLeft())
	}
}

func TestStartWithZeroTimeLeft(t *testing.T) {
	c := countdown.New()
	if _, ok := c.Start(); ok {
		t.Fatalf("Start with TimeLeft 0 should fail")
	}
	if c.State() == models.StateRunning {
		t.Fatalf("state must not be Running")
	}
	if c.ActiveTicks() != 0 {
		t.Fatalf("no stream expected")
	}
	c.Reset()
	if _, ok := c.Start(); ok || c.State() == models.StateRunning {
		t.Fatalf("Start after Reset with unset duration should fail")
	}
}

func TestStartWhileRunningKeepsSingleStream(t *testing.T) {
	c := countdown.New()
	c.SetDuration("10")
	h, _ := c.Start()
	if _, ok := c.Start(); ok {
		t.Fatalf("Start while running should not create a new stream")
	}
	if got, ok := c.Handle(); !ok || got != h {
		t.Fatalf("expected original handle to stay live")
	}
	if c.ActiveTicks() != 1 {
		t.Fatalf("expected one stream, got %d", c.ActiveTicks())
	}
}

func TestPauseResumeScenario(t *testing.T) {
	c := countdown.New()
	c.SetDuration("5")
	h, ok := c.Start()
	if !ok {
		t.Fatalf("Start failed")
	}
	runTicks(t, c, h, 2)
	if !c.Pause() {
		t.Fatalf("Pause failed")
	}
	if c.TimeLeft() != 3 || c.State() != models.StatePaused || c.ActiveTicks() != 0 {
		t.Fatalf("after pause: left=%d state=%v ticks=%d", c.TimeLeft(), c.State(), c.ActiveTicks())
	}
	if c.StartLabel() != "Resume" {
		t.Fatalf("expected Resume label, got %q", c.StartLabel())
	}

	// The paused stream's handle must not advance the clock.
	if c.Tick(h) {
		t.Fatalf("stale tick re-armed")
	}
	if c.TimeLeft() != 3 {
		t.Fatalf("stale tick changed TimeLeft to %d", c.TimeLeft())
	}

	h2, ok := c.Start()
	if !ok || h2 == h {
		t.Fatalf("expected a fresh handle on resume")
	}
	if c.StartLabel() != "Start" {
		t.Fatalf("expected Start label while running")
	}
	runTicks(t, c, h2, 3)
	if c.TimeLeft() != 0 {
		t.Fatalf("expected 0, got %d", c.TimeLeft())
	}
}

func TestNegativeDurationRejected(t *testing.T) {
	c := testutil.NewController().WithDuration(8).Running().AfterTicks(3).Build()
	before, beforeState := c.TimeLeft(), c.State()
	h, _ := c.Handle()

	if c.SetDuration("-3") {
		t.Fatalf("negative duration accepted")
	}
	if c.TimeLeft() != before || c.State() != beforeState {
		t.Fatalf("state changed: %d/%v -> %d/%v", before, beforeState, c.TimeLeft(), c.State())
	}
	if got, ok := c.Handle(); !ok || got != h {
		t.Fatalf("rejected input must not touch the tick stream")
	}
	if d, _ := c.Duration(); d != 8 {
		t.Fatalf("duration changed to %d", d)
	}
}

func TestSetDurationCancelsStream(t *testing.T) {
	c := testutil.NewController().WithDuration(10).Running().AfterTicks(4).Build()
	old, _ := c.Handle()
	if !c.SetDuration("30") {
		t.Fatalf("SetDuration failed")
	}
	if c.State() != models.StateIdle || c.TimeLeft() != 30 || c.ActiveTicks() != 0 {
		t.Fatalf("unexpected %v / %d / %d", c.State(), c.TimeLeft(), c.ActiveTicks())
	}
	c.Tick(old)
	if c.TimeLeft() != 30 {
		t.Fatalf("stale tick advanced the new countdown")
	}
}

func TestResetRestoresDuration(t *testing.T) {
	c := testutil.NewController().WithDuration(9).Running().AfterTicks(5).Build()
	c.Reset()
	if c.TimeLeft() != 9 || c.State() != models.StateIdle || c.ActiveTicks() != 0 {
		t.Fatalf("unexpected %d / %v / %d", c.TimeLeft(), c.State(), c.ActiveTicks())
	}
	if c.Progress() != 0 {
		t.Fatalf("expected zero progress after reset, got %v", c.Progress())
	}
}

func TestTeardownDropsLaterTicks(t *testing.T) {
	c := countdown.New()
	c.SetDuration("4")
	h, _ := c.Start()
	c.Teardown()
	if c.ActiveTicks() != 0 {
		t.Fatalf("expected stream released")
	}
	if c.Tick(h) || c.TimeLeft() != 4 {
		t.Fatalf("tick after teardown should be ignored")
	}
}

func TestThemeIsIndependentOfState(t *testing.T) {
	c := countdown.New(countdown.WithTheme("red-yellow"))
	if c.Theme() != "red-yellow" {
		t.Fatalf("unexpected initial theme %q", c.Theme())
	}
	c.SetDuration("3")
	h, _ := c.Start()
	c.SetTheme("anything at all")
	if c.Theme() != "anything at all" {
		t.Fatalf("theme not stored verbatim")
	}
	if c.State() != models.StateRunning {
		t.Fatalf("theme change affected state")
	}
	if got, ok := c.Handle(); !ok || got != h {
		t.Fatalf("theme change affected tick stream")
	}
}

func TestAffordances(t *testing.T) {
	c := countdown.New()
	if c.CanStart() || c.CanPause() {
		t.Fatalf("nothing should be enabled initially")
	}
	c.SetDuration("2")
	if !c.CanStart() || c.CanPause() {
		t.Fatalf("only start should be enabled")
	}
	h, _ := c.Start()
	if c.CanStart() || !c.CanPause() {
		t.Fatalf("only pause should be enabled while running")
	}
	c.Tick(h)
	if got := c.Progress(); got != 0.5 {
		t.Fatalf("expected progress 0.5, got %v", got)
	}
}

func TestAtMostOneStreamUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := countdown.New()
	var handles []countdown.TickHandle
	for i := 0; i < 5000; i++ {
		switch rng.Intn(6) {
		case 0:
			c.SetDuration(strconv.Itoa(rng.Intn(12) - 2))
		case 1:
			if h, ok := c.Start(); ok {
				handles = append(handles, h)
			}
		case 2:
			c.Pause()
		case 3:
			c.Reset()
		default:
			// Deliver ticks for every handle ever issued; only the live one may count.
			before := c.TimeLeft()
			for _, h := range handles {
				c.Tick(h)
			}
			if _, ok := c.Handle(); ok {
				if before-c.TimeLeft() != 1 {
					t.Fatalf("step %d: live stream advanced by %d", i, before-c.TimeLeft())
				}
			} else if before-c.TimeLeft() > 1 {
				t.Fatalf("step %d: stale ticks advanced the clock", i)
			}
		}
		if n := c.ActiveTicks(); n > 1 {
			t.Fatalf("step %d: %d live streams", i, n)
		}
		if c.ActiveTicks() == 1 && c.State() != models.StateRunning {
			t.Fatalf("step %d: live stream outside Running (%v)", i, c.State())
		}
		if d, ok := c.Duration(); ok && (c.TimeLeft() < 0 || c.TimeLeft() > d) {
			t.Fatalf("step %d: TimeLeft %d out of range [0,%d]", i, c.TimeLeft(), d)
		}
	}
}

func TestControllerLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	l, err := util.SetupLogging(&buf, "debug", "json")
	if err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}
	c := countdown.New(countdown.WithLogger(l))
	c.SetDuration("nope")
	c.SetDuration("3")
	c.Start()
	out := buf.String()
	for _, want := range []string{"duration rejected", "duration set", "started", `"module":"countdown"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output: %s", want, out)
		}
	}
}
