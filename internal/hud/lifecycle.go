package hud

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"go.klb.dev/cliphud/internal/truncate"
)

// DefaultDuration is how long the overlay stays up after the last copy.
const DefaultDuration = time.Second

// DefaultPrefix is prepended to every displayed text.
const DefaultPrefix = "📋 "

// LifecycleConfig holds the fixed parameters of the show/hide cycle.
type LifecycleConfig struct {
	Policy   truncate.Policy
	Duration time.Duration
	Prefix   string
}

// Lifecycle drives the overlay between Hidden and VisiblePendingHide.
//
// Show may be called in any phase. Each call re-arms the hide timer, so the
// overlay stays up for a full Duration after the most recent copy. Hide is
// only ever reached through the armed timer.
type Lifecycle struct {
	state    *State
	geometry Geometry
	sched    Scheduler
	cfg      LifecycleConfig
}

// NewLifecycle returns a Lifecycle over state. Zero-valued config fields fall
// back to the defaults.
func NewLifecycle(state *State, geometry Geometry, sched Scheduler, cfg LifecycleConfig) *Lifecycle {
	if cfg.Policy.MaxLines <= 0 {
		cfg.Policy = truncate.DefaultPolicy
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	return &Lifecycle{
		state:    state,
		geometry: geometry,
		sched:    sched,
		cfg:      cfg,
	}
}

// Show displays text and (re)starts the auto-hide countdown.
func (l *Lifecycle) Show(text string) {
	l.state.do(func() { l.showLocked(text) })
}

func (l *Lifecycle) showLocked(text string) {
	s := l.state

	s.displayText = l.cfg.Prefix + l.cfg.Policy.Apply(text)
	s.surface.SetText(s.displayText)

	if bounds, err := l.geometry.PrimaryBounds(); err != nil {
		slog.Warn("primary display unavailable, keeping overlay position", "err", err)
	} else {
		s.surface.Reposition(bounds)
	}
	s.surface.Show()

	s.replaceTimer(func(gen uint64) Timer {
		return l.sched.AfterFunc(l.cfg.Duration, func() { l.hide(gen) })
	})
	s.phase = VisiblePendingHide

	slog.Debug("hud shown", "chars", utf8.RuneCountInString(text), "hide_after", l.cfg.Duration)
}

// hide is the expiry handler of the timer armed under gen. Firings of a
// replaced timer are dropped.
func (l *Lifecycle) hide(gen uint64) {
	l.state.do(func() {
		s := l.state
		if s.hideTimer == nil || gen != s.timerGen {
			slog.Debug("stale hide timer ignored", "gen", gen, "current", s.timerGen)
			return
		}
		s.surface.Hide()
		s.hideTimer = nil
		s.phase = Hidden
		slog.Debug("hud hidden")
	})
}

// Close cancels any pending hide and hides the overlay.
func (l *Lifecycle) Close() {
	l.state.do(func() {
		s := l.state
		s.clearTimer()
		if s.phase != Hidden {
			s.surface.Hide()
			s.phase = Hidden
		}
	})
}
