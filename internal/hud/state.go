package hud

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrPoisoned is reported to the fatal handler when a critical section is
// entered after an earlier one panicked.
var ErrPoisoned = errors.New("hud: state poisoned by an earlier panic")

// State is the single shared record the poller and lifecycle operate on.
// Every field is read and written only inside State.do.
type State struct {
	mu       sync.Mutex
	poisoned bool
	fatal    func(error)

	lastSeen    int64
	surface     Surface
	hideTimer   Timer
	timerGen    uint64
	displayText string
	phase       Phase
}

// StateOption configures a State.
type StateOption func(*State)

// WithFatal replaces the handler invoked on lock poisoning. The default logs
// and exits the process.
func WithFatal(fn func(error)) StateOption {
	return func(s *State) { s.fatal = fn }
}

// NewState captures the current change counter as the baseline, so content
// already on the clipboard at launch is never shown, and takes ownership of
// the overlay surface.
func NewState(source ClipboardSource, surface Surface, opts ...StateOption) *State {
	s := &State{
		lastSeen: source.ChangeCount(),
		surface:  surface,
		fatal:    exitOnFatal,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func exitOnFatal(err error) {
	slog.Error("fatal state error, terminating", "err", err)
	os.Exit(1)
}

// do runs fn while holding the state lock. A panic inside fn poisons the
// state before propagating; any later call hands ErrPoisoned to the fatal
// handler instead of running fn.
func (s *State) do(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		s.fatal(ErrPoisoned)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			slog.Error("panic in hud critical section", "panic", fmt.Sprint(r))
			panic(r)
		}
	}()
	fn()
}

// replaceTimer cancels the outstanding hide timer, if any, and only then
// installs the timer built by arm under a fresh generation. Must be called
// inside do.
func (s *State) replaceTimer(arm func(gen uint64) Timer) {
	s.clearTimer()
	s.timerGen++
	s.hideTimer = arm(s.timerGen)
}

// clearTimer releases the hide timer. Must be called inside do.
func (s *State) clearTimer() {
	if s.hideTimer != nil {
		s.hideTimer.Cancel()
		s.hideTimer = nil
	}
}

// Snapshot is a read-only copy of the state, for diagnostics and tests.
type Snapshot struct {
	LastSeen    int64
	DisplayText string
	Phase       Phase
	TimerArmed  bool
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	var snap Snapshot
	s.do(func() {
		snap = Snapshot{
			LastSeen:    s.lastSeen,
			DisplayText: s.displayText,
			Phase:       s.phase,
			TimerArmed:  s.hideTimer != nil,
		}
	})
	return snap
}
