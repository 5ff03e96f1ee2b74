package eventloop

import (
	"sync/atomic"
	"time"

	"go.klb.dev/cliphud/internal/hud"
)

// Scheduler arms one-shot timers whose callbacks run on a Loop.
type Scheduler struct {
	loop *Loop
}

// NewScheduler returns a Scheduler delivering to loop.
func NewScheduler(loop *Loop) *Scheduler {
	return &Scheduler{loop: loop}
}

// Timer is a pending callback armed by Scheduler.AfterFunc.
type Timer struct {
	t        *time.Timer
	canceled atomic.Bool
}

// AfterFunc runs fn on the loop once d has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) hud.Timer {
	tm := &Timer{}
	tm.t = time.AfterFunc(d, func() {
		s.loop.Post(func() {
			if tm.canceled.Load() {
				return
			}
			fn()
		})
	})
	return tm
}

// Cancel invalidates the timer. When called from the loop, the callback is
// guaranteed not to run even if its expiry is already queued.
func (t *Timer) Cancel() {
	t.canceled.Store(true)
	t.t.Stop()
}
