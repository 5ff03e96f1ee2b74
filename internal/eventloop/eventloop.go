// Package eventloop is the single cooperative loop every HUD handler runs on.
// Poll ticks and timer expiries are posted as callbacks and executed one at a
// time, each to completion, so handlers never interleave.
package eventloop

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const defaultQueue = 16

// Loop is a FIFO of callbacks drained by Run.
type Loop struct {
	events chan func()
	done   chan struct{}
	once   sync.Once
}

// New returns a loop that can buffer up to queue pending callbacks before
// Post blocks.
func New(queue int) *Loop {
	if queue <= 0 {
		queue = defaultQueue
	}
	return &Loop{
		events: make(chan func(), queue),
		done:   make(chan struct{}),
	}
}

// Post queues fn for execution on the loop. It reports false if the loop has
// already stopped, in which case fn is dropped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run dispatches callbacks until ctx is cancelled. A panicking callback is
// logged and the loop keeps running.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.events:
			l.dispatch(fn)
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

func (l *Loop) dispatch(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event handler panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

// Every posts fn to the loop every d until ctx is done or the loop stops.
// A tick is skipped while the previous one is still waiting in the queue, so
// a stalled loop never builds up a backlog of polls.
func (l *Loop) Every(ctx context.Context, d time.Duration, fn func()) {
	var queued atomic.Bool
	go func() {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-l.done:
				return
			case <-t.C:
				if !queued.CompareAndSwap(false, true) {
					continue
				}
				ok := l.Post(func() {
					queued.Store(false)
					fn()
				})
				if !ok {
					return
				}
			}
		}
	}()
}
