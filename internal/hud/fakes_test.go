package hud

import (
	"errors"
	"image"
	"sort"
	"time"
)

// fakeClock is a manual-time Scheduler. Timers fire from Advance in due
// order, on the calling goroutine, like a single-threaded event loop.
type fakeClock struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	due      time.Duration
	seq      int
	fn       func()
	canceled bool
	fired    bool
}

func (t *fakeTimer) Cancel() { t.canceled = true }

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.seq++
	t := &fakeTimer{clock: c, due: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward by d, firing every live timer that falls due.
func (c *fakeClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		next := c.nextDue(end)
		if next == nil {
			break
		}
		c.now = next.due
		next.fired = true
		next.fn()
	}
	c.now = end
}

func (c *fakeClock) nextDue(end time.Duration) *fakeTimer {
	var live []*fakeTimer
	for _, t := range c.timers {
		if !t.canceled && !t.fired && t.due <= end {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due == live[j].due {
			return live[i].seq < live[j].seq
		}
		return live[i].due < live[j].due
	})
	return live[0]
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.canceled && !t.fired {
			n++
		}
	}
	return n
}

type hideEvent struct {
	at time.Duration
}

// fakeSurface records every call made on the overlay.
type fakeSurface struct {
	clock      *fakeClock
	text       string
	visible    bool
	bounds     image.Rectangle
	shows      int
	hides      []hideEvent
	repos      int
	panicOnSet bool
}

func (f *fakeSurface) SetText(text string) {
	if f.panicOnSet {
		panic("boom")
	}
	f.text = text
}

func (f *fakeSurface) Reposition(b image.Rectangle) {
	f.bounds = b
	f.repos++
}

func (f *fakeSurface) Show() {
	f.visible = true
	f.shows++
}

func (f *fakeSurface) Hide() {
	f.visible = false
	f.hides = append(f.hides, hideEvent{at: f.clock.now})
}

// fakeGeometry returns queued bounds, one per call, repeating the last.
type fakeGeometry struct {
	bounds []image.Rectangle
	err    error
	calls  int
}

func (g *fakeGeometry) PrimaryBounds() (image.Rectangle, error) {
	g.calls++
	if g.err != nil {
		return image.Rectangle{}, g.err
	}
	i := g.calls - 1
	if i >= len(g.bounds) {
		i = len(g.bounds) - 1
	}
	return g.bounds[i], nil
}

var errNoDisplay = errors.New("no active displays")

// fakeSource is a clipboard with a settable counter and content.
type fakeSource struct {
	count  int64
	text   string
	hasTxt bool
	reads  int
}

func (f *fakeSource) ChangeCount() int64 { return f.count }

func (f *fakeSource) ReadText() (string, bool) {
	f.reads++
	return f.text, f.hasTxt
}

// copyText simulates a user copying text.
func (f *fakeSource) copyText(s string) {
	f.count++
	f.text = s
	f.hasTxt = true
}

// copyImage simulates a copy with no text representation.
func (f *fakeSource) copyImage() {
	f.count++
	f.text = ""
	f.hasTxt = false
}

type harness struct {
	clock   *fakeClock
	surface *fakeSurface
	geo     *fakeGeometry
	source  *fakeSource
	state   *State
	hud     *Lifecycle
	poller  *Poller
	fatals  []error
}

func newHarness() *harness {
	h := &harness{
		clock:  &fakeClock{},
		geo:    &fakeGeometry{bounds: []image.Rectangle{image.Rect(0, 0, 1920, 1080)}},
		source: &fakeSource{count: 42, text: "already there", hasTxt: true},
	}
	h.surface = &fakeSurface{clock: h.clock}
	h.state = NewState(h.source, h.surface, WithFatal(func(err error) { h.fatals = append(h.fatals, err) }))
	h.hud = NewLifecycle(h.state, h.geo, h.clock, LifecycleConfig{Prefix: DefaultPrefix})
	h.poller = NewPoller(h.state, h.source, h.hud)
	return h
}
