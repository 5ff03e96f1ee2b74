package hud

import (
	"log/slog"
	"time"
)

// DefaultPollInterval is how often the clipboard change counter is read.
const DefaultPollInterval = 300 * time.Millisecond

// Poller turns change-counter transitions into Show calls.
type Poller struct {
	state  *State
	source ClipboardSource
	hud    *Lifecycle
}

// NewPoller returns a Poller that shows new clipboard text through hud. The
// baseline counter is the one captured by NewState.
func NewPoller(state *State, source ClipboardSource, hud *Lifecycle) *Poller {
	return &Poller{state: state, source: source, hud: hud}
}

// Poll performs one poll cycle and reports whether the counter had moved.
//
// The new counter is recorded before the content is read, so a clipboard
// without a text representation is consumed once and never re-fires.
func (p *Poller) Poll() bool {
	changed := false
	p.state.do(func() {
		s := p.state
		cc := p.source.ChangeCount()
		if cc == s.lastSeen {
			return
		}
		changed = true
		s.lastSeen = cc

		text, ok := p.source.ReadText()
		if !ok {
			slog.Debug("clipboard changed without text", "change_count", cc)
			return
		}
		slog.Debug("clipboard changed", "change_count", cc, "bytes", len(text))
		p.hud.showLocked(text)
	})
	return changed
}
