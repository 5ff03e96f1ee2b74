// Package hud implements the clipboard HUD core: the shared application state,
// the show/auto-hide lifecycle of the overlay and the clipboard change poller.
//
// Everything that touches the desktop is reached through the small
// collaborator interfaces below, so the state machine can be driven by a fake
// clock and fake surface in tests.
package hud

import (
	"image"
	"time"
)

// ClipboardSource is the platform clipboard.
type ClipboardSource interface {
	// ChangeCount returns an opaque, non-decreasing counter that changes on
	// every clipboard write.
	ChangeCount() int64

	// ReadText returns the plain-text representation of the clipboard. ok is
	// false when the clipboard holds no text (an image, a file reference).
	ReadText() (text string, ok bool)
}

// Surface is the single persistent overlay window.
type Surface interface {
	SetText(text string)
	// Reposition centres the surface within bounds.
	Reposition(bounds image.Rectangle)
	// Show brings the surface to front without taking keyboard focus.
	Show()
	Hide()
}

// Geometry reports the primary display bounds. It is queried on every show
// because the primary display can change at runtime.
type Geometry interface {
	PrimaryBounds() (image.Rectangle, error)
}

// Timer is a pending one-shot callback.
type Timer interface {
	// Cancel guarantees the callback will not run after Cancel returns.
	Cancel()
}

// Scheduler arms one-shot timers whose callbacks are delivered on the same
// serialized event loop as every other handler.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Phase is the visibility state of the overlay.
type Phase int

const (
	Hidden Phase = iota
	VisiblePendingHide
)

func (p Phase) String() string {
	switch p {
	case Hidden:
		return "hidden"
	case VisiblePendingHide:
		return "visible-pending-hide"
	default:
		return "unknown"
	}
}
