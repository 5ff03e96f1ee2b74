package overlay

import (
	"errors"
	"image"

	"github.com/kbinani/screenshot"
)

// ErrNoDisplay is returned when no active display is attached.
var ErrNoDisplay = errors.New("overlay: no active displays")

// Screens reports display geometry through the OS screen APIs.
type Screens struct{}

// PrimaryBounds returns the bounds of display 0, queried afresh on each call.
func (Screens) PrimaryBounds() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}, ErrNoDisplay
	}
	return screenshot.GetDisplayBounds(0), nil
}
