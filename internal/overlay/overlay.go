// Package overlay is the on-screen HUD: one borderless, always-on-top fyne
// window that is created at startup and only ever shown, hidden and
// re-texted afterwards.
//
// Every exported method may be called from any goroutine; UI work is handed
// to the fyne main loop with fyne.Do.
package overlay

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
)

// ErrUnsupportedDriver is returned when the fyne driver cannot create
// borderless windows (mobile, or the headless test driver).
var ErrUnsupportedDriver = errors.New("overlay: driver cannot create borderless windows")

// Style is the fixed look of the HUD.
type Style struct {
	Width        float32
	Height       float32
	Padding      float32
	FontSize     float32
	CornerRadius float32
	Opacity      float64 // background alpha, 0..1
}

// DefaultStyle is a 700x160 black panel at 80% opacity with 18pt white
// monospace text.
func DefaultStyle() Style {
	return Style{
		Width:        700,
		Height:       160,
		Padding:      20,
		FontSize:     18,
		CornerRadius: 6,
		Opacity:      0.8,
	}
}

// Window is the HUD surface.
type Window struct {
	win   fyne.Window
	lines *fyne.Container
	style Style
}

// New creates the HUD window, hidden, showing initial.
func New(a fyne.App, style Style, initial string) (*Window, error) {
	drv, ok := a.(desktop.App)
	if !ok {
		return nil, ErrUnsupportedDriver
	}
	return newWindow(drv.NewSplashWindow(), style, initial), nil
}

func newWindow(win fyne.Window, style Style, initial string) *Window {
	w := &Window{
		win:   win,
		lines: container.NewVBox(),
		style: style,
	}

	bg := canvas.NewRectangle(color.NRGBA{A: alpha(style.Opacity)})
	bg.CornerRadius = style.CornerRadius

	pad := style.Padding
	body := container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad),
		container.NewCenter(w.lines))

	win.SetPadded(false)
	win.SetContent(container.NewStack(bg, body))
	win.Resize(fyne.NewSize(style.Width, style.Height))
	w.setText(initial)
	win.Hide()
	return w
}

// SetText replaces the displayed text. Lines are centred.
func (w *Window) SetText(text string) {
	fyne.Do(func() { w.setText(text) })
}

func (w *Window) setText(text string) {
	objs := make([]fyne.CanvasObject, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		t := canvas.NewText(line, color.White)
		t.TextSize = w.style.FontSize
		t.TextStyle = fyne.TextStyle{Monospace: true}
		t.Alignment = fyne.TextAlignCenter
		objs = append(objs, t)
	}
	w.lines.Objects = objs
	w.lines.Refresh()
}

// Reposition resizes the window to fit within bounds and centres it on screen.
func (w *Window) Reposition(bounds image.Rectangle) {
	size := fit(w.style, bounds)
	fyne.Do(func() {
		w.win.Resize(size)
		w.win.CenterOnScreen()
	})
}

// Show raises the window. Splash windows do not request keyboard focus.
func (w *Window) Show() {
	fyne.Do(w.win.Show)
}

// Hide removes the window from the screen.
func (w *Window) Hide() {
	fyne.Do(w.win.Hide)
}

// fit clamps the styled size to the display bounds.
func fit(style Style, bounds image.Rectangle) fyne.Size {
	width, height := style.Width, style.Height
	if dx := float32(bounds.Dx()); dx > 0 && dx < width {
		width = dx
	}
	if dy := float32(bounds.Dy()); dy > 0 && dy < height {
		height = dy
	}
	return fyne.NewSize(width, height)
}

func alpha(opacity float64) uint8 {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return 0xff
	default:
		return uint8(opacity*0xff + 0.5)
	}
}
