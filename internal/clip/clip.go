// Package clip provides the platform clipboard as a change counter plus a
// plain-text reader. Build constraints select the implementation:
//
//	clip_darwin.go:   macOS NSPasteboard changeCount via cgo, text via golang.design/x/clipboard
//	clip_windows.go:  Windows GetClipboardSequenceNumber, text via golang.design/x/clipboard
//	clip_linux.go:    Linux, counter synthesised from content changes (X11 or xclip/wl-paste)
//	clip_other.go:    headless stub
package clip

import (
	"strings"
	"unicode/utf8"
)

// Source is a platform clipboard.
type Source interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ChangeCount returns a counter that changes whenever the clipboard is
	// written. Values are only compared for equality.
	ChangeCount() int64

	// ReadText returns the clipboard's plain-text representation, or ok=false
	// if there is none.
	ReadText() (text string, ok bool)

	// Close releases any resources held by the backend.
	Close()
}

// decodeText converts a raw text payload. nil means the clipboard has no
// text representation; invalid UTF-8 is replaced rather than rejected.
func decodeText(b []byte) (string, bool) {
	if b == nil {
		return "", false
	}
	s := string(b)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return s, true
}
