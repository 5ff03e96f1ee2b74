//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger cliphud_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

import (
	"fmt"

	"golang.design/x/clipboard"
)

type darwinSource struct{}

// New returns the macOS clipboard backed by the general pasteboard.
func New() (Source, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return darwinSource{}, nil
}

func (darwinSource) Name() string { return "macOS NSPasteboard" }

func (darwinSource) ChangeCount() int64 { return int64(C.cliphud_changeCount()) }

func (darwinSource) ReadText() (string, bool) {
	return decodeText(clipboard.Read(clipboard.FmtText))
}

func (darwinSource) Close() {}
