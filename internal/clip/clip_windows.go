//go:build windows

package clip

import (
	"fmt"

	"golang.design/x/clipboard"
	"golang.org/x/sys/windows"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetClipboardSequenceNumber = user32.NewProc("GetClipboardSequenceNumber")
)

type windowsSource struct{}

// New returns the Windows clipboard. The change counter is the system
// clipboard sequence number.
func New() (Source, error) {
	if err := procGetClipboardSequenceNumber.Find(); err != nil {
		return nil, fmt.Errorf("GetClipboardSequenceNumber: %w", err)
	}
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return windowsSource{}, nil
}

func (windowsSource) Name() string { return "Windows Clipboard" }

func (windowsSource) ChangeCount() int64 {
	r, _, _ := procGetClipboardSequenceNumber.Call()
	return int64(uint32(r))
}

func (windowsSource) ReadText() (string, bool) {
	return decodeText(clipboard.Read(clipboard.FmtText))
}

func (windowsSource) Close() {}
