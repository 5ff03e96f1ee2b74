//go:build linux

package clip

import (
	"log/slog"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

// New returns the Linux clipboard. X11 access through golang.design/x/clipboard
// is preferred; without it, the xclip/xsel/wl-paste tools are used for text
// only, and failing both a headless no-op source is returned.
func New() (Source, error) {
	err := clipboard.Init()
	if err == nil {
		return newCounterSource("Linux X11 clipboard (poll)", readX11), nil
	}
	if !atotto.Unsupported {
		slog.Warn("X11 clipboard unavailable, using clipboard tools", "err", err)
		return newCounterSource("Linux clipboard tools (poll)", readTools), nil
	}
	slog.Warn("clipboard unavailable, running headless", "err", err)
	return headlessSource{}, nil
}

func readX11() (text, img []byte) {
	return clipboard.Read(clipboard.FmtText), clipboard.Read(clipboard.FmtImage)
}

func readTools() (text, img []byte) {
	s, err := atotto.ReadAll()
	if err != nil {
		return nil, nil
	}
	return []byte(s), nil
}
