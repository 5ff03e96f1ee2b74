package clip

// headlessSource is a no-op clipboard for environments without a display
// server. Its counter never moves, so the HUD never fires.
type headlessSource struct{}

func (headlessSource) Name() string             { return "headless (no-op)" }
func (headlessSource) ChangeCount() int64       { return 0 }
func (headlessSource) ReadText() (string, bool) { return "", false }
func (headlessSource) Close()                   {}
