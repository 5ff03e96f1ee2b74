//go:build !darwin && !windows && !linux

package clip

// New returns a no-op clipboard; no backend exists for this platform.
func New() (Source, error) {
	return headlessSource{}, nil
}
