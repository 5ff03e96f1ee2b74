package clip

import (
	"bytes"
	"sync"
)

// reader fetches the raw text and image payloads; nil means absent.
type reader func() (text, img []byte)

// counterSource synthesises a change counter for clipboards that have none:
// every observation whose payload differs from the previous one bumps it.
type counterSource struct {
	name string
	read reader

	mu       sync.Mutex
	count    int64
	lastText []byte
	lastImg  []byte
}

func newCounterSource(name string, read reader) *counterSource {
	s := &counterSource{name: name, read: read}
	s.lastText, s.lastImg = read()
	return s
}

func (s *counterSource) Name() string { return s.name }

func (s *counterSource) ChangeCount() int64 {
	text, img := s.read()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !bytes.Equal(text, s.lastText) || !bytes.Equal(img, s.lastImg) {
		s.lastText = text
		s.lastImg = img
		s.count++
	}
	return s.count
}

// ReadText returns the text captured by the last ChangeCount, so the content
// shown is the content that moved the counter.
func (s *counterSource) ReadText() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeText(s.lastText)
}

func (s *counterSource) Close() {}
