package memory

import (
	"sync"
	"time"
)

// idSource hands out millisecond timestamps, bumped when two creates land
// in the same millisecond.
type idSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func newIDSource() *idSource {
	return &idSource{now: time.Now}
}

func (s *idSource) next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
