package schedule

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type IDSource interface {
	NewID() string
}

// ULIDSource issues monotonic ULIDs. Safe for concurrent use.
type ULIDSource struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

func NewULIDSource() *ULIDSource {
	return &ULIDSource{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (s *ULIDSource) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}
