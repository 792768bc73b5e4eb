package state

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one run of the program. The id ends up in log lines and
// in exported document metadata.
type Session struct {
	ID      string
	Started time.Time
}

func NewSession() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

// Short returns the first block of the id, enough to tell sessions apart in logs.
func (s *Session) Short() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}
