package session

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-room-booking/models"
)

// Session is the server-side state of one visitor.
type Session struct {
	Token          string
	Clicks         models.ClickStats
	CreatedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
}

// New creates a session that expires ttl after now.
func New(token string, ttl time.Duration, now time.Time) *Session {
	return &Session{
		Token:          token,
		Clicks:         make(models.ClickStats),
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
	}
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Touch records activity and slides the expiry.
func (s *Session) Touch(ttl time.Duration, now time.Time) {
	s.LastActivityAt = now
	s.ExpiresAt = now.Add(ttl)
}

// Click increments the counter of target and returns the new value.
func (s *Session) Click(target string) int {
	if s.Clicks == nil {
		s.Clicks = make(models.ClickStats)
	}
	s.Clicks[target]++
	return s.Clicks[target]
}

func (s *Session) clone() *Session {
	c := *s
	c.Clicks = maps.Clone(s.Clicks)
	if c.Clicks == nil {
		c.Clicks = make(models.ClickStats)
	}
	return &c
}
