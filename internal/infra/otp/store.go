package otp

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Session holds a pending lead submission waiting for verification.
// It lives only in the cache: once verified (or expired) it is gone.
type Session struct {
	Code     int
	Name     string
	Email    string
	Phone    string
	Message  string
	Services []string
	IssuedAt time.Time
}

// Store keeps at most one live session per email. Entries expire after
// the configured TTL, so a verify call after the window behaves exactly
// like "no session was ever issued".
type Store struct {
	c   *gocache.Cache
	ttl time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		c:   gocache.New(ttl, time.Minute),
		ttl: ttl,
	}
}

// Put overwrites any pending session for the same email.
func (s *Store) Put(email string, session Session) {
	s.c.Set(key(email), session, s.ttl)
}

func (s *Store) Get(email string) (Session, bool) {
	v, ok := s.c.Get(key(email))
	if !ok {
		return Session{}, false
	}
	session, ok := v.(Session)
	return session, ok
}

func (s *Store) Delete(email string) {
	s.c.Delete(key(email))
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
