package web

import (
	"context"
	"sync"
	"time"

	"github.com/ziadkadry99/folio/internal/gallery"
)

// DefaultSessionTTL is used when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

type session struct {
	gallery  *gallery.Gallery
	lastSeen time.Time
}

// Sessions keeps one gallery per visitor. A single lock serializes every
// transition, so each visitor sees their events applied in order.
type Sessions struct {
	mu       sync.Mutex
	catalog  gallery.Catalog
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

// NewSessions creates a registry over catalog c.
func NewSessions(c gallery.Catalog, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		catalog:  c,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// get returns the visitor's session, creating a closed gallery on first
// use. Callers hold s.mu.
func (s *Sessions) get(visitorID string) *session {
	sess, ok := s.sessions[visitorID]
	if !ok {
		sess = &session{gallery: gallery.New(s.catalog)}
		s.sessions[visitorID] = sess
	}
	sess.lastSeen = s.now()
	return sess
}

// Apply runs fn against the visitor's gallery and returns the resulting
// view along with fn's error. The state is whatever fn left it as; gallery
// operations leave it unchanged when they fail.
func (s *Sessions) Apply(visitorID string, fn func(*gallery.Gallery) error) (gallery.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.get(visitorID).gallery
	err := fn(g)
	return g.View(), err
}

// View returns the visitor's current gallery view.
func (s *Sessions) View(visitorID string) gallery.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(visitorID).gallery.View()
}

// Len reports how many visitors have state.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run prunes idle sessions every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}
