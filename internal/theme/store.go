package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ziadkadry99/folio/internal/db"
)

// SQLStore keeps theme preferences in the visitor_preferences table.
type SQLStore struct {
	db *db.DB
}

// NewStore creates a SQLStore backed by the given database.
func NewStore(database *db.DB) *SQLStore {
	return &SQLStore{db: database}
}

// Get returns the saved mode for visitorID. The boolean is false when the
// visitor has no saved preference.
func (s *SQLStore) Get(ctx context.Context, visitorID string) (Mode, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme FROM visitor_preferences WHERE visitor_id = ?`, visitorID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying theme preference: %w", err)
	}
	m, ok := Parse(raw)
	if !ok {
		return "", false, nil
	}
	return m, true, nil
}

// Set saves m as visitorID's preference, replacing any previous value.
func (s *SQLStore) Set(ctx context.Context, visitorID string, m Mode) error {
	if _, ok := Parse(string(m)); !ok {
		return fmt.Errorf("invalid theme %q", m)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitor_preferences (visitor_id, theme, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(visitor_id) DO UPDATE SET
			theme = excluded.theme,
			updated_at = excluded.updated_at`,
		visitorID, string(m))
	if err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences in process memory. The web app falls back
// to it when no database is configured.
type MemoryStore struct {
	mu    sync.Mutex
	prefs map[string]Mode
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]Mode)}
}

func (s *MemoryStore) Get(_ context.Context, visitorID string) (Mode, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.prefs[visitorID]
	return m, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, visitorID string, m Mode) error {
	if _, ok := Parse(string(m)); !ok {
		return fmt.Errorf("invalid theme %q", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[visitorID] = m
	return nil
}
