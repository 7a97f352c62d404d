package report

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one ReportData snapshot per editing session, in memory only.
// Edits arrive as whole-object replacements: callers never mutate a stored
// snapshot in place, they hand in a complete successor. Nothing survives a
// process restart, which is the intended lifecycle.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]ReportData
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]ReportData)}
}

// NewSession creates a session seeded from the default template and returns
// its id.
func (s *Store) NewSession() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = DefaultReport()
	s.mu.Unlock()
	return id
}

// Snapshot returns a deep copy of the session's current report. Mutating
// the returned value has no effect on the store.
func (s *Store) Snapshot(id string) (ReportData, bool) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ReportData{}, false
	}
	return data.Clone(), true
}

// Replace swaps the session's snapshot for the given one. The incoming
// value is cloned, so the caller keeps ownership of what it passed in.
// It reports whether the session exists.
func (s *Store) Replace(id string, data ReportData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	s.sessions[id] = data.Clone()
	return true
}

// Has reports whether a session exists.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	_, ok := s.sessions[id]
	s.mu.RUnlock()
	return ok
}

// Drop removes a session. Missing ids are a no-op.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
