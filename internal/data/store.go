package data

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"keynes-cross/internal/simulation"
)

type storeEntry struct {
	Result    *simulation.Result
	ExpiresAt time.Time
}

// ResultStore keeps recent simulation results in memory so the API can serve
// follow-up exports (CSV) by ID. Entries expire after ttl; nothing is persisted.
type ResultStore struct {
	mu    sync.RWMutex
	store map[string]*storeEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewResultStore creates a store. A non-positive ttl defaults to one hour.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultStore{
		store: make(map[string]*storeEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Put stores r and returns its new ID.
func (s *ResultStore) Put(r *simulation.Result) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[id] = &storeEntry{
		Result:    r,
		ExpiresAt: s.now().Add(s.ttl),
	}
	return id
}

// Get retrieves a result if present and not expired.
func (s *ResultStore) Get(id string) (*simulation.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.store[id]
	if !ok || s.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

// Len counts stored entries, including expired ones not yet swept.
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// Sweep removes expired entries and returns how many were dropped.
func (s *ResultStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, entry := range s.store {
		if now.After(entry.ExpiresAt) {
			delete(s.store, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until stop is closed.
func (s *ResultStore) RunSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			return
		}
	}
}
