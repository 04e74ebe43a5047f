package store

import (
	"sync"

	"rally-results-service/internal/domain/rally"
)

// MemoryStore keeps a thread-safe snapshot of championships in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	order  []rally.Championship
	bySlug map[string]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bySlug: make(map[string]int),
	}
}

// ListChampionships returns a copy of the championships in their stored order.
func (s *MemoryStore) ListChampionships() []rally.Championship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]rally.Championship, len(s.order))
	copy(result, s.order)
	return result
}

// GetChampionship retrieves a championship by slug.
func (s *MemoryStore) GetChampionship(slug string) (rally.Championship, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return rally.Championship{}, false
	}
	return s.order[i], true
}

// SetChampionships replaces the existing championships with a new snapshot.
// A later duplicate slug shadows an earlier one for lookups.
func (s *MemoryStore) SetChampionships(champs []rally.Championship) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]rally.Championship, len(champs))
	copy(s.order, champs)
	s.bySlug = make(map[string]int, len(champs))
	for i, c := range s.order {
		if c.Slug != "" {
			s.bySlug[c.Slug] = i
		}
	}
}
