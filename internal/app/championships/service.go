package championships

import "rally-results-service/internal/domain/rally"

// Store defines the contract for persisting and retrieving championships.
type Store interface {
	ListChampionships() []rally.Championship
	GetChampionship(slug string) (rally.Championship, bool)
	SetChampionships(champs []rally.Championship)
}

// Service coordinates championship reads and refreshes using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Championships returns the current set of championships.
func (s *Service) Championships() []rally.Championship {
	return s.store.ListChampionships()
}

// ChampionshipBySlug returns a single championship if present.
func (s *Service) ChampionshipBySlug(slug string) (rally.Championship, bool) {
	return s.store.GetChampionship(slug)
}

// ReplaceChampionships swaps the in-memory championships with a new snapshot.
func (s *Service) ReplaceChampionships(champs []rally.Championship) {
	s.store.SetChampionships(champs)
}
