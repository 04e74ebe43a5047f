package testutil

import (
	"rally-results-service/internal/app/championships"
	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/store"
)

// NewChampionshipService builds a championships service backed by an in-memory store preloaded with champs.
func NewChampionshipService(champs []rally.Championship) *championships.Service {
	ms := store.NewMemoryStore()
	if len(champs) > 0 {
		ms.SetChampionships(champs)
	}
	return championships.NewService(ms)
}
