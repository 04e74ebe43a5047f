package championships

import (
	"testing"

	"rally-results-service/internal/domain/rally"
)

type stubStore struct {
	listResult []rally.Championship
	getResult  rally.Championship
	getOK      bool
	getSlug    string

	setCalls int
	setValue []rally.Championship
}

func (s *stubStore) ListChampionships() []rally.Championship {
	return s.listResult
}

func (s *stubStore) GetChampionship(slug string) (rally.Championship, bool) {
	s.getSlug = slug
	return s.getResult, s.getOK
}

func (s *stubStore) SetChampionships(champs []rally.Championship) {
	s.setCalls++
	s.setValue = champs
}

func TestServiceChampionships(t *testing.T) {
	store := &stubStore{
		listResult: []rally.Championship{{ID: "one"}, {ID: "two"}},
	}
	svc := NewService(store)

	got := svc.Championships()
	if len(got) != 2 || got[0].ID != "one" || got[1].ID != "two" {
		t.Fatalf("unexpected championships returned: %+v", got)
	}
}

func TestServiceChampionshipBySlug(t *testing.T) {
	want := rally.Championship{ID: "abc", Slug: "wrc-2024"}
	store := &stubStore{getResult: want, getOK: true}
	svc := NewService(store)

	got, ok := svc.ChampionshipBySlug("wrc-2024")
	if !ok || got.ID != want.ID {
		t.Fatalf("expected championship %+v, got %+v (ok=%v)", want, got, ok)
	}
	if store.getSlug != "wrc-2024" {
		t.Fatalf("expected slug passed through, got %q", store.getSlug)
	}
}

func TestServiceReplaceChampionships(t *testing.T) {
	store := &stubStore{}
	svc := NewService(store)

	svc.ReplaceChampionships([]rally.Championship{{ID: "x"}})
	if store.setCalls != 1 || len(store.setValue) != 1 || store.setValue[0].ID != "x" {
		t.Fatalf("expected set to be called with new snapshot, got %+v", store)
	}
}
