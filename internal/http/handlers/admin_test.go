package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rally-results-service/internal/domain/rally"
	"rally-results-service/internal/testutil"
)

type stubRefresher struct {
	champs []rally.Championship
	err    error
	calls  int
}

func (s *stubRefresher) Refresh(ctx context.Context) ([]rally.Championship, error) {
	_ = ctx
	s.calls++
	return s.champs, s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/championships/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresAuth(t *testing.T) {
	ref := &stubRefresher{}
	h := NewAdminHandler(ref, "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshChampionships), adminRequest(token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if ref.calls != 0 {
		t.Fatalf("expected no refresh without auth, got %d", ref.calls)
	}
}

func TestAdminRefreshDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshChampionships), adminRequest("anything"))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshWithoutRefresher(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshChampionships), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestAdminRefreshRunsProbe(t *testing.T) {
	ref := &stubRefresher{champs: []rally.Championship{{ID: "wrc-2024"}, {ID: "erc-2024"}}}
	h := NewAdminHandler(ref, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshChampionships), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" || resp["championships"] != float64(2) {
		t.Fatalf("unexpected response %v", resp)
	}
	if ref.calls != 1 {
		t.Fatalf("expected one refresh, got %d", ref.calls)
	}
}

func TestAdminRefreshSurfacesUpstreamFailure(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{err: errors.New("upstream down")}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshChampionships), adminRequest("secret"))
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}
