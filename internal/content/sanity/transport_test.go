package sanity

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveBaseURL(t *testing.T) {
	cases := []struct {
		raw    string
		cdn    bool
		expect string
	}{
		{"", false, "https://proj.api.sanity.io"},
		{"", true, "https://proj.apicdn.sanity.io"},
		{"http://localhost:3333/", false, "http://localhost:3333"},
	}

	for _, c := range cases {
		if got := resolveBaseURL(c.raw, "proj", c.cdn); got != c.expect {
			t.Fatalf("resolveBaseURL(%q, cdn=%v) = %s, want %s", c.raw, c.cdn, got, c.expect)
		}
	}
}

func TestResolveAPIVersionStripsPrefix(t *testing.T) {
	if got := resolveAPIVersion("v2024-01-01"); got != "2024-01-01" {
		t.Fatalf("expected prefix stripped, got %s", got)
	}
	if got := resolveAPIVersion(""); got != defaultAPIVersion {
		t.Fatalf("expected default version, got %s", got)
	}
}

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	if got := resolveHTTPClient(custom, time.Second); got != custom {
		t.Fatalf("expected provided client to be used")
	}
	client := resolveHTTPClient(nil, 2*time.Second).(*http.Client)
	if client.Timeout != 2*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 9, 5, 12, 0, 0, 0, time.UTC)
	if got := parseRetryAfter("7", now); got != 7*time.Second {
		t.Fatalf("expected 7s, got %s", got)
	}
	date := now.Add(30 * time.Second).Format(http.TimeFormat)
	if got := parseRetryAfter(date, now); got != 30*time.Second {
		t.Fatalf("expected 30s from http date, got %s", got)
	}
	if got := parseRetryAfter("soon", now); got != 0 {
		t.Fatalf("expected 0 for garbage, got %s", got)
	}
}
