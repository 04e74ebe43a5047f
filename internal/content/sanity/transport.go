package sanity

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// resolveBaseURL derives the API host from the project id unless an explicit
// base URL is configured. The CDN host serves cached reads.
func resolveBaseURL(raw, projectID string, useCDN bool) string {
	if raw != "" {
		return strings.TrimSuffix(raw, "/")
	}
	host := "api.sanity.io"
	if useCDN {
		host = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s", projectID, host)
}

func resolveAPIVersion(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return defaultAPIVersion
	}
	return v
}

func resolveDataset(d string) string {
	if d = strings.TrimSpace(d); d == "" {
		return defaultDataset
	}
	return d
}

// parseRetryAfter understands both delta-seconds and HTTP-date values.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
