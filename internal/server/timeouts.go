package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second

	minWriteTimeout = 10 * time.Second
	// renderHeadroom covers template rendering once the content fetches settle.
	renderHeadroom = 2 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor sizes the response deadline of a rally page: the rally
// fetch followed by the concurrent section fetches, each bounded by
// storeTimeout.
func writeTimeoutFor(storeTimeout time.Duration) time.Duration {
	if d := 2*storeTimeout + renderHeadroom; d > minWriteTimeout {
		return d
	}
	return minWriteTimeout
}
