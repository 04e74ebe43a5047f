package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"rally-results-service/internal/domain/rally"
)

// StubSource is a test double for a championships source.
type StubSource struct {
	Champs []rally.Championship
	Err    error
	Calls  atomic.Int32
	// Notify is closed on the first fetch when set.
	Notify chan struct{}

	mu   sync.Mutex
	once sync.Once
}

// FetchChampionships returns the configured championships and error while tracking calls.
func (s *StubSource) FetchChampionships(ctx context.Context) ([]rally.Championship, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.once.Do(func() { close(s.Notify) })
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Champs, s.Err
}

// SetErr swaps the error returned by later fetches.
func (s *StubSource) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// RecordingSink is a test double for a championships sink.
type RecordingSink struct {
	mu      sync.Mutex
	written [][]rally.Championship
}

// ReplaceChampionships records the snapshot for verification in tests.
func (s *RecordingSink) ReplaceChampionships(champs []rally.Championship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, champs)
}

// Last returns the most recent snapshot, if any.
func (s *RecordingSink) Last() ([]rally.Championship, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.written) == 0 {
		return nil, false
	}
	return s.written[len(s.written)-1], true
}

// Writes reports how many snapshots were recorded.
func (s *RecordingSink) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.written)
}
