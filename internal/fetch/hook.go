// Package fetch provides keyed fetchers that track a tri-state result for
// their current key and drop responses that arrive for a superseded key.
package fetch

import (
	"context"
	"sync"

	"rally-results-service/internal/metrics"
)

// Func fetches the value for key.
type Func[K comparable, T any] func(ctx context.Context, key K) (T, error)

// State is a snapshot of a hook. Version increments whenever Data is replaced.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
	Version uint64
}

// Hook owns the fetch state for one key at a time. Last key wins: a response
// is applied only if its key is still current when it arrives.
type Hook[K comparable, T any] struct {
	name     string
	fn       Func[K, T]
	recorder *metrics.Recorder

	mu     sync.Mutex
	key    K
	hasKey bool
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	state  State[T]
}

// New returns an idle hook. name labels stale-discard metrics.
func New[K comparable, T any](name string, fn Func[K, T], recorder *metrics.Recorder) *Hook[K, T] {
	return &Hook[K, T]{name: name, fn: fn, recorder: recorder}
}

// Set makes key current and starts a fetch for it, unless key is already current.
func (h *Hook[K, T]) Set(ctx context.Context, key K) {
	h.mu.Lock()
	if h.hasKey && h.key == key {
		h.mu.Unlock()
		return
	}
	h.supersedeLocked()
	h.gen++
	gen := h.gen
	h.key, h.hasKey = key, true

	reqCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	h.cancel, h.done = cancel, done
	h.state = State[T]{Loading: true, Version: h.state.Version + 1}
	h.mu.Unlock()

	go h.run(reqCtx, gen, key, done)
}

// Reset marks the key absent: no fetch is issued and the state becomes neutral.
// A response still in flight is discarded.
func (h *Hook[K, T]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.supersedeLocked()
	h.gen++
	var zero K
	h.key, h.hasKey = zero, false
	h.state = State[T]{Version: h.state.Version + 1}
}

// State returns the current snapshot.
func (h *Hook[K, T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Key returns the current key and whether one is set.
func (h *Hook[K, T]) Key() (K, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.key, h.hasKey
}

// Wait blocks until the current key's fetch settles or ctx is done. If the
// key changes while waiting, Wait follows the newer fetch.
func (h *Hook[K, T]) Wait(ctx context.Context) error {
	for {
		h.mu.Lock()
		done := h.done
		h.mu.Unlock()
		if done == nil {
			return nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *Hook[K, T]) run(ctx context.Context, gen uint64, key K, done chan struct{}) {
	data, err := h.fn(ctx, key)

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen {
		h.recorder.RecordStaleDiscard(h.name)
		return
	}

	h.cancel()
	h.cancel = nil
	if err != nil {
		var zero T
		data = zero
	}
	h.state = State[T]{Data: data, Err: err, Version: h.state.Version + 1}
	close(done)
	h.done = nil
}

// supersedeLocked cancels the in-flight fetch and releases its waiters.
func (h *Hook[K, T]) supersedeLocked() {
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
	if h.done != nil {
		close(h.done)
		h.done = nil
	}
}
