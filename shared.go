package papyr

import "sync"

// Shared is the concurrent handle: the value sits behind a reader-writer
// lock, so any number of goroutines may read while writers get exclusive
// access. A *Shared passed to several goroutines is the sharing mechanism;
// there is no separate clone step.
//
// Accessors are closure-scoped. The *T handed to a callback is only valid
// for the duration of the call and must not be retained.
type Shared[T any] struct {
	mu      sync.RWMutex
	adapter Adapter[T]
	data    T
}

// NewShared constructs a concurrent handle over adapter with the same load
// semantics as New: existing payload wins, otherwise def, and nothing is
// written until Write or Update.
func NewShared[T any](adapter Adapter[T], def T) (*Shared[T], error) {
	data, found, err := adapter.Read()
	if err != nil {
		return nil, err
	}
	if !found {
		data = def
		logger.Debug("no payload in backend, using default value")
	} else {
		logger.Debug("loaded value from backend")
	}
	return &Shared[T]{adapter: adapter, data: data}, nil
}

// View runs fn under the shared (read) lock. Concurrent Views proceed
// together; fn must not mutate the value.
func (s *Shared[T]) View(fn func(*T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Mutate runs fn under the exclusive lock. The mutation is memory-only;
// call Write to persist it.
func (s *Shared[T]) Mutate(fn func(*T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Write persists the current value while holding the shared lock, so
// concurrent readers proceed but mutators wait for the persist to finish.
func (s *Shared[T]) Write() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adapter.Write(&s.data)
}

// Update applies fn under the exclusive lock, releases it, then persists.
// As with DB.Update, a failed persist does not roll back the mutation.
func (s *Shared[T]) Update(fn func(*T)) error {
	s.Mutate(fn)
	return s.Write()
}
