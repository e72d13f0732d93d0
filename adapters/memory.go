package adapters

import (
	"sync"

	"papyr"
	"papyr/codec"
)

// Memory is an in-process backend: a lock-guarded payload slot. Handles
// holding the same *Memory observe each other's writes immediately, which is
// how tests simulate a shared backend without file I/O.
//
// The slot stores encoded payload bytes, not the value itself, so a reader
// always gets a fresh decode and never aliases another handle's value.
type Memory[T any] struct {
	codec codec.Codec

	mu      sync.RWMutex
	payload []byte
}

var _ papyr.Adapter[struct{}] = (*Memory[struct{}])(nil)

// NewMemory creates an empty in-memory adapter using the pretty-JSON codec.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{codec: codec.JSON{}}
}

// WithCodec swaps the payload codec and returns the adapter for chaining.
// Call it before the first Read or Write.
func (m *Memory[T]) WithCodec(c codec.Codec) *Memory[T] {
	m.codec = c
	return m
}

func (m *Memory[T]) Read() (T, bool, error) {
	var value T
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.payload == nil {
		return value, false, nil
	}
	if err := m.codec.Unmarshal(m.payload, &value); err != nil {
		return value, false, papyr.SerializationError("decode memory payload", err)
	}
	return value, true, nil
}

func (m *Memory[T]) Write(value *T) error {
	data, err := m.codec.Marshal(value)
	if err != nil {
		return papyr.SerializationError("encode memory payload", err)
	}
	m.mu.Lock()
	m.payload = data
	m.mu.Unlock()
	return nil
}
