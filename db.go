package papyr

import "papyr/internal/logging"

var logger = logging.For("papyr")

// DB is the blocking handle: it owns the in-memory value directly and
// performs no locking. A DB must not be shared across goroutines without
// external synchronization; use Shared for that.
type DB[T any] struct {
	adapter Adapter[T]
	data    T
}

// New constructs a handle over adapter. If the backend holds a payload it
// becomes the initial value, otherwise def is used. The default is never
// written back automatically; the backend stays untouched until Write or
// Update.
func New[T any](adapter Adapter[T], def T) (*DB[T], error) {
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
	return &DB[T]{adapter: adapter, data: data}, nil
}

// Data returns the in-memory value. The pointer is valid for the handle's
// lifetime; mutations through it are memory-only until Write.
func (db *DB[T]) Data() *T {
	return &db.data
}

// Write persists the current value through the adapter. The in-memory value
// is not touched; the adapter's error is surfaced as-is.
func (db *DB[T]) Write() error {
	return db.adapter.Write(&db.data)
}

// Update applies fn to the value and then persists it. If the write fails
// the mutation is NOT rolled back: the error means "memory updated,
// persistence failed", and callers may simply retry Write. Callers needing
// all-or-nothing semantics must snapshot the value around Update themselves.
func (db *DB[T]) Update(fn func(*T)) error {
	fn(&db.data)
	return db.Write()
}
