// Package adapters bundles the storage backends shipped with papyr: an
// atomic-rename file backend, a shared in-memory backend, and a bbolt
// backend. All of them push value bytes through a codec.Codec and report
// failures with the papyr error taxonomy.
package adapters

import (
	"errors"
	"os"

	"papyr"
	"papyr/codec"
	"papyr/internal/logging"
)

var logger = logging.For("adapters")

// tmpSuffix is appended to the target path for the scratch file used by
// atomic writes. A leftover scratch file after a crash is disposable.
const tmpSuffix = ".tmp"

// File persists the value to a single file. Writes are atomic: the payload
// goes to a colocated scratch file, is synced, then renamed onto the target
// path, so a concurrent reader or a crash sees either the old payload or the
// new one, never a mixture. Concurrent writer processes on the same path are
// not coordinated; last rename wins.
type File[T any] struct {
	path  string
	codec codec.Codec
}

var _ papyr.Adapter[struct{}] = (*File[struct{}])(nil)

// NewFile creates a file adapter for path using the pretty-JSON codec.
func NewFile[T any](path string) *File[T] {
	return &File[T]{path: path, codec: codec.JSON{}}
}

// WithCodec swaps the payload codec and returns the adapter for chaining.
func (f *File[T]) WithCodec(c codec.Codec) *File[T] {
	f.codec = c
	return f
}

// Path returns the target path.
func (f *File[T]) Path() string { return f.path }

func (f *File[T]) Read() (T, bool, error) {
	var value T
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return value, false, nil
	}
	if err != nil {
		return value, false, papyr.IOError("read "+f.path, err)
	}
	if err := f.codec.Unmarshal(data, &value); err != nil {
		return value, false, papyr.SerializationError("decode "+f.path, err)
	}
	return value, true, nil
}

func (f *File[T]) Write(value *T) error {
	data, err := f.codec.Marshal(value)
	if err != nil {
		return papyr.SerializationError("encode for "+f.path, err)
	}

	tmp := f.path + tmpSuffix
	if err := writeAndSync(tmp, data); err != nil {
		return papyr.IOError("write "+tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return papyr.IOError("rename "+tmp, err)
	}
	logger.Debug("persisted payload", "path", f.path, "bytes", len(data))
	return nil
}

// writeAndSync writes data to path and fsyncs before closing, so the rename
// that follows never publishes a file whose content is still in flight.
func writeAndSync(path string, data []byte) error {
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := fh.Write(data); err != nil {
		_ = fh.Close()
		return err
	}
	if err := fh.Sync(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
