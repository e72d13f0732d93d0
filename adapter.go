package papyr

// Adapter is the storage contract a backend implements to persist a single
// value of type T. The bundled implementations live in the adapters package;
// custom backends only need these two methods.
//
// Implementations used with Shared must be safe for concurrent use.
type Adapter[T any] interface {
	// Read returns the previously persisted value, if any. A backend that
	// has never been written reports found=false with a nil error; the
	// handle then falls back to the caller-supplied default. Any other
	// I/O or decode failure is returned as an error.
	Read() (value T, found bool, err error)

	// Write persists the value. Implementations must be atomic with
	// respect to concurrent or interrupted reads: a reader never observes
	// a partially written payload, and a crash mid-write leaves either
	// the old payload or the new one intact.
	Write(value *T) error
}
