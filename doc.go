// Package papyr is a typed single-document store: a process holds one
// caller-defined value, mutates it in memory, and persists it through a
// pluggable storage adapter with crash-safe atomic writes.
//
// Two handle flavors exist. DB is the plain one: no internal locking, direct
// access to the value, suitable for a single owner. Shared guards the value
// with a reader-writer lock so any number of goroutines can read while
// writers get exclusive access.
//
// Durability is always explicit: constructing a handle never writes, and
// mutations stay in memory until Write or Update is called.
//
//	db, err := papyr.New(adapters.NewFile[Notes]("notes.json"), Notes{})
//	if err != nil {
//		return err
//	}
//	db.Data().Items = append(db.Data().Items, "milk")
//	if err := db.Write(); err != nil {
//		return err
//	}
package papyr
