package adapters

import (
	"go.etcd.io/bbolt"

	"papyr"
	"papyr/codec"
)

var (
	boltBucket = []byte("papyr")
	boltKey    = []byte("document")
)

// Bolt persists the value in a bbolt database, under a fixed bucket and key.
// bbolt's own transactional writes provide the atomicity the contract asks
// for, and its file lock keeps other processes out entirely.
type Bolt[T any] struct {
	db    *bbolt.DB
	codec codec.Codec
}

var _ papyr.Adapter[struct{}] = (*Bolt[struct{}])(nil)

// OpenBolt creates or opens a bbolt database at path with the pretty-JSON
// codec. The caller owns the returned adapter and must Close it.
func OpenBolt[T any](path string) (*Bolt[T], error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, papyr.IOError("open bolt db "+path, err)
	}
	return &Bolt[T]{db: db, codec: codec.JSON{}}, nil
}

// WithCodec swaps the payload codec and returns the adapter for chaining.
func (b *Bolt[T]) WithCodec(c codec.Codec) *Bolt[T] {
	b.codec = c
	return b
}

// Close releases the underlying database file.
func (b *Bolt[T]) Close() error {
	return b.db.Close()
}

func (b *Bolt[T]) Read() (T, bool, error) {
	var value T
	var payload []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(boltBucket)
		if bkt == nil {
			return nil
		}
		if v := bkt.Get(boltKey); v != nil {
			payload = make([]byte, len(v))
			copy(payload, v)
		}
		return nil
	})
	if err != nil {
		return value, false, papyr.IOError("read bolt payload", err)
	}
	if payload == nil {
		return value, false, nil
	}
	if err := b.codec.Unmarshal(payload, &value); err != nil {
		return value, false, papyr.SerializationError("decode bolt payload", err)
	}
	return value, true, nil
}

func (b *Bolt[T]) Write(value *T) error {
	data, err := b.codec.Marshal(value)
	if err != nil {
		return papyr.SerializationError("encode bolt payload", err)
	}
	err = b.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists(boltBucket)
		if err != nil {
			return err
		}
		return bkt.Put(boltKey, data)
	})
	if err != nil {
		return papyr.IOError("write bolt payload", err)
	}
	return nil
}
