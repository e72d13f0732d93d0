// Package codec provides the encode/decode boundary between a store value
// and the payload bytes an adapter persists. Codecs return their library's
// own errors; adapters wrap them into the papyr error taxonomy.
package codec

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
)

// Codec encodes a value to payload bytes and back.
type Codec interface {
	// Marshal serializes v into payload bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes payload bytes into v (a pointer).
	Unmarshal(data []byte, v any) error
	// Name identifies the codec in config files and diagnostics.
	Name() string
}

// JSON is the default codec. Output is pretty-printed (indented, one field
// per line) so persisted files stay diffable and hand-editable.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string { return "json" }

// TOML encodes the value as a TOML document.
type TOML struct{}

func (TOML) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOML) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func (TOML) Name() string { return "toml" }
