package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It handles typical value types (strings, numbers, structs, maps, slices).
// Time, complex numbers, funcs and channels may not round-trip.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used for new snapshots unless another one is
// configured. Existing snapshots are always decoded with the codec named in
// their header.
var Default Codec = GoJSON{}
