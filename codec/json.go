package codec

import (
	"encoding/json"
)

// JSON uses encoding/json. Non-finite coordinates travel as strings
// holding the bit pattern.
type JSON struct{}

// Marshal returns the JSON encoding of v.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal parses JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name reports the registry name.
func (JSON) Name() string { return "json" }

// Default is the codec MustMarshal uses when given nil.
var Default Codec = GoJSON{}
