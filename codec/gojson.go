package codec

import gojson "github.com/goccy/go-json"

// GoJSON uses github.com/goccy/go-json; its output matches JSON byte for byte
// for points.
type GoJSON struct{}

// Marshal returns the JSON encoding of v.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal parses JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name reports the registry name.
func (GoJSON) Name() string { return "go-json" }

// Append appends the JSON encoding of v to dst.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
