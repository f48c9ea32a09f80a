// Package codec centralizes structured encoding of points.
//
// Every codec writes a point as a record with the fields x, y and z and reads
// it back with the exact bit pattern of each coordinate. Selection is by
// stable name, so a stored record can say which codec produced it.
package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a value lacks the hooks a codec requires.
var ErrUnsupported = errors.New("codec: unsupported value")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "cbor":
		return CBOR{}, true
	case "msgpack":
		return MsgPack{}, true
	case "yaml":
		return YAML{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "cbor", "msgpack", "yaml"}
}

// MustMarshal is a helper for tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
