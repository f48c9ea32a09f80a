package codec

import "github.com/hupe1980/spatialhasher/internal/wire"

// CBOR is a binary codec backed by github.com/fxamacker/cbor/v2.
//
// Floats are written as 8-byte values with no NaN or infinity conversion,
// for points and for any other float64 passed through it.
type CBOR struct{}

// Marshal encodes the value to CBOR.
func (CBOR) Marshal(v any) ([]byte, error) { return wire.Marshal(v) }

// Unmarshal decodes the CBOR data into v.
func (CBOR) Unmarshal(data []byte, v any) error { return wire.Unmarshal(data, v) }

// Name returns the unique name of the codec ("cbor").
func (CBOR) Name() string { return "cbor" }
