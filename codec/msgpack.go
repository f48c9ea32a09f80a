package codec

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MsgPack is a MessagePack codec backed by github.com/tinylib/msgp.
//
// msgp has no reflection path: values must implement msgp.Marshaler to
// encode and msgp.Unmarshaler to decode, as Point3D does.
type MsgPack struct{}

// Marshal encodes the value to MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) {
	m, ok := v.(msgp.Marshaler)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not implement msgp.Marshaler", ErrUnsupported, v)
	}
	return m.MarshalMsg(nil)
}

// Unmarshal decodes the MessagePack data into v. Trailing bytes are an error.
func (MsgPack) Unmarshal(data []byte, v any) error {
	u, ok := v.(msgp.Unmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T does not implement msgp.Unmarshaler", ErrUnsupported, v)
	}
	rest, err := u.UnmarshalMsg(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("msgpack: %d trailing bytes", len(rest))
	}
	return nil
}

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }
