package spatialhasher

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/spatialhasher/internal/coord"
	"github.com/hupe1980/spatialhasher/internal/wire"
)

// Every structured form of a point is a record with the fields x, y and z.
// Decoding requires all three and never substitutes a default.

const (
	axisX = "x"
	axisY = "y"
	axisZ = "z"
)

var axes = [3]string{axisX, axisY, axisZ}

var errNullCoordinate = errors.New("coordinate is null")

// coords collects decoded axis values and reports the first missing one.
type coords struct {
	v    [3]float64
	seen [3]bool
}

func (c *coords) set(axis string, f float64) {
	for i, a := range axes {
		if a == axis {
			c.v[i] = f
			c.seen[i] = true
			return
		}
	}
}

func (c *coords) point() (Point3D, error) {
	for i, ok := range c.seen {
		if !ok {
			return Point3D{}, &MissingCoordinateError{Axis: axes[i]}
		}
	}
	return Point3D{X: c.v[0], Y: c.v[1], Z: c.v[2]}, nil
}

func isAxis(s string) bool {
	return s == axisX || s == axisY || s == axisZ
}

// MarshalJSON encodes p as {"x":…,"y":…,"z":…}.
//
// Finite coordinates are JSON numbers; NaN and the infinities are strings
// that carry the exact bit pattern (see Format in internal/coord).
func (p Point3D) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 80)
	b = append(b, `{"x":`...)
	b = coord.AppendJSON(b, p.X)
	b = append(b, `,"y":`...)
	b = coord.AppendJSON(b, p.Y)
	b = append(b, `,"z":`...)
	b = coord.AppendJSON(b, p.Z)
	b = append(b, '}')
	return b, nil
}

type jsonRecord struct {
	X json.RawMessage `json:"x"`
	Y json.RawMessage `json:"y"`
	Z json.RawMessage `json:"z"`
}

// UnmarshalJSON decodes a record produced by MarshalJSON or any object with
// numeric x, y and z fields.
func (p *Point3D) UnmarshalJSON(data []byte) error {
	var rec jsonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return malformed(err)
	}

	var c coords
	for i, raw := range [3]json.RawMessage{rec.X, rec.Y, rec.Z} {
		if len(raw) == 0 {
			continue
		}
		f, err := coord.ParseJSON(raw)
		if err != nil {
			return &InvalidCoordinateError{Axis: axes[i], cause: err}
		}
		c.set(axes[i], f)
	}

	pt, err := c.point()
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// MarshalYAML encodes p as a mapping with the keys x, y and z.
func (p Point3D) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, f := range [3]float64{p.X, p.Y, p.Z} {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: axes[i]},
			yamlScalar(f),
		)
	}
	return node, nil
}

func yamlScalar(f float64) *yaml.Node {
	switch {
	case coord.IsFinite(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: coord.Format(f)}
	case f > 0:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case f < 0:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	default:
		// .nan would drop the payload.
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: coord.Format(f)}
	}
}

// UnmarshalYAML decodes a mapping with numeric x, y and z entries.
func (p *Point3D) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null") {
		return &MissingCoordinateError{Axis: axisX}
	}
	if value.Kind != yaml.MappingNode {
		return malformed(fmt.Errorf("line %d: expected a mapping, got %s", value.Line, value.ShortTag()))
	}

	var c coords
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if !isAxis(key.Value) {
			continue
		}
		f, err := yamlCoord(val)
		if err != nil {
			return &InvalidCoordinateError{Axis: key.Value, cause: err}
		}
		c.set(key.Value, f)
	}

	pt, err := c.point()
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

func yamlCoord(n *yaml.Node) (float64, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!int":
		return coord.ParseInt(n.Value)
	case "!!float":
		return coord.Parse(n.Value)
	case "!!str":
		return coord.ParseNonFinite(n.Value)
	default:
		return 0, fmt.Errorf("line %d: %s is not a number", n.Line, n.ShortTag())
	}
}

type cborRecord struct {
	X float64 `cbor:"x"`
	Y float64 `cbor:"y"`
	Z float64 `cbor:"z"`
}

// MarshalCBOR encodes p as a CBOR map of three 8-byte floats.
func (p Point3D) MarshalCBOR() ([]byte, error) {
	return wire.Marshal(cborRecord{X: p.X, Y: p.Y, Z: p.Z})
}

// UnmarshalCBOR decodes a CBOR map with numeric x, y and z entries.
func (p *Point3D) UnmarshalCBOR(data []byte) error {
	var rec map[string]cbor.RawMessage
	if err := wire.Unmarshal(data, &rec); err != nil {
		return malformed(err)
	}
	if rec == nil {
		return malformed(fmt.Errorf("expected a map, got null"))
	}

	var c coords
	for _, axis := range axes {
		raw, ok := rec[axis]
		if !ok {
			continue
		}
		if isCBORNull(raw) {
			return &InvalidCoordinateError{Axis: axis, cause: errNullCoordinate}
		}
		var f float64
		if err := wire.Unmarshal(raw, &f); err != nil {
			return &InvalidCoordinateError{Axis: axis, cause: err}
		}
		c.set(axis, f)
	}

	pt, err := c.point()
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// CBOR null and undefined decode into a float64 as a no-op.
func isCBORNull(raw cbor.RawMessage) bool {
	return len(raw) == 1 && (raw[0] == 0xf6 || raw[0] == 0xf7)
}

// Msgsize returns an upper bound on the MessagePack size of p.
func (p Point3D) Msgsize() int {
	return msgp.MapHeaderSize + 3*(msgp.StringPrefixSize+1+msgp.Float64Size)
}

// MarshalMsg appends p to b as a MessagePack map of three float64 values.
func (p Point3D) MarshalMsg(b []byte) ([]byte, error) {
	o := msgp.Require(b, p.Msgsize())
	o = msgp.AppendMapHeader(o, 3)
	for i, f := range [3]float64{p.X, p.Y, p.Z} {
		o = msgp.AppendString(o, axes[i])
		o = msgp.AppendFloat64(o, f)
	}
	return o, nil
}

// readMsgCoord reads any MessagePack number as a float64.
func readMsgCoord(bts []byte) (float64, []byte, error) {
	switch msgp.NextType(bts) {
	case msgp.IntType:
		i, o, err := msgp.ReadInt64Bytes(bts)
		return float64(i), o, err
	case msgp.UintType:
		u, o, err := msgp.ReadUint64Bytes(bts)
		return float64(u), o, err
	default:
		return msgp.ReadFloat64Bytes(bts)
	}
}

// UnmarshalMsg decodes a MessagePack map with numeric x, y and z entries from
// the front of bts and returns the remaining bytes.
func (p *Point3D) UnmarshalMsg(bts []byte) ([]byte, error) {
	n, bts, err := msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		return bts, malformed(err)
	}

	var c coords
	for ; n > 0; n-- {
		var field []byte
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			return bts, malformed(err)
		}
		axis := string(field)
		if !isAxis(axis) {
			bts, err = msgp.Skip(bts)
			if err != nil {
				return bts, malformed(msgp.WrapError(err, axis))
			}
			continue
		}
		var f float64
		f, bts, err = readMsgCoord(bts)
		if err != nil {
			return bts, &InvalidCoordinateError{Axis: axis, cause: err}
		}
		c.set(axis, f)
	}

	pt, err := c.point()
	if err != nil {
		return bts, err
	}
	*p = pt
	return bts, nil
}
