package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"

	"github.com/hupe1980/spatialhasher"
	"github.com/hupe1980/spatialhasher/codec"
)

func specialPoints() []spatialhasher.Point3D {
	negZero := math.Copysign(0, -1)
	return []spatialhasher.Point3D{
		{X: 1, Y: 2, Z: 3},
		{X: 0, Y: 0, Z: 0},
		{X: negZero, Y: 0, Z: negZero},
		{X: math.NaN(), Y: 1, Z: 1},
		{X: math.Float64frombits(0x7ff4000000000123), Y: math.Float64frombits(0xfff8000000000000), Z: 0.1},
		{X: math.Inf(1), Y: math.Inf(-1), Z: math.MaxFloat64},
		{X: math.SmallestNonzeroFloat64, Y: -1e-300, Z: 123456789.125},
	}
}

func assertSameBits(t *testing.T, want, got spatialhasher.Point3D) {
	t.Helper()
	assert.Equal(t, math.Float64bits(want.X), math.Float64bits(got.X), "x")
	assert.Equal(t, math.Float64bits(want.Y), math.Float64bits(got.Y), "y")
	assert.Equal(t, math.Float64bits(want.Z), math.Float64bits(got.Z), "z")
}

func TestByName(t *testing.T) {
	for _, name := range codec.Names() {
		c, ok := codec.ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := codec.ByName("protobuf")
	assert.False(t, ok)
}

func TestRoundTripBits(t *testing.T) {
	for _, name := range codec.Names() {
		c, _ := codec.ByName(name)
		t.Run(name, func(t *testing.T) {
			for _, p := range specialPoints() {
				data, err := c.Marshal(p)
				require.NoError(t, err, p.String())

				var got spatialhasher.Point3D
				require.NoError(t, c.Unmarshal(data, &got), string(data))
				assertSameBits(t, p, got)
				assert.True(t, p.Equal(got))
			}
		})
	}
}

type located struct {
	Name  string                `json:"name" yaml:"name" cbor:"name"`
	Point spatialhasher.Point3D `json:"point" yaml:"point" cbor:"point"`
}

func TestRoundTripNested(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, codec.CBOR{}, codec.YAML{}} {
		t.Run(c.Name(), func(t *testing.T) {
			in := []located{
				{Name: "origin", Point: spatialhasher.New(0, 0, 0)},
				{Name: "nan", Point: spatialhasher.New(math.NaN(), math.Inf(-1), math.Copysign(0, -1))},
			}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out []located
			require.NoError(t, c.Unmarshal(data, &out))
			require.Len(t, out, len(in))
			for i := range in {
				assert.Equal(t, in[i].Name, out[i].Name)
				assertSameBits(t, in[i].Point, out[i].Point)
			}
		})
	}
}

func TestJSONShape(t *testing.T) {
	p := spatialhasher.New(1.0, 2.0, 3.0)

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(p)
			require.NoError(t, err)
			assert.JSONEq(t, `{"x":1,"y":2,"z":3}`, string(data))

			var fields map[string]float64
			require.NoError(t, c.Unmarshal(data, &fields))
			assert.Equal(t, map[string]float64{"x": 1, "y": 2, "z": 3}, fields)

			var got spatialhasher.Point3D
			require.NoError(t, c.Unmarshal([]byte(`{"z":3,"x":1,"y":2}`), &got))
			assert.Equal(t, p, got)
		})
	}
}

func TestYAMLShape(t *testing.T) {
	data, err := codec.YAML{}.Marshal(spatialhasher.New(1.5, math.Inf(1), math.NaN()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "x: 1.5\n")
	assert.Contains(t, string(data), "y: .inf\n")
	assert.Contains(t, string(data), "nan(0x7ff8000000000001)")

	var got spatialhasher.Point3D
	require.NoError(t, codec.YAML{}.Unmarshal([]byte("z: 3\ny: -.inf\nx: 7\n"), &got))
	assert.Equal(t, 7.0, got.X)
	assert.True(t, math.IsInf(got.Y, -1))
	assert.Equal(t, 3.0, got.Z)
}

func TestMalformed(t *testing.T) {
	cborMissing := codec.MustMarshal(codec.CBOR{}, map[string]float64{"x": 1, "y": 2})
	cborString := codec.MustMarshal(codec.CBOR{}, map[string]any{"x": "one", "y": 2.0, "z": 3.0})
	cborNull := codec.MustMarshal(codec.CBOR{}, map[string]any{"x": nil, "y": 2.0, "z": 3.0})

	msgMissing := msgp.AppendMapHeader(nil, 2)
	msgMissing = msgp.AppendString(msgMissing, "x")
	msgMissing = msgp.AppendFloat64(msgMissing, 1)
	msgMissing = msgp.AppendString(msgMissing, "y")
	msgMissing = msgp.AppendFloat64(msgMissing, 2)

	msgString := msgp.AppendMapHeader(nil, 3)
	msgString = msgp.AppendString(msgString, "x")
	msgString = msgp.AppendString(msgString, "one")
	msgString = msgp.AppendString(msgString, "y")
	msgString = msgp.AppendFloat64(msgString, 2)
	msgString = msgp.AppendString(msgString, "z")
	msgString = msgp.AppendFloat64(msgString, 3)

	tests := []struct {
		name    string
		codec   codec.Codec
		data    []byte
		missing string
		invalid string
	}{
		{"json missing z", codec.JSON{}, []byte(`{"x":1,"y":2}`), "z", ""},
		{"json null x", codec.JSON{}, []byte(`{"x":null,"y":2,"z":3}`), "", "x"},
		{"json string y", codec.JSON{}, []byte(`{"x":1,"y":"two","z":3}`), "", "y"},
		{"json quoted finite", codec.JSON{}, []byte(`{"x":1,"y":2,"z":"3"}`), "", "z"},
		{"json array", codec.JSON{}, []byte(`[1,2,3]`), "", ""},
		{"json empty object", codec.JSON{}, []byte(`{}`), "x", ""},
		{"yaml missing y", codec.YAML{}, []byte("x: 1\nz: 3\n"), "y", ""},
		{"yaml string x", codec.YAML{}, []byte("x: one\ny: 2\nz: 3\n"), "", "x"},
		{"yaml sequence z", codec.YAML{}, []byte("x: 1\ny: 2\nz: [3]\n"), "", "z"},
		{"yaml null y", codec.YAML{}, []byte("x: 1\ny: ~\nz: 3\n"), "", "y"},
		{"yaml scalar", codec.YAML{}, []byte("42\n"), "", ""},
		{"yaml empty document", codec.YAML{}, []byte(""), "x", ""},
		{"yaml null document", codec.YAML{}, []byte("~\n"), "x", ""},
		{"yaml explicit null", codec.YAML{}, []byte("--- null\n"), "x", ""},
		{"cbor missing z", codec.CBOR{}, cborMissing, "z", ""},
		{"cbor string x", codec.CBOR{}, cborString, "", "x"},
		{"cbor null x", codec.CBOR{}, cborNull, "", "x"},
		{"msgpack missing z", codec.MsgPack{}, msgMissing, "z", ""},
		{"msgpack string x", codec.MsgPack{}, msgString, "", "x"},
		{"msgpack not a map", codec.MsgPack{}, msgp.AppendFloat64(nil, 1), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p spatialhasher.Point3D
			err := tt.codec.Unmarshal(tt.data, &p)
			require.Error(t, err)
			assert.ErrorIs(t, err, spatialhasher.ErrMalformedPoint)

			if tt.missing != "" {
				var mc *spatialhasher.MissingCoordinateError
				require.True(t, errors.As(err, &mc), err.Error())
				assert.Equal(t, tt.missing, mc.Axis)
			}
			if tt.invalid != "" {
				var ic *spatialhasher.InvalidCoordinateError
				require.True(t, errors.As(err, &ic), err.Error())
				assert.Equal(t, tt.invalid, ic.Axis)
				assert.NotNil(t, errors.Unwrap(ic))
			}

			assert.Equal(t, spatialhasher.Point3D{}, p, "no partial decode")
		})
	}
}

func TestYAMLNullLeavesDestination(t *testing.T) {
	p := spatialhasher.New(9, 9, 9)
	require.Error(t, codec.YAML{}.Unmarshal([]byte("~\n"), &p))
	assert.Equal(t, spatialhasher.New(9, 9, 9), p)

	// yaml.v3 does not hand nested nulls to UnmarshalYAML; the field keeps
	// its zero value.
	var l located
	require.NoError(t, codec.YAML{}.Unmarshal([]byte("name: a\npoint: ~\n"), &l))
	assert.Equal(t, spatialhasher.Point3D{}, l.Point)
}

func TestYAMLIntegers(t *testing.T) {
	var p spatialhasher.Point3D
	require.NoError(t, codec.YAML{}.Unmarshal([]byte("x: 0x10\ny: 0o17\nz: -0\n"), &p))
	assert.Equal(t, 16.0, p.X)
	assert.Equal(t, 15.0, p.Y)
	assert.True(t, math.Signbit(p.Z), "-0 keeps its sign")

	require.NoError(t, codec.YAML{}.Unmarshal([]byte("x: 1_000\ny: 18446744073709551615\nz: -7\n"), &p))
	assert.Equal(t, 1000.0, p.X)
	assert.Equal(t, float64(math.MaxUint64), p.Y)
	assert.Equal(t, -7.0, p.Z)
}

func TestYAMLNonMapTarget(t *testing.T) {
	var m map[string]float64
	require.NoError(t, codec.YAML{}.Unmarshal([]byte("x: 1\n"), &m))
	assert.Equal(t, map[string]float64{"x": 1}, m)
}

func TestMsgPackNumericKinds(t *testing.T) {
	data := msgp.AppendMapHeader(nil, 3)
	data = msgp.AppendString(data, "x")
	data = msgp.AppendInt(data, -3)
	data = msgp.AppendString(data, "y")
	data = msgp.AppendUint(data, 2)
	data = msgp.AppendString(data, "z")
	data = msgp.AppendFloat32(data, 1.5)

	var p spatialhasher.Point3D
	require.NoError(t, codec.MsgPack{}.Unmarshal(data, &p))
	assert.Equal(t, spatialhasher.New(-3, 2, 1.5), p)
}

func TestSyntaxErrors(t *testing.T) {
	// Framing errors are reported by the decoding library before a point sees the data.
	cborData := codec.MustMarshal(codec.CBOR{}, spatialhasher.New(1, 2, 3))

	var p spatialhasher.Point3D
	assert.Error(t, codec.CBOR{}.Unmarshal(cborData[:len(cborData)-2], &p))
	assert.Error(t, codec.JSON{}.Unmarshal([]byte(`{"x":1,`), &p))
	assert.Error(t, codec.YAML{}.Unmarshal([]byte("x: [1\n"), &p))
}

func TestGoJSONMalformed(t *testing.T) {
	var p spatialhasher.Point3D
	assert.Error(t, codec.GoJSON{}.Unmarshal([]byte(`{"x":1,"y":2}`), &p))
	assert.Error(t, codec.GoJSON{}.Unmarshal([]byte(`{"x":1,"y":2,"z":true}`), &p))
}

func TestMsgPackUnsupported(t *testing.T) {
	_, err := codec.MsgPack{}.Marshal(map[string]float64{"x": 1})
	assert.ErrorIs(t, err, codec.ErrUnsupported)

	var m map[string]float64
	err = codec.MsgPack{}.Unmarshal([]byte{0x80}, &m)
	assert.ErrorIs(t, err, codec.ErrUnsupported)
}

func TestMsgPackTrailingBytes(t *testing.T) {
	data := codec.MustMarshal(codec.MsgPack{}, spatialhasher.New(1, 2, 3))
	data = append(data, 0xc0)

	var p spatialhasher.Point3D
	assert.Error(t, codec.MsgPack{}.Unmarshal(data, &p))
}

func TestGoJSONAppend(t *testing.T) {
	dst := []byte("points=")
	out, err := codec.GoJSON{}.Append(dst, spatialhasher.New(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, `points={"x":1,"y":2,"z":3}`, string(out))
}

func BenchmarkMarshal(b *testing.B) {
	p := spatialhasher.New(1.25, -2.5, math.NaN())
	for _, name := range codec.Names() {
		c, _ := codec.ByName(name)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Marshal(p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
