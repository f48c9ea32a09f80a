// Package coord formats and parses single float64 coordinates for text wire forms.
//
// Finite values use the shortest representation that parses back to the same
// bits (including the sign of zero). JSON and YAML have no number syntax for
// non-finite values, so those travel as strings:
//
//	+Inf  -> "+Inf"
//	-Inf  -> "-Inf"
//	NaN   -> "nan(0x7ff8000000000001)"  (full 64-bit pattern)
//
// Parse additionally accepts "Inf", "NaN" and the YAML spellings ".inf",
// "+.inf", "-.inf" and ".nan" (case-insensitive), so hand-written records decode.
package coord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	nanPrefix = "nan(0x"
	nanSuffix = ")"
)

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Format returns the text form of f.
func Format(f float64) string {
	return string(Append(nil, f))
}

// Append appends the text form of f to dst.
func Append(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		dst = append(dst, nanPrefix...)
		dst = appendHex64(dst, math.Float64bits(f))
		return append(dst, nanSuffix...)
	case math.IsInf(f, 1):
		return append(dst, "+Inf"...)
	case math.IsInf(f, -1):
		return append(dst, "-Inf"...)
	default:
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
}

// AppendJSON appends f as a JSON value: a bare number when finite,
// a quoted text form otherwise.
func AppendJSON(dst []byte, f float64) []byte {
	if IsFinite(f) {
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	}
	dst = append(dst, '"')
	dst = Append(dst, f)
	return append(dst, '"')
}

// ParseJSON parses a raw JSON value produced by AppendJSON (or any JSON number).
func ParseJSON(data []byte) (float64, error) {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return 0, err
		}
		return ParseNonFinite(unq)
	}
	return strconv.ParseFloat(s, 64)
}

// Parse parses any accepted text form.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if f, err := ParseNonFinite(s); err == nil {
		return f, nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseInt parses a YAML integer (decimal, 0x, 0o, 0b, underscores) as a
// float64. A leading minus on zero is kept. Values outside int64 fall back
// to unsigned and then float parsing.
func ParseInt(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		if i == 0 && strings.HasPrefix(s, "-") {
			return math.Copysign(0, -1), nil
		}
		return float64(i), nil
	}
	if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, 64); err == nil {
		return float64(u), nil
	}
	return strconv.ParseFloat(s, 64)
}

// ParseNonFinite parses the string spellings of NaN and the infinities.
// Finite numbers are rejected.
func ParseNonFinite(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "+inf", "inf", ".inf", "+.inf":
		return math.Inf(1), nil
	case "-inf", "-.inf":
		return math.Inf(-1), nil
	case "nan", ".nan":
		return math.NaN(), nil
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, nanPrefix) && strings.HasSuffix(lower, nanSuffix) {
		hex := lower[len(nanPrefix) : len(lower)-len(nanSuffix)]
		bits, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return 0, err
		}
		f := math.Float64frombits(bits)
		if !math.IsNaN(f) {
			return 0, fmt.Errorf("bit pattern %#016x is not a NaN", bits)
		}
		return f, nil
	}

	return 0, fmt.Errorf("invalid non-finite coordinate %q", s)
}

func appendHex64(dst []byte, v uint64) []byte {
	const digits = "0123456789abcdef"
	for shift := 60; shift >= 0; shift -= 4 {
		dst = append(dst, digits[(v>>uint(shift))&0xf])
	}
	return dst
}
