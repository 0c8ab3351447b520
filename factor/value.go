// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"strconv"
)

// Kind enumerates the closed set of domain value variants.
type Kind uint8

const (
	KindInvalid Kind = iota // zero Value; never a domain member
	KindNumber              // float64 payload
	KindText                // free-form string payload
	KindToken               // opaque symbol (e.g. "true", "high")
)

// String returns the kind label.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindToken:
		return "token"
	default:
		return "invalid"
	}
}

// Value is a single domain entry. Values are comparable with == and usable as
// map keys; two values are equal only if both kind and payload match, so
// Number(1) and Text("1") are distinct domain entries.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// Number returns a numeric Value.
func Number(x float64) Value { return Value{kind: KindNumber, num: x} }

// Int returns a numeric Value holding float64(x).
func Int(x int) Value { return Number(float64(x)) }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Token returns an opaque token Value.
func Token(s string) Value { return Value{kind: KindToken, str: s} }

// Bool returns Token("true") or Token("false").
func Bool(b bool) Value {
	if b {
		return Token("true")
	}

	return Token("false")
}

// ValueOf converts a Go value into a Value.
// Supported: Value (returned as is), all int/uint widths and floats (Number),
// string (Text), bool (Bool).
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		return t, nil
	case int:
		return Int(t), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case float32:
		return Number(float64(t)), nil
	case float64:
		return Number(t), nil
	case string:
		return Text(t), nil
	case bool:
		return Bool(t), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
	}
}

// Values converts every element with ValueOf, stopping at the first failure.
func Values(xs ...any) ([]Value, error) {
	out := make([]Value, len(xs))
	for i, x := range xs {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// MustValues is Values for literals known to be valid; it panics otherwise.
func MustValues(xs ...any) []Value {
	out, err := Values(xs...)
	if err != nil {
		panic(err)
	}

	return out
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v is anything other than the zero Value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Float returns the numeric payload; ok is false for non-numbers.
func (v Value) Float() (x float64, ok bool) {
	return v.num, v.kind == KindNumber
}

// String renders the payload. Numbers use the shortest round-trip form.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText, KindToken:
		return v.str
	default:
		return "<invalid>"
	}
}
