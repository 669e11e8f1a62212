// Package traits models the resolved trait output of a generative object:
// an ordered list of named scalar values produced by an upstream decoder.
// Values arrive as JSON tagged unions ({"String": …} or {"Number": …}) and
// are immutable once decoded.
package traits

import (
	"encoding/json"
	"fmt"

	"github.com/sporeprotocol/layergen/pkg/codes"
)

// Value is a single resolved trait scalar: either text or an unsigned
// integer. The zero value behaves as an empty string.
type Value struct {
	str    string
	num    uint64
	number bool
}

// StringValue constructs a text-valued scalar.
func StringValue(s string) Value {
	return Value{str: s}
}

// NumberValue constructs a numeric scalar.
func NumberValue(n uint64) Value {
	return Value{num: n, number: true}
}

// IsNumber reports whether the scalar holds a number.
func (v Value) IsNumber() bool {
	return v.number
}

// AsString returns the text payload. Consulting a numeric scalar as text is
// a hard kind mismatch and yields the parsed-trait-type error.
func (v Value) AsString() (string, error) {
	if v.number {
		return "", codes.New(codes.InvalidParsedTraitType, "traits: value is a number, expected a string")
	}
	return v.str, nil
}

// AsNumber returns the numeric payload. Consulting a text scalar as a number
// is a hard kind mismatch and yields the parsed-trait-type error.
func (v Value) AsNumber() (uint64, error) {
	if !v.number {
		return 0, codes.New(codes.InvalidParsedTraitType, "traits: value is a string, expected a number")
	}
	return v.num, nil
}

// Equal reports whether two scalars hold the same kind and payload.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String renders the scalar for diagnostics and previews.
func (v Value) String() string {
	if v.number {
		return fmt.Sprintf("%d", v.num)
	}
	return v.str
}

type valueWire struct {
	String *string `json:"String,omitempty"`
	Number *uint64 `json:"Number,omitempty"`
}

// MarshalJSON encodes the scalar in its tagged-union wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.number {
		return json.Marshal(valueWire{Number: &v.num})
	}
	return json.Marshal(valueWire{String: &v.str})
}

// UnmarshalJSON decodes the tagged-union wire form. Exactly one of the
// String/Number tags must be present.
func (v *Value) UnmarshalJSON(data []byte) error {
	var wire valueWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("traits: decode value: %w", err)
	}
	switch {
	case wire.String != nil && wire.Number == nil:
		*v = StringValue(*wire.String)
	case wire.Number != nil && wire.String == nil:
		*v = NumberValue(*wire.Number)
	default:
		return fmt.Errorf("traits: value must carry exactly one of String or Number")
	}
	return nil
}

// Output is one resolved trait: a name plus the ordered values the upstream
// decoder produced for it. Names need not be unique across an output list;
// lookups always consult the first occurrence.
type Output struct {
	Name   string  `json:"name"`
	Traits []Value `json:"traits"`
}
