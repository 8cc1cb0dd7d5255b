/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package fretboard

import (
	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// BarreType selects how AutoBarrePosition grows a barre.
type BarreType int

const (
	// NoBarre disables barre detection.
	NoBarre BarreType = iota

	// Partial extends the barre only across strings fretted exactly at the
	// barre fret.
	Partial

	// Full extends the barre across every string fretted at or above the
	// barre fret.
	Full
)

// Compile-time checks that BarreType implements the model interfaces.
var _ model.Model = (*BarreType)(nil)
var _ model.Comparable[BarreType] = NoBarre

// String constants for BarreType values.
const (
	NoBarreStr = "none"
	PartialStr = "partial"
	FullStr    = "full"
)

// String returns "none", "partial" or "full".
func (b BarreType) String() string {
	switch b {
	case NoBarre:
		return NoBarreStr
	case Partial:
		return PartialStr
	case Full:
		return FullStr
	default:
		return "unknown"
	}
}

// ParseBarreType accepts the lower-case names plus their capitalized and
// upper-case forms.
func ParseBarreType(s string) (BarreType, error) {
	switch s {
	case NoBarreStr, "None", "NONE":
		return NoBarre, nil
	case PartialStr, "Partial", "PARTIAL":
		return Partial, nil
	case FullStr, "Full", "FULL":
		return Full, nil
	default:
		return NoBarre, &errors.ParseError{Type: "BarreType", Value: s}
	}
}

// Valid reports whether b is a defined constant.
func (b BarreType) Valid() bool {
	return b >= NoBarre && b <= Full
}

// TypeName returns "BarreType".
func (b BarreType) TypeName() string { return "BarreType" }

// Redacted returns the same string representation as String().
func (b BarreType) Redacted() string { return b.String() }

// IsZero reports whether b is NoBarre.
func (b BarreType) IsZero() bool { return b == NoBarre }

// Equal reports whether b and other are the same type.
func (b BarreType) Equal(other BarreType) bool { return b == other }

// Validate returns a *ValidationError for undefined values.
func (b BarreType) Validate() error {
	if !b.Valid() {
		return &errors.ValidationError{Type: "BarreType", Reason: "invalid BarreType value", Value: int(b)}
	}
	return nil
}

// MarshalJSON encodes the type as its name.
func (b BarreType) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "BarreType", Value: int(b)}
	}
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string via ParseBarreType.
func (b *BarreType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return &errors.UnmarshalError{Type: "BarreType", Data: data, Reason: "expected a JSON string"}
	}
	return b.UnmarshalText(data[1 : len(data)-1])
}

// MarshalText implements encoding.TextMarshaler.
func (b BarreType) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "BarreType", Value: int(b)}
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BarreType) UnmarshalText(text []byte) error {
	parsed, err := ParseBarreType(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML encodes the type as its name.
func (b BarreType) MarshalYAML() (any, error) {
	if !b.Valid() {
		return nil, &errors.MarshalError{Type: "BarreType", Value: int(b)}
	}
	return b.String(), nil
}

// UnmarshalYAML decodes a scalar via ParseBarreType.
func (b *BarreType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "BarreType", Data: []byte(node.Value), Reason: err.Error()}
	}
	return b.UnmarshalText([]byte(s))
}
