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

package position

import (
	"fmt"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// BarrePosition is one finger laid across the strings StartString through
// EndString (inclusive, 1-based) at Fret.
//
// A barre always covers at least two strings, so StartString < EndString.
type BarrePosition struct {
	Fret        int
	StartString int
	EndString   int
}

// Compile-time checks that BarrePosition implements the model interfaces.
var _ model.Model = (*BarrePosition)(nil)
var _ model.Comparable[BarrePosition] = BarrePosition{}
var _ model.Cloneable[BarrePosition] = BarrePosition{}

// NewBarrePosition returns a validated BarrePosition. A span whose start is
// not below its end fails with an *InvalidSpanError carrying the span.
func NewBarrePosition(fret, startString, endString int) (BarrePosition, error) {
	b := BarrePosition{Fret: fret, StartString: startString, EndString: endString}
	if err := b.Validate(); err != nil {
		return BarrePosition{}, err
	}
	return b, nil
}

// ParseBarrePosition parses "<Fret>:<Start>-<End>".
func ParseBarrePosition(s string) (BarrePosition, error) {
	return parseAs[BarrePosition]("BarrePosition", s)
}

// Validate requires Fret >= 1, StartString >= 1 and StartString < EndString.
func (b BarrePosition) Validate() error {
	if b.Fret < 1 {
		return &errors.ValidationError{
			Type:   "BarrePosition",
			Field:  "Fret",
			Reason: fmt.Sprintf("must be >= 1, got %d", b.Fret),
			Value:  b.Fret,
		}
	}
	if b.StartString < 1 {
		return &errors.ValidationError{
			Type:   "BarrePosition",
			Field:  "StartString",
			Reason: fmt.Sprintf("must be >= 1, got %d", b.StartString),
			Value:  b.StartString,
		}
	}
	if b.StartString >= b.EndString {
		return &errors.InvalidSpanError{Start: b.StartString, End: b.EndString}
	}
	return nil
}

// Width returns the number of strings covered.
func (b BarrePosition) Width() int {
	return b.EndString - b.StartString + 1
}

// Covers reports whether str lies within the barre's span.
func (b BarrePosition) Covers(str int) bool {
	return str >= b.StartString && str <= b.EndString
}

// Overlaps reports whether b and other share a fret and at least one string.
func (b BarrePosition) Overlaps(other BarrePosition) bool {
	return b.Fret == other.Fret &&
		b.StartString <= other.EndString &&
		other.StartString <= b.EndString
}

// String returns "<Fret>:<Start>-<End>".
func (b BarrePosition) String() string {
	return fmt.Sprintf("%d:%d-%d", b.Fret, b.StartString, b.EndString)
}

// TypeName returns "BarrePosition".
func (b BarrePosition) TypeName() string { return "BarrePosition" }

// Redacted returns the same string representation as String().
func (b BarrePosition) Redacted() string { return b.String() }

// IsZero reports whether b is the (invalid) zero value.
func (b BarrePosition) IsZero() bool { return b == BarrePosition{} }

// Equal reports whether b and other are the same barre.
func (b BarrePosition) Equal(other BarrePosition) bool { return b == other }

// Clone returns a copy of b.
func (b BarrePosition) Clone() BarrePosition { return b }

func (b BarrePosition) EqualPosition(other ElementPosition) bool {
	o, ok := other.(BarrePosition)
	return ok && o == b
}

func (b BarrePosition) ClonePosition() ElementPosition { return b }

// MarshalJSON encodes the barre as "<Fret>:<Start>-<End>".
func (b BarrePosition) MarshalJSON() ([]byte, error) { return marshalJSON(b) }

// UnmarshalJSON decodes a JSON string via ParseBarrePosition.
func (b *BarrePosition) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSON[BarrePosition]("BarrePosition", data)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalYAML encodes the barre as "<Fret>:<Start>-<End>".
func (b BarrePosition) MarshalYAML() (any, error) { return marshalYAML(b) }

// UnmarshalYAML decodes a scalar string via ParseBarrePosition.
func (b *BarrePosition) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAML[BarrePosition]("BarrePosition", node)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
