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

// MarkPosition is a single finger mark: StringNum is 1-based, Fret 0 is the
// open-string row.
type MarkPosition struct {
	StringNum int
	Fret      int
}

// Compile-time checks that MarkPosition implements the model interfaces.
var _ model.Model = (*MarkPosition)(nil)
var _ model.Comparable[MarkPosition] = MarkPosition{}
var _ model.Cloneable[MarkPosition] = MarkPosition{}

// NewMarkPosition returns a validated MarkPosition.
func NewMarkPosition(str, fret int) (MarkPosition, error) {
	m := MarkPosition{StringNum: str, Fret: fret}
	if err := m.Validate(); err != nil {
		return MarkPosition{}, err
	}
	return m, nil
}

// ParseMarkPosition parses "<String>:<Fret>".
func ParseMarkPosition(s string) (MarkPosition, error) {
	return parseAs[MarkPosition]("MarkPosition", s)
}

// Validate requires StringNum >= 1 and Fret >= 0.
func (m MarkPosition) Validate() error {
	if m.StringNum < 1 {
		return &errors.ValidationError{
			Type:   "MarkPosition",
			Field:  "StringNum",
			Reason: fmt.Sprintf("must be >= 1, got %d", m.StringNum),
			Value:  m.StringNum,
		}
	}
	if m.Fret < 0 {
		return &errors.ValidationError{
			Type:   "MarkPosition",
			Field:  "Fret",
			Reason: fmt.Sprintf("must be >= 0, got %d", m.Fret),
			Value:  m.Fret,
		}
	}
	return nil
}

// String returns "<String>:<Fret>".
func (m MarkPosition) String() string {
	return fmt.Sprintf("%d:%d", m.StringNum, m.Fret)
}

// TypeName returns "MarkPosition".
func (m MarkPosition) TypeName() string { return "MarkPosition" }

// Redacted returns the same string representation as String().
func (m MarkPosition) Redacted() string { return m.String() }

// IsZero reports whether m is the (invalid) zero value.
func (m MarkPosition) IsZero() bool { return m == MarkPosition{} }

// Equal reports whether m and other address the same cell.
func (m MarkPosition) Equal(other MarkPosition) bool { return m == other }

// Clone returns a copy of m.
func (m MarkPosition) Clone() MarkPosition { return m }

// IsOpen reports whether m sits on the open-string row.
func (m MarkPosition) IsOpen() bool { return m.Fret == 0 }

func (m MarkPosition) EqualPosition(other ElementPosition) bool {
	o, ok := other.(MarkPosition)
	return ok && o == m
}

func (m MarkPosition) ClonePosition() ElementPosition { return m }

// MarshalJSON encodes the position as "<String>:<Fret>".
func (m MarkPosition) MarshalJSON() ([]byte, error) { return marshalJSON(m) }

// UnmarshalJSON decodes a JSON string via ParseMarkPosition.
func (m *MarkPosition) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSON[MarkPosition]("MarkPosition", data)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalYAML encodes the position as "<String>:<Fret>".
func (m MarkPosition) MarshalYAML() (any, error) { return marshalYAML(m) }

// UnmarshalYAML decodes a scalar string via ParseMarkPosition.
func (m *MarkPosition) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAML[MarkPosition]("MarkPosition", node)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
