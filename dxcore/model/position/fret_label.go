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

// FretLabelPosition is a fret number drawn beside the grid.
type FretLabelPosition struct {
	Side FretLabelSide
	Fret int
}

// Compile-time checks that FretLabelPosition implements the model interfaces.
var _ model.Model = (*FretLabelPosition)(nil)
var _ model.Comparable[FretLabelPosition] = FretLabelPosition{}
var _ model.Cloneable[FretLabelPosition] = FretLabelPosition{}

// NewFretLabelPosition returns a validated FretLabelPosition.
func NewFretLabelPosition(side FretLabelSide, fret int) (FretLabelPosition, error) {
	l := FretLabelPosition{Side: side, Fret: fret}
	if err := l.Validate(); err != nil {
		return FretLabelPosition{}, err
	}
	return l, nil
}

// ParseFretLabelPosition parses "<Side>:<Fret>".
func ParseFretLabelPosition(s string) (FretLabelPosition, error) {
	return parseAs[FretLabelPosition]("FretLabelPosition", s)
}

// Validate checks the side and requires Fret >= 1.
func (l FretLabelPosition) Validate() error {
	if err := l.Side.Validate(); err != nil {
		return err
	}
	if l.Fret < 1 {
		return &errors.ValidationError{
			Type:   "FretLabelPosition",
			Field:  "Fret",
			Reason: fmt.Sprintf("must be >= 1, got %d", l.Fret),
			Value:  l.Fret,
		}
	}
	return nil
}

// String returns "<Side>:<Fret>", e.g. "Left:5".
func (l FretLabelPosition) String() string {
	return fmt.Sprintf("%s:%d", l.Side, l.Fret)
}

// TypeName returns "FretLabelPosition".
func (l FretLabelPosition) TypeName() string { return "FretLabelPosition" }

// Redacted returns the same string representation as String().
func (l FretLabelPosition) Redacted() string { return l.String() }

// IsZero reports whether l is the (invalid) zero value.
func (l FretLabelPosition) IsZero() bool { return l == FretLabelPosition{} }

// Equal reports whether l and other are the same label.
func (l FretLabelPosition) Equal(other FretLabelPosition) bool { return l == other }

// Clone returns a copy of l.
func (l FretLabelPosition) Clone() FretLabelPosition { return l }

func (l FretLabelPosition) EqualPosition(other ElementPosition) bool {
	o, ok := other.(FretLabelPosition)
	return ok && o == l
}

func (l FretLabelPosition) ClonePosition() ElementPosition { return l }

// MarshalJSON encodes the label as "<Side>:<Fret>".
func (l FretLabelPosition) MarshalJSON() ([]byte, error) { return marshalJSON(l) }

// UnmarshalJSON decodes a JSON string via ParseFretLabelPosition.
func (l *FretLabelPosition) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSON[FretLabelPosition]("FretLabelPosition", data)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalYAML encodes the label as "<Side>:<Fret>".
func (l FretLabelPosition) MarshalYAML() (any, error) { return marshalYAML(l) }

// UnmarshalYAML decodes a scalar string via ParseFretLabelPosition.
func (l *FretLabelPosition) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAML[FretLabelPosition]("FretLabelPosition", node)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
