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
	"encoding/json"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// FretLabelSide says on which side of the fretboard grid a fret label is
// drawn.
type FretLabelSide int

const (
	// Left places the label to the left of the first string.
	Left FretLabelSide = iota

	// Right places the label to the right of the last string.
	Right
)

// String constants for FretLabelSide values. These are part of the
// ElementPosition textual form ("Left:3") and MUST NOT change.
const (
	LeftStr  = "Left"
	RightStr = "Right"
)

// ParseFretLabelSide accepts "Left"/"left"/"LEFT" and "Right"/"right"/"RIGHT".
// Any other input yields a *ParseError.
func ParseFretLabelSide(s string) (FretLabelSide, error) {
	switch s {
	case LeftStr, "left", "LEFT":
		return Left, nil
	case RightStr, "right", "RIGHT":
		return Right, nil
	default:
		return Left, &errors.ParseError{Type: "FretLabelSide", Value: s}
	}
}

// String returns "Left" or "Right", or "unknown" for invalid values.
func (s FretLabelSide) String() string {
	switch s {
	case Left:
		return LeftStr
	case Right:
		return RightStr
	default:
		return "unknown"
	}
}

// Valid reports whether s is Left or Right.
func (s FretLabelSide) Valid() bool {
	return s == Left || s == Right
}

// TypeName returns "FretLabelSide".
func (s FretLabelSide) TypeName() string {
	return "FretLabelSide"
}

// Redacted returns the same string representation as String().
func (s FretLabelSide) Redacted() string {
	return s.String()
}

// IsZero reports whether s is Left, its zero value. Left is valid.
func (s FretLabelSide) IsZero() bool {
	return s == Left
}

// Equal reports whether s and other are the same side.
func (s FretLabelSide) Equal(other FretLabelSide) bool {
	return s == other
}

// Validate returns a *ValidationError for values other than Left and Right.
func (s FretLabelSide) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "FretLabelSide",
			Reason: "invalid FretLabelSide value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON encodes the side as "Left" or "Right".
func (s FretLabelSide) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "FretLabelSide", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string via ParseFretLabelSide.
func (s *FretLabelSide) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "FretLabelSide", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseFretLabelSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the side as "Left" or "Right".
func (s FretLabelSide) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "FretLabelSide", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParseFretLabelSide.
func (s *FretLabelSide) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "FretLabelSide", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseFretLabelSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time checks that FretLabelSide implements the model interfaces.
var _ model.Model = (*FretLabelSide)(nil)
var _ model.Comparable[FretLabelSide] = Left
