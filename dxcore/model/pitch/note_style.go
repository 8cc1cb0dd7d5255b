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

package pitch

import (
	"encoding/json"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// NoteStyle controls how the five non-natural pitch classes are spelled when
// rendered for display.
//
// Naturals (C, D, E, F, G, A, B) always render unambiguously. A non-natural
// pitch class has two spellings, a sharp and a flat one (C#/Db). NoteStyle
// selects between them, or asks for both:
//
//	ShowBoth    -> "C#/Db"
//	PreferSharp -> "C#"
//	PreferFlat  -> "Db"
type NoteStyle int

const (
	// ShowBoth renders both spellings joined by a slash, sharp first.
	ShowBoth NoteStyle = iota

	// PreferSharp renders the sharp spelling only.
	PreferSharp

	// PreferFlat renders the flat spelling only.
	PreferFlat
)

// Compile-time checks that NoteStyle implements the model interfaces.
var _ model.Model = (*NoteStyle)(nil)
var _ model.Comparable[any] = ShowBoth

// String constants for NoteStyle values used in serialization, parsing,
// and configuration files. Changing them is a breaking change for any
// persisted configuration.
const (
	ShowBothStr    = "show-both"
	PreferSharpStr = "prefer-sharp"
	PreferFlatStr  = "prefer-flat"
)

// String returns the canonical kebab-case name of the style, or "unknown"
// for values outside the defined constants.
func (s NoteStyle) String() string {
	switch s {
	case ShowBoth:
		return ShowBothStr
	case PreferSharp:
		return PreferSharpStr
	case PreferFlat:
		return PreferFlatStr
	default:
		return "unknown"
	}
}

// ParseNoteStyle converts a textual representation into a NoteStyle.
//
// Accepted inputs:
//
//	"show-both",    "ShowBoth",    "show_both",    "SHOW_BOTH"    -> ShowBoth
//	"prefer-sharp", "PreferSharp", "prefer_sharp", "PREFER_SHARP", "sharp" -> PreferSharp
//	"prefer-flat",  "PreferFlat",  "prefer_flat",  "PREFER_FLAT",  "flat"  -> PreferFlat
//
// Any other input yields a *ParseError.
func ParseNoteStyle(str string) (NoteStyle, error) {
	switch str {
	case ShowBothStr, "ShowBoth", "show_both", "SHOW_BOTH", "both":
		return ShowBoth, nil
	case PreferSharpStr, "PreferSharp", "prefer_sharp", "PREFER_SHARP", "sharp":
		return PreferSharp, nil
	case PreferFlatStr, "PreferFlat", "prefer_flat", "PREFER_FLAT", "flat":
		return PreferFlat, nil
	default:
		return ShowBoth, &errors.ParseError{Type: "NoteStyle", Value: str}
	}
}

// Valid reports whether the NoteStyle value is one of the defined constants.
func (s NoteStyle) Valid() bool {
	return s == ShowBoth || s == PreferSharp || s == PreferFlat
}

// TypeName returns "NoteStyle".
func (s NoteStyle) TypeName() string {
	return "NoteStyle"
}

// Redacted returns the same string representation as String().
func (s NoteStyle) Redacted() string {
	return s.String()
}

// IsZero reports whether the NoteStyle is ShowBoth, its zero value.
// ShowBoth is a valid style, so IsZero returning true is not an error.
func (s NoteStyle) IsZero() bool {
	return s == ShowBoth
}

// Equal reports whether this NoteStyle is equal to another value. It accepts
// NoteStyle and *NoteStyle; any other type compares unequal.
func (s NoteStyle) Equal(other any) bool {
	switch v := other.(type) {
	case NoteStyle:
		return s == v
	case *NoteStyle:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate returns a *ValidationError if the value is not a defined constant.
func (s NoteStyle) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "NoteStyle",
			Reason: "invalid NoteStyle value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON encodes the style as its canonical string.
func (s NoteStyle) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "NoteStyle", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts either the string vocabulary of ParseNoteStyle or the
// numeric constant value.
func (s *NoteStyle) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "NoteStyle", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "NoteStyle", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseNoteStyle(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "NoteStyle", Data: data, Reason: err.Error()}
	}
	*s = NoteStyle(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "NoteStyle", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s NoteStyle) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "NoteStyle", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseNoteStyle.
func (s *NoteStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseNoteStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the style as its canonical string.
func (s NoteStyle) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "NoteStyle", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParseNoteStyle.
func (s *NoteStyle) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "NoteStyle", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseNoteStyle(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
