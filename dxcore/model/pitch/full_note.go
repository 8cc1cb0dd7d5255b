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
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// FullNote is a spelled note in a specific octave, such as "E2" or "Bb3".
// Tunings store their per-string root notes as FullNotes so that the
// spelling the user chose is preserved.
//
// The canonical textual form is "<Note><Octave>" with no separator. The
// octave is always non-negative; the zero value is C0.
//
// Example:
//
//	n, _ := pitch.ParseFullNote("C#4")
//	fmt.Println(n.Note())    // C#
//	fmt.Println(n.Octave())  // 4
//	fmt.Println(n)           // C#4
type FullNote struct {
	note   Note
	octave int
}

// Compile-time checks that FullNote implements the model interfaces.
var _ model.Model = (*FullNote)(nil)
var _ model.Comparable[FullNote] = FullNote{}

// NewFullNote returns note in the given octave.
//
// It fails with a *ValidationError if note is not a defined spelling or
// octave is negative.
func NewFullNote(note Note, octave int) (FullNote, error) {
	n := FullNote{note: note, octave: octave}
	if err := n.Validate(); err != nil {
		return FullNote{}, err
	}
	return n, nil
}

// MustFullNote is like ParseFullNote but panics on error. It is intended for
// package-level tables of built-in tunings.
func MustFullNote(s string) FullNote {
	n, err := ParseFullNote(s)
	if err != nil {
		panic(err)
	}
	return model.MustValidate(n)
}

// ParseFullNote parses "<Note><Octave>".
//
// The input is split at its first digit: everything before it is parsed with
// ParseNote, everything from it onward must be a non-negative decimal
// octave. Parsing fails with a *ParseError when the input contains no digit
// ("Cs"), when the digit is the first character ("4C"), or when either half
// is malformed.
func ParseFullNote(s string) (FullNote, error) {
	t := strings.TrimSpace(s)
	idx := strings.IndexAny(t, "0123456789")
	if idx <= 0 {
		return FullNote{}, &errors.ParseError{Type: "FullNote", Value: s}
	}

	note, err := ParseNote(t[:idx])
	if err != nil {
		return FullNote{}, &errors.ParseError{Type: "FullNote", Value: s}
	}

	octave, err := strconv.Atoi(t[idx:])
	if err != nil || octave < 0 {
		return FullNote{}, &errors.ParseError{Type: "FullNote", Value: s}
	}

	return FullNote{note: note, octave: octave}, nil
}

// Note returns the spelling.
func (n FullNote) Note() Note {
	return n.note
}

// Octave returns the octave number, always >= 0.
func (n FullNote) Octave() int {
	return n.octave
}

// Pitch drops the spelling and returns the pitch class and octave.
func (n FullNote) Pitch() Pitch {
	return Pitch{class: n.note.PitchClass(), octave: n.octave}
}

// Shift returns the note steps semitones away from n, spelled with style.
//
// Octave carry follows Pitch.Shift. Shifting below C0 fails with a
// *ValidationError.
func (n FullNote) Shift(steps int, style NoteStyle) (FullNote, error) {
	p, err := n.Pitch().Shift(steps)
	if err != nil {
		return FullNote{}, err
	}
	return p.FullNote(style), nil
}

// String returns "<Note><Octave>", e.g. "C#4".
func (n FullNote) String() string {
	return n.note.String() + strconv.Itoa(n.octave)
}

// Format renders the note with its pitch class spelled by style instead of
// its stored spelling. Under ShowBoth a non-natural renders as "C#/Db4".
func (n FullNote) Format(style NoteStyle) string {
	return n.note.PitchClass().Name(style) + strconv.Itoa(n.octave)
}

// TypeName returns "FullNote".
func (n FullNote) TypeName() string {
	return "FullNote"
}

// Redacted returns the same string representation as String().
func (n FullNote) Redacted() string {
	return n.String()
}

// IsZero reports whether n is C0.
func (n FullNote) IsZero() bool {
	return n == FullNote{}
}

// Equal reports whether n and other have the same spelling and octave.
// Enharmonic equivalents (C#4, Db4) are NOT equal; compare Pitch values for
// that.
func (n FullNote) Equal(other FullNote) bool {
	return n == other
}

// Validate checks the spelling and the non-negative octave.
func (n FullNote) Validate() error {
	if err := n.note.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "FullNote",
			Field:  "Note",
			Reason: fmt.Sprintf("invalid: %v", err),
			Value:  int(n.note),
		}
	}
	if n.octave < 0 {
		return &errors.ValidationError{
			Type:   "FullNote",
			Field:  "Octave",
			Reason: fmt.Sprintf("must be non-negative, got %d", n.octave),
			Value:  n.octave,
		}
	}
	return nil
}

// MarshalJSON encodes the note as its canonical string.
func (n FullNote) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a JSON string via ParseFullNote.
func (n *FullNote) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "FullNote", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseFullNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n FullNote) MarshalText() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *FullNote) UnmarshalText(text []byte) error {
	parsed, err := ParseFullNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML encodes the note as its canonical string.
func (n FullNote) MarshalYAML() (any, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	return n.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParseFullNote.
func (n *FullNote) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "FullNote", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseFullNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
