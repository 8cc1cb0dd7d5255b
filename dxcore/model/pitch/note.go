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
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Note is one of the 17 note spellings understood by dxchord: the seven
// naturals plus a sharp and a flat spelling for each non-natural pitch
// class. Double accidentals and enharmonic naturals (E#, Cb) are not
// represented.
//
// Note maps many-to-one onto PitchClass: NoteCSharp and NoteDFlat both map
// to CSharp. The zero value is NoteC.
type Note int

const (
	NoteC Note = iota
	NoteCSharp
	NoteDFlat
	NoteD
	NoteDSharp
	NoteEFlat
	NoteE
	NoteF
	NoteFSharp
	NoteGFlat
	NoteG
	NoteGSharp
	NoteAFlat
	NoteA
	NoteASharp
	NoteBFlat
	NoteB

	numNotes = int(NoteB) + 1
)

// Compile-time checks that Note implements the model interfaces.
var _ model.Model = (*Note)(nil)
var _ model.Comparable[Note] = NoteC

var noteNames = [numNotes]string{
	"C", "C#", "Db", "D", "D#", "Eb", "E", "F", "F#", "Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B",
}

var noteClasses = [numNotes]PitchClass{
	C, CSharp, CSharp, D, DSharp, DSharp, E, F, FSharp, FSharp, G, GSharp, GSharp, A, ASharp, ASharp, B,
}

var (
	sharpNotes = [NumPitchClasses]Note{
		NoteC, NoteCSharp, NoteD, NoteDSharp, NoteE, NoteF, NoteFSharp, NoteG, NoteGSharp, NoteA, NoteASharp, NoteB,
	}
	flatNotes = [NumPitchClasses]Note{
		NoteC, NoteDFlat, NoteD, NoteEFlat, NoteE, NoteF, NoteGFlat, NoteG, NoteAFlat, NoteA, NoteBFlat, NoteB,
	}
)

// NoteFor spells a pitch class as a Note.
//
// Naturals map to their natural spelling. Non-naturals map to the flat
// spelling under PreferFlat and to the sharp spelling otherwise (ShowBoth
// has no single-Note form, so it behaves like PreferSharp here).
func NoteFor(p PitchClass, style NoteStyle) Note {
	p = p.Shift(0)
	if style == PreferFlat {
		return flatNotes[p]
	}
	return sharpNotes[p]
}

// ParseNote parses a note spelling.
//
// The letter is case-insensitive and may be followed by a single accidental:
// '#' for sharp or 'b' for flat. Surrounding whitespace is ignored. Spellings
// outside the 17 supported notes (for example "E#" or "Cb") are rejected with
// a *ParseError.
func ParseNote(s string) (Note, error) {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > 2 {
		return NoteC, &errors.ParseError{Type: "Note", Value: s}
	}
	canonical := strings.ToUpper(t[:1]) + t[1:]
	for i, name := range noteNames {
		if name == canonical {
			return Note(i), nil
		}
	}
	return NoteC, &errors.ParseError{Type: "Note", Value: s}
}

// PitchClass returns the pitch class this spelling denotes.
func (n Note) PitchClass() PitchClass {
	if !n.Valid() {
		return C
	}
	return noteClasses[n]
}

// IsNatural reports whether n has no accidental.
func (n Note) IsNatural() bool {
	return n.Valid() && len(noteNames[n]) == 1
}

// IsSharp reports whether n is spelled with a sharp.
func (n Note) IsSharp() bool {
	return n.Valid() && strings.HasSuffix(noteNames[n], "#")
}

// IsFlat reports whether n is spelled with a flat.
func (n Note) IsFlat() bool {
	return n.Valid() && strings.HasSuffix(noteNames[n], "b")
}

// Valid reports whether n is one of the 17 defined spellings.
func (n Note) Valid() bool {
	return n >= NoteC && n <= NoteB
}

// String returns the spelling ("C", "C#", "Db"), or "unknown".
func (n Note) String() string {
	if !n.Valid() {
		return "unknown"
	}
	return noteNames[n]
}

// TypeName returns "Note".
func (n Note) TypeName() string {
	return "Note"
}

// Redacted returns the same string representation as String().
func (n Note) Redacted() string {
	return n.String()
}

// IsZero reports whether n is NoteC. NoteC is valid.
func (n Note) IsZero() bool {
	return n == NoteC
}

// Equal reports whether n and other are the same spelling. Enharmonic
// equivalents (C# and Db) are NOT equal; compare PitchClass values for that.
func (n Note) Equal(other Note) bool {
	return n == other
}

// Validate returns a *ValidationError if n is not a defined spelling.
func (n Note) Validate() error {
	if !n.Valid() {
		return &errors.ValidationError{
			Type:   "Note",
			Reason: "invalid Note value",
			Value:  int(n),
		}
	}
	return nil
}

// MarshalJSON encodes the note as its spelling.
func (n Note) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Note", Value: int(n)}
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a JSON string via ParseNote.
func (n *Note) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Note", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Note) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Note", Value: int(n)}
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalYAML encodes the note as its spelling.
func (n Note) MarshalYAML() (any, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Note", Value: int(n)}
	}
	return n.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParseNote.
func (n *Note) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Note", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseNote(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
