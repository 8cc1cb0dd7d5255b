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

// Package pitch implements semitone-level pitch arithmetic for dxchord.
//
// The package distinguishes four value types:
//
//   - PitchClass: one of the 12 octave-independent semitone classes, the
//     "internal" representation every computation works on.
//   - Note: one of 17 spellings (7 naturals plus a sharp and a flat spelling
//     for each of the 5 non-natural classes). Many Notes map onto one
//     PitchClass; Note exists purely so that user-entered spellings survive
//     a round trip.
//   - FullNote: a Note plus an octave, written "C#4".
//   - Pitch: a PitchClass plus an octave; the arithmetic counterpart of
//     FullNote.
//
// Octaves are never negative. Every constructor, parser and shift enforces
// this, so a FullNote or Pitch obtained from this package is always valid.
//
// Shifting a Pitch is defined stepwise: each ascending step that leaves B
// carries into the next octave, and each descending step that leaves C
// borrows from the previous one. StepsTo walks the same unit steps, so
// p.Shift(p.StepsTo(q)) == q holds for every pair of pitches.
//
// All functions are pure and safe for concurrent use.
package pitch

import (
	"encoding/json"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// NumPitchClasses is the number of semitones in an octave.
const NumPitchClasses = 12

// PitchClass is one of the twelve cyclic semitone classes, numbered from C
// (0) to B (11).
//
// The zero value is C, which is valid.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Compile-time checks that PitchClass implements the model interfaces.
var _ model.Model = (*PitchClass)(nil)
var _ model.Comparable[PitchClass] = C

var (
	sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// Shift returns root moved by steps semitones, wrapped into [C, B].
//
// steps may be arbitrarily large in either direction; Shift(root, 0) returns
// root unchanged. Shift is the free-function form of PitchClass.Shift.
func Shift(root PitchClass, steps int) PitchClass {
	return root.Shift(steps)
}

// Shift returns the pitch class steps semitones away from p.
//
// The result is always in [C, B], for any magnitude and sign of steps.
// Because pitch classes are octave-independent, per-step wrapping and
// modular reduction produce the same result here; the stepwise carry rule
// only matters for Pitch, which tracks the octave.
func (p PitchClass) Shift(steps int) PitchClass {
	v := (int(p) + steps%NumPitchClasses) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}

// Valid reports whether p is in [C, B].
func (p PitchClass) Valid() bool {
	return p >= C && p <= B
}

// IsNatural reports whether p is one of the seven natural pitch classes.
func (p PitchClass) IsNatural() bool {
	return p.Valid() && sharpNames[p] == flatNames[p]
}

// Name renders the pitch class using the given spelling style.
//
// Naturals always render as a single letter. Non-naturals render as
// "C#/Db" (ShowBoth), "C#" (PreferSharp) or "Db" (PreferFlat). An invalid
// style falls back to ShowBoth; an invalid pitch class renders "unknown".
func (p PitchClass) Name(style NoteStyle) string {
	if !p.Valid() {
		return "unknown"
	}
	if p.IsNatural() {
		return sharpNames[p]
	}
	switch style {
	case PreferSharp:
		return sharpNames[p]
	case PreferFlat:
		return flatNames[p]
	default:
		return sharpNames[p] + "/" + flatNames[p]
	}
}

// String renders the pitch class with ShowBoth, so that both spellings are
// visible ("C#/Db").
func (p PitchClass) String() string {
	return p.Name(ShowBoth)
}

// ParsePitchClass parses any single spelling accepted by ParseNote ("C#",
// "Db", "e") or a compound "X#/Yb" string as produced by String.
//
// A compound string is accepted only when both halves name the same pitch
// class.
func ParsePitchClass(s string) (PitchClass, error) {
	s = strings.TrimSpace(s)
	if first, second, ok := strings.Cut(s, "/"); ok {
		a, err := ParseNote(first)
		if err != nil {
			return C, &errors.ParseError{Type: "PitchClass", Value: s}
		}
		b, err := ParseNote(second)
		if err != nil || a.PitchClass() != b.PitchClass() {
			return C, &errors.ParseError{Type: "PitchClass", Value: s}
		}
		return a.PitchClass(), nil
	}
	n, err := ParseNote(s)
	if err != nil {
		return C, &errors.ParseError{Type: "PitchClass", Value: s}
	}
	return n.PitchClass(), nil
}

// TypeName returns "PitchClass".
func (p PitchClass) TypeName() string {
	return "PitchClass"
}

// Redacted returns the same string representation as String().
func (p PitchClass) Redacted() string {
	return p.String()
}

// IsZero reports whether p is C. C is valid.
func (p PitchClass) IsZero() bool {
	return p == C
}

// Equal reports whether p and other are the same pitch class.
func (p PitchClass) Equal(other PitchClass) bool {
	return p == other
}

// Validate returns a *ValidationError if p is outside [C, B].
func (p PitchClass) Validate() error {
	if !p.Valid() {
		return &errors.ValidationError{
			Type:   "PitchClass",
			Reason: "must be in range 0-11",
			Value:  int(p),
		}
	}
	return nil
}

// MarshalJSON encodes the pitch class as its sharp spelling ("C#"), which
// ParsePitchClass reads back.
func (p PitchClass) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PitchClass", Value: int(p)}
	}
	return json.Marshal(p.Name(PreferSharp))
}

// UnmarshalJSON decodes a JSON string via ParsePitchClass.
func (p *PitchClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: data, Reason: err.Error()}
	}
	parsed, err := ParsePitchClass(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p PitchClass) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PitchClass", Value: int(p)}
	}
	return []byte(p.Name(PreferSharp)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PitchClass) UnmarshalText(text []byte) error {
	parsed, err := ParsePitchClass(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the pitch class as its sharp spelling.
func (p PitchClass) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "PitchClass", Value: int(p)}
	}
	return p.Name(PreferSharp), nil
}

// UnmarshalYAML decodes a scalar string via ParsePitchClass.
func (p *PitchClass) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "PitchClass", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePitchClass(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
