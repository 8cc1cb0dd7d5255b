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

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Pitch is a pitch class in a specific octave: the spelling-free counterpart
// of FullNote used for arithmetic.
//
// Fields are unexported so that the non-negative octave invariant cannot be
// broken after construction; use NewPitch, FullNote.Pitch or Shift to obtain
// values. The zero value is C0, which is valid.
//
// Pitch values are comparable with == and usable as map keys.
type Pitch struct {
	class  PitchClass
	octave int
}

// Compile-time checks that Pitch implements the model interfaces.
var _ model.Model = (*Pitch)(nil)
var _ model.Comparable[Pitch] = Pitch{}

// NewPitch returns the pitch class p in the given octave.
//
// It fails with a *ValidationError if p is not a valid pitch class or octave
// is negative.
func NewPitch(p PitchClass, octave int) (Pitch, error) {
	v := Pitch{class: p, octave: octave}
	if err := v.Validate(); err != nil {
		return Pitch{}, err
	}
	return v, nil
}

// Class returns the pitch class.
func (p Pitch) Class() PitchClass {
	return p.class
}

// Octave returns the octave number, always >= 0.
func (p Pitch) Octave() int {
	return p.octave
}

// Shift returns the pitch steps semitones away from p.
//
// The shift walks one semitone at a time: stepping up from B carries into
// the next octave and stepping down from C borrows from the previous one.
// A shift that would take the octave below zero fails with a
// *ValidationError and returns the zero Pitch.
func (p Pitch) Shift(steps int) (Pitch, error) {
	class, octave := p.class, p.octave
	for ; steps > 0; steps-- {
		if class == B {
			octave++
		}
		class = class.Shift(1)
	}
	for ; steps < 0; steps++ {
		if class == C {
			if octave == 0 {
				return Pitch{}, &errors.ValidationError{
					Type:   "Pitch",
					Field:  "Octave",
					Reason: "shift below octave 0",
					Value:  p.String(),
				}
			}
			octave--
		}
		class = class.Shift(-1)
	}
	return Pitch{class: class, octave: octave}, nil
}

// Compare orders pitches by octave first and pitch class second. It returns
// -1, 0 or +1.
func (p Pitch) Compare(other Pitch) int {
	switch {
	case p.octave < other.octave:
		return -1
	case p.octave > other.octave:
		return 1
	case p.class < other.class:
		return -1
	case p.class > other.class:
		return 1
	default:
		return 0
	}
}

// StepsTo returns the signed number of semitones from p to other.
//
// The count is found by walking unit steps from p toward other, in the
// direction given by Compare, until the two are equal. This keeps it in
// lock-step with Shift, so that p.Shift(p.StepsTo(other)) == other.
func (p Pitch) StepsTo(other Pitch) int {
	steps := 0
	cur := p
	dir := 1
	if cur.Compare(other) > 0 {
		dir = -1
	}
	for cur != other {
		next, err := cur.Shift(dir)
		if err != nil {
			// Unreachable: walking down never passes other, which is >= C0.
			break
		}
		cur = next
		steps += dir
	}
	return steps
}

// FullNote spells p as a FullNote using the given style.
func (p Pitch) FullNote(style NoteStyle) FullNote {
	return FullNote{note: NoteFor(p.class, style), octave: p.octave}
}

// String renders the pitch with its sharp spelling, e.g. "C#4".
func (p Pitch) String() string {
	return p.class.Name(PreferSharp) + strconv.Itoa(p.octave)
}

// TypeName returns "Pitch".
func (p Pitch) TypeName() string {
	return "Pitch"
}

// Redacted returns the same string representation as String().
func (p Pitch) Redacted() string {
	return p.String()
}

// IsZero reports whether p is C0.
func (p Pitch) IsZero() bool {
	return p == Pitch{}
}

// Equal reports whether p and other denote the same pitch.
func (p Pitch) Equal(other Pitch) bool {
	return p == other
}

// Validate checks the pitch class range and the non-negative octave.
func (p Pitch) Validate() error {
	if !p.class.Valid() {
		return &errors.ValidationError{
			Type:   "Pitch",
			Field:  "Class",
			Reason: "must be in range 0-11",
			Value:  int(p.class),
		}
	}
	if p.octave < 0 {
		return &errors.ValidationError{
			Type:   "Pitch",
			Field:  "Octave",
			Reason: fmt.Sprintf("must be non-negative, got %d", p.octave),
			Value:  p.octave,
		}
	}
	return nil
}

// ParsePitch parses the FullNote syntax ("Db3") and drops the spelling.
func ParsePitch(s string) (Pitch, error) {
	n, err := ParseFullNote(s)
	if err != nil {
		return Pitch{}, &errors.ParseError{Type: "Pitch", Value: s}
	}
	return n.Pitch(), nil
}

// MarshalJSON encodes the pitch as a string, e.g. "A#2".
func (p Pitch) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a JSON string via ParsePitch.
func (p *Pitch) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: data, Reason: err.Error()}
	}
	parsed, err := ParsePitch(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the pitch as a string.
func (p Pitch) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return p.String(), nil
}

// UnmarshalYAML decodes a scalar string via ParsePitch.
func (p *Pitch) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Pitch", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePitch(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
