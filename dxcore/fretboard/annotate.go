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
	"fmt"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/dxchord/dxcore/model/position"
)

// MutedLabel is the Annotate label of a muted string.
const MutedLabel = "x"

// NoteAt returns the note sounded on the 1-based string str at fret,
// spelled with style.
func NoteAt(tuning *instrument.Tuning, str, fret int, style pitch.NoteStyle) (pitch.FullNote, error) {
	if tuning == nil {
		return pitch.FullNote{}, &errors.ValidationError{Type: "Tuning", Reason: "must not be nil"}
	}
	if fret < Open {
		return pitch.FullNote{}, &errors.ValidationError{
			Type:   "Voicing",
			Field:  "Fret",
			Reason: fmt.Sprintf("must be >= 0, got %d", fret),
			Value:  fret,
		}
	}
	root, err := tuning.RootNote(str)
	if err != nil {
		return pitch.FullNote{}, err
	}
	if fret == Open {
		return root, nil
	}
	return root.Shift(fret, style)
}

// Annotate labels each string of a dense voicing with the pitch class it
// sounds, or MutedLabel. The voicing must have one entry per string of
// tuning.
func Annotate(marks []int, tuning *instrument.Tuning, style pitch.NoteStyle) ([]string, error) {
	if err := checkDense(marks); err != nil {
		return nil, err
	}
	if tuning == nil {
		return nil, &errors.ValidationError{Type: "Tuning", Reason: "must not be nil"}
	}
	if len(marks) != tuning.NumStrings() {
		return nil, lengthMismatch(tuning.NumStrings(), len(marks))
	}
	labels := make([]string, len(marks))
	for i, f := range marks {
		if f == Muted {
			labels[i] = MutedLabel
			continue
		}
		n, err := NoteAt(tuning, i+1, f, style)
		if err != nil {
			return nil, err
		}
		labels[i] = n.Note().PitchClass().Name(style)
	}
	return labels, nil
}

// NotesAt returns the note under every mark of a sparse voicing, in input
// order.
func NotesAt(marks []position.MarkPosition, tuning *instrument.Tuning, style pitch.NoteStyle) ([]pitch.FullNote, error) {
	if tuning == nil {
		return nil, &errors.ValidationError{Type: "Tuning", Reason: "must not be nil"}
	}
	if err := checkSparse(marks, tuning.NumStrings()); err != nil {
		return nil, err
	}
	notes := make([]pitch.FullNote, len(marks))
	for i, m := range marks {
		n, err := NoteAt(tuning, m.StringNum, m.Fret, style)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}
	return notes, nil
}
