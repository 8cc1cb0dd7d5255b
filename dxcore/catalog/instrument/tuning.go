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

package instrument

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"dirpx.dev/dxchord/dxcore/collection"
	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model"
	"dirpx.dev/dxchord/dxcore/model/pitch"
)

// Tuning is a named set of open-string notes, lowest string first.
type Tuning struct {
	name     string
	notes    []pitch.FullNote
	readOnly bool
	set      *TuningSet
}

// Name returns the trimmed tuning name.
func (t *Tuning) Name() string { return t.name }

// RootNotes returns a copy of the open-string notes.
func (t *Tuning) RootNotes() []pitch.FullNote { return slices.Clone(t.notes) }

// RootNote returns the open note of the 1-based string str.
func (t *Tuning) RootNote(str int) (pitch.FullNote, error) {
	if str < 1 || str > len(t.notes) {
		return pitch.FullNote{}, &errors.ValidationError{
			Type:   "Tuning",
			Field:  "String",
			Reason: fmt.Sprintf("must be in range 1-%d, got %d", len(t.notes), str),
			Value:  str,
		}
	}
	return t.notes[str-1], nil
}

// NumStrings returns the number of root notes.
func (t *Tuning) NumStrings() int { return len(t.notes) }

// ReadOnly reports whether t has been frozen.
func (t *Tuning) ReadOnly() bool { return t.readOnly }

// Set returns the owning tuning set.
func (t *Tuning) Set() *TuningSet { return t.set }

// LongName is the display and uniqueness key, e.g.
// "Standard (E2 A2 D3 G3 B3 E4)".
func (t *Tuning) LongName() string { return tuningLongName(t.name, t.notes) }

// String returns LongName.
func (t *Tuning) String() string { return t.LongName() }

// Equal reports whether t and other have the same name and notes.
func (t *Tuning) Equal(other *Tuning) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.name == other.name && slices.Equal(t.notes, other.notes)
}

// Rename changes only the name. See Update.
func (t *Tuning) Rename(name string) error {
	return t.Update(name, t.notes)
}

// SetRootNotes changes only the notes. See Update.
func (t *Tuning) SetRootNotes(notes []pitch.FullNote) error {
	return t.Update(t.name, notes)
}

// Update replaces the name and notes together. The note count must match
// the owning set's string count. Every check, including LongName
// uniqueness, runs before t is touched; on error t is unchanged.
func (t *Tuning) Update(name string, notes []pitch.FullNote) error {
	if t.readOnly {
		return &errors.ReadOnlyError{Type: "Tuning", Key: t.LongName()}
	}
	want := len(t.notes)
	if t.set != nil {
		want = t.set.numStrings
	}
	name, err := normalizeTuning(name, notes, want)
	if err != nil {
		return err
	}
	cp := slices.Clone(notes)
	apply := func(v **Tuning) {
		(*v).name = name
		(*v).notes = cp
	}
	if t.set == nil {
		apply(&t)
		return nil
	}
	return t.set.items.Update(t.LongName(), tuningLongName(name, cp), apply)
}

// TuningSet is the sorted catalog of tunings owned by one instrument. All
// its tunings have exactly NumStrings notes.
type TuningSet struct {
	owner      *Instrument
	numStrings int
	readOnly   bool
	items      *collection.Sorted[string, *Tuning]
}

func newTuningSet(owner *Instrument) *TuningSet {
	return &TuningSet{
		owner:      owner,
		numStrings: owner.numStrings,
		items:      collection.New("Tuning", owner.name, (*Tuning).LongName),
	}
}

// Instrument returns the owner.
func (s *TuningSet) Instrument() *Instrument { return s.owner }

// NumStrings returns the required note count.
func (s *TuningSet) NumStrings() int { return s.numStrings }

// ReadOnly reports whether the set has been frozen.
func (s *TuningSet) ReadOnly() bool { return s.readOnly }

// Len returns the number of tunings.
func (s *TuningSet) Len() int { return s.items.Len() }

// All iterates tunings in LongName order.
func (s *TuningSet) All() iter.Seq[*Tuning] { return s.items.All() }

// Add creates a tuning. A note count other than NumStrings is a
// *ValidationError; a taken LongName is an *AlreadyExistsError.
func (s *TuningSet) Add(name string, notes []pitch.FullNote) (*Tuning, error) {
	if s.readOnly {
		return nil, &errors.ReadOnlyError{Type: "TuningSet", Key: s.owner.name}
	}
	name, err := normalizeTuning(name, notes, s.numStrings)
	if err != nil {
		return nil, err
	}
	t := &Tuning{name: name, notes: slices.Clone(notes), set: s}
	if err := s.items.Insert(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the tuning with the given LongName, or a *NotFoundError.
func (s *TuningSet) Get(longName string) (*Tuning, error) {
	return s.items.Lookup(longName)
}

// Find returns the first tuning, in LongName order, whose name matches
// ignoring case.
func (s *TuningSet) Find(name string) (*Tuning, bool) {
	name = strings.TrimSpace(name)
	for t := range s.items.All() {
		if strings.EqualFold(t.name, name) {
			return t, true
		}
	}
	return nil, false
}

// Remove deletes the tuning with the given LongName.
func (s *TuningSet) Remove(longName string) error {
	if s.readOnly {
		return &errors.ReadOnlyError{Type: "TuningSet", Key: s.owner.name}
	}
	t, err := s.items.Remove(longName)
	if err != nil {
		return err
	}
	t.set = nil
	return nil
}

// GetNewName returns base or the first unused "base (N)" among tuning names.
func (s *TuningSet) GetNewName(base string) string {
	used := make(map[string]bool, s.items.Len())
	for t := range s.items.All() {
		used[t.name] = true
	}
	return collection.UniqueName(strings.TrimSpace(base), func(n string) bool { return used[n] })
}

// CopyFrom adds a copy of every tuning of other whose LongName s lacks.
// Both sets must have the same string count; other is never modified.
func (s *TuningSet) CopyFrom(other *TuningSet) error {
	if s.readOnly {
		return &errors.ReadOnlyError{Type: "TuningSet", Key: s.owner.name}
	}
	if other.numStrings != s.numStrings {
		return &errors.ValidationError{
			Type:   "TuningSet",
			Field:  "NumStrings",
			Reason: fmt.Sprintf("cannot copy %d-string tunings into a %d-string set", other.numStrings, s.numStrings),
			Value:  other.numStrings,
		}
	}
	for t := range other.items.All() {
		if s.items.Contains(t.LongName()) {
			continue
		}
		if _, err := s.Add(t.name, t.notes); err != nil {
			return err
		}
	}
	return nil
}

// MarkAsReadOnly freezes s and all its tunings.
func (s *TuningSet) MarkAsReadOnly() {
	s.readOnly = true
	for t := range s.items.All() {
		t.readOnly = true
	}
}

func tuningLongName(name string, notes []pitch.FullNote) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return name + " (" + strings.Join(parts, " ") + ")"
}

func normalizeTuning(name string, notes []pitch.FullNote, numStrings int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &errors.ValidationError{Type: "Tuning", Field: "Name", Reason: "must not be empty"}
	}
	if len(notes) != numStrings {
		return "", &errors.ValidationError{
			Type:   "Tuning",
			Field:  "RootNotes",
			Reason: fmt.Sprintf("want %d notes, got %d", numStrings, len(notes)),
			Value:  len(notes),
		}
	}
	if err := model.ValidateAll(notes); err != nil {
		return "", fmt.Errorf("root notes: %w", err)
	}
	return name, nil
}
