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

// Package instrument implements the catalog of fretted instruments and the
// tunings each of them owns.
//
// A Set holds Instruments sorted by name; names are compared exactly after
// trimming. Every Instrument owns a TuningSet whose tunings all have one
// root note per string. Both levels share the update contract of the
// interval catalogs: a rename or note change is validated and checked for
// collisions before anything is modified.
//
// MarkAsReadOnly on a Set freezes every instrument and tuning beneath it.
package instrument

import (
	"fmt"
	"iter"
	"strings"

	"dirpx.dev/dxchord/dxcore/collection"
	"dirpx.dev/dxchord/dxcore/errors"
)

// MinStrings is the smallest string count an instrument may have.
const MinStrings = 2

// Instrument is a named fretted instrument with a fixed string count.
type Instrument struct {
	name       string
	numStrings int
	readOnly   bool
	set        *Set
	tunings    *TuningSet
}

// Name returns the trimmed instrument name.
func (i *Instrument) Name() string { return i.name }

// NumStrings returns the string count, always >= MinStrings.
func (i *Instrument) NumStrings() int { return i.numStrings }

// ReadOnly reports whether i has been frozen.
func (i *Instrument) ReadOnly() bool { return i.readOnly }

// Set returns the owning instrument set.
func (i *Instrument) Set() *Set { return i.set }

// Tunings returns the tunings owned by i.
func (i *Instrument) Tunings() *TuningSet { return i.tunings }

// String returns e.g. "Guitar (6 strings)".
func (i *Instrument) String() string {
	return fmt.Sprintf("%s (%d strings)", i.name, i.numStrings)
}

// Rename changes the instrument name. A name held by a different
// instrument in the same set is an *AlreadyExistsError and leaves i
// untouched.
func (i *Instrument) Rename(name string) error {
	if i.readOnly {
		return &errors.ReadOnlyError{Type: "Instrument", Key: i.name}
	}
	name, err := normalizeInstrument(name, i.numStrings)
	if err != nil {
		return err
	}
	apply := func(v **Instrument) {
		(*v).name = name
		(*v).tunings.items.SetName(name)
	}
	if i.set == nil {
		apply(&i)
		return nil
	}
	return i.set.items.Update(i.name, name, apply)
}

// Set is a sorted catalog of instruments unique by name.
type Set struct {
	level    string
	readOnly bool
	items    *collection.Sorted[string, *Instrument]
}

// NewSet returns an empty instrument set tagged with level.
func NewSet(level string) *Set {
	return &Set{
		level: level,
		items: collection.New("Instrument", level, (*Instrument).Name),
	}
}

// Level returns the set's level tag.
func (s *Set) Level() string { return s.level }

// ReadOnly reports whether the set has been frozen.
func (s *Set) ReadOnly() bool { return s.readOnly }

// Len returns the number of instruments.
func (s *Set) Len() int { return s.items.Len() }

// All iterates instruments in name order.
func (s *Set) All() iter.Seq[*Instrument] { return s.items.All() }

// Add creates an instrument with no tunings.
func (s *Set) Add(name string, numStrings int) (*Instrument, error) {
	if s.readOnly {
		return nil, &errors.ReadOnlyError{Type: "InstrumentSet", Key: s.level}
	}
	name, err := normalizeInstrument(name, numStrings)
	if err != nil {
		return nil, err
	}
	inst := &Instrument{name: name, numStrings: numStrings, set: s}
	inst.tunings = newTuningSet(inst)
	if err := s.items.Insert(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// Get returns the instrument with the given name, or a *NotFoundError.
func (s *Set) Get(name string) (*Instrument, error) {
	return s.items.Lookup(strings.TrimSpace(name))
}

// Contains reports whether an instrument has the given name.
func (s *Set) Contains(name string) bool {
	return s.items.Contains(strings.TrimSpace(name))
}

// Remove deletes the named instrument together with its tunings.
func (s *Set) Remove(name string) error {
	if s.readOnly {
		return &errors.ReadOnlyError{Type: "InstrumentSet", Key: s.level}
	}
	inst, err := s.items.Remove(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	inst.set = nil
	return nil
}

// GetNewName returns base or the first unused "base (N)".
func (s *Set) GetNewName(base string) string {
	return collection.UniqueName(strings.TrimSpace(base), s.items.Contains)
}

// CopyFrom merges other into s without modifying other.
//
// An instrument whose name and string count both match one in s has its
// tunings merged with TuningSet.CopyFrom. A name clash with a different
// string count is resolved by adding the copy under GetNewName. Anything
// else is added with all its tunings.
func (s *Set) CopyFrom(other *Set) error {
	if s.readOnly {
		return &errors.ReadOnlyError{Type: "InstrumentSet", Key: s.level}
	}
	for src := range other.items.All() {
		dst, ok := s.items.Get(src.name)
		if !ok || dst.numStrings != src.numStrings {
			name := src.name
			if ok {
				name = s.GetNewName(src.name)
			}
			var err error
			if dst, err = s.Add(name, src.numStrings); err != nil {
				return err
			}
		}
		if err := dst.tunings.CopyFrom(src.tunings); err != nil {
			return err
		}
	}
	return nil
}

// MarkAsReadOnly freezes s, every instrument in it and every tuning they
// own.
func (s *Set) MarkAsReadOnly() {
	s.readOnly = true
	for inst := range s.items.All() {
		inst.readOnly = true
		inst.tunings.MarkAsReadOnly()
	}
}

func normalizeInstrument(name string, numStrings int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &errors.ValidationError{Type: "Instrument", Field: "Name", Reason: "must not be empty"}
	}
	if numStrings < MinStrings {
		return "", &errors.ValidationError{
			Type:   "Instrument",
			Field:  "NumStrings",
			Reason: fmt.Sprintf("must be at least %d, got %d", MinStrings, numStrings),
			Value:  numStrings,
		}
	}
	return name, nil
}
