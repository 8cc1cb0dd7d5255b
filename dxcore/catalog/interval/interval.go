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

// Package interval implements catalogs of named interval patterns: chord
// qualities (which carry an abbreviation such as "m7") and scales.
//
// A NamedInterval is owned by exactly one Set and is created only through
// that set. Sets are kept sorted by LongName, which combines every field of
// the entry, and never hold two entries with the same LongName. Renames go
// through NamedInterval.Update, which either applies completely and
// re-sorts the owning set or fails without changing anything.
//
// Built-in catalogs are frozen with Set.MarkAsReadOnly and combined with a
// user-editable set through Layered.
package interval

import (
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/pitch"
)

// Kind tells chord qualities and scales apart.
type Kind int

const (
	// Quality is a chord quality. Qualities may carry an abbreviation.
	Quality Kind = iota

	// Scale is a scale or mode. Scales never carry an abbreviation.
	Scale
)

// String returns "quality" or "scale".
func (k Kind) String() string {
	switch k {
	case Quality:
		return "quality"
	case Scale:
		return "scale"
	default:
		return "unknown"
	}
}

// TypeName returns the entity type name used in errors.
func (k Kind) TypeName() string {
	if k == Scale {
		return "Scale"
	}
	return "ChordQuality"
}

// NamedInterval is a chord quality or scale: a name plus an ordered list of
// signed semitone offsets from an implicit root.
//
// Fields are read through accessors. Changing them goes through Update so
// that the owning set stays sorted.
type NamedInterval struct {
	kind         Kind
	name         string
	abbreviation string
	intervals    []int
	readOnly     bool
	set          *Set
}

// Kind returns whether n is a quality or a scale.
func (n *NamedInterval) Kind() Kind { return n.kind }

// Name returns the trimmed display name.
func (n *NamedInterval) Name() string { return n.name }

// Abbreviation returns the chord symbol suffix. Always empty for scales.
func (n *NamedInterval) Abbreviation() string { return n.abbreviation }

// Intervals returns a copy of the offsets.
func (n *NamedInterval) Intervals() []int { return slices.Clone(n.intervals) }

// ReadOnly reports whether n has been frozen.
func (n *NamedInterval) ReadOnly() bool { return n.readOnly }

// Set returns the owning set.
func (n *NamedInterval) Set() *Set { return n.set }

// LongName is the display and uniqueness key:
//
//	Minor (m): 0;3;7
//	Major: 0;4;7
//	Ionian: 0;2;4;5;7;9;11
func (n *NamedInterval) LongName() string {
	return longName(n.name, n.abbreviation, n.intervals)
}

// String returns LongName.
func (n *NamedInterval) String() string { return n.LongName() }

// Equal reports value equality: same kind, name, abbreviation and intervals.
// Ownership and the read-only flag are ignored.
func (n *NamedInterval) Equal(other *NamedInterval) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.kind == other.kind &&
		n.name == other.name &&
		n.abbreviation == other.abbreviation &&
		slices.Equal(n.intervals, other.intervals)
}

// Rename changes only the name. See Update.
func (n *NamedInterval) Rename(name string) error {
	return n.Update(name, n.abbreviation, n.intervals)
}

// Update replaces every field of n at once.
//
// The arguments are validated and the new LongName is checked against the
// owning set and its parent chain before anything is modified. On any error, including an
// *AlreadyExistsError for a LongName held by another entry, n keeps all of
// its previous values. On success n is moved to its new sorted position.
func (n *NamedInterval) Update(name, abbreviation string, intervals []int) error {
	if n.readOnly {
		return &errors.ReadOnlyError{Type: n.kind.TypeName(), Key: n.LongName()}
	}
	name, abbreviation, err := normalize(n.kind, name, abbreviation, intervals)
	if err != nil {
		return err
	}
	steps := slices.Clone(intervals)
	apply := func(v **NamedInterval) {
		(*v).name = name
		(*v).abbreviation = abbreviation
		(*v).intervals = steps
	}
	if n.set == nil {
		apply(&n)
		return nil
	}
	key := longName(name, abbreviation, steps)
	if key != n.LongName() {
		if err := n.set.shadowError(key); err != nil {
			return err
		}
	}
	return n.set.items.Update(n.LongName(), key, apply)
}

// GetNotes maps every offset onto a pitch class above root, in order.
// Duplicates are kept.
func (n *NamedInterval) GetNotes(root pitch.PitchClass) []pitch.PitchClass {
	notes := make([]pitch.PitchClass, len(n.intervals))
	for i, step := range n.intervals {
		notes[i] = pitch.Shift(root, step)
	}
	return notes
}

// GetUniqueNotes is GetNotes with repeated pitch classes dropped, keeping
// first occurrences. With includeRoot false, root is dropped as well.
func (n *NamedInterval) GetUniqueNotes(root pitch.PitchClass, includeRoot bool) []pitch.PitchClass {
	var seen [pitch.NumPitchClasses]bool
	if !includeRoot && root.Valid() {
		seen[root] = true
	}
	notes := make([]pitch.PitchClass, 0, len(n.intervals))
	for _, pc := range n.GetNotes(root) {
		if !pc.Valid() || seen[pc] {
			continue
		}
		seen[pc] = true
		notes = append(notes, pc)
	}
	return notes
}

// FormatNotes renders GetUniqueNotes(root, true) spelled with style,
// separated by spaces, e.g. "C E G".
func (n *NamedInterval) FormatNotes(root pitch.PitchClass, style pitch.NoteStyle) string {
	notes := n.GetUniqueNotes(root, true)
	names := make([]string, len(notes))
	for i, pc := range notes {
		names[i] = pc.Name(style)
	}
	return strings.Join(names, " ")
}

func longName(name, abbreviation string, intervals []int) string {
	if abbreviation != "" {
		return fmt.Sprintf("%s (%s): %s", name, abbreviation, FormatSteps(intervals))
	}
	return name + ": " + FormatSteps(intervals)
}

// normalize trims and validates the user-editable fields.
func normalize(kind Kind, name, abbreviation string, intervals []int) (string, string, error) {
	name = strings.TrimSpace(name)
	abbreviation = strings.TrimSpace(abbreviation)
	if name == "" {
		return "", "", &errors.ValidationError{
			Type:   kind.TypeName(),
			Field:  "Name",
			Reason: "must not be empty",
		}
	}
	if len(intervals) == 0 {
		return "", "", &errors.ValidationError{
			Type:   kind.TypeName(),
			Field:  "Intervals",
			Reason: "must not be empty",
		}
	}
	if kind == Scale && abbreviation != "" {
		return "", "", &errors.ValidationError{
			Type:   kind.TypeName(),
			Field:  "Abbreviation",
			Reason: "scales have no abbreviation",
			Value:  abbreviation,
		}
	}
	return name, abbreviation, nil
}
