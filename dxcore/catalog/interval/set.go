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

package interval

import (
	"fmt"
	"iter"
	"strings"

	"dirpx.dev/dxchord/dxcore/collection"
	"dirpx.dev/dxchord/dxcore/errors"
)

// Set is a sorted, duplicate-free catalog of chord qualities or of scales.
//
// Level tags where the set comes from (for example "builtin" or "user") and
// appears in errors. A Set is not safe for concurrent mutation.
//
// A set placed over another one with NewLayered has that set as its parent.
// Adds and renames then also reject a LongName held anywhere in the parent
// chain, so a local entry never hides a base entry.
type Set struct {
	kind     Kind
	level    string
	readOnly bool
	parent   *Set
	items    *collection.Sorted[string, *NamedInterval]
}

// NewSet returns an empty set of the given kind.
func NewSet(kind Kind, level string) *Set {
	return &Set{
		kind:  kind,
		level: level,
		items: collection.New(kind.TypeName(), level, (*NamedInterval).LongName),
	}
}

// NewQualitySet returns an empty chord quality set.
func NewQualitySet(level string) *Set { return NewSet(Quality, level) }

// NewScaleSet returns an empty scale set.
func NewScaleSet(level string) *Set { return NewSet(Scale, level) }

// Kind returns the kind of entries the set holds.
func (s *Set) Kind() Kind { return s.kind }

// Level returns the set's level tag.
func (s *Set) Level() string { return s.level }

// ReadOnly reports whether the set has been frozen.
func (s *Set) ReadOnly() bool { return s.readOnly }

// Len returns the number of entries.
func (s *Set) Len() int { return s.items.Len() }

// Parent returns the set s is layered over, or nil.
func (s *Set) Parent() *Set { return s.parent }

// All iterates entries in LongName order.
func (s *Set) All() iter.Seq[*NamedInterval] { return s.items.All() }

// Add creates an entry owned by s. Scales must pass an empty abbreviation.
//
// It fails with a *ValidationError for an empty name or interval list, and
// with an *AlreadyExistsError if the LongName is taken in s or in its
// parent chain; s is unchanged in all cases.
func (s *Set) Add(name, abbreviation string, intervals []int) (*NamedInterval, error) {
	if s.readOnly {
		return nil, s.readOnlyError()
	}
	name, abbreviation, err := normalize(s.kind, name, abbreviation, intervals)
	if err != nil {
		return nil, err
	}
	if err := s.shadowError(longName(name, abbreviation, intervals)); err != nil {
		return nil, err
	}
	n := &NamedInterval{
		kind:         s.kind,
		name:         name,
		abbreviation: abbreviation,
		intervals:    append([]int(nil), intervals...),
		set:          s,
	}
	if err := s.items.Insert(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddQuality adds a chord quality. s must be a quality set.
func (s *Set) AddQuality(name, abbreviation string, intervals []int) (*NamedInterval, error) {
	if s.kind != Quality {
		return nil, s.kindError(Quality)
	}
	return s.Add(name, abbreviation, intervals)
}

// AddScale adds a scale. s must be a scale set.
func (s *Set) AddScale(name string, intervals []int) (*NamedInterval, error) {
	if s.kind != Scale {
		return nil, s.kindError(Scale)
	}
	return s.Add(name, "", intervals)
}

// Get returns the entry with the given LongName, or a *NotFoundError.
func (s *Set) Get(longName string) (*NamedInterval, error) {
	return s.items.Lookup(longName)
}

// Contains reports whether an entry with the given LongName exists.
func (s *Set) Contains(longName string) bool {
	return s.items.Contains(longName)
}

// Find returns, in LongName order, every entry whose name or abbreviation
// matches query ignoring case and surrounding blanks.
func (s *Set) Find(query string) []*NamedInterval {
	q := strings.TrimSpace(query)
	var found []*NamedInterval
	for n := range s.items.All() {
		if strings.EqualFold(n.name, q) || (n.abbreviation != "" && n.abbreviation == q) {
			found = append(found, n)
		}
	}
	return found
}

// Remove deletes the entry with the given LongName. The removed entry is
// detached and may no longer be updated through the set.
func (s *Set) Remove(longName string) error {
	if s.readOnly {
		return s.readOnlyError()
	}
	n, err := s.items.Remove(longName)
	if err != nil {
		return err
	}
	n.set = nil
	return nil
}

// GetNewName returns base if no entry is named base, otherwise the first of
// "base (1)", "base (2)", ... that is unused. It never needs more than
// Len()+1 probes.
func (s *Set) GetNewName(base string) string {
	base = strings.TrimSpace(base)
	used := make(map[string]bool, s.items.Len())
	for n := range s.items.All() {
		used[n.name] = true
	}
	return collection.UniqueName(base, func(n string) bool { return used[n] })
}

// CopyFrom adds a copy of every entry of other that neither s nor its
// parent chain already holds. Copies are writable and owned by s; other is never modified.
func (s *Set) CopyFrom(other *Set) error {
	if s.readOnly {
		return s.readOnlyError()
	}
	if other.kind != s.kind {
		return s.kindError(other.kind)
	}
	for n := range other.items.All() {
		if s.items.Contains(n.LongName()) || s.shadowError(n.LongName()) != nil {
			continue
		}
		if _, err := s.Add(n.name, n.abbreviation, n.intervals); err != nil {
			return err
		}
	}
	return nil
}

// MarkAsReadOnly freezes s and every entry in it. It cannot be undone.
func (s *Set) MarkAsReadOnly() {
	s.readOnly = true
	for n := range s.items.All() {
		n.readOnly = true
	}
}

// shadowError returns an *AlreadyExistsError naming the first set in the
// parent chain that holds longName.
func (s *Set) shadowError(longName string) error {
	for p := s.parent; p != nil; p = p.parent {
		if p.items.Contains(longName) {
			return &errors.AlreadyExistsError{Type: s.kind.TypeName(), Set: p.level, Key: longName}
		}
	}
	return nil
}

func (s *Set) readOnlyError() error {
	return &errors.ReadOnlyError{Type: s.kind.TypeName() + "Set", Key: s.level}
}

func (s *Set) kindError(want Kind) error {
	return &errors.ValidationError{
		Type:   s.kind.TypeName() + "Set",
		Field:  "Kind",
		Reason: fmt.Sprintf("set holds %s entries, not %s", s.kind, want),
		Value:  want.String(),
	}
}
