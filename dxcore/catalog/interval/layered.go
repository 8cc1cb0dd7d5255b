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
	"iter"
	"strings"

	"dirpx.dev/dxchord/dxcore/collection"
	"dirpx.dev/dxchord/dxcore/errors"
)

// Layered stacks a writable local set over a base set, usually the frozen
// built-in catalog. Lookups try local first and fall through to base.
type Layered struct {
	base  *Set
	local *Set
}

// NewLayered combines base and local, which must hold the same kind, and
// makes base the parent of local. From then on local rejects adds and
// renames to a LongName held by base. Entries local already shadows are
// kept.
func NewLayered(base, local *Set) (*Layered, error) {
	if base.kind != local.kind {
		return nil, local.kindError(base.kind)
	}
	for p := base; p != nil; p = p.parent {
		if p == local {
			return nil, &errors.ValidationError{
				Type:   local.kind.TypeName() + "Set",
				Field:  "Parent",
				Reason: "layering would form a cycle",
				Value:  local.level,
			}
		}
	}
	local.parent = base
	return &Layered{base: base, local: local}, nil
}

// Base returns the lower set.
func (l *Layered) Base() *Set { return l.base }

// Local returns the upper set.
func (l *Layered) Local() *Set { return l.local }

// Kind returns the kind of both sets.
func (l *Layered) Kind() Kind { return l.local.kind }

// Get returns the entry with the given LongName from local, or from base
// on a miss.
func (l *Layered) Get(longName string) (*NamedInterval, error) {
	if n, ok := l.local.items.Get(longName); ok {
		return n, nil
	}
	if n, ok := l.base.items.Get(longName); ok {
		return n, nil
	}
	return nil, &errors.NotFoundError{
		Type: l.local.kind.TypeName(),
		Set:  l.local.level + "+" + l.base.level,
		Key:  longName,
	}
}

// Add adds to the local set. A LongName already present in base is
// rejected with an *AlreadyExistsError naming the base level.
func (l *Layered) Add(name, abbreviation string, intervals []int) (*NamedInterval, error) {
	return l.local.Add(name, abbreviation, intervals)
}

// Find searches local then base, returning local matches first.
func (l *Layered) Find(query string) []*NamedInterval {
	return append(l.local.Find(query), l.base.Find(query)...)
}

// Len counts distinct LongNames across both layers.
func (l *Layered) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// All merges both layers in LongName order. When both hold the same
// LongName only the local entry is yielded.
func (l *Layered) All() iter.Seq[*NamedInterval] {
	return func(yield func(*NamedInterval) bool) {
		local, base := l.local.items, l.base.items
		i, j := 0, 0
		for i < local.Len() || j < base.Len() {
			var next *NamedInterval
			switch {
			case j >= base.Len():
				next = local.At(i)
				i++
			case i >= local.Len():
				next = base.At(j)
				j++
			default:
				a, b := local.At(i), base.At(j)
				switch strings.Compare(a.LongName(), b.LongName()) {
				case -1:
					next = a
					i++
				case 1:
					next = b
					j++
				default:
					next = a
					i++
					j++
				}
			}
			if !yield(next) {
				return
			}
		}
	}
}

// GetNewName probes names across both layers.
func (l *Layered) GetNewName(base string) string {
	used := make(map[string]bool)
	for n := range l.All() {
		used[n.name] = true
	}
	return collection.UniqueName(strings.TrimSpace(base), func(n string) bool { return used[n] })
}
