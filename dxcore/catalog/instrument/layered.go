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
	"iter"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
)

// Layered stacks a writable local instrument set over a base set.
// Instruments are looked up in local first. Tunings of an instrument that
// exists in both layers with the same string count are merged.
type Layered struct {
	base  *Set
	local *Set
}

// NewLayered combines base and local.
func NewLayered(base, local *Set) *Layered {
	return &Layered{base: base, local: local}
}

// Base returns the lower set.
func (l *Layered) Base() *Set { return l.base }

// Local returns the upper set.
func (l *Layered) Local() *Set { return l.local }

// Get returns the named instrument from local, else from base.
func (l *Layered) Get(name string) (*Instrument, error) {
	name = strings.TrimSpace(name)
	if inst, ok := l.local.items.Get(name); ok {
		return inst, nil
	}
	if inst, ok := l.base.items.Get(name); ok {
		return inst, nil
	}
	return nil, &errors.NotFoundError{Type: "Instrument", Set: l.local.level + "+" + l.base.level, Key: name}
}

// All merges both layers in name order, local shadowing base.
func (l *Layered) All() iter.Seq[*Instrument] {
	return merge(l.local.items.Items(), l.base.items.Items(), (*Instrument).Name)
}

// Tunings merges the tunings of the named instrument across both layers
// in LongName order. Base tunings are included only when the base
// instrument has the same string count as the one Get returns.
func (l *Layered) Tunings(name string) ([]*Tuning, error) {
	inst, err := l.Get(name)
	if err != nil {
		return nil, err
	}
	own := inst.tunings.items.Items()
	if inst.set != l.local {
		return own, nil
	}
	base, ok := l.base.items.Get(inst.name)
	if !ok || base.numStrings != inst.numStrings {
		return own, nil
	}
	var out []*Tuning
	for t := range merge(own, base.tunings.items.Items(), (*Tuning).LongName) {
		out = append(out, t)
	}
	return out, nil
}

// FindTuning returns the first tuning, in the order of Tunings, whose name
// matches ignoring case.
func (l *Layered) FindTuning(instrument, tuning string) (*Tuning, error) {
	tunings, err := l.Tunings(instrument)
	if err != nil {
		return nil, err
	}
	tuning = strings.TrimSpace(tuning)
	for _, t := range tunings {
		if strings.EqualFold(t.name, tuning) {
			return t, nil
		}
	}
	return nil, &errors.NotFoundError{Type: "Tuning", Set: strings.TrimSpace(instrument), Key: tuning}
}

// merge yields the union of two key-sorted slices, taking a from the
// first when both hold the same key.
func merge[T any](first, second []T, key func(T) string) iter.Seq[T] {
	return func(yield func(T) bool) {
		i, j := 0, 0
		for i < len(first) || j < len(second) {
			var next T
			switch {
			case j >= len(second):
				next, i = first[i], i+1
			case i >= len(first):
				next, j = second[j], j+1
			default:
				switch strings.Compare(key(first[i]), key(second[j])) {
				case -1:
					next, i = first[i], i+1
				case 1:
					next, j = second[j], j+1
				default:
					next, i, j = first[i], i+1, j+1
				}
			}
			if !yield(next) {
				return
			}
		}
	}
}
