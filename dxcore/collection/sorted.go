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

// Package collection provides Sorted, a slice kept in ascending order of a
// caller-supplied key with at most one element per key.
//
// The catalogs of chord qualities, scales, instruments and tunings are all
// built on it. Keys that depend on mutable element fields are handled by
// Update, which checks the new key before anything is changed: a rejected
// update leaves both the element and the collection untouched.
//
// Sorted has no internal locking. A single writer may mutate it; any number
// of readers may use it concurrently once mutation has stopped.
package collection

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"dirpx.dev/dxchord/dxcore/errors"
)

// Sorted is an ordered, duplicate-free sequence of T keyed by K.
//
// The zero value is not usable; construct with New.
type Sorted[K cmp.Ordered, T any] struct {
	typ   string
	name  string
	key   func(T) K
	items []T
}

// New returns an empty collection of typ elements (used in errors), named
// name, ordered by key.
func New[K cmp.Ordered, T any](typ, name string, key func(T) K) *Sorted[K, T] {
	return &Sorted[K, T]{typ: typ, name: name, key: key}
}

// Name returns the collection name carried in errors.
func (s *Sorted[K, T]) Name() string {
	return s.name
}

// SetName changes the collection name carried in errors.
func (s *Sorted[K, T]) SetName(name string) {
	s.name = name
}

// Len returns the number of elements.
func (s *Sorted[K, T]) Len() int {
	return len(s.items)
}

// index returns the position of k, or where it would be inserted.
func (s *Sorted[K, T]) index(k K) (int, bool) {
	return slices.BinarySearchFunc(s.items, k, func(item T, target K) int {
		return cmp.Compare(s.key(item), target)
	})
}

// Contains reports whether an element with key k is present.
func (s *Sorted[K, T]) Contains(k K) bool {
	_, ok := s.index(k)
	return ok
}

// Get returns the element with key k.
func (s *Sorted[K, T]) Get(k K) (T, bool) {
	if i, ok := s.index(k); ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Lookup is Get returning a *NotFoundError on a miss.
func (s *Sorted[K, T]) Lookup(k K) (T, error) {
	if v, ok := s.Get(k); ok {
		return v, nil
	}
	var zero T
	return zero, s.notFound(k)
}

// At returns the i-th element in key order.
func (s *Sorted[K, T]) At(i int) T {
	return s.items[i]
}

// Insert adds v at its sorted position. If the key is taken the collection is
// unchanged and an *AlreadyExistsError is returned.
func (s *Sorted[K, T]) Insert(v T) error {
	k := s.key(v)
	i, ok := s.index(k)
	if ok {
		return s.exists(k)
	}
	s.items = slices.Insert(s.items, i, v)
	return nil
}

// Remove deletes and returns the element with key k.
func (s *Sorted[K, T]) Remove(k K) (T, error) {
	i, ok := s.index(k)
	if !ok {
		var zero T
		return zero, s.notFound(k)
	}
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return v, nil
}

// Update changes the element stored under oldKey so that its key becomes
// newKey.
//
// Availability of newKey is checked first. When it belongs to another
// element an *AlreadyExistsError is returned and apply is never called.
// Otherwise the element is taken out, apply mutates it in place, and it is
// reinserted at its new position. apply must leave the element with key
// newKey; Update panics if it does not.
func (s *Sorted[K, T]) Update(oldKey, newKey K, apply func(*T)) error {
	i, ok := s.index(oldKey)
	if !ok {
		return s.notFound(oldKey)
	}
	if newKey != oldKey && s.Contains(newKey) {
		return s.exists(newKey)
	}

	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	apply(&v)
	if got := s.key(v); got != newKey {
		panic(fmt.Sprintf("collection: update of %s %v produced key %v, want %v", s.typ, oldKey, got, newKey))
	}
	j, _ := s.index(newKey)
	s.items = slices.Insert(s.items, j, v)
	return nil
}

// All iterates the elements in ascending key order.
func (s *Sorted[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys iterates the keys in ascending order.
func (s *Sorted[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, v := range s.items {
			if !yield(s.key(v)) {
				return
			}
		}
	}
}

// Items returns a copy of the elements in key order.
func (s *Sorted[K, T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *Sorted[K, T]) notFound(k K) error {
	return &errors.NotFoundError{Type: s.typ, Set: s.name, Key: fmt.Sprint(k)}
}

func (s *Sorted[K, T]) exists(k K) error {
	return &errors.AlreadyExistsError{Type: s.typ, Set: s.name, Key: fmt.Sprint(k)}
}
