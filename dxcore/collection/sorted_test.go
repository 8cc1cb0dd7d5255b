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

package collection

import (
	stderrors "errors"
	"slices"
	"strings"
	"testing"

	"dirpx.dev/dxchord/dxcore/errors"
	"github.com/google/go-cmp/cmp"
)

type entry struct {
	name  string
	value int
}

func newEntries() *Sorted[string, *entry] {
	return New("entry", "test", func(e *entry) string { return e.name })
}

func keys(s *Sorted[string, *entry]) []string {
	return slices.Collect(s.Keys())
}

func TestSorted_InsertKeepsOrder(t *testing.T) {
	s := newEntries()
	for _, name := range []string{"minor", "major", "sus4", "dim", "aug"} {
		if err := s.Insert(&entry{name: name}); err != nil {
			t.Fatalf("Insert(%q) error = %v", name, err)
		}
	}

	want := []string{"aug", "dim", "major", "minor", "sus4"}
	if diff := cmp.Diff(want, keys(s)); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSorted_InsertDuplicate(t *testing.T) {
	s := newEntries()
	if err := s.Insert(&entry{name: "major", value: 1}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := s.Insert(&entry{name: "major", value: 2})
	var exists *errors.AlreadyExistsError
	if !stderrors.As(err, &exists) {
		t.Fatalf("Insert() error = %v, want *AlreadyExistsError", err)
	}
	if exists.Key != "major" || exists.Set != "test" || exists.Type != "entry" {
		t.Errorf("AlreadyExistsError = %+v", exists)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got, _ := s.Get("major"); got.value != 1 {
		t.Errorf("Get() value = %d, want 1", got.value)
	}
}

func TestSorted_Remove(t *testing.T) {
	s := newEntries()
	_ = s.Insert(&entry{name: "a"})
	_ = s.Insert(&entry{name: "b"})

	v, err := s.Remove("a")
	if err != nil || v.name != "a" {
		t.Fatalf("Remove(a) = %v, %v", v, err)
	}
	if s.Contains("a") {
		t.Error("Contains(a) = true after Remove")
	}

	_, err = s.Remove("zz")
	var nf *errors.NotFoundError
	if !stderrors.As(err, &nf) {
		t.Errorf("Remove(zz) error = %v, want *NotFoundError", err)
	}
}

func TestSorted_UpdateMovesElement(t *testing.T) {
	s := newEntries()
	for _, name := range []string{"b", "d", "f"} {
		_ = s.Insert(&entry{name: name})
	}

	err := s.Update("b", "z", func(e **entry) { (*e).name = "z" })
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if diff := cmp.Diff([]string{"d", "f", "z"}, keys(s)); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSorted_UpdateSameKey(t *testing.T) {
	s := newEntries()
	_ = s.Insert(&entry{name: "a", value: 1})

	err := s.Update("a", "a", func(e **entry) { (*e).value = 9 })
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got, _ := s.Get("a"); got.value != 9 {
		t.Errorf("value = %d, want 9", got.value)
	}
}

func TestSorted_UpdateCollisionLeavesEverythingUntouched(t *testing.T) {
	s := newEntries()
	a := &entry{name: "a", value: 1}
	_ = s.Insert(a)
	_ = s.Insert(&entry{name: "c", value: 3})

	called := false
	err := s.Update("a", "c", func(e **entry) {
		called = true
		(*e).name = "c"
		(*e).value = 100
	})

	var exists *errors.AlreadyExistsError
	if !stderrors.As(err, &exists) {
		t.Fatalf("Update() error = %v, want *AlreadyExistsError", err)
	}
	if called {
		t.Error("apply was called despite the collision")
	}
	if a.name != "a" || a.value != 1 {
		t.Errorf("entry = %+v, want unchanged", *a)
	}
	if diff := cmp.Diff([]string{"a", "c"}, keys(s)); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestSorted_UpdateMissing(t *testing.T) {
	s := newEntries()
	err := s.Update("x", "y", func(**entry) {})
	var nf *errors.NotFoundError
	if !stderrors.As(err, &nf) {
		t.Errorf("Update() error = %v, want *NotFoundError", err)
	}
}

func TestSorted_UpdateKeyMismatchPanics(t *testing.T) {
	s := newEntries()
	_ = s.Insert(&entry{name: "a"})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Update() did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "produced key") {
			t.Errorf("panic = %v", r)
		}
	}()
	_ = s.Update("a", "b", func(e **entry) { (*e).name = "q" })
}

func TestSorted_LookupAndItems(t *testing.T) {
	s := newEntries()
	_ = s.Insert(&entry{name: "m"})

	if _, err := s.Lookup("m"); err != nil {
		t.Errorf("Lookup(m) error = %v", err)
	}
	if _, err := s.Lookup("n"); err == nil {
		t.Error("Lookup(n) error = nil, want error")
	}

	items := s.Items()
	items[0] = &entry{name: "other"}
	if s.At(0).name != "m" {
		t.Error("Items() returned a slice aliasing the collection")
	}
}

func TestSorted_AllStopsEarly(t *testing.T) {
	s := newEntries()
	for _, name := range []string{"a", "b", "c"} {
		_ = s.Insert(&entry{name: name})
	}
	var seen []string
	for e := range s.All() {
		seen = append(seen, e.name)
		if e.name == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqueName(t *testing.T) {
	taken := map[string]bool{"Drop D": true, "Drop D (1)": true, "Drop D (3)": true}
	isTaken := func(s string) bool { return taken[s] }

	tests := []struct {
		base, want string
	}{
		{"Open G", "Open G"},
		{"Drop D", "Drop D (2)"},
	}
	for _, tt := range tests {
		if got := UniqueName(tt.base, isTaken); got != tt.want {
			t.Errorf("UniqueName(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
