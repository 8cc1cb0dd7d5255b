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

// Package model defines the contracts shared by every dxchord value type:
// pitches, notes, note styles, fretboard positions and the option enums used
// by the analysis engine.
//
// Value types in dxchord are small, immutable and freely copyable. Each of
// them implements Model so that it can be validated, serialized to JSON and
// YAML in its canonical textual form, logged safely, identified by type name
// and tested for its zero value. Catalog entities (chord qualities, scales,
// instruments, tunings) are mutable, owned by their catalogs and are NOT
// Models; they expose their own factory and mutation operations instead.
//
// Implementations are not thread-safe for concurrent mutation. Value types
// are safe for concurrent reads.
//
// Types implementing Model can be used with the generic helpers in this
// package, such as ValidateAll, MustValidate, ToJSON and FromYAML.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxchord value types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// invariants; Serializable provides round-trip JSON and YAML encoding;
// Loggable offers String and Redacted representations; Identifiable supplies
// a canonical type name; and ZeroCheckable detects empty instances.
//
// Model instances are treated as immutable values. Methods defined on Model
// MUST NOT mutate the receiver unless explicitly documented (unmarshal
// methods being the obvious exception).
//
// Example implementation:
//
//	type Side int
//
//	func (s Side) Validate() error   { ... }
//	func (s Side) TypeName() string  { return "Side" }
//	func (s Side) IsZero() bool      { return s == 0 }
//	func (s Side) Redacted() string  { return s.String() }
//	func (s Side) String() string    { ... }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Side)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every invariant of the value (ranges, cross-field
// consistency, nested values) and return nil if and only if the value is
// fully valid. When validation fails, the returned error MUST say what is
// wrong, for example "BarrePosition.Fret must be at least 1".
//
// Validate MUST be fast, deterministic and side-effect free: no I/O, no
// logging, no mutation of the receiver.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It returns
	// nil if the instance is valid, or a descriptive error otherwise.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Implementations MUST validate before marshaling and after unmarshaling so
// that invalid values never cross a serialization boundary. Value types in
// dxchord serialize to their canonical string form ("C#4", "3:1-6"), which
// keeps JSON, YAML and the XML catalog format consistent with each other.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// Redacted returns a representation safe for production logs; String returns
// the full human-readable form. dxchord value types carry no sensitive data,
// so for most of them both methods return the same text, but callers SHOULD
// still use Redacted in log statements so that the distinction survives if a
// sensitive type is ever added.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// canonical, constant CamelCase type name without package prefix (for
// example, "FullNote" or "BarrePosition"). Error values and log fields use
// the name to say which kind of value failed.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// Note that for several dxchord enums the zero value is a meaningful,
// valid constant (PitchClass C, NoteStyle ShowBoth). IsZero returning true
// therefore does not imply that Validate fails.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in its zero state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. Equal MUST be reflexive, symmetric, transitive and consistent,
// and MUST compare all semantically significant fields.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. The returned value MUST share no references with the receiver,
// so modifying the clone never affects the original.
type Cloneable[T any] interface {
	// Clone creates an independent copy of this instance.
	Clone() T
}
