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

// Package errors provides reusable error types for dxchord value types and
// catalogs.
//
// This package defines the error types shared by every dxchord package:
// the pitch and position value types (parsing, marshaling, unmarshaling,
// validation) and the chord, scale and instrument catalogs (lookup,
// uniqueness, read-only protection). Centralizing them keeps message
// formats stable and lets callers recognize failures with errors.As
// regardless of which package produced them.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / catalog code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a typed value fails (note names,
//     positions, interval steps, enum-like options).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails.
//
//   - ValidationError
//     Returned when a value or a catalog mutation violates a constraint.
//
//   - NotFoundError, AlreadyExistsError
//     Identity-bearing catalog errors. They carry the logical set that was
//     searched or modified and the key that was missing or duplicated.
//
//   - InvalidSpanError
//     Returned when a barre is constructed with StartString >= EndString.
//
//   - ReadOnlyError
//     Returned when a mutation is attempted on a frozen catalog entity.
package errors

import (
	"fmt"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed value
// fails.
//
// Type identifies the logical type being parsed (for example, "Note",
// "FullNote", "NoteStyle"), and Value contains the exact string that could
// not be interpreted.
//
// # Example
//
//	func ParseNoteStyle(s string) (NoteStyle, error) {
//	    switch s {
//	    case "prefer-sharp":
//	        return PreferSharp, nil
//	    default:
//	        // "dxchord: invalid NoteStyle value: <value>"
//	        return 0, &errors.ParseError{Type: "NoteStyle", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Note").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxchord: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxchord: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error (for example, a
// numeric cast that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Note").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxchord: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxchord: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the original
// raw payload, and Reason provides a human-readable description of what went
// wrong. The Data field is intentionally not included in the formatted message.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxchord: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxchord: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a value or a requested
// catalog mutation fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Tuning", "NamedInterval"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation, and Value
// optionally contains the offending value.
//
// # Example
//
//	if numStrings < 2 {
//	    return &errors.ValidationError{
//	        Type:   "Instrument",
//	        Field:  "NumStrings",
//	        Reason: "must be at least 2",
//	        Value:  numStrings,
//	    }
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxchord: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxchord: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxchord: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxchord: invalid " + e.Type + ": " + e.Reason
}

// NotFoundError is returned when a catalog lookup by key fails.
//
// Set names the collection that was searched (for example, the Level of a
// chord quality set or the name of an instrument owning a tuning set), and
// Key is the exact key that was requested.
type NotFoundError struct {
	// Type is the logical name of the entity that was looked up.
	Type string

	// Set identifies the collection that was searched. May be empty.
	Set string

	// Key is the key that could not be resolved.
	Key string
}

// Error implements the error interface for NotFoundError.
//
// The error message format is:
//
//	"dxchord: {Type} {Key} not found in {Set}" (when Set is specified)
//	"dxchord: {Type} {Key} not found"          (when Set is empty)
func (e *NotFoundError) Error() string {
	if e.Set != "" {
		return fmt.Sprintf("dxchord: %s %q not found in %q", e.Type, e.Key, e.Set)
	}
	return fmt.Sprintf("dxchord: %s %q not found", e.Type, e.Key)
}

// AlreadyExistsError is returned when an insertion or a key-affecting update
// would produce a duplicate key inside a sorted catalog.
//
// The owning collection is left exactly as it was before the failing call.
type AlreadyExistsError struct {
	// Type is the logical name of the entity that collided.
	Type string

	// Set identifies the collection that already holds the key. May be empty.
	Set string

	// Key is the duplicated key.
	Key string
}

// Error implements the error interface for AlreadyExistsError.
//
// The error message format is:
//
//	"dxchord: {Type} {Key} already exists in {Set}" (when Set is specified)
//	"dxchord: {Type} {Key} already exists"          (when Set is empty)
func (e *AlreadyExistsError) Error() string {
	if e.Set != "" {
		return fmt.Sprintf("dxchord: %s %q already exists in %q", e.Type, e.Key, e.Set)
	}
	return fmt.Sprintf("dxchord: %s %q already exists", e.Type, e.Key)
}

// InvalidSpanError is returned when a string span is empty or inverted, for
// example when constructing a barre whose StartString is not strictly less
// than its EndString.
type InvalidSpanError struct {
	// Start is the attempted first string of the span.
	Start int

	// End is the attempted last string of the span.
	End int
}

// Error implements the error interface for InvalidSpanError.
//
// The error message format is:
//
//	"dxchord: invalid span {Start}-{End}: start must be less than end"
func (e *InvalidSpanError) Error() string {
	return "dxchord: invalid span " + strconv.Itoa(e.Start) + "-" + strconv.Itoa(e.End) + ": start must be less than end"
}

// ReadOnlyError is returned when a mutation is attempted on a catalog entity
// or collection that has been frozen with MarkAsReadOnly.
type ReadOnlyError struct {
	// Type is the logical name of the frozen entity.
	Type string

	// Key identifies the frozen entity. May be empty for collections.
	Key string
}

// Error implements the error interface for ReadOnlyError.
//
// The error message format is:
//
//	"dxchord: {Type} {Key} is read-only" (when Key is specified)
//	"dxchord: {Type} is read-only"       (when Key is empty)
func (e *ReadOnlyError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("dxchord: %s %q is read-only", e.Type, e.Key)
	}
	return "dxchord: " + e.Type + " is read-only"
}
