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

// Package position defines the value types that identify a cell of a chord
// or scale diagram grid.
//
// Three kinds of element live on a diagram, each with its own position type:
//
//   - MarkPosition: a single finger mark on one string at one fret. Fret 0
//     addresses the open-string row above the nut.
//   - BarrePosition: one finger covering a contiguous span of strings at a
//     single fret.
//   - FretLabelPosition: a fret number label drawn to the left or right of
//     the grid.
//
// Strings and frets are 1-based except for the open-string row (fret 0) of
// marks. All three types are immutable, comparable with == and safe for
// concurrent use. They share the ElementPosition interface and a compact
// textual form:
//
//	MarkPosition      "<String>:<Fret>"          e.g. "2:3"
//	BarrePosition     "<Fret>:<Start>-<End>"     e.g. "1:1-6"
//	FretLabelPosition "<Side>:<Fret>"            e.g. "Left:5"
//
// Parse reads any of the three forms, plus the literal "null" for "no
// position".
package position

import (
	"strconv"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
)

// NullStr is the textual form of "no position". Parse accepts it in any
// letter case.
const NullStr = "null"

// ElementPosition is implemented by MarkPosition, BarrePosition and
// FretLabelPosition.
//
// Equality is structural: two positions are equal if and only if they have
// the same concrete type and the same field values. ClonePosition always
// returns an independent value.
type ElementPosition interface {
	// String returns the compact textual form read back by Parse.
	String() string

	// TypeName returns the concrete type's name.
	TypeName() string

	// Validate checks the field invariants of the position.
	Validate() error

	// EqualPosition reports structural equality with any other position.
	EqualPosition(other ElementPosition) bool

	// ClonePosition returns an independent copy.
	ClonePosition() ElementPosition
}

// Compile-time checks.
var (
	_ ElementPosition = MarkPosition{}
	_ ElementPosition = BarrePosition{}
	_ ElementPosition = FretLabelPosition{}
)

// Parse reads the textual form of any ElementPosition.
//
// The literal "null" (case-insensitive) yields (nil, nil). Otherwise the
// input is split on ':' and '-' into fields:
//
//   - "<Side>:<Fret>"          -> FretLabelPosition (first field is Left/Right)
//   - "<String>:<Fret>"        -> MarkPosition
//   - "<Fret>:<Start>-<End>"   -> BarrePosition
//
// Malformed input yields a *ParseError; well-formed input that violates a
// field invariant yields the constructor's error (for example an
// *InvalidSpanError for "1:3-3").
func Parse(s string) (ElementPosition, error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, NullStr) {
		return nil, nil
	}

	head, tail, ok := strings.Cut(t, ":")
	if !ok {
		return nil, &errors.ParseError{Type: "ElementPosition", Value: s}
	}

	if side, err := ParseFretLabelSide(head); err == nil {
		fret, err := strconv.Atoi(tail)
		if err != nil {
			return nil, &errors.ParseError{Type: "FretLabelPosition", Value: s}
		}
		label, err := NewFretLabelPosition(side, fret)
		if err != nil {
			return nil, err
		}
		return label, nil
	}

	first, err := strconv.Atoi(head)
	if err != nil {
		return nil, &errors.ParseError{Type: "ElementPosition", Value: s}
	}

	if start, end, isSpan := strings.Cut(tail, "-"); isSpan {
		a, errA := strconv.Atoi(start)
		b, errB := strconv.Atoi(end)
		if errA != nil || errB != nil {
			return nil, &errors.ParseError{Type: "BarrePosition", Value: s}
		}
		barre, err := NewBarrePosition(first, a, b)
		if err != nil {
			return nil, err
		}
		return barre, nil
	}

	fret, err := strconv.Atoi(tail)
	if err != nil {
		return nil, &errors.ParseError{Type: "MarkPosition", Value: s}
	}
	mark, err := NewMarkPosition(first, fret)
	if err != nil {
		return nil, err
	}
	return mark, nil
}

// Format returns the textual form of p, or "null" when p is nil.
func Format(p ElementPosition) string {
	if p == nil {
		return NullStr
	}
	return p.String()
}
