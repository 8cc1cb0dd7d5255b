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

package fretboard

import (
	"cmp"
	"fmt"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/position"
)

// Options are the playability limits checked by Validate.
type Options struct {
	MaxReach          int
	AllowOpenStrings  bool
	AllowMutedStrings bool
}

// Check returns a *ValidationError unless MaxReach >= 1.
func (o Options) Check() error {
	if o.MaxReach < 1 {
		return &errors.ValidationError{
			Type:   "Options",
			Field:  "MaxReach",
			Reason: fmt.Sprintf("must be >= 1, got %d", o.MaxReach),
			Value:  o.MaxReach,
		}
	}
	return nil
}

// Allows reports whether a voicing with stats s passes o.
func (o Options) Allows(s Stats) bool {
	return s.Reach <= o.MaxReach &&
		(o.AllowOpenStrings || !s.HasOpenStrings) &&
		(o.AllowMutedStrings || !s.HasMutedStrings)
}

// Validate reports whether a dense voicing is playable under opts. The
// error is non-nil only for malformed arguments.
func Validate(marks []int, opts Options) (bool, error) {
	if err := opts.Check(); err != nil {
		return false, err
	}
	s, err := Analyze(marks)
	if err != nil {
		return false, err
	}
	return opts.Allows(s), nil
}

// ValidateMarks is Validate for a sparse voicing.
func ValidateMarks(marks []position.MarkPosition, numStrings int, opts Options) (bool, error) {
	if err := opts.Check(); err != nil {
		return false, err
	}
	s, err := AnalyzeMarks(marks, numStrings)
	if err != nil {
		return false, err
	}
	return opts.Allows(s), nil
}

// CompareStats orders voicings from easiest to hardest and returns -1, 0 or
// +1. Keys are tried in turn until one differs:
//
//  1. fewer muted strings first
//  2. lower mean fretted fret first
//  3. fewer marks first
//  4. smaller reach first
//  5. voicings with open strings first
func CompareStats(a, b Stats) int {
	if c := cmp.Compare(a.MutedCount, b.MutedCount); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MeanFret, b.MeanFret); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MarkCount, b.MarkCount); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Reach, b.Reach); c != 0 {
		return c
	}
	switch {
	case a.HasOpenStrings == b.HasOpenStrings:
		return 0
	case a.HasOpenStrings:
		return -1
	default:
		return 1
	}
}

// Compare applies CompareStats to two dense voicings of the same length.
func Compare(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	sa, err := Analyze(a)
	if err != nil {
		return 0, err
	}
	sb, err := Analyze(b)
	if err != nil {
		return 0, err
	}
	return CompareStats(sa, sb), nil
}

// CompareMarks applies CompareStats to two sparse voicings.
func CompareMarks(a, b []position.MarkPosition, numStrings int) (int, error) {
	sa, err := AnalyzeMarks(a, numStrings)
	if err != nil {
		return 0, err
	}
	sb, err := AnalyzeMarks(b, numStrings)
	if err != nil {
		return 0, err
	}
	return CompareStats(sa, sb), nil
}

func lengthMismatch(want, got int) error {
	return &errors.ValidationError{
		Type:   "Voicing",
		Field:  "Marks",
		Reason: fmt.Sprintf("length mismatch: want %d strings, got %d", want, got),
		Value:  got,
	}
}
