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

// Package fretboard scores, filters, ranks and normalizes candidate
// voicings, and derives barres and note names from them.
//
// Two input shapes are accepted. A dense voicing has one entry per string,
// lowest string first: Muted (-1), Open (0) or a fret number. A sparse
// voicing is a list of position.MarkPosition values plus a string count;
// a string may carry any number of marks and one with none is muted.
// Dense voicings describe chords, sparse ones scale patterns.
//
// Every exported function validates its arguments before computing
// anything and reports bad input with a *errors.ValidationError.
package fretboard

import (
	"fmt"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/position"
)

// Dense voicing values.
const (
	Muted = -1
	Open  = 0
)

// Stats summarizes a voicing. Fret statistics cover fretted positions only;
// with none of them MinFret, MaxFret, MeanFret and Reach are all zero.
type Stats struct {
	MinFret         int
	MaxFret         int
	MeanFret        float64
	MarkCount       int
	MutedCount      int
	Reach           int
	HasOpenStrings  bool
	HasMutedStrings bool
}

// Analyze computes Stats for a dense voicing.
func Analyze(marks []int) (Stats, error) {
	if err := checkDense(marks); err != nil {
		return Stats{}, err
	}
	var acc accumulator
	for _, f := range marks {
		switch {
		case f == Muted:
			acc.muted++
		case f == Open:
			acc.marks++
			acc.open = true
		default:
			acc.marks++
			acc.fret(f)
		}
	}
	return acc.stats(), nil
}

// AnalyzeMarks computes Stats for a sparse voicing on numStrings strings.
func AnalyzeMarks(marks []position.MarkPosition, numStrings int) (Stats, error) {
	if err := checkSparse(marks, numStrings); err != nil {
		return Stats{}, err
	}
	used := make([]bool, numStrings)
	var acc accumulator
	for _, m := range marks {
		used[m.StringNum-1] = true
		acc.marks++
		if m.Fret == Open {
			acc.open = true
		} else {
			acc.fret(m.Fret)
		}
	}
	for _, u := range used {
		if !u {
			acc.muted++
		}
	}
	return acc.stats(), nil
}

type accumulator struct {
	min, max, sum, fretted int
	marks, muted           int
	open                   bool
}

func (a *accumulator) fret(f int) {
	if a.fretted == 0 || f < a.min {
		a.min = f
	}
	if f > a.max {
		a.max = f
	}
	a.sum += f
	a.fretted++
}

func (a *accumulator) stats() Stats {
	s := Stats{
		MarkCount:       a.marks,
		MutedCount:      a.muted,
		HasOpenStrings:  a.open,
		HasMutedStrings: a.muted > 0,
	}
	if a.fretted > 0 {
		s.MinFret = a.min
		s.MaxFret = a.max
		s.MeanFret = float64(a.sum) / float64(a.fretted)
		s.Reach = a.max - a.min + 1
	}
	return s
}

func checkDense(marks []int) error {
	if len(marks) == 0 {
		return &errors.ValidationError{Type: "Voicing", Field: "Marks", Reason: "must not be empty"}
	}
	for i, f := range marks {
		if f < Muted {
			return &errors.ValidationError{
				Type:   "Voicing",
				Field:  "Marks",
				Reason: fmt.Sprintf("string %d: fret must be >= %d, got %d", i+1, Muted, f),
				Value:  f,
			}
		}
	}
	return nil
}

func checkSparse(marks []position.MarkPosition, numStrings int) error {
	if numStrings < 1 {
		return &errors.ValidationError{
			Type:   "Voicing",
			Field:  "NumStrings",
			Reason: fmt.Sprintf("must be >= 1, got %d", numStrings),
			Value:  numStrings,
		}
	}
	for _, m := range marks {
		if err := m.Validate(); err != nil {
			return err
		}
		if m.StringNum > numStrings {
			return &errors.ValidationError{
				Type:   "Voicing",
				Field:  "Marks",
				Reason: fmt.Sprintf("mark %s is beyond string %d", m, numStrings),
				Value:  m.String(),
			}
		}
	}
	return nil
}
