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
	"fmt"
	"slices"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/position"
)

// AbsoluteToRelativeMarks fits a dense voicing into a diagram numFrets
// tall.
//
// If every fretted position already lies in 1..numFrets the voicing is
// returned unchanged with baseline 0. Otherwise the baseline is MinFret
// and each fretted f becomes f-(baseline-1), so MinFret lands on the first
// row. Open and muted strings are never shifted. A voicing whose reach
// exceeds numFrets cannot fit and yields a *ValidationError.
func AbsoluteToRelativeMarks(marks []int, numFrets int) ([]int, int, error) {
	s, err := Analyze(marks)
	if err != nil {
		return nil, 0, err
	}
	baseline, err := baselineFor(s, numFrets)
	if err != nil {
		return nil, 0, err
	}
	out := slices.Clone(marks)
	if baseline > 0 {
		for i, f := range out {
			if f > Open {
				out[i] = f - (baseline - 1)
			}
		}
	}
	return out, baseline, nil
}

// AbsoluteToRelativeMarkPositions is AbsoluteToRelativeMarks for a sparse
// voicing. It returns the same baseline as the dense form for equivalent
// input.
func AbsoluteToRelativeMarkPositions(marks []position.MarkPosition, numStrings, numFrets int) ([]position.MarkPosition, int, error) {
	s, err := AnalyzeMarks(marks, numStrings)
	if err != nil {
		return nil, 0, err
	}
	baseline, err := baselineFor(s, numFrets)
	if err != nil {
		return nil, 0, err
	}
	out := slices.Clone(marks)
	if baseline > 0 {
		for i, m := range out {
			if m.Fret > Open {
				out[i].Fret = m.Fret - (baseline - 1)
			}
		}
	}
	return out, baseline, nil
}

func baselineFor(s Stats, numFrets int) (int, error) {
	if numFrets < 1 {
		return 0, &errors.ValidationError{
			Type:   "Diagram",
			Field:  "NumFrets",
			Reason: fmt.Sprintf("must be >= 1, got %d", numFrets),
			Value:  numFrets,
		}
	}
	if s.Reach > numFrets {
		return 0, &errors.ValidationError{
			Type:   "Voicing",
			Field:  "Reach",
			Reason: fmt.Sprintf("reach %d does not fit in %d frets", s.Reach, numFrets),
			Value:  s.Reach,
		}
	}
	if s.MaxFret <= numFrets {
		return 0, nil
	}
	return s.MinFret, nil
}
