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
	"dirpx.dev/dxchord/dxcore/model/position"
)

// AutoBarrePosition suggests a barre for a dense voicing.
//
// The barre fret is the lowest fretted fret. Strings are scanned one way,
// from the first string when leftToRight is set and from the last one
// otherwise. Strings below the barre fret are skipped until the barre
// starts; after that the first such string ends the scan. Within the scan
// the barre is extended to every string fretted at or above the barre fret
// (Full) or exactly at it (Partial).
//
// The second result is false when barreType is NoBarre, when nothing is
// fretted, or when the barre would cover a single string. This is a
// single greedy pass, not a search over placements.
func AutoBarrePosition(marks []int, barreType BarreType, leftToRight bool) (position.BarrePosition, bool, error) {
	if err := barreType.Validate(); err != nil {
		return position.BarrePosition{}, false, err
	}
	s, err := Analyze(marks)
	if err != nil {
		return position.BarrePosition{}, false, err
	}
	target := s.MinFret
	if barreType == NoBarre || target == 0 {
		return position.BarrePosition{}, false, nil
	}

	start, end := -1, -1
	n := len(marks)
	for k := range n {
		i := k
		if !leftToRight {
			i = n - 1 - k
		}
		f := marks[i]
		if f < target {
			if start >= 0 {
				break
			}
			continue
		}
		extend := f == target
		if barreType == Full {
			extend = f >= target
		}
		if !extend {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
	}

	if start < 0 || start == end {
		return position.BarrePosition{}, false, nil
	}
	lo, hi := min(start, end), max(start, end)
	b, err := position.NewBarrePosition(target, lo+1, hi+1)
	if err != nil {
		return position.BarrePosition{}, false, err
	}
	return b, true, nil
}
