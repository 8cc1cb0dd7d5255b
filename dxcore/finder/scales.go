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

package finder

import (
	"slices"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/dxchord/dxcore/model/position"
	"go.uber.org/zap"
)

// ScalePattern is one fret window of a scale found by FindScales.
type ScalePattern struct {
	// Marks lists every in-scale position in the window, by string then
	// fret.
	Marks         []position.MarkPosition
	RelativeMarks []position.MarkPosition
	Baseline      int
	Stats         fretboard.Stats
}

// FindScales returns the in-scale positions of every window of
// Options.NumFrets frets between the nut and MaxFret, easiest first.
// Fret 0 belongs to the first window only, and only with AllowOpenStrings.
func (f *Finder) FindScales(tuning *instrument.Tuning, root pitch.PitchClass, scale *interval.NamedInterval, opts Options) ([]ScalePattern, error) {
	if err := f.check(tuning, root, scale, opts); err != nil {
		return nil, err
	}

	var inScale [pitch.NumPitchClasses]bool
	for _, pc := range scale.GetUniqueNotes(root, true) {
		inScale[pc] = true
	}

	open := tuning.RootNotes()
	seen := make(map[string]bool)
	var found []ScalePattern
	for start := 0; start+opts.NumFrets-1 <= opts.MaxFret; start++ {
		var marks []position.MarkPosition
		for s, n := range open {
			for fret := start; fret < start+opts.NumFrets; fret++ {
				if fret == fretboard.Open && !opts.AllowOpenStrings {
					continue
				}
				if inScale[n.Note().PitchClass().Shift(fret)] {
					marks = append(marks, position.MarkPosition{StringNum: s + 1, Fret: fret})
				}
			}
		}
		if len(marks) == 0 {
			continue
		}
		key := markKey(marks)
		if seen[key] {
			continue
		}
		seen[key] = true

		ok, err := fretboard.ValidateMarks(marks, len(open), opts.playability())
		if err != nil || !ok {
			continue
		}
		stats, err := fretboard.AnalyzeMarks(marks, len(open))
		if err != nil {
			continue
		}
		rel, baseline, err := fretboard.AbsoluteToRelativeMarkPositions(marks, len(open), opts.NumFrets)
		if err != nil {
			continue
		}
		found = append(found, ScalePattern{Marks: marks, RelativeMarks: rel, Baseline: baseline, Stats: stats})
	}

	slices.SortStableFunc(found, func(a, b ScalePattern) int {
		if c := fretboard.CompareStats(a.Stats, b.Stats); c != 0 {
			return c
		}
		return compareMarks(a.Marks, b.Marks)
	})
	if opts.MaxResults > 0 && len(found) > opts.MaxResults {
		found = found[:opts.MaxResults]
	}
	f.logger.Debug("scale search finished",
		zap.String("root", root.String()),
		zap.String("scale", scale.LongName()),
		zap.String("tuning", tuning.LongName()),
		zap.Int("results", len(found)))
	return found, nil
}

func markKey(marks []position.MarkPosition) string {
	b := make([]byte, 0, len(marks)*5)
	for _, m := range marks {
		b = append(b, m.String()...)
		b = append(b, ' ')
	}
	return string(b)
}
