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
	"cmp"
	"slices"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/dxchord/dxcore/model/position"
	"go.uber.org/zap"
)

// Chord is one voicing found by FindChords.
type Chord struct {
	// Marks holds one absolute fret per string, Muted for muted strings.
	Marks []int
	// RelativeMarks is Marks fitted into Options.NumFrets rows.
	RelativeMarks []int
	// Baseline is the fret shown at the top row, 0 for the nut.
	Baseline int
	Stats    fretboard.Stats
	// Barre is the suggested barre in RelativeMarks coordinates, or nil.
	Barre *position.BarrePosition
}

// FindChords returns playable voicings of root plus quality on tuning,
// easiest first.
//
// Every string is either muted (when allowed) or sounds a chord tone. A
// voicing must contain every chord tone; the root may be missing only with
// AllowRootless.
func (f *Finder) FindChords(tuning *instrument.Tuning, root pitch.PitchClass, quality *interval.NamedInterval, opts Options) ([]Chord, error) {
	if err := f.check(tuning, root, quality, opts); err != nil {
		return nil, err
	}

	tones := quality.GetUniqueNotes(root, true)
	var inChord [pitch.NumPitchClasses]bool
	for _, pc := range tones {
		inChord[pc] = true
	}

	open := tuning.RootNotes()
	choices := make([][]int, len(open))
	for s, n := range open {
		if opts.AllowMutedStrings {
			choices[s] = append(choices[s], fretboard.Muted)
		}
		for fret := 0; fret <= opts.MaxFret; fret++ {
			if fret == fretboard.Open && !opts.AllowOpenStrings {
				continue
			}
			if inChord[n.Note().PitchClass().Shift(fret)] {
				choices[s] = append(choices[s], fret)
			}
		}
	}

	var found []Chord
	marks := make([]int, len(open))
	var walk func(s, lo, hi int)
	walk = func(s, lo, hi int) {
		if s == len(open) {
			if c, ok := f.accept(marks, open, tones, root, opts); ok {
				found = append(found, c)
			}
			return
		}
		for _, fret := range choices[s] {
			nlo, nhi := lo, hi
			if fret > fretboard.Open {
				nlo, nhi = min(lo, fret), max(hi, fret)
				if nhi-nlo+1 > opts.MaxReach {
					continue
				}
			}
			marks[s] = fret
			walk(s+1, nlo, nhi)
		}
	}
	walk(0, opts.MaxFret+1, 0)

	slices.SortStableFunc(found, func(a, b Chord) int {
		if c := fretboard.CompareStats(a.Stats, b.Stats); c != 0 {
			return c
		}
		return slices.Compare(a.Marks, b.Marks)
	})
	if opts.MaxResults > 0 && len(found) > opts.MaxResults {
		found = found[:opts.MaxResults]
	}
	f.logger.Debug("chord search finished",
		zap.String("root", root.String()),
		zap.String("quality", quality.LongName()),
		zap.String("tuning", tuning.LongName()),
		zap.Int("results", len(found)))
	return found, nil
}

func (f *Finder) accept(marks []int, open []pitch.FullNote, tones []pitch.PitchClass, root pitch.PitchClass, opts Options) (Chord, bool) {
	var present [pitch.NumPitchClasses]bool
	sounding := 0
	for s, fret := range marks {
		if fret == fretboard.Muted {
			continue
		}
		sounding++
		present[open[s].Note().PitchClass().Shift(fret)] = true
	}
	if sounding == 0 {
		return Chord{}, false
	}
	for _, pc := range tones {
		if !present[pc] && !(pc == root && opts.AllowRootless) {
			return Chord{}, false
		}
	}

	ok, err := fretboard.Validate(marks, opts.playability())
	if err != nil || !ok {
		return Chord{}, false
	}
	stats, err := fretboard.Analyze(marks)
	if err != nil {
		return Chord{}, false
	}
	rel, baseline, err := fretboard.AbsoluteToRelativeMarks(marks, opts.NumFrets)
	if err != nil {
		return Chord{}, false
	}
	c := Chord{
		Marks:         slices.Clone(marks),
		RelativeMarks: rel,
		Baseline:      baseline,
		Stats:         stats,
	}
	if b, ok, err := fretboard.AutoBarrePosition(rel, opts.BarreType, !opts.BarreRightToLeft); err == nil && ok {
		c.Barre = &b
	}
	return c, true
}

func (f *Finder) check(tuning *instrument.Tuning, root pitch.PitchClass, pattern *interval.NamedInterval, opts Options) error {
	if tuning == nil {
		return &errors.ValidationError{Type: "Tuning", Reason: "must not be nil"}
	}
	if pattern == nil {
		return &errors.ValidationError{Type: "NamedInterval", Reason: "must not be nil"}
	}
	if err := root.Validate(); err != nil {
		return err
	}
	return opts.Validate()
}

// compareMarks orders sparse voicings by string then fret, for stable
// output.
func compareMarks(a, b []position.MarkPosition) int {
	return slices.CompareFunc(a, b, func(x, y position.MarkPosition) int {
		if c := cmp.Compare(x.StringNum, y.StringNum); c != 0 {
			return c
		}
		return cmp.Compare(x.Fret, y.Fret)
	})
}
