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
	"testing"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/dxchord/dxcore/model/position"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"
)

func standard(t *testing.T) *instrument.Tuning {
	t.Helper()
	set := instrument.NewSet("test")
	g, err := set.Add("Guitar", 6)
	if err != nil {
		t.Fatal(err)
	}
	notes, err := instrument.ParseRootNotes("E2;A2;D3;G3;B3;E4")
	if err != nil {
		t.Fatal(err)
	}
	tun, err := g.Tunings().Add("Standard", notes)
	if err != nil {
		t.Fatal(err)
	}
	return tun
}

func patterns(t *testing.T) (major, minorPent *interval.NamedInterval) {
	t.Helper()
	q := interval.NewQualitySet("test")
	major, err := q.AddQuality("Major", "", []int{0, 4, 7})
	if err != nil {
		t.Fatal(err)
	}
	s := interval.NewScaleSet("test")
	minorPent, err = s.AddScale("Minor Pentatonic", []int{0, 3, 5, 7, 10})
	if err != nil {
		t.Fatal(err)
	}
	return major, minorPent
}

func TestFindChords_EMajorRanksOpenShapeFirst(t *testing.T) {
	tun := standard(t)
	major, _ := patterns(t)

	got, err := New(zaptest.NewLogger(t)).FindChords(tun, pitch.E, major, DefaultOptions())
	if err != nil {
		t.Fatalf("FindChords() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("FindChords() returned nothing")
	}
	if diff := cmp.Diff([]int{0, 2, 2, 1, 0, 0}, got[0].Marks); diff != "" {
		t.Errorf("first voicing mismatch (-want +got):\n%s", diff)
	}
	if got[0].Baseline != 0 {
		t.Errorf("Baseline = %d, want 0", got[0].Baseline)
	}
	if len(got) > DefaultOptions().MaxResults {
		t.Errorf("len = %d, exceeds MaxResults", len(got))
	}
	for i := 1; i < len(got); i++ {
		if fretboard.CompareStats(got[i-1].Stats, got[i].Stats) > 0 {
			t.Errorf("results %d and %d out of order", i-1, i)
		}
	}
}

func TestFindChords_EveryToneAndRootPresent(t *testing.T) {
	tun := standard(t)
	major, _ := patterns(t)
	opts := DefaultOptions()
	opts.MaxResults = 0

	got, err := New(nil).FindChords(tun, pitch.C, major, opts)
	if err != nil {
		t.Fatalf("FindChords() error = %v", err)
	}

	openC := false
	for _, c := range got {
		if slices.Equal(c.Marks, []int{-1, 3, 2, 0, 1, 0}) {
			openC = true
		}
		labels, err := fretboard.Annotate(c.Marks, tun, pitch.PreferSharp)
		if err != nil {
			t.Fatalf("Annotate() error = %v", err)
		}
		for _, want := range []string{"C", "E", "G"} {
			if !slices.Contains(labels, want) {
				t.Errorf("voicing %v lacks %s", c.Marks, want)
			}
		}
		for _, l := range labels {
			if l != fretboard.MutedLabel && l != "C" && l != "E" && l != "G" {
				t.Errorf("voicing %v sounds %s", c.Marks, l)
			}
		}
		if c.Stats.Reach > opts.MaxReach {
			t.Errorf("voicing %v reach %d", c.Marks, c.Stats.Reach)
		}
	}
	if !openC {
		t.Error("open C shape not found")
	}
}

func TestFindChords_NoMutedNoOpen(t *testing.T) {
	tun := standard(t)
	major, _ := patterns(t)
	opts := DefaultOptions()
	opts.AllowMutedStrings = false
	opts.AllowOpenStrings = false
	opts.BarreType = fretboard.Full

	got, err := New(nil).FindChords(tun, pitch.F, major, opts)
	if err != nil {
		t.Fatalf("FindChords() error = %v", err)
	}
	if len(got) == 0 {
		t.Fatal("FindChords() returned nothing")
	}
	if diff := cmp.Diff([]int{1, 3, 3, 2, 1, 1}, got[0].Marks); diff != "" {
		t.Errorf("first voicing mismatch (-want +got):\n%s", diff)
	}
	want := position.BarrePosition{Fret: 1, StartString: 1, EndString: 6}
	if got[0].Barre == nil || *got[0].Barre != want {
		t.Errorf("Barre = %v, want %v", got[0].Barre, want)
	}
	for _, c := range got {
		if c.Stats.HasMutedStrings || c.Stats.HasOpenStrings {
			t.Errorf("voicing %v has muted or open strings", c.Marks)
		}
	}
}

func TestFindScales_MinorPentatonicBox(t *testing.T) {
	tun := standard(t)
	_, pent := patterns(t)
	opts := DefaultOptions()
	opts.NumFrets = 4
	opts.MaxResults = 0

	got, err := New(nil).FindScales(tun, pitch.A, pent, opts)
	if err != nil {
		t.Fatalf("FindScales() error = %v", err)
	}

	want := []position.MarkPosition{
		{StringNum: 1, Fret: 5}, {StringNum: 1, Fret: 8},
		{StringNum: 2, Fret: 5}, {StringNum: 2, Fret: 7},
		{StringNum: 3, Fret: 5}, {StringNum: 3, Fret: 7},
		{StringNum: 4, Fret: 5}, {StringNum: 4, Fret: 7},
		{StringNum: 5, Fret: 5}, {StringNum: 5, Fret: 8},
		{StringNum: 6, Fret: 5}, {StringNum: 6, Fret: 8},
	}
	var box *ScalePattern
	for i := range got {
		if cmp.Equal(got[i].Marks, want) {
			box = &got[i]
		}
	}
	if box == nil {
		t.Fatal("fifth-position box not found")
	}
	if box.Baseline != 5 {
		t.Errorf("Baseline = %d, want 5", box.Baseline)
	}
	if box.RelativeMarks[0].Fret != 1 || box.RelativeMarks[1].Fret != 4 {
		t.Errorf("RelativeMarks = %v", box.RelativeMarks)
	}

	seen := map[string]bool{}
	for _, p := range got {
		k := markKey(p.Marks)
		if seen[k] {
			t.Errorf("duplicate pattern %s", k)
		}
		seen[k] = true
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"max fret", func(o *Options) { o.MaxFret = 0 }},
		{"num frets above max fret", func(o *Options) { o.NumFrets = 13 }},
		{"reach above num frets", func(o *Options) { o.MaxReach = 6 }},
		{"negative results", func(o *Options) { o.MaxResults = -1 }},
		{"barre type", func(o *Options) { o.BarreType = fretboard.BarreType(5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.modify(&o)
			if err := o.Validate(); err == nil {
				t.Error("Validate() error = nil, want error")
			}
		})
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() error = %v", err)
	}
}

func TestFindChords_InvalidArguments(t *testing.T) {
	tun := standard(t)
	major, _ := patterns(t)
	f := New(nil)
	if _, err := f.FindChords(nil, pitch.C, major, DefaultOptions()); err == nil {
		t.Error("FindChords(nil tuning) error = nil, want error")
	}
	if _, err := f.FindChords(tun, pitch.C, nil, DefaultOptions()); err == nil {
		t.Error("FindChords(nil quality) error = nil, want error")
	}
	if _, err := f.FindScales(tun, pitch.PitchClass(12), major, DefaultOptions()); err == nil {
		t.Error("FindScales(invalid root) error = nil, want error")
	}
}
