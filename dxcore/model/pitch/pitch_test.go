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

package pitch

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"testing"

	"dirpx.dev/dxchord/dxcore/errors"
	"gopkg.in/yaml.v3"
)

func TestPitchClass_Shift(t *testing.T) {
	tests := []struct {
		name  string
		root  PitchClass
		steps int
		want  PitchClass
	}{
		{"identity", E, 0, E},
		{"up one", C, 1, CSharp},
		{"wrap up", B, 1, C},
		{"wrap down", C, -1, B},
		{"octave up", G, 12, G},
		{"octave down", G, -12, G},
		{"fifth", A, 7, E},
		{"large positive", D, 12*1000 + 3, F},
		{"large negative", D, -12*1000 - 3, B},
		{"max int", C, math.MaxInt, Shift(C, math.MaxInt%12)},
		{"min int", C, math.MinInt, Shift(C, math.MinInt%12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(tt.root, tt.steps)
			if got != tt.want {
				t.Errorf("Shift(%v, %d) = %v, want %v", tt.root, tt.steps, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("Shift(%v, %d) = %d, out of range", tt.root, tt.steps, int(got))
			}
		})
	}
}

func TestPitchClass_ShiftRoundTrip(t *testing.T) {
	for p := C; p <= B; p++ {
		for _, s := range []int{-100, -13, -12, -1, 0, 1, 5, 11, 12, 25, 1000} {
			if got := p.Shift(s).Shift(-s); got != p {
				t.Errorf("%v.Shift(%d).Shift(%d) = %v, want %v", p, s, -s, got, p)
			}
		}
	}
}

func TestPitchClass_Name(t *testing.T) {
	tests := []struct {
		name  string
		class PitchClass
		style NoteStyle
		want  string
	}{
		{"natural show both", C, ShowBoth, "C"},
		{"natural prefer flat", B, PreferFlat, "B"},
		{"sharp show both", CSharp, ShowBoth, "C#/Db"},
		{"sharp prefer sharp", FSharp, PreferSharp, "F#"},
		{"sharp prefer flat", ASharp, PreferFlat, "Bb"},
		{"invalid style", DSharp, NoteStyle(9), "D#/Eb"},
		{"invalid class", PitchClass(12), ShowBoth, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.Name(tt.style); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePitchClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PitchClass
		wantErr bool
	}{
		{"natural", "E", E, false},
		{"lowercase", "g", G, false},
		{"sharp", "G#", GSharp, false},
		{"flat", "Ab", GSharp, false},
		{"compound", "C#/Db", CSharp, false},
		{"compound mismatch", "C#/Eb", C, true},
		{"empty", "", C, true},
		{"bad letter", "H", C, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePitchClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePitchClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePitchClass(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Note
		wantErr bool
	}{
		{"natural", "D", NoteD, false},
		{"sharp", "F#", NoteFSharp, false},
		{"flat", "Bb", NoteBFlat, false},
		{"lower flat", "eb", NoteEFlat, false},
		{"whitespace", " A ", NoteA, false},
		{"E sharp unsupported", "E#", NoteC, true},
		{"C flat unsupported", "Cb", NoteC, true},
		{"s is not an accidental", "Cs", NoteC, true},
		{"too long", "C##", NoteC, true},
		{"empty", "", NoteC, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNote(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNote(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNote(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNote_PitchClass(t *testing.T) {
	if NoteCSharp.PitchClass() != NoteDFlat.PitchClass() {
		t.Errorf("C# and Db should share a pitch class")
	}
	if NoteCSharp.Equal(NoteDFlat) {
		t.Errorf("C#.Equal(Db) = true, want false")
	}
	for n := NoteC; n <= NoteB; n++ {
		if got := NoteFor(n.PitchClass(), PreferSharp).PitchClass(); got != n.PitchClass() {
			t.Errorf("NoteFor(%v) round trip = %v", n, got)
		}
		if n.IsNatural() && (n.IsSharp() || n.IsFlat()) {
			t.Errorf("%v reported as both natural and accidental", n)
		}
	}
}

func TestNoteFor(t *testing.T) {
	tests := []struct {
		class PitchClass
		style NoteStyle
		want  Note
	}{
		{E, PreferFlat, NoteE},
		{GSharp, PreferSharp, NoteGSharp},
		{GSharp, PreferFlat, NoteAFlat},
		{GSharp, ShowBoth, NoteGSharp},
	}

	for _, tt := range tests {
		if got := NoteFor(tt.class, tt.style); got != tt.want {
			t.Errorf("NoteFor(%v, %v) = %v, want %v", tt.class, tt.style, got, tt.want)
		}
	}
}

func TestParseFullNote(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"sharp", "C#4", "C#4", false},
		{"flat", "Bb3", "Bb3", false},
		{"natural", "E2", "E2", false},
		{"two digit octave", "A10", "A10", false},
		{"lowercase letter", "g3", "G3", false},
		{"no digit", "Cs", "", true},
		{"no digit plain", "C", "", true},
		{"digit first", "4C", "", true},
		{"bad note", "H2", "", true},
		{"negative", "C-1", "", true},
		{"trailing junk", "C4x", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFullNote(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFullNote(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("error type = %T, want *errors.ParseError", err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseFullNote(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestNewFullNote(t *testing.T) {
	if _, err := NewFullNote(NoteA, -1); err == nil {
		t.Errorf("NewFullNote(A, -1) error = nil, want error")
	}
	if _, err := NewFullNote(Note(40), 2); err == nil {
		t.Errorf("NewFullNote(40, 2) error = nil, want error")
	}
	n, err := NewFullNote(NoteEFlat, 5)
	if err != nil {
		t.Fatalf("NewFullNote() error = %v", err)
	}
	if n.String() != "Eb5" {
		t.Errorf("String() = %q, want %q", n.String(), "Eb5")
	}
	if got := n.Format(ShowBoth); got != "D#/Eb5" {
		t.Errorf("Format(ShowBoth) = %q, want %q", got, "D#/Eb5")
	}
}

func TestFullNote_Shift(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		steps   int
		style   NoteStyle
		want    string
		wantErr bool
	}{
		{"carry up from B", "B3", 1, PreferSharp, "C4", false},
		{"borrow down from C", "C4", -1, PreferSharp, "B3", false},
		{"perfect fifth", "E2", 7, PreferSharp, "B2", false},
		{"flat spelling", "A2", 1, PreferFlat, "Bb2", false},
		{"two octaves", "G1", 24, PreferSharp, "G3", false},
		{"below zero", "C0", -1, PreferSharp, "", true},
		{"deep below zero", "D1", -40, PreferSharp, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustFullNote(tt.from).Shift(tt.steps, tt.style)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Shift() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Shift() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPitch_ShiftRoundTrip(t *testing.T) {
	start := MustFullNote("E2").Pitch()
	for _, s := range []int{0, 1, 11, 12, 13, 27, -1, -12, -28} {
		shifted, err := start.Shift(s)
		if err != nil {
			t.Fatalf("Shift(%d) error = %v", s, err)
		}
		back, err := shifted.Shift(-s)
		if err != nil {
			t.Fatalf("Shift(%d).Shift(%d) error = %v", s, -s, err)
		}
		if back != start {
			t.Errorf("Shift(%d).Shift(%d) = %v, want %v", s, -s, back, start)
		}
	}
}

func TestPitch_StepsTo(t *testing.T) {
	notes := []string{"C0", "B0", "C1", "E2", "A2", "D3", "G3", "B3", "E4", "C#5", "Bb7"}
	for _, a := range notes {
		for _, b := range notes {
			pa, pb := MustFullNote(a).Pitch(), MustFullNote(b).Pitch()
			steps := pa.StepsTo(pb)
			got, err := pa.Shift(steps)
			if err != nil {
				t.Fatalf("%s.Shift(%d) error = %v", a, steps, err)
			}
			if got != pb {
				t.Errorf("%s.Shift(%s.StepsTo(%s)) = %v, want %v", a, a, b, got, pb)
			}
		}
	}

	if got := MustFullNote("E2").Pitch().StepsTo(MustFullNote("A2").Pitch()); got != 5 {
		t.Errorf("E2.StepsTo(A2) = %d, want 5", got)
	}
	if got := MustFullNote("C4").Pitch().StepsTo(MustFullNote("B3").Pitch()); got != -1 {
		t.Errorf("C4.StepsTo(B3) = %d, want -1", got)
	}
}

func TestPitch_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"C4", "C4", 0},
		{"B3", "C4", -1},
		{"C4", "B3", 1},
		{"C#4", "Db4", 0},
		{"D4", "C#4", 1},
	}

	for _, tt := range tests {
		if got := MustFullNote(tt.a).Pitch().Compare(MustFullNote(tt.b).Pitch()); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewPitch(t *testing.T) {
	if _, err := NewPitch(C, -1); err == nil {
		t.Errorf("NewPitch(C, -1) error = nil, want error")
	}
	if _, err := NewPitch(PitchClass(12), 1); err == nil {
		t.Errorf("NewPitch(12, 1) error = nil, want error")
	}
	p, err := NewPitch(ASharp, 2)
	if err != nil {
		t.Fatalf("NewPitch() error = %v", err)
	}
	if got := p.FullNote(PreferFlat).String(); got != "Bb2" {
		t.Errorf("FullNote(PreferFlat) = %q, want %q", got, "Bb2")
	}
}

func TestFullNote_JSON(t *testing.T) {
	n := MustFullNote("F#3")
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"F#3"` {
		t.Errorf("json.Marshal() = %s, want %s", data, `"F#3"`)
	}

	var back FullNote
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back != n {
		t.Errorf("round trip = %v, want %v", back, n)
	}

	if err := json.Unmarshal([]byte(`"F#"`), &back); err == nil {
		t.Errorf("json.Unmarshal(F#) error = nil, want error")
	}
}

func TestFullNote_YAML(t *testing.T) {
	var got struct {
		Root FullNote `yaml:"root"`
	}
	if err := yaml.Unmarshal([]byte("root: Db2\n"), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if got.Root.String() != "Db2" {
		t.Errorf("Root = %v, want Db2", got.Root)
	}
}

func TestParseNoteStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    NoteStyle
		wantErr bool
	}{
		{"show-both", ShowBoth, false},
		{"PreferSharp", PreferSharp, false},
		{"prefer_flat", PreferFlat, false},
		{"flat", PreferFlat, false},
		{"bogus", ShowBoth, true},
	}

	for _, tt := range tests {
		got, err := ParseNoteStyle(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNoteStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNoteStyle(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNoteStyle_JSON(t *testing.T) {
	data, err := json.Marshal(PreferFlat)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"prefer-flat"` {
		t.Errorf("json.Marshal() = %s", data)
	}

	var s NoteStyle
	if err := json.Unmarshal([]byte(`1`), &s); err != nil || s != PreferSharp {
		t.Errorf("json.Unmarshal(1) = %v, %v; want PreferSharp, nil", s, err)
	}
	if err := json.Unmarshal([]byte(`7`), &s); err == nil {
		t.Errorf("json.Unmarshal(7) error = nil, want error")
	}
	if _, err := json.Marshal(NoteStyle(7)); err == nil {
		t.Errorf("json.Marshal(7) error = nil, want error")
	}
}
