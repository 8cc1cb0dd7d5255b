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

package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/finder"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesFinderDefaults(t *testing.T) {
	if diff := cmp.Diff(finder.DefaultOptions(), Default().FinderOptions()); diff != "" {
		t.Errorf("FinderOptions() mismatch (-want +got):\n%s", diff)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), got)
}

func TestLoad_PartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxchord.yaml")
	doc := "num_frets: 4\nbarre_type: full\nnote_style: prefer-flat\ntuning: Drop D\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	got, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.NumFrets = 4
	want.BarreType = fretboard.Full
	want.NoteStyle = pitch.PreferFlat
	want.Tuning = "Drop D"
	require.Equal(t, want, got)
}

func TestDecode_Empty(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), got)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"max fret too high", "max_fret: 40\n", "MaxFret"},
		{"num frets above max fret", "max_fret: 3\nnum_frets: 5\nmax_reach: 3\n", "NumFrets"},
		{"reach above num frets", "max_reach: 6\n", "MaxReach"},
		{"negative results", "max_results: -1\n", "MaxResults"},
		{"tuning without instrument", "instrument: \"\"\n", "Instrument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid Config."+tt.field+":")
		})
	}
}

func TestDecode_BadEnum(t *testing.T) {
	_, err := Decode(strings.NewReader("barre_type: diagonal\n"))
	var ue *errors.UnmarshalError
	require.True(t, stderrors.As(err, &ue), "error %v is not an UnmarshalError", err)
}

func TestSave_RoundTrip(t *testing.T) {
	c := Default()
	c.AllowRootless = true
	c.NoteStyle = pitch.ShowBoth

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))
	require.Contains(t, buf.String(), "note_style: show-both")

	got, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, c, got)
}
