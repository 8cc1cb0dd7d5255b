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

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const userCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<catalog version="1.0.0">
  <qualities>
    <quality name="Mu Major" abbv="mu" steps="0;2;4;7"/>
  </qualities>
  <instruments>
    <instrument name="Guitar" strings="6">
      <tuning name="Open C" notes="C2;G2;C3;G3;C4;E4"/>
    </instrument>
  </instruments>
</catalog>
`

const brokenCatalog = `<catalog version="1.0.0">
  <instruments>
    <instrument name="Lute" strings="6">
      <tuning name="Odd" notes="E2;A2"/>
    </instrument>
  </instruments>
</catalog>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes dxchord with a config path that does not exist unless the
// caller passes its own --config.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(&buf, zaptest.NewLogger(t))
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "qualities")
	require.NoError(t, err)
	require.Contains(t, out, "Minor (m): 0;3;7 [builtin]\n")
	require.Contains(t, out, "Major: 0;4;7 [builtin]\n")

	out, err = run(t, "list", "instruments")
	require.NoError(t, err)
	require.Contains(t, out, "Guitar (6 strings) [builtin]\n")

	out, err = run(t, "list", "tunings", "Guitar")
	require.NoError(t, err)
	require.Contains(t, out, "Drop D (D2 A2 D3 G3 B3 E4) [builtin]\n")

	_, err = run(t, "list", "tunings", "Theremin")
	require.Error(t, err)
}

func TestList_UserCatalogLayered(t *testing.T) {
	path := writeFile(t, "user.xml", userCatalog)

	out, err := run(t, "--catalog", path, "list", "qualities")
	require.NoError(t, err)
	require.Contains(t, out, "Mu Major (mu): 0;2;4;7 [user]\n")
	require.Contains(t, out, "Minor (m): 0;3;7 [builtin]\n")

	out, err = run(t, "--catalog", path, "list", "tunings", "Guitar")
	require.NoError(t, err)
	require.Contains(t, out, "Open C (C2 G2 C3 G3 C4 E4) [user]\n")
	require.Contains(t, out, "Standard (E2 A2 D3 G3 B3 E4) [builtin]\n")
}

func TestNotes(t *testing.T) {
	out, err := run(t, "notes", "C", "m7")
	require.NoError(t, err)
	require.Equal(t, "C Minor 7th: C D# G A#\n", out)

	cfg := writeFile(t, "dxchord.yaml", "note_style: prefer-flat\n")
	out, err = run(t, "--config", cfg, "notes", "C", "m7")
	require.NoError(t, err)
	require.Equal(t, "C Minor 7th: C Eb G Bb\n", out)

	out, err = run(t, "notes", "A", "Minor Pentatonic")
	require.NoError(t, err)
	require.Equal(t, "A Minor Pentatonic: A C D E G\n", out)

	_, err = run(t, "notes", "C", "Nonexistent")
	require.Error(t, err)

	_, err = run(t, "notes", "H", "Major")
	require.Error(t, err)
}

func TestFindChord(t *testing.T) {
	out, err := run(t, "find", "chord", "E", "Major", "-n", "3")
	require.NoError(t, err)
	require.Contains(t, out, "E Major: 0;4;7 on Standard (E2 A2 D3 G3 B3 E4)\n")
	require.Contains(t, out, " 1. 0 2 2 1 0 0  [E B E G# B E]  base 0  diagram 0 2 2 1 0 0  barre ")
	require.NotContains(t, out, " 4. ")
}

func TestFindChord_OtherTuning(t *testing.T) {
	out, err := run(t, "find", "chord", "D", "Major", "--tuning", "drop d", "-n", "1")
	require.NoError(t, err)
	require.Contains(t, out, "on Drop D (D2 A2 D3 G3 B3 E4)\n")
}

func TestFindScale(t *testing.T) {
	out, err := run(t, "find", "scale", "A", "Minor Pentatonic")
	require.NoError(t, err)
	require.Contains(t, out, "A Minor Pentatonic: 0;3;5;7;10 on Standard (E2 A2 D3 G3 B3 E4)\n")
	require.Contains(t, out, " 1. base ")
}

func TestCheck(t *testing.T) {
	path := writeFile(t, "user.xml", userCatalog)
	out, err := run(t, "check", path)
	require.NoError(t, err)
	require.Contains(t, out, "1 qualities, 0 scales, 1 instruments\n")

	copyPath := filepath.Join(t.TempDir(), "copy.xml")
	_, err = run(t, "check", path, "--write", copyPath)
	require.NoError(t, err)
	out, err = run(t, "check", copyPath)
	require.NoError(t, err)
	require.Contains(t, out, "1 qualities, 0 scales, 1 instruments\n")
}

func TestCheck_Warnings(t *testing.T) {
	path := writeFile(t, "broken.xml", brokenCatalog)
	out, err := run(t, "check", path)
	require.EqualError(t, err, "catalog has dropped entries")
	require.Contains(t, out, "warning: ")
}

func TestConfig(t *testing.T) {
	cfg := writeFile(t, "dxchord.yaml", "max_results: 5\n")
	out, err := run(t, "--config", cfg, "config")
	require.NoError(t, err)
	require.Contains(t, out, "max_results: 5\n")
	require.Contains(t, out, "barre_type: partial\n")

	bad := writeFile(t, "bad.yaml", "max_reach: 9\n")
	_, err = run(t, "--config", bad, "config")
	require.Error(t, err)
}
