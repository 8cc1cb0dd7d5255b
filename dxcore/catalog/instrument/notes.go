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

package instrument

import (
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/model/pitch"
)

// NotesSeparator joins root notes in their textual form.
const NotesSeparator = ";"

// FormatRootNotes renders notes as "E2;A2;D3;G3;B3;E4".
func FormatRootNotes(notes []pitch.FullNote) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, NotesSeparator)
}

// ParseRootNotes reads the form produced by FormatRootNotes.
func ParseRootNotes(s string) ([]pitch.FullNote, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &errors.ParseError{Type: "RootNotes", Value: s}
	}
	parts := strings.Split(s, NotesSeparator)
	notes := make([]pitch.FullNote, len(parts))
	for i, p := range parts {
		n, err := pitch.ParseFullNote(p)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}
	return notes, nil
}
