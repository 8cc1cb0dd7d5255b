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

package interval

import (
	"strconv"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
)

// StepsSeparator joins interval offsets in their textual form.
const StepsSeparator = ";"

// FormatSteps renders offsets as ";"-joined signed integers with no trailing
// separator, e.g. "0;4;7".
func FormatSteps(steps []int) string {
	var b strings.Builder
	for i, s := range steps {
		if i > 0 {
			b.WriteString(StepsSeparator)
		}
		b.WriteString(strconv.Itoa(s))
	}
	return b.String()
}

// ParseSteps reads the form produced by FormatSteps. Blanks around each
// number are ignored. Empty or whitespace-only input, empty elements and
// non-integers fail with a *ParseError.
func ParseSteps(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &errors.ParseError{Type: "Steps", Value: s}
	}
	parts := strings.Split(s, StepsSeparator)
	steps := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &errors.ParseError{Type: "Steps", Value: s}
		}
		steps = append(steps, n)
	}
	return steps, nil
}
