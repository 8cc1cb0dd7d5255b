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

package xmlfile

import (
	"fmt"
	"strings"

	"dirpx.dev/dxchord/dxcore/errors"
	bsemver "github.com/blang/semver/v4"
)

// CurrentVersion is the format version written by Writer. Readers accept
// any version with the same major number.
var CurrentVersion = bsemver.MustParse("1.0.0")

// ParseVersion reads a catalog version attribute.
//
// An empty attribute means CurrentVersion. A leading "v" is tolerated.
// Versions from another major line are rejected with a *ValidationError,
// malformed ones with a *ParseError.
func ParseVersion(s string) (bsemver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return CurrentVersion, nil
	}
	v, err := bsemver.Parse(s)
	if err != nil {
		return bsemver.Version{}, &errors.ParseError{Type: "CatalogVersion", Value: s}
	}
	if v.Major != CurrentVersion.Major {
		return bsemver.Version{}, &errors.ValidationError{
			Type:   "Catalog",
			Field:  "Version",
			Reason: fmt.Sprintf("unsupported format %s, want %d.x", v, CurrentVersion.Major),
			Value:  v.String(),
		}
	}
	return v, nil
}
