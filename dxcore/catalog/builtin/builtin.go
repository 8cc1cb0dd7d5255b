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

// Package builtin holds the catalog of chord qualities, scales and
// instruments distributed with dxchord.
package builtin

import (
	"bytes"
	_ "embed"
	"fmt"

	"dirpx.dev/dxchord/dxcore/catalog/xmlfile"
	"go.uber.org/zap"
)

// Level tags every set of the built-in catalog.
const Level = "builtin"

//go:embed catalog.xml
var catalogXML []byte

// Load decodes the built-in catalog and freezes it. Each call returns a
// fresh copy.
func Load(logger *zap.Logger) (*xmlfile.Catalog, error) {
	r := xmlfile.NewReader(xmlfile.WithLogger(logger), xmlfile.WithLevel(Level))
	cat, err := r.Read(bytes.NewReader(catalogXML))
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	if cat.Warnings != nil {
		return nil, fmt.Errorf("builtin catalog: %w", cat.Warnings)
	}
	cat.MarkAsReadOnly()
	return cat, nil
}

// XML returns a copy of the raw built-in catalog document.
func XML() []byte {
	return bytes.Clone(catalogXML)
}
