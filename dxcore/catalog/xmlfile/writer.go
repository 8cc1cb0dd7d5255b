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
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
)

// Write encodes cat, with every set in its sort order. Nil sets are
// omitted.
func Write(w io.Writer, cat *Catalog) error {
	doc := xmlCatalog{Version: CurrentVersion.String()}
	if cat.Qualities != nil {
		doc.Qualities = &xmlQualities{Level: cat.Qualities.Level()}
		for q := range cat.Qualities.All() {
			doc.Qualities.Items = append(doc.Qualities.Items, xmlQuality{
				Name:  q.Name(),
				Abbv:  q.Abbreviation(),
				Steps: interval.FormatSteps(q.Intervals()),
			})
		}
	}
	if cat.Scales != nil {
		doc.Scales = &xmlScales{Level: cat.Scales.Level()}
		for s := range cat.Scales.All() {
			doc.Scales.Items = append(doc.Scales.Items, xmlScale{
				Name:  s.Name(),
				Steps: interval.FormatSteps(s.Intervals()),
			})
		}
	}
	if cat.Instruments != nil {
		doc.Instruments = &xmlInstruments{Level: cat.Instruments.Level()}
		for inst := range cat.Instruments.All() {
			xi := xmlInstrument{Name: inst.Name(), Strings: strconv.Itoa(inst.NumStrings())}
			for t := range inst.Tunings().All() {
				xi.Tunings = append(xi.Tunings, xmlTuning{
					Name:  t.Name(),
					Notes: instrument.FormatRootNotes(t.RootNotes()),
				})
			}
			doc.Instruments.Items = append(doc.Instruments.Items, xi)
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes cat to path, replacing any existing file.
func WriteFile(path string, cat *Catalog) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, cat)
}
