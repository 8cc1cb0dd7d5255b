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

// Package xmlfile reads and writes chord quality, scale and instrument
// catalogs as XML:
//
//	<catalog version="1.0.0">
//	  <qualities level="builtin">
//	    <quality name="Minor" abbv="m" steps="0;3;7"/>
//	  </qualities>
//	  <scales level="builtin">
//	    <scale name="Ionian" steps="0;2;4;5;7;9;11"/>
//	  </scales>
//	  <instruments level="builtin">
//	    <instrument name="Guitar" strings="6">
//	      <tuning name="Standard" notes="E2;A2;D3;G3;B3;E4"/>
//	    </instrument>
//	  </instruments>
//	</catalog>
//
// A malformed quality or scale fails the whole read. A malformed instrument
// or tuning is dropped, logged and reported in Catalog.Warnings so that a
// partly damaged file stays usable.
package xmlfile

import (
	"encoding/xml"

	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
)

// DefaultLevel tags sets whose section carries no level attribute.
const DefaultLevel = "user"

// Catalog is the content of one catalog file.
type Catalog struct {
	Qualities   *interval.Set
	Scales      *interval.Set
	Instruments *instrument.Set

	// Warnings lists every instrument and tuning dropped while reading, or
	// is nil. It is never set by NewCatalog or Write.
	Warnings error
}

// NewCatalog returns a catalog of empty sets tagged with level.
func NewCatalog(level string) *Catalog {
	return &Catalog{
		Qualities:   interval.NewQualitySet(level),
		Scales:      interval.NewScaleSet(level),
		Instruments: instrument.NewSet(level),
	}
}

// MarkAsReadOnly freezes all three sets.
func (c *Catalog) MarkAsReadOnly() {
	c.Qualities.MarkAsReadOnly()
	c.Scales.MarkAsReadOnly()
	c.Instruments.MarkAsReadOnly()
}

type xmlCatalog struct {
	XMLName     xml.Name        `xml:"catalog"`
	Version     string          `xml:"version,attr,omitempty"`
	Qualities   *xmlQualities   `xml:"qualities"`
	Scales      *xmlScales      `xml:"scales"`
	Instruments *xmlInstruments `xml:"instruments"`
}

type xmlQualities struct {
	Level string       `xml:"level,attr,omitempty"`
	Items []xmlQuality `xml:"quality"`
}

type xmlQuality struct {
	Name  string `xml:"name,attr"`
	Abbv  string `xml:"abbv,attr"`
	Steps string `xml:"steps,attr"`
}

type xmlScales struct {
	Level string     `xml:"level,attr,omitempty"`
	Items []xmlScale `xml:"scale"`
}

type xmlScale struct {
	Name  string `xml:"name,attr"`
	Steps string `xml:"steps,attr"`
}

type xmlInstruments struct {
	Level string          `xml:"level,attr,omitempty"`
	Items []xmlInstrument `xml:"instrument"`
}

type xmlInstrument struct {
	Name    string      `xml:"name,attr"`
	Strings string      `xml:"strings,attr"`
	Tunings []xmlTuning `xml:"tuning"`
}

type xmlTuning struct {
	Name  string `xml:"name,attr"`
	Notes string `xml:"notes,attr"`
}
