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
	"dirpx.dev/rxmerr"
	"go.uber.org/zap"
)

// Reader decodes catalog files.
type Reader struct {
	logger *zap.Logger
	level  string
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger that records dropped entries.
func WithLogger(l *zap.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLevel sets the level given to sections without a level attribute.
func WithLevel(level string) Option {
	return func(r *Reader) {
		r.level = level
	}
}

// NewReader returns a Reader that logs nothing and tags untagged sections
// with DefaultLevel.
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: zap.NewNop(), level: DefaultLevel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read decodes one catalog.
//
// The error is non-nil when the document is unusable: bad XML, an
// unsupported version, or a malformed quality or scale. Otherwise the
// catalog is complete and its Warnings field lists every instrument and
// tuning that was dropped.
func (r *Reader) Read(src io.Reader) (*Catalog, error) {
	var doc xmlCatalog
	if err := xml.NewDecoder(src).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	version, err := ParseVersion(doc.Version)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("reading catalog", zap.String("version", version.String()))

	cat := &Catalog{}
	if cat.Qualities, err = r.readQualities(doc.Qualities); err != nil {
		return nil, err
	}
	if cat.Scales, err = r.readScales(doc.Scales); err != nil {
		return nil, err
	}
	c := rxmerr.NewCollector()
	cat.Instruments = r.readInstruments(doc.Instruments, func(err error) {
		r.logger.Warn("dropping catalog entry", zap.Error(err))
		c.Append(err)
	})
	cat.Warnings = c.Err()
	return cat, nil
}

// ReadFile is Read on the named file.
func (r *Reader) ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return r.Read(f)
}

func (r *Reader) levelOf(attr string) string {
	if attr != "" {
		return attr
	}
	return r.level
}

func (r *Reader) readQualities(sec *xmlQualities) (*interval.Set, error) {
	if sec == nil {
		return interval.NewQualitySet(r.level), nil
	}
	set := interval.NewQualitySet(r.levelOf(sec.Level))
	for _, q := range sec.Items {
		steps, err := interval.ParseSteps(q.Steps)
		if err != nil {
			return nil, fmt.Errorf("quality %q: %w", q.Name, err)
		}
		if _, err := set.AddQuality(q.Name, q.Abbv, steps); err != nil {
			return nil, fmt.Errorf("quality %q: %w", q.Name, err)
		}
	}
	return set, nil
}

func (r *Reader) readScales(sec *xmlScales) (*interval.Set, error) {
	if sec == nil {
		return interval.NewScaleSet(r.level), nil
	}
	set := interval.NewScaleSet(r.levelOf(sec.Level))
	for _, s := range sec.Items {
		steps, err := interval.ParseSteps(s.Steps)
		if err != nil {
			return nil, fmt.Errorf("scale %q: %w", s.Name, err)
		}
		if _, err := set.AddScale(s.Name, steps); err != nil {
			return nil, fmt.Errorf("scale %q: %w", s.Name, err)
		}
	}
	return set, nil
}

func (r *Reader) readInstruments(sec *xmlInstruments, drop func(error)) *instrument.Set {
	if sec == nil {
		return instrument.NewSet(r.level)
	}
	set := instrument.NewSet(r.levelOf(sec.Level))
	for _, xi := range sec.Items {
		numStrings, err := strconv.Atoi(xi.Strings)
		if err != nil {
			drop(fmt.Errorf("instrument %q: strings %q is not a number", xi.Name, xi.Strings))
			continue
		}
		inst, err := set.Add(xi.Name, numStrings)
		if err != nil {
			drop(fmt.Errorf("instrument %q: %w", xi.Name, err))
			continue
		}
		for _, xt := range xi.Tunings {
			notes, err := instrument.ParseRootNotes(xt.Notes)
			if err == nil {
				_, err = inst.Tunings().Add(xt.Name, notes)
			}
			if err != nil {
				drop(fmt.Errorf("instrument %q tuning %q: %w", xi.Name, xt.Name, err))
			}
		}
	}
	return set
}
