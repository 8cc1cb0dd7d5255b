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

// Package config loads the YAML document that holds the search limits and
// display defaults of the dxchord command.
//
// A document only needs the keys it changes; everything else keeps the
// value from Default:
//
//	num_frets: 4
//	barre_type: full
//	note_style: prefer-flat
//	instrument: Guitar
//	tuning: Drop D
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/finder"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/rxmerr"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the decoded document.
type Config struct {
	MaxFret           int  `yaml:"max_fret" validate:"gte=1,lte=36"`
	NumFrets          int  `yaml:"num_frets" validate:"gte=1,ltefield=MaxFret"`
	MaxReach          int  `yaml:"max_reach" validate:"gte=1,ltefield=NumFrets"`
	AllowOpenStrings  bool `yaml:"allow_open_strings"`
	AllowMutedStrings bool `yaml:"allow_muted_strings"`
	AllowRootless     bool `yaml:"allow_rootless"`
	MaxResults        int  `yaml:"max_results" validate:"gte=0,lte=1000"`

	BarreType        fretboard.BarreType `yaml:"barre_type"`
	BarreRightToLeft bool                `yaml:"barre_right_to_left"`

	NoteStyle  pitch.NoteStyle `yaml:"note_style"`
	Instrument string          `yaml:"instrument" validate:"required_with=Tuning"`
	Tuning     string          `yaml:"tuning"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the finder defaults, sharp spelling and standard guitar.
func Default() *Config {
	o := finder.DefaultOptions()
	return &Config{
		MaxFret:           o.MaxFret,
		NumFrets:          o.NumFrets,
		MaxReach:          o.MaxReach,
		AllowOpenStrings:  o.AllowOpenStrings,
		AllowMutedStrings: o.AllowMutedStrings,
		AllowRootless:     o.AllowRootless,
		MaxResults:        o.MaxResults,
		BarreType:         o.BarreType,
		BarreRightToLeft:  o.BarreRightToLeft,
		NoteStyle:         pitch.PreferSharp,
		Instrument:        "Guitar",
		Tuning:            "Standard",
	}
}

// Load reads the document at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a document from r over Default and validates the result.
// An empty document yields Default.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, &errors.UnmarshalError{Type: "Config", Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the struct tags first, then the enum fields. Every
// failing field is reported.
func (c *Config) Validate() error {
	col := rxmerr.NewCollector()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !stderrors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			col.Append(&errors.ValidationError{
				Type:   "Config",
				Field:  fe.Field(),
				Reason: reason(fe),
				Value:  fe.Value(),
			})
		}
	}
	if err := c.BarreType.Validate(); err != nil {
		col.Append(err)
	}
	if err := c.NoteStyle.Validate(); err != nil {
		col.Append(err)
	}
	return col.Err()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "ltefield":
		return "must not exceed " + fe.Param()
	case "required_with":
		return "required when " + fe.Param() + " is set"
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}

// FinderOptions returns the search limits.
func (c *Config) FinderOptions() finder.Options {
	return finder.Options{
		MaxFret:           c.MaxFret,
		NumFrets:          c.NumFrets,
		MaxReach:          c.MaxReach,
		AllowOpenStrings:  c.AllowOpenStrings,
		AllowMutedStrings: c.AllowMutedStrings,
		AllowRootless:     c.AllowRootless,
		MaxResults:        c.MaxResults,
		BarreType:         c.BarreType,
		BarreRightToLeft:  c.BarreRightToLeft,
	}
}

// Save writes c as YAML to w.
func (c *Config) Save(w io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
