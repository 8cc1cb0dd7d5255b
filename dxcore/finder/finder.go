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

// Package finder enumerates chord voicings and scale patterns on a tuned
// instrument and ranks them with the fretboard package.
//
// The search is brute force over per-string fret choices, pruned by reach
// as it goes. The fretboard package is used purely as a filter and a
// ranking: Validate rejects, CompareStats orders, AbsoluteToRelativeMarks
// and AutoBarrePosition decorate the survivors.
package finder

import (
	"fmt"

	"dirpx.dev/dxchord/dxcore/errors"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"go.uber.org/zap"
)

// Options bound a search.
type Options struct {
	// MaxFret is the highest fret considered.
	MaxFret int
	// NumFrets is the height of the diagram results are fitted into.
	NumFrets int
	// MaxReach is the widest fretted span accepted. At most NumFrets.
	MaxReach int

	AllowOpenStrings  bool
	AllowMutedStrings bool
	// AllowRootless accepts chords that omit the root.
	AllowRootless bool

	// MaxResults caps the number of results; 0 means no cap.
	MaxResults int

	BarreType        fretboard.BarreType
	BarreRightToLeft bool
}

// DefaultOptions returns the limits used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxFret:           12,
		NumFrets:          5,
		MaxReach:          4,
		AllowOpenStrings:  true,
		AllowMutedStrings: true,
		MaxResults:        20,
		BarreType:         fretboard.Partial,
	}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	switch {
	case o.MaxFret < 1:
		return optionError("MaxFret", fmt.Sprintf("must be >= 1, got %d", o.MaxFret), o.MaxFret)
	case o.NumFrets < 1 || o.NumFrets > o.MaxFret:
		return optionError("NumFrets", fmt.Sprintf("must be in range 1-%d, got %d", o.MaxFret, o.NumFrets), o.NumFrets)
	case o.MaxReach < 1 || o.MaxReach > o.NumFrets:
		return optionError("MaxReach", fmt.Sprintf("must be in range 1-%d, got %d", o.NumFrets, o.MaxReach), o.MaxReach)
	case o.MaxResults < 0:
		return optionError("MaxResults", fmt.Sprintf("must be >= 0, got %d", o.MaxResults), o.MaxResults)
	}
	return o.BarreType.Validate()
}

func (o Options) playability() fretboard.Options {
	return fretboard.Options{
		MaxReach:          o.MaxReach,
		AllowOpenStrings:  o.AllowOpenStrings,
		AllowMutedStrings: o.AllowMutedStrings,
	}
}

func optionError(field, reason string, value int) error {
	return &errors.ValidationError{Type: "FinderOptions", Field: field, Reason: reason, Value: value}
}

// Finder runs searches.
type Finder struct {
	logger *zap.Logger
}

// New returns a Finder logging to logger, or to nothing when logger is nil.
func New(logger *zap.Logger) *Finder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finder{logger: logger}
}
