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
	"fmt"
	"io"

	"dirpx.dev/dxchord/dxcore/catalog/builtin"
	"dirpx.dev/dxchord/dxcore/catalog/instrument"
	"dirpx.dev/dxchord/dxcore/catalog/interval"
	"dirpx.dev/dxchord/dxcore/catalog/xmlfile"
	"dirpx.dev/dxchord/dxcore/config"
	"dirpx.dev/dxchord/dxcore/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the flags and the state every subcommand shares.
type app struct {
	out io.Writer

	verbose     bool
	catalogPath string
	configPath  string

	logger      *zap.Logger
	cfg         *config.Config
	qualities   *interval.Layered
	scales      *interval.Layered
	instruments *instrument.Layered
}

// newRootCmd builds the command tree. A nil logger is replaced by a
// production logger when a command runs.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}

	root := &cobra.Command{
		Use:   "dxchord",
		Short: "Chord and scale finder for fretted instruments",
		Long: `dxchord looks up chord qualities, scales, instruments and tunings and
searches the fretboard for playable chord voicings and scale patterns.

The built-in catalog is always available and read-only. A catalog file given
with --catalog is layered on top of it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "Catalog file layered over the built-in catalog")
	root.PersistentFlags().StringVar(&a.configPath, "config", "dxchord.yaml", "Configuration file")

	root.AddCommand(
		a.listCmd(),
		a.notesCmd(),
		a.findCmd(),
		a.checkCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) setup() error {
	if a.logger == nil {
		zc := zap.NewProductionConfig()
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = l
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	base, err := builtin.Load(a.logger)
	if err != nil {
		return err
	}
	local := xmlfile.NewCatalog(xmlfile.DefaultLevel)
	if a.catalogPath != "" {
		cat, err := xmlfile.NewReader(xmlfile.WithLogger(a.logger)).ReadFile(a.catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog %s: %w", a.catalogPath, err)
		}
		if cat.Warnings != nil {
			a.logger.Warn("catalog loaded with dropped entries", zap.String("path", a.catalogPath))
		}
		local = cat
	}

	if a.qualities, err = interval.NewLayered(base.Qualities, local.Qualities); err != nil {
		return err
	}
	if a.scales, err = interval.NewLayered(base.Scales, local.Scales); err != nil {
		return err
	}
	a.instruments = instrument.NewLayered(base.Instruments, local.Instruments)
	a.logger.Debug("catalog ready",
		zap.Int("qualities", a.qualities.Len()),
		zap.Int("scales", a.scales.Len()),
		zap.String("config", a.configPath))
	return nil
}

// lookup resolves query against each layer in turn, first as an exact
// LongName and then by name or abbreviation.
func (a *app) lookup(query string, layers ...*interval.Layered) (*interval.NamedInterval, error) {
	for _, l := range layers {
		if n, err := l.Get(query); err == nil {
			return n, nil
		}
		if found := l.Find(query); len(found) > 0 {
			return found[0], nil
		}
	}
	return nil, &errors.NotFoundError{Type: "NamedInterval", Set: "catalog", Key: query}
}

// tuning resolves the instrument and tuning flags, falling back to the
// configured defaults.
func (a *app) tuning(inst, tuning string) (*instrument.Tuning, error) {
	if inst == "" {
		inst = a.cfg.Instrument
	}
	if tuning == "" {
		tuning = a.cfg.Tuning
	}
	return a.instruments.FindTuning(inst, tuning)
}
