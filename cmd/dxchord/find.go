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
	"strconv"
	"strings"

	"dirpx.dev/dxchord/dxcore/finder"
	"dirpx.dev/dxchord/dxcore/fretboard"
	"dirpx.dev/dxchord/dxcore/model/pitch"
	"dirpx.dev/dxchord/dxcore/model/position"
	"github.com/spf13/cobra"
)

type findFlags struct {
	instrument string
	tuning     string
	maxResults int
	rootless   bool
}

func (a *app) findCmd() *cobra.Command {
	var ff findFlags
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search the fretboard",
	}
	cmd.PersistentFlags().StringVar(&ff.instrument, "instrument", "", "Instrument name (default from config)")
	cmd.PersistentFlags().StringVar(&ff.tuning, "tuning", "", "Tuning name (default from config)")
	cmd.PersistentFlags().IntVarP(&ff.maxResults, "results", "n", -1, "Maximum number of results (default from config)")

	chord := &cobra.Command{
		Use:   "chord <root> <quality>",
		Short: "Find chord voicings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.findChords(ff, args[0], args[1])
		},
	}
	chord.Flags().BoolVar(&ff.rootless, "rootless", false, "Accept voicings without the root")

	scale := &cobra.Command{
		Use:   "scale <root> <scale>",
		Short: "Find scale patterns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.findScales(ff, args[0], args[1])
		},
	}

	cmd.AddCommand(chord, scale)
	return cmd
}

func (a *app) options(ff findFlags) finder.Options {
	opts := a.cfg.FinderOptions()
	if ff.maxResults >= 0 {
		opts.MaxResults = ff.maxResults
	}
	if ff.rootless {
		opts.AllowRootless = true
	}
	return opts
}

func (a *app) findChords(ff findFlags, rootArg, query string) error {
	root, err := pitch.ParsePitchClass(rootArg)
	if err != nil {
		return err
	}
	quality, err := a.lookup(query, a.qualities)
	if err != nil {
		return err
	}
	tuning, err := a.tuning(ff.instrument, ff.tuning)
	if err != nil {
		return err
	}

	chords, err := finder.New(a.logger).FindChords(tuning, root, quality, a.options(ff))
	if err != nil {
		return err
	}
	style := a.cfg.NoteStyle
	fmt.Fprintf(a.out, "%s %s on %s\n", root.Name(style), quality.LongName(), tuning.LongName())
	for i, c := range chords {
		labels, err := fretboard.Annotate(c.Marks, tuning, style)
		if err != nil {
			return err
		}
		barre := "-"
		if c.Barre != nil {
			barre = c.Barre.String()
		}
		fmt.Fprintf(a.out, "%2d. %s  [%s]  base %d  diagram %s  barre %s\n",
			i+1, denseString(c.Marks), strings.Join(labels, " "), c.Baseline, denseString(c.RelativeMarks), barre)
	}
	if len(chords) == 0 {
		fmt.Fprintln(a.out, "no voicings found")
	}
	return nil
}

func (a *app) findScales(ff findFlags, rootArg, query string) error {
	root, err := pitch.ParsePitchClass(rootArg)
	if err != nil {
		return err
	}
	scale, err := a.lookup(query, a.scales)
	if err != nil {
		return err
	}
	tuning, err := a.tuning(ff.instrument, ff.tuning)
	if err != nil {
		return err
	}

	patterns, err := finder.New(a.logger).FindScales(tuning, root, scale, a.options(ff))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s on %s\n", root.Name(a.cfg.NoteStyle), scale.LongName(), tuning.LongName())
	for i, p := range patterns {
		fmt.Fprintf(a.out, "%2d. base %d  %s\n", i+1, p.Baseline, sparseString(p.RelativeMarks))
	}
	if len(patterns) == 0 {
		fmt.Fprintln(a.out, "no patterns found")
	}
	return nil
}

func denseString(marks []int) string {
	parts := make([]string, len(marks))
	for i, f := range marks {
		if f == fretboard.Muted {
			parts[i] = fretboard.MutedLabel
		} else {
			parts[i] = strconv.Itoa(f)
		}
	}
	return strings.Join(parts, " ")
}

func sparseString(marks []position.MarkPosition) string {
	parts := make([]string, len(marks))
	for i, m := range marks {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
