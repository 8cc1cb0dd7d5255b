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

	"dirpx.dev/dxchord/dxcore/model/pitch"
	"github.com/spf13/cobra"
)

func (a *app) notesCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "notes <root> <quality-or-scale>",
		Short: "Print the notes of a chord or scale",
		Long: `Prints the notes of a chord quality or scale built on root.

The second argument is matched against chord qualities first, then scales,
by long name, name or abbreviation. Example:

  dxchord notes C m7`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := pitch.ParsePitchClass(args[0])
			if err != nil {
				return err
			}
			n, err := a.lookup(args[1], a.qualities, a.scales)
			if err != nil {
				return err
			}
			style := a.cfg.NoteStyle
			if !all {
				fmt.Fprintf(a.out, "%s %s: %s\n", root.Name(style), n.Name(), n.FormatNotes(root, style))
				return nil
			}
			notes := n.GetNotes(root)
			fmt.Fprintf(a.out, "%s %s:", root.Name(style), n.Name())
			for _, pc := range notes {
				fmt.Fprintf(a.out, " %s", pc.Name(style))
			}
			fmt.Fprintln(a.out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Keep repeated pitch classes")
	return cmd
}
