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

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "qualities",
			Short: "List chord qualities",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for n := range a.qualities.All() {
					fmt.Fprintf(a.out, "%s [%s]\n", n.LongName(), n.Set().Level())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "scales",
			Short: "List scales",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for n := range a.scales.All() {
					fmt.Fprintf(a.out, "%s [%s]\n", n.LongName(), n.Set().Level())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "instruments",
			Short: "List instruments",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for inst := range a.instruments.All() {
					fmt.Fprintf(a.out, "%s [%s]\n", inst, inst.Set().Level())
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "tunings <instrument>",
			Short: "List the tunings of an instrument",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tunings, err := a.instruments.Tunings(args[0])
				if err != nil {
					return err
				}
				for _, t := range tunings {
					fmt.Fprintf(a.out, "%s [%s]\n", t.LongName(), t.Set().Instrument().Set().Level())
				}
				return nil
			},
		},
	)
	return cmd
}
