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
	stderrors "errors"
	"fmt"

	"dirpx.dev/dxchord/dxcore/catalog/xmlfile"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	var write string
	cmd := &cobra.Command{
		Use:   "check <catalog-file>",
		Short: "Validate a catalog file",
		Long: `Reads a catalog file and reports what it holds. Instruments and
tunings that cannot be loaded are listed as warnings and make the check
fail. With --write the loaded catalog is written back in canonical form.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := xmlfile.NewReader(xmlfile.WithLogger(a.logger)).ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %d qualities, %d scales, %d instruments\n",
				args[0], cat.Qualities.Len(), cat.Scales.Len(), cat.Instruments.Len())
			if write != "" {
				if err := xmlfile.WriteFile(write, cat); err != nil {
					return err
				}
			}
			if cat.Warnings != nil {
				fmt.Fprintf(a.out, "warning: %v\n", cat.Warnings)
				return stderrors.New("catalog has dropped entries")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&write, "write", "", "Write the loaded catalog to this file")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cfg.Save(a.out)
		},
	}
}
