// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] schedule_file",
	Short: "print the loop nest of a candidate schedule.",
	Long: `Print the loop nest of a candidate schedule as an indented tree,
	including annotations and thread bindings.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		schedule := readScheduleFile(args[0])
		// Determine terminal width, if stdout is a terminal.
		width := math.MaxInt
		//
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}
		}
		//
		for _, line := range schedule.Lines() {
			if len(line) > width {
				line = line[:width]
			}
			//
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
