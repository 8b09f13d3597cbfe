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
	"os"
	"path"

	"github.com/cairn-ml/cairn/pkg/ir"
	"github.com/cairn-ml/cairn/pkg/ir/yaml"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// readScheduleFile parses a candidate schedule file using a parser based on
// the extension of the filename.
func readScheduleFile(filename string) *ir.Schedule {
	bytes, err := os.ReadFile(filename)
	if err == nil {
		// Check file extension
		ext := path.Ext(filename)
		//
		switch ext {
		case ".yaml", ".yml":
			schedule, err2 := yaml.FromBytes(bytes)
			if err2 == nil {
				return schedule
			}
			//
			err = err2
		default:
			err = fmt.Errorf("unknown schedule file format: %s", ext)
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// writeScheduleFile serializes a schedule back out, either to the named file
// or (for an empty filename) to stdout.
func writeScheduleFile(schedule *ir.Schedule, filename string) {
	bytes, err := yaml.ToBytes(schedule)
	//
	if err == nil && filename == "" {
		fmt.Print(string(bytes))
		return
	}
	//
	if err == nil {
		err = os.WriteFile(filename, bytes, 0644)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
