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

	"github.com/cairn-ml/cairn/pkg/postsched"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var postscheduleCmd = &cobra.Command{
	Use:   "postschedule [flags] schedule_file",
	Short: "apply the post-schedule rule suite to a candidate schedule.",
	Long: `Apply the standard post-schedule rules to a candidate loop
	schedule, rewriting scheduling annotations (such as cooperative_process)
	into their realized forms, and write out the finalized schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		schedule := readScheduleFile(args[0])
		driver := postsched.NewDefaultDriver()
		//
		applied, err := driver.Apply(schedule)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if applied {
			log.Infof("schedule %s rewritten", schedule.Id())
		} else {
			log.Infof("schedule %s already final", schedule.Id())
		}
		//
		writeScheduleFile(schedule, GetString(cmd, "output"))
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(postscheduleCmd)
	postscheduleCmd.Flags().StringP("output", "o", "", "specify output file (defaults to stdout).")
}
