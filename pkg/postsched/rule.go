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
package postsched

import (
	"github.com/cairn-ml/cairn/pkg/ir"
)

// PostScheduleRule is the contract satisfied by every rule of the
// post-schedule stage: a transformation applied after the scheduling search
// to finalize a candidate loop nest before code generation.  Rules must be
// safe to invoke on schedules that do not need their transformation.
type PostScheduleRule interface {
	// Name returns a stable identifier for this rule, used in diagnostics.
	Name() string
	// Apply inspects the given schedule and, where its pattern matches,
	// mutates the schedule in place.  It returns true if applicable work was
	// found and performed, and false if the schedule was left untouched
	// (which is a normal outcome, not an error).  An error is returned only
	// when the schedule is structurally inconsistent in a way the rule
	// cannot safely repair; in that case the schedule is left exactly as it
	// was on entry.  Rules must not retain the schedule beyond the call.
	Apply(schedule *ir.Schedule) (bool, error)
}
