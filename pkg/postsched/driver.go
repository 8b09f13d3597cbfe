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
	"fmt"

	"github.com/cairn-ml/cairn/pkg/ir"
	log "github.com/sirupsen/logrus"
)

// Driver applies a configured ordered sequence of post-schedule rules to one
// candidate schedule.  A rule finding nothing to do does not halt the
// sequence; a rule failing does, with the schedule left as the last
// successfully-completed rule left it (each completed rule's mutation was
// independently valid, and no cross-rule rollback is provided).
type Driver struct {
	rules []PostScheduleRule
}

// NewDriver constructs a driver over an explicit rule sequence.
func NewDriver(rules ...PostScheduleRule) *Driver {
	return &Driver{rules: rules}
}

// NewDefaultDriver constructs a driver over the standard post-schedule rule
// suite.
func NewDefaultDriver() *Driver {
	return NewDriver(NewCooperativeProcess())
}

// Rules returns the rule sequence of this driver, in application order.
func (p *Driver) Rules() []PostScheduleRule {
	return p.rules
}

// Apply runs every rule of this driver, in order, against the given
// schedule.  It returns true if at least one rule mutated the schedule.
func (p *Driver) Apply(schedule *ir.Schedule) (bool, error) {
	var applied bool
	//
	for _, rule := range p.rules {
		ok, err := rule.Apply(schedule)
		//
		if err != nil {
			return applied, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		//
		if ok {
			log.Debugf("rule %s rewrote schedule %s", rule.Name(), schedule.Id())
		} else {
			log.Debugf("rule %s not applicable to schedule %s", rule.Name(), schedule.Id())
		}
		//
		applied = applied || ok
	}
	//
	return applied, nil
}
