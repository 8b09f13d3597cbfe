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
	"strings"

	"github.com/cairn-ml/cairn/pkg/ir"
	"github.com/google/uuid"
)

// BindingConflictError reports that a loop required a thread binding but
// every dimension in its block scope was already claimed.  Cooperative
// execution semantics would be violated by silently overwriting an existing
// claim, so exhaustion is fatal to the rule invocation.
type BindingConflictError struct {
	// Loop is the iteration variable of the loop left unbound.
	Loop string
	// Scope is the name of the enclosing block scope.
	Scope string
	// Exhausted lists the dimensions already claimed within the scope.
	Exhausted []ir.ThreadDim
}

func (p *BindingConflictError) Error() string {
	dims := make([]string, len(p.Exhausted))
	//
	for i, d := range p.Exhausted {
		dims[i] = d.String()
	}
	//
	return fmt.Sprintf("cannot bind loop %q in scope %q: all thread dimensions claimed (%s)",
		p.Loop, p.Scope, strings.Join(dims, ", "))
}

// StructuralError reports that an incoming schedule violates an invariant
// the post-schedule stage depends on.  This indicates a bug in an upstream
// scheduling phase and is surfaced immediately rather than patched over.
type StructuralError struct {
	// Schedule is the candidate identity of the offending schedule.
	Schedule uuid.UUID
	// Problems holds the individual inconsistencies found.
	Problems []error
}

func (p *StructuralError) Error() string {
	msgs := make([]string, len(p.Problems))
	//
	for i, err := range p.Problems {
		msgs[i] = err.Error()
	}
	//
	return fmt.Sprintf("schedule %s is structurally inconsistent: %s", p.Schedule, strings.Join(msgs, "; "))
}
