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

// CooperativeProcess rewrites the cooperative_process annotation into an
// actual binding of the loop on threadIdx.  The annotation marks loops whose
// data must be produced or consumed collaboratively by the threads of one
// block scope; realizing it assigns distinct iterations to distinct threads.
type CooperativeProcess struct{}

// NewCooperativeProcess constructs the rule.
func NewCooperativeProcess() *CooperativeProcess {
	return &CooperativeProcess{}
}

// Name implementation for the PostScheduleRule interface.
func (p *CooperativeProcess) Name() string {
	return "cooperative-process"
}

// plannedBinding records one annotation resolution decided during the
// planning pass, to be committed only once the whole plan is known to be
// conflict free.
type plannedBinding struct {
	loop *ir.Loop
	dim  ir.ThreadDim
	// Annotation value held under the tag, preserved for rollback.
	value string
}

// Apply implementation for the PostScheduleRule interface.  Loops carrying
// the cooperative_process annotation are visited outer-to-inner; each is
// assigned the first dimension of ir.CanonicalThreadDims not yet claimed
// within its block scope.  Planning and mutation are separate passes, so a
// conflict anywhere leaves the schedule untouched.
func (p *CooperativeProcess) Apply(schedule *ir.Schedule) (bool, error) {
	if errs := schedule.Consistent(); len(errs) > 0 {
		return false, &StructuralError{Schedule: schedule.Id(), Problems: errs}
	}
	//
	var (
		plan []plannedBinding
		// Dimensions claimed per block scope, seeded lazily from bindings
		// already present in the schedule.
		claimed = make(map[*ir.Block]map[ir.ThreadDim]bool)
	)
	// Planning pass.
	for _, sl := range schedule.Loops() {
		if !sl.Loop.HasAnnotation(ir.AnnotationCooperativeProcess) {
			continue
		}
		// A loop both annotated and bound means an upstream phase resolved
		// the annotation without removing it, or bound a loop it should not
		// have.  Either way the intent is ambiguous.
		if dim, ok := sl.Loop.Binding(); ok {
			return false, &StructuralError{
				Schedule: schedule.Id(),
				Problems: []error{
					fmt.Errorf("loop %q carries %s but is already bound to %s",
						sl.Loop.Var, ir.AnnotationCooperativeProcess, dim),
				},
			}
		}
		//
		pool, ok := claimed[sl.Scope]
		if !ok {
			pool = make(map[ir.ThreadDim]bool)
			//
			for dim := range schedule.ClaimedDims(sl.Scope) {
				pool[dim] = true
			}
			//
			claimed[sl.Scope] = pool
		}
		//
		dim, ok := allocateDim(pool)
		if !ok {
			return false, &BindingConflictError{
				Loop:      sl.Loop.Var,
				Scope:     sl.Scope.Name,
				Exhausted: ir.CanonicalThreadDims,
			}
		}
		//
		value, _ := sl.Loop.Annotation(ir.AnnotationCooperativeProcess)
		//
		pool[dim] = true
		plan = append(plan, plannedBinding{loop: sl.Loop, dim: dim, value: value})
	}
	// Nothing to resolve anywhere.
	if len(plan) == 0 {
		return false, nil
	}
	// Commit pass.
	for i, pb := range plan {
		if err := schedule.Bind(pb.loop, pb.dim); err != nil {
			// The plan mirrors the schedule's own claim checks, so this only
			// fires if the schedule was mutated concurrently.  Undo our own
			// bindings before reporting.
			for _, done := range plan[:i] {
				schedule.Unbind(done.loop)
				done.loop.Annotate(ir.AnnotationCooperativeProcess, done.value)
			}
			//
			return false, &StructuralError{Schedule: schedule.Id(), Problems: []error{err}}
		}
		//
		pb.loop.RemoveAnnotation(ir.AnnotationCooperativeProcess)
		//
		log.Debugf("bound loop %q to %s in schedule %s", pb.loop.Var, pb.dim, schedule.Id())
	}
	//
	return true, nil
}

// allocateDim picks the first canonical thread dimension not yet claimed in
// the given pool.
func allocateDim(pool map[ir.ThreadDim]bool) (ir.ThreadDim, bool) {
	for _, dim := range ir.CanonicalThreadDims {
		if !pool[dim] {
			return dim, true
		}
	}
	//
	return 0, false
}
