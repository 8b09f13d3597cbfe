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
package ir

import (
	"fmt"

	"github.com/google/uuid"
)

// Schedule owns the mutable loop-nest representation for one candidate
// program variant.  A schedule is exclusively owned by whichever pipeline
// stage is currently processing it and is passed by reference through each
// rule application; it is not designed for concurrent mutation.
type Schedule struct {
	// Candidate identity, used by the search loop to track this variant in
	// its pool.
	id uuid.UUID
	// Outermost block scope of the loop nest.
	root *Block
}

// ScopedLoop pairs a loop with its nearest enclosing block scope, as produced
// by schedule traversal.
type ScopedLoop struct {
	Loop  *Loop
	Scope *Block
}

// NewSchedule constructs a schedule around a given root scope, assigning it a
// fresh candidate identity.
func NewSchedule(root *Block) *Schedule {
	return &Schedule{id: uuid.New(), root: root}
}

// Id returns the candidate identity of this schedule.
func (p *Schedule) Id() uuid.UUID {
	return p.id
}

// Root returns the outermost block scope of this schedule.
func (p *Schedule) Root() *Block {
	return p.root
}

// Loops enumerates every loop of this schedule together with its nearest
// enclosing block scope.  The order is preorder, outer-to-inner and
// left-to-right, and depends only on the tree structure; repeated calls on
// an unchanged schedule yield identical sequences.
func (p *Schedule) Loops() []ScopedLoop {
	var loops []ScopedLoop
	//
	if p.root != nil {
		loops = scopedLoops(p.root, loops)
	}
	//
	return loops
}

// ScopeOf determines the nearest enclosing block scope of a given loop, or
// nil if the loop is not part of this schedule.
func (p *Schedule) ScopeOf(loop *Loop) *Block {
	for _, sl := range p.Loops() {
		if sl.Loop == loop {
			return sl.Scope
		}
	}
	//
	return nil
}

// ClaimedDims determines which thread dimensions are already claimed within
// a given block scope, mapping each claimed dimension to the loop holding
// the claim.
func (p *Schedule) ClaimedDims(scope *Block) map[ThreadDim]*Loop {
	claimed := make(map[ThreadDim]*Loop)
	//
	for _, sl := range p.Loops() {
		if sl.Scope != scope {
			continue
		}
		//
		if dim, ok := sl.Loop.Binding(); ok {
			claimed[dim] = sl.Loop
		}
	}
	//
	return claimed
}

// Bind attaches a thread binding for the given dimension to a loop of this
// schedule, after validating that the claim is unique within the loop's
// enclosing block scope.  An existing claim is never overwritten; attempting
// to do so is an error.
func (p *Schedule) Bind(loop *Loop, dim ThreadDim) error {
	if !dim.Valid() {
		return fmt.Errorf("cannot bind loop %q to invalid thread dimension %d", loop.Var, uint8(dim))
	}
	//
	scope := p.ScopeOf(loop)
	if scope == nil {
		return fmt.Errorf("loop %q has no enclosing block scope in this schedule", loop.Var)
	}
	//
	if existing, ok := loop.Binding(); ok {
		return fmt.Errorf("loop %q is already bound to %s", loop.Var, existing)
	}
	//
	if prior, ok := p.ClaimedDims(scope)[dim]; ok {
		return fmt.Errorf("%s is already claimed by loop %q in scope %q", dim, prior.Var, scope.Name)
	}
	//
	loop.binding = dim
	loop.bound = true
	//
	return nil
}

// Unbind releases the thread binding of a loop, reporting whether one was
// present.  This exists so a rule can undo its own partially-committed
// bindings and honour its all-or-nothing contract.
func (p *Schedule) Unbind(loop *Loop) bool {
	bound := loop.bound
	loop.bound = false
	loop.binding = 0
	//
	return bound
}

// Consistent applies a number of internal consistency checks.  Whilst not
// strictly necessary, these can highlight otherwise hidden problems as an
// aid to debugging upstream scheduling phases.
func (p *Schedule) Consistent() []error {
	var errs []error
	//
	if p.root == nil {
		return []error{fmt.Errorf("schedule %s has no root scope", p.id)}
	}
	// Check claim uniqueness scope by scope.
	errs = append(errs, consistentBlock(p.root)...)
	// Check individual bindings.
	for _, sl := range p.Loops() {
		if dim, ok := sl.Loop.Binding(); ok && !dim.Valid() {
			errs = append(errs, fmt.Errorf("loop %q bound to invalid thread dimension %d", sl.Loop.Var, uint8(dim)))
		}
	}
	//
	return errs
}

func consistentBlock(block *Block) []error {
	var (
		errs    []error
		claimed = make(map[ThreadDim]*Loop)
	)
	//
	for _, loop := range block.Loops {
		if loop == nil {
			errs = append(errs, fmt.Errorf("nil loop in scope %q", block.Name))
			continue
		}
		//
		errs = append(errs, consistentLoop(block, loop, claimed)...)
	}
	//
	return errs
}

func consistentLoop(scope *Block, loop *Loop, claimed map[ThreadDim]*Loop) []error {
	var errs []error
	//
	if dim, ok := loop.Binding(); ok {
		if prior, ok := claimed[dim]; ok {
			errs = append(errs, fmt.Errorf(
				"duplicate claim of %s in scope %q (loops %q and %q)", dim, scope.Name, prior.Var, loop.Var))
		} else {
			claimed[dim] = loop
		}
	}
	// Nested loops share the enclosing claim set.
	for _, child := range loop.Body {
		if child == nil {
			errs = append(errs, fmt.Errorf("nil loop nested under %q", loop.Var))
			continue
		}
		//
		errs = append(errs, consistentLoop(scope, child, claimed)...)
	}
	// Inner blocks open fresh claim sets.
	for _, child := range loop.Blocks {
		if child == nil {
			errs = append(errs, fmt.Errorf("nil block nested under %q", loop.Var))
			continue
		}
		//
		errs = append(errs, consistentBlock(child)...)
	}
	//
	return errs
}

func scopedLoops(block *Block, loops []ScopedLoop) []ScopedLoop {
	for _, loop := range block.Loops {
		if loop != nil {
			loops = scopedLoop(block, loop, loops)
		}
	}
	//
	return loops
}

func scopedLoop(scope *Block, loop *Loop, loops []ScopedLoop) []ScopedLoop {
	loops = append(loops, ScopedLoop{Loop: loop, Scope: scope})
	//
	for _, child := range loop.Body {
		if child != nil {
			loops = scopedLoop(scope, child, loops)
		}
	}
	//
	for _, child := range loop.Blocks {
		if child != nil {
			loops = scopedLoops(child, loops)
		}
	}
	//
	return loops
}
