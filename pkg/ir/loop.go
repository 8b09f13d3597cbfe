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
	"sort"
)

// AnnotationCooperativeProcess marks a loop whose iterations must be handled
// cooperatively by the threads of the enclosing block scope, rather than by a
// single thread.  The annotation is a placeholder left by the scheduling
// search; the post-schedule stage resolves it into a concrete thread binding.
const AnnotationCooperativeProcess = "cooperative_process"

// Loop represents one iteration dimension of the loop nest.  Bounds are known
// by the time the post-schedule stage runs; a zero-trip loop (Lower == Upper)
// is still a structurally valid, bindable loop.  Loops are owned by their
// enclosing schedule tree and have no independent lifetime.
type Loop struct {
	// Var is the identity of the iteration variable.
	Var string
	// Lower bound (inclusive).
	Lower int64
	// Upper bound (exclusive).
	Upper int64
	// Body holds loops nested directly inside this one which share the
	// enclosing block scope.
	Body []*Loop
	// Blocks holds inner block scopes opened inside this loop.  Loops under
	// an inner block belong to that block's cooperative group, not to the
	// scope enclosing this loop.
	Blocks []*Block
	// Scheduling intent not yet realized as a transformation, keyed by tag.
	annotations map[string]string
	// Realized thread binding, if any.
	binding ThreadDim
	bound   bool
}

// NewLoop constructs a loop over the half-open range [lower, upper).
func NewLoop(variable string, lower int64, upper int64) *Loop {
	return &Loop{Var: variable, Lower: lower, Upper: upper}
}

// Annotate attaches a tag to this loop, overwriting any previous value held
// under the same tag.
func (p *Loop) Annotate(tag string, value string) {
	if p.annotations == nil {
		p.annotations = make(map[string]string)
	}
	//
	p.annotations[tag] = value
}

// HasAnnotation checks whether the given tag is attached to this loop.
func (p *Loop) HasAnnotation(tag string) bool {
	_, ok := p.annotations[tag]
	return ok
}

// Annotation returns the value held under a given tag, if present.
func (p *Loop) Annotation(tag string) (string, bool) {
	value, ok := p.annotations[tag]
	return value, ok
}

// RemoveAnnotation detaches the given tag, reporting whether it was present.
func (p *Loop) RemoveAnnotation(tag string) bool {
	_, ok := p.annotations[tag]
	delete(p.annotations, tag)
	//
	return ok
}

// Annotations returns all tags attached to this loop in lexicographic order.
func (p *Loop) Annotations() []string {
	tags := make([]string, 0, len(p.annotations))
	//
	for tag := range p.annotations {
		tags = append(tags, tag)
	}
	//
	sort.Strings(tags)
	//
	return tags
}

// Binding returns the thread dimension this loop is bound to, if any.
func (p *Loop) Binding() (ThreadDim, bool) {
	return p.binding, p.bound
}

// Trips returns the iteration count of this loop.
func (p *Loop) Trips() int64 {
	if p.Upper <= p.Lower {
		return 0
	}
	//
	return p.Upper - p.Lower
}
