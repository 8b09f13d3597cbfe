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
package yaml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cairn-ml/cairn/pkg/ir"
	"gopkg.in/yaml.v3"
)

// FromBytes parses a schedule expressed in YAML notation into a fresh
// ir.Schedule.  Bindings recorded in the file are re-attached through the
// schedule's own validation, so a file carrying duplicate claims is rejected
// rather than silently loaded.
func FromBytes(data []byte) (*ir.Schedule, error) {
	var raw rawSchedule
	// Reject unknown fields, since a typo in a schedule file otherwise
	// silently drops information.
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&raw); err != nil && err != io.EOF {
		return nil, err
	}
	//
	if raw.Root == nil {
		return nil, fmt.Errorf("schedule file has no root scope")
	}
	// Build loop tree, deferring bindings until the schedule exists.
	var bindings []pendingBinding
	//
	root, bindings, err := buildBlock(raw.Root, bindings)
	if err != nil {
		return nil, err
	}
	//
	schedule := ir.NewSchedule(root)
	//
	for _, b := range bindings {
		if err := schedule.Bind(b.loop, b.dim); err != nil {
			return nil, err
		}
	}
	//
	return schedule, nil
}

type pendingBinding struct {
	loop *ir.Loop
	dim  ir.ThreadDim
}

func buildBlock(raw *rawBlock, bindings []pendingBinding) (*ir.Block, []pendingBinding, error) {
	block := ir.NewBlock(raw.Name)
	//
	for _, rawLoop := range raw.Loops {
		loop, rest, err := buildLoop(rawLoop, bindings)
		if err != nil {
			return nil, nil, err
		}
		//
		bindings = rest
		block.Loops = append(block.Loops, loop)
	}
	//
	return block, bindings, nil
}

func buildLoop(raw *rawLoop, bindings []pendingBinding) (*ir.Loop, []pendingBinding, error) {
	if raw.Var == "" {
		return nil, nil, fmt.Errorf("loop with missing iteration variable")
	}
	//
	if raw.Upper < raw.Lower {
		return nil, nil, fmt.Errorf("loop %q has malformed bounds [%d, %d)", raw.Var, raw.Lower, raw.Upper)
	}
	//
	loop := ir.NewLoop(raw.Var, raw.Lower, raw.Upper)
	//
	for tag, value := range raw.Annotations {
		loop.Annotate(tag, value)
	}
	//
	if raw.Bind != "" {
		dim, err := ir.ParseThreadDim(raw.Bind)
		if err != nil {
			return nil, nil, fmt.Errorf("loop %q: %w", raw.Var, err)
		}
		//
		bindings = append(bindings, pendingBinding{loop, dim})
	}
	//
	for _, rawChild := range raw.Body {
		child, rest, err := buildLoop(rawChild, bindings)
		if err != nil {
			return nil, nil, err
		}
		//
		bindings = rest
		loop.Body = append(loop.Body, child)
	}
	//
	for _, rawChild := range raw.Blocks {
		child, rest, err := buildBlock(rawChild, bindings)
		if err != nil {
			return nil, nil, err
		}
		//
		bindings = rest
		loop.Blocks = append(loop.Blocks, child)
	}
	//
	return loop, bindings, nil
}
