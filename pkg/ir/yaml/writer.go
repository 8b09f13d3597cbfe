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
	"fmt"

	"github.com/cairn-ml/cairn/pkg/ir"
	"gopkg.in/yaml.v3"
)

// ToBytes converts a schedule into its YAML notation.  The output parses
// back (via FromBytes) into a structurally identical schedule, albeit with a
// fresh candidate identity.
func ToBytes(schedule *ir.Schedule) ([]byte, error) {
	if schedule.Root() == nil {
		return nil, fmt.Errorf("schedule %s has no root scope", schedule.Id())
	}
	//
	raw := rawSchedule{Root: flattenBlock(schedule.Root())}
	//
	return yaml.Marshal(&raw)
}

func flattenBlock(block *ir.Block) *rawBlock {
	raw := &rawBlock{Name: block.Name}
	//
	for _, loop := range block.Loops {
		raw.Loops = append(raw.Loops, flattenLoop(loop))
	}
	//
	return raw
}

func flattenLoop(loop *ir.Loop) *rawLoop {
	raw := &rawLoop{Var: loop.Var, Lower: loop.Lower, Upper: loop.Upper}
	//
	for _, tag := range loop.Annotations() {
		value, _ := loop.Annotation(tag)
		//
		if raw.Annotations == nil {
			raw.Annotations = make(map[string]string)
		}
		//
		raw.Annotations[tag] = value
	}
	//
	if dim, ok := loop.Binding(); ok {
		raw.Bind = dim.String()
	}
	//
	for _, child := range loop.Body {
		raw.Body = append(raw.Body, flattenLoop(child))
	}
	//
	for _, child := range loop.Blocks {
		raw.Blocks = append(raw.Blocks, flattenBlock(child))
	}
	//
	return raw
}
