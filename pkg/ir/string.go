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
	"strings"
)

// Lines renders the loop nest as indented text, one node per line.  This is
// purely a diagnostic form; it is not parsed back.
func (p *Schedule) Lines() []string {
	if p.root == nil {
		return nil
	}
	//
	return blockLines(p.root, 0, nil)
}

func (p *Schedule) String() string {
	return strings.Join(p.Lines(), "\n")
}

func blockLines(block *Block, depth int, lines []string) []string {
	lines = append(lines, fmt.Sprintf("%sblock %q", indent(depth), block.Name))
	//
	for _, loop := range block.Loops {
		lines = loopLines(loop, depth+1, lines)
	}
	//
	return lines
}

func loopLines(loop *Loop, depth int, lines []string) []string {
	var builder strings.Builder
	//
	builder.WriteString(fmt.Sprintf("%sfor %s in [%d, %d)", indent(depth), loop.Var, loop.Lower, loop.Upper))
	//
	for _, tag := range loop.Annotations() {
		builder.WriteString(" #")
		builder.WriteString(tag)
	}
	//
	if dim, ok := loop.Binding(); ok {
		builder.WriteString(" @")
		builder.WriteString(dim.String())
	}
	//
	lines = append(lines, builder.String())
	//
	for _, child := range loop.Body {
		lines = loopLines(child, depth+1, lines)
	}
	//
	for _, child := range loop.Blocks {
		lines = blockLines(child, depth+1, lines)
	}
	//
	return lines
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
