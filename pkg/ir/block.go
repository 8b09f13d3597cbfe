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

// Block represents one block-execution scope: the grouping of threads which
// execute cooperatively and can share fast local memory.  Thread-dimension
// claims are accounted per block, so two loops under different blocks may
// bind the same dimension without conflict.
type Block struct {
	// Name identifies this scope in diagnostics.
	Name string
	// Loops holds the top-level loops of this scope.
	Loops []*Loop
}

// NewBlock constructs an empty block scope with the given name.
func NewBlock(name string, loops ...*Loop) *Block {
	return &Block{Name: name, Loops: loops}
}
