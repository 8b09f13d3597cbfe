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

import "fmt"

// ThreadDim identifies one hardware thread-index dimension within a block
// scope.  A loop bound to a given dimension has its iterations distributed
// across the threads of the block along that axis.
type ThreadDim uint8

const (
	// ThreadX is the block-local thread coordinate along the x axis.
	ThreadX ThreadDim = iota
	// ThreadY is the block-local thread coordinate along the y axis.
	ThreadY
	// ThreadZ is the block-local thread coordinate along the z axis.
	ThreadZ
)

// CanonicalThreadDims fixes the order in which thread dimensions are handed
// out when realizing cooperative annotations.  This ordering is part of the
// observable behaviour (repeated runs must assign identical dimensions), so
// it is an explicit constant rather than incidental iteration order.
var CanonicalThreadDims = []ThreadDim{ThreadX, ThreadY, ThreadZ}

// Valid checks whether this is one of the known thread dimensions.
func (d ThreadDim) Valid() bool {
	return d <= ThreadZ
}

func (d ThreadDim) String() string {
	switch d {
	case ThreadX:
		return "threadIdx.x"
	case ThreadY:
		return "threadIdx.y"
	case ThreadZ:
		return "threadIdx.z"
	}
	//
	return fmt.Sprintf("threadIdx.?%d", uint8(d))
}

// ParseThreadDim converts the codegen spelling of a thread dimension (e.g.
// "threadIdx.x") back into its internal form.
func ParseThreadDim(s string) (ThreadDim, error) {
	for _, d := range CanonicalThreadDims {
		if d.String() == s {
			return d, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown thread dimension %q", s)
}
