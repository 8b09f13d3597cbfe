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

// rawSchedule mirrors the on-disk layout of a schedule file.
type rawSchedule struct {
	Root *rawBlock `yaml:"root"`
}

type rawBlock struct {
	Name  string     `yaml:"name"`
	Loops []*rawLoop `yaml:"loops,omitempty"`
}

type rawLoop struct {
	Var         string            `yaml:"var"`
	Lower       int64             `yaml:"lower"`
	Upper       int64             `yaml:"upper"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
	Bind        string            `yaml:"bind,omitempty"`
	Body        []*rawLoop        `yaml:"body,omitempty"`
	Blocks      []*rawBlock       `yaml:"blocks,omitempty"`
}
