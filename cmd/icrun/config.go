// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package main

import (
	"os"

	"sigs.k8s.io/yaml"

	"github.com/icalc/ic"
)

// fileConfig is the optional YAML shape accepted via -config. Fields
// mirror ic.Options directly; both are zero-valued (meaning "use the
// default") when the flag is not given or the file omits them.
type fileConfig struct {
	HeapSize  uint32 `json:"heapSize,omitempty"`
	StackSize uint32 `json:"stackSize,omitempty"`
}

func loadOptions(path string) (ic.Options, error) {
	if path == "" {
		return ic.Options{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ic.Options{}, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return ic.Options{}, err
	}
	return ic.Options{HeapSize: fc.HeapSize, StackSize: fc.StackSize}, nil
}
