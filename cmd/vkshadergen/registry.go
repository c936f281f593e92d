// Copyright 2025 vkshadergen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"path/filepath"
	"sort"
	"strings"
)

// VariantSpec describes one compiled shader variant: the template it is
// built from, the preprocessor defines, and the glslc flags.
type VariantSpec struct {
	Name         string
	TemplatePath string
	OutputPath   string
	Defines      map[string]string
	Flags        []string
}

// flavor carries the precision and cooperative-matrix bits that shape a
// variant's name suffix and glslc flags.
type flavor struct {
	fp16     bool
	coopmat  bool
	coopmat2 bool
	f16acc   bool
}

// fp16Flavor is the default for the bulk of the catalog.
var fp16Flavor = flavor{fp16: true}

// Registry accumulates the variant catalog for one run.
type Registry struct {
	inputDir  string
	outputDir string
	features  Features

	variants []VariantSpec
	index    map[string]int // name -> position in variants
}

func newRegistry(inputDir, outputDir string, features Features) *Registry {
	return &Registry{
		inputDir:  inputDir,
		outputDir: outputDir,
		features:  features,
		index:     make(map[string]int),
	}
}

// add registers one shader variant. The final name appends the flavor
// suffixes in fixed order: _f16acc, then _cm1 or _cm2, then _fp32 for the
// plain single-precision path.
func (r *Registry) add(baseName, template string, defines map[string]string, fl flavor) {
	name := baseName
	if fl.f16acc {
		name += "_f16acc"
	}
	if fl.coopmat {
		name += "_cm1"
	}
	if fl.coopmat2 {
		name += "_cm2"
	} else if !fl.fp16 {
		name += "_fp32"
	}

	targetEnv := "--target-env=vulkan1.2"
	if strings.Contains(name, "_cm2") {
		targetEnv = "--target-env=vulkan1.3"
	}

	flags := []string{"-fshader-stage=compute", targetEnv}
	// spirv-opt miscompiles coopmat and bf16 shaders (llama.cpp #10734,
	// #15344), so those stay unoptimized.
	if !fl.coopmat && !strings.Contains(name, "bf16") {
		flags = append(flags, "-O")
	}
	if r.features.DebugInfo {
		flags = append(flags, "-g")
	}
	for _, k := range sortedKeys(defines) {
		flags = append(flags, "-D"+k+"="+defines[k])
	}

	v := VariantSpec{
		Name:         name,
		TemplatePath: filepath.Join(r.inputDir, template),
		OutputPath:   filepath.Join(r.outputDir, name+".spv"),
		Defines:      defines,
		Flags:        flags,
	}

	// A re-registration replaces the earlier entry in place so the final
	// catalog stays collision-free and the CMake project never emits two
	// rules for the same output.
	if i, ok := r.index[name]; ok {
		r.variants[i] = v
		return
	}
	r.index[name] = len(r.variants)
	r.variants = append(r.variants, v)
}

// spv registers a variant with the default fp16 flavor.
func (r *Registry) spv(name, template string, defines map[string]string) {
	r.add(name, template, defines, fp16Flavor)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// mergeDefines combines two define maps. On a key conflict the base map
// wins, matching how the per-family base defines override per-variant ones.
func mergeDefines(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}
