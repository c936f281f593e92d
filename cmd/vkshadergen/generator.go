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
	"fmt"
	"os"
	"path/filepath"
)

// Generator orchestrates one run of the tool: it enumerates the shader
// variant catalog and then, depending on the configured mode, emits the
// CMake sub-project and/or the C++ embedding artifacts.
type Generator struct {
	GLSLC       string // path to the glslc executable, recorded in the CMake project
	InputDir    string // directory holding the .comp shader templates
	OutputDir   string // directory the compiled .spv files land in
	TargetHpp   string // C++ header artifact path
	TargetCpp   string // C++ source artifact path
	TargetCmake string // CMake artifact path; empty selects phase-2 mode
	NoEmbed     bool   // emit filename stubs instead of byte arrays
	Features    Features
	Argv        []string // original command line, echoed into the CMake header
}

// Run executes the generation pipeline.
func (g *Generator) Run() error {
	if g.NoEmbed && g.TargetCmake == "" {
		return fmt.Errorf("--no-embed requires --target-cmake to be specified")
	}

	if info, err := os.Stat(g.InputDir); err != nil || !info.IsDir() {
		return fmt.Errorf("input directory does not exist: %s", g.InputDir)
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if g.TargetCmake != "" {
		if dir := filepath.Dir(g.TargetCmake); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create cmake output directory: %w", err)
			}
		}
	}

	fmt.Println("ggml_vulkan: Generating and compiling shaders to SPIR-V")

	reg := newRegistry(g.InputDir, g.OutputDir, g.Features)
	reg.registerAll()

	if g.TargetCmake == "" || g.NoEmbed {
		if err := writeEmbedFiles(g.TargetHpp, g.TargetCpp, g.OutputDir, reg.variants, g.NoEmbed, g.Features); err != nil {
			return err
		}
	}

	if g.TargetCmake != "" {
		cm := &cmakeLists{}
		cm.addHeader(g.Argv, g.GLSLC)
		for _, v := range reg.variants {
			cm.addBuildCommand(v.Name, v.TemplatePath, v.OutputPath, v.Flags)
		}
		if g.NoEmbed {
			cm.addTargetBuildOnly()
		} else {
			cm.addTargetEmbed(g.executable(), g.GLSLC, g.InputDir, g.OutputDir, g.TargetHpp, g.TargetCpp)
		}
		if err := writeFileIfChanged(g.TargetCmake, []byte(cm.String())); err != nil {
			return fmt.Errorf("write %s: %w", g.TargetCmake, err)
		}
	}

	return nil
}

func (g *Generator) executable() string {
	if len(g.Argv) > 0 {
		return g.Argv[0]
	}
	return "vkshadergen"
}
