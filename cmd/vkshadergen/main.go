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

// Command vkshadergen compiles Vulkan compute shaders to SPIR-V and embeds
// the binaries into C++ source files.
//
// The tool runs at build time in two phases. Phase 1 (--target-cmake)
// writes a CMake sub-project with one compile rule per shader variant.
// The parent build configures and builds that sub-project, which invokes
// glslc for every variant. Phase 2 (no --target-cmake) reads the compiled
// .spv files and writes the header/source pair that embeds them.
//
// With --no-embed, phase 1 instead writes stub C++ sources that reference
// the .spv files by name, and phase 2 is skipped. This allows fast
// iteration on shader code without recompiling C++, but can't be deployed.
package main

import (
	"flag"
	"fmt"
	"os"
)

const usageText = `Usage: vkshadergen [options]

Compiles Vulkan compute shaders to SPIR-V and embeds it into C++ source files

Options:
  --glslc <path>          Path to glslc executable (default: glslc)
  --input-dir <path>      Input directory containing .comp shader files
  --output-dir <path>     Output directory for compiled .spv files
  --target-hpp <path>     Output C++ header file path
  --target-cpp <path>     Output C++ source file path
  --target-cmake <path>   Output CMakeLists.txt file path
  --no-embed              Do not embed SPIR-V binaries into C++ source

This executable runs at build time. Typically it is invoked by CMake like this:
  1. Run with --target-cmake to generate CMakeLists.txt that contains build
     commands for the shaders.
  2. Configure and build the generated CMake sub-project to compile the shaders
     into SPIR-V files.
  3. Run without --target-cmake to generate C++ source files that embed the
     SPIR-V binaries. This invocation is part of the generated sub-project.

If --no-embed is used, step 1 will generate stub C++ source files, and
step 3 is skipped. This allows fast iteration on shader code without
recompiling C++ code, but can't be deployed.
`

var (
	glslcPath   = flag.String("glslc", "glslc", "Path to glslc executable")
	inputDir    = flag.String("input-dir", "vulkan-shaders", "Input directory containing .comp shader files")
	outputDir   = flag.String("output-dir", "/tmp", "Output directory for compiled .spv files")
	targetHpp   = flag.String("target-hpp", "ggml-vulkan-shaders.hpp", "Output C++ header file path")
	targetCpp   = flag.String("target-cpp", "ggml-vulkan-shaders.cpp", "Output C++ source file path")
	targetCmake = flag.String("target-cmake", "", "Output CMakeLists.txt file path")
	noEmbed     = flag.Bool("no-embed", false, "Do not embed SPIR-V binaries into C++ source")
	showHelp    = flag.Bool("help", false, "Print usage and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
	}
	flag.Parse()

	if *showHelp {
		fmt.Print(usageText)
		os.Exit(0)
	}

	gen := &Generator{
		GLSLC:       *glslcPath,
		InputDir:    *inputDir,
		OutputDir:   *outputDir,
		TargetHpp:   *targetHpp,
		TargetCpp:   *targetCpp,
		TargetCmake: *targetCmake,
		NoEmbed:     *noEmbed,
		Features:    defaultFeatures(),
		Argv:        os.Args,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
