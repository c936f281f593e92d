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
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// cmakeLists accumulates the generated CMake sub-project: one
// compile_shader rule per variant plus a terminal aggregate target.
type cmakeLists struct {
	buf          strings.Builder
	outFilepaths []string
}

// cmakeEscape prepares a string for use inside a double-quoted CMake
// argument: backslash and double quote are both backslash-prefixed.
func cmakeEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// cmakePath renders a path as a quoted, forward-slash CMake argument so
// the generated project stays portable across platforms.
func cmakePath(p string) string {
	return `"` + cmakeEscape(filepath.ToSlash(p)) + `"`
}

func (c *cmakeLists) addHeader(argv []string, glslc string) {
	fmt.Fprintf(&c.buf, "# Generated with %s\n\n", shellquote.Join(argv...))
	c.buf.WriteString("cmake_minimum_required(VERSION 3.14)\n")
	c.buf.WriteString("project(ggml-vulkan-shaders)\n\n")
	fmt.Fprintf(&c.buf, "set(GLSLC \"%s\")\n\n", cmakeEscape(glslc))
	c.buf.WriteString("function(compile_shader name in_file out_file flags)\n")
	c.buf.WriteString("  add_custom_command(\n")
	c.buf.WriteString("    OUTPUT ${out_file}\n")
	c.buf.WriteString("    COMMAND ${GLSLC} ${flags} ${ARGN} -MD -MF ${out_file}.d ${in_file} -o ${out_file}\n")
	c.buf.WriteString("    DEPENDS ${in_file}\n")
	c.buf.WriteString("    DEPFILE ${out_file}.d\n")
	c.buf.WriteString("    COMMENT \"Building Vulkan shader ${name}.spv\"\n")
	c.buf.WriteString("  )\n")
	c.buf.WriteString("endfunction()\n\n")
}

func (c *cmakeLists) addBuildCommand(name, inPath, outPath string, flags []string) {
	fmt.Fprintf(&c.buf, "compile_shader(%s %s %s ", name, cmakePath(inPath), cmakePath(outPath))
	for _, flag := range flags {
		fmt.Fprintf(&c.buf, "\"%s\" ", cmakeEscape(flag))
	}
	c.buf.WriteString(")\n")
	c.outFilepaths = append(c.outFilepaths, outPath)
}

// addTargetEmbed appends the phase-2 rule that re-invokes this tool to
// embed the compiled binaries, plus the terminal target depending on the
// generated C++ sources.
func (c *cmakeLists) addTargetEmbed(executable, glslc, inputDir, outputDir, targetHpp, targetCpp string) {
	c.buf.WriteString("\nadd_custom_command(\n")
	fmt.Fprintf(&c.buf, "  OUTPUT %s %s\n", cmakePath(targetHpp), cmakePath(targetCpp))
	fmt.Fprintf(&c.buf, "  COMMAND %s --glslc %s --input-dir %s --output-dir %s --target-hpp %s --target-cpp %s\n",
		cmakePath(executable), cmakeEscape(glslc), cmakePath(inputDir), cmakePath(outputDir), cmakePath(targetHpp), cmakePath(targetCpp))
	c.buf.WriteString("  DEPENDS\n")
	for _, spvPath := range c.outFilepaths {
		fmt.Fprintf(&c.buf, "    %s\n", cmakePath(spvPath))
	}
	c.buf.WriteString("  COMMENT \"Embedding Vulkan shaders into C++ source\"\n")
	c.buf.WriteString(")\n")

	c.buf.WriteString("\nadd_custom_target(vulkan-shaders ALL DEPENDS\n")
	fmt.Fprintf(&c.buf, "  %s\n", cmakePath(targetHpp))
	fmt.Fprintf(&c.buf, "  %s\n", cmakePath(targetCpp))
	c.buf.WriteString(")\n")
}

// addTargetBuildOnly appends the terminal target for --no-embed runs,
// which depend directly on the compiled binaries.
func (c *cmakeLists) addTargetBuildOnly() {
	c.buf.WriteString("\nadd_custom_target(vulkan-shaders ALL DEPENDS\n")
	for _, spvPath := range c.outFilepaths {
		fmt.Fprintf(&c.buf, "  %s\n", cmakePath(spvPath))
	}
	c.buf.WriteString(")\n")
}

func (c *cmakeLists) String() string {
	return c.buf.String()
}
