package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	if err := os.MkdirAll(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	g := &Generator{
		GLSLC:     "glslc",
		InputDir:  inDir,
		OutputDir: filepath.Join(dir, "out"),
		TargetHpp: filepath.Join(dir, "x.hpp"),
		TargetCpp: filepath.Join(dir, "x.cpp"),
		Features:  allFeatures(),
		Argv:      []string{"vkshadergen"},
	}
	return g, dir
}

func TestNoEmbedRequiresTargetCmake(t *testing.T) {
	g, dir := testGenerator(t)
	g.NoEmbed = true
	if err := g.Run(); err == nil {
		t.Fatal("expected error for --no-embed without --target-cmake")
	}
	if _, err := os.Stat(g.TargetHpp); !os.IsNotExist(err) {
		t.Errorf("no artifact may be written on bad invocation")
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Errorf("output directory must not be created on bad invocation")
	}
}

func TestMissingInputDir(t *testing.T) {
	g, dir := testGenerator(t)
	g.InputDir = filepath.Join(dir, "does-not-exist")
	if err := g.Run(); err == nil {
		t.Fatal("expected error for missing input directory")
	}
}

func TestOutputDirCreated(t *testing.T) {
	g, dir := testGenerator(t)
	g.OutputDir = filepath.Join(dir, "nested", "out")
	g.TargetCmake = filepath.Join(dir, "cmakedir", "build.cmake")
	g.NoEmbed = true
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(g.OutputDir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
	if _, err := os.Stat(g.TargetCmake); err != nil {
		t.Errorf("cmake parent directory not created: %v", err)
	}
}

func TestPhase1NoEmbed(t *testing.T) {
	g, dir := testGenerator(t)
	g.TargetCmake = filepath.Join(dir, "build.cmake")
	g.NoEmbed = true
	g.Argv = []string{"vkshadergen", "--no-embed"}
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(g.TargetCmake)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# Generated with vkshadergen --no-embed\n") {
		t.Errorf("cmake file must begin with the argv comment, got %q", out[:60])
	}
	for _, want := range []string{
		"cmake_minimum_required(VERSION 3.14)",
		"compile_shader(matmul_f32_f16 ",
		"add_custom_target(vulkan-shaders ALL DEPENDS",
		"matmul_f32_f16.spv\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("cmake file missing %q", want)
		}
	}
	if strings.Contains(out, "Embedding Vulkan shaders") {
		t.Errorf("--no-embed cmake must not carry the phase-2 command")
	}

	// Stub artifacts are written during phase 1 in no-embed mode.
	hdr, err := os.ReadFile(g.TargetHpp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(hdr), "#define GGML_VK_SHADER_DIR \""+filepath.ToSlash(g.OutputDir)+"\"") {
		t.Errorf("stub header missing shader dir macro")
	}
	if !strings.Contains(string(hdr), "inline constexpr char const * matmul_f32_f16_data = \"matmul_f32_f16.spv\";") {
		t.Errorf("stub header missing filename constant")
	}
}

func TestPhase1Embed(t *testing.T) {
	g, dir := testGenerator(t)
	g.TargetCmake = filepath.Join(dir, "build.cmake")
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(g.TargetCmake)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"Embedding Vulkan shaders into C++ source",
		"--target-hpp",
		"--target-cpp",
		"matmul_f32_f16.spv\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("embed-mode cmake missing %q", want)
		}
	}

	// Phase 1 embed mode defers the C++ artifacts to phase 2.
	if _, err := os.Stat(g.TargetHpp); !os.IsNotExist(err) {
		t.Errorf("header must not be written during phase-1 embed mode")
	}
}

func TestPhase2Embed(t *testing.T) {
	g, _ := testGenerator(t)
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	blob := []byte{0x03, 0x02, 0x23, 0x07}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "matmul_f32_f16.spv"), blob, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := g.Run(); err != nil {
		t.Fatal(err)
	}

	hdr, err := os.ReadFile(g.TargetHpp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(hdr), "extern const unsigned char matmul_f32_f16_data[4];") {
		t.Errorf("header missing embedded declaration")
	}

	src, err := os.ReadFile(g.TargetCpp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "0x3,0x2,0x23,0x7,") {
		t.Errorf("source missing embedded bytes")
	}
	for _, op := range []string{"add", "sub", "mul", "div", "add_rms"} {
		if !strings.Contains(string(src), "const void * "+op+"_data[2][2][2][2] = {") {
			t.Errorf("source missing %s lookup table", op)
		}
	}
}

func TestIncrementalRunsAreIdempotent(t *testing.T) {
	g, dir := testGenerator(t)
	g.TargetCmake = filepath.Join(dir, "build.cmake")
	g.NoEmbed = true
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}

	past := time.Now().Add(-time.Hour)
	for _, path := range []string{g.TargetCmake, g.TargetHpp, g.TargetCpp} {
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatal(err)
		}
	}

	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{g.TargetCmake, g.TargetHpp, g.TargetCpp} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if !info.ModTime().Equal(past) {
			t.Errorf("%s rewritten on identical rerun", filepath.Base(path))
		}
	}
}
