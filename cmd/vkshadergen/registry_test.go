package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func allFeatures() Features {
	return Features{BFloat16: true, Coopmat: true, Coopmat2: true, IntegerDot: true}
}

func fullCatalog(t *testing.T, features Features) *Registry {
	t.Helper()
	r := newRegistry("in", "out", features)
	r.registerAll()
	return r
}

func TestVariantNamesUnique(t *testing.T) {
	r := fullCatalog(t, allFeatures())
	seen := make(map[string]bool)
	for _, v := range r.variants {
		if seen[v.Name] {
			t.Errorf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
	}
	if len(r.variants) < 500 {
		t.Errorf("catalog has %d variants, expected several hundred", len(r.variants))
	}
}

func TestSuffixOrder(t *testing.T) {
	tests := []struct {
		name string
		base string
		fl   flavor
		want string
	}{
		{"fp16 default", "matmul", flavor{fp16: true}, "matmul"},
		{"fp32", "matmul", flavor{}, "matmul_fp32"},
		{"f16acc", "matmul", flavor{fp16: true, f16acc: true}, "matmul_f16acc"},
		{"coopmat", "matmul", flavor{fp16: true, coopmat: true}, "matmul_cm1"},
		{"coopmat f16acc", "matmul", flavor{fp16: true, coopmat: true, f16acc: true}, "matmul_f16acc_cm1"},
		{"coopmat2", "matmul", flavor{fp16: true, coopmat2: true}, "matmul_cm2"},
		{"coopmat2 f16acc", "matmul", flavor{fp16: true, coopmat2: true, f16acc: true}, "matmul_f16acc_cm2"},
		{"coopmat2 no fp16 still cm2", "matmul", flavor{coopmat2: true}, "matmul_cm2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry("in", "out", Features{})
			r.add(tt.base, "mul_mm.comp", nil, tt.fl)
			if got := r.variants[0].Name; got != tt.want {
				t.Errorf("add(%q, %+v) name = %q, want %q", tt.base, tt.fl, got, tt.want)
			}
		})
	}
}

func TestTargetEnvFlag(t *testing.T) {
	r := fullCatalog(t, allFeatures())
	for _, v := range r.variants {
		var envs []string
		for _, f := range v.Flags {
			if strings.HasPrefix(f, "--target-env=") {
				envs = append(envs, f)
			}
		}
		if len(envs) != 1 {
			t.Errorf("%s: got %d target-env flags, want 1", v.Name, len(envs))
			continue
		}
		want := "--target-env=vulkan1.2"
		if strings.Contains(v.Name, "_cm2") {
			want = "--target-env=vulkan1.3"
		}
		if envs[0] != want {
			t.Errorf("%s: target-env = %q, want %q", v.Name, envs[0], want)
		}
	}
}

func TestOptimizationFlag(t *testing.T) {
	r := fullCatalog(t, allFeatures())
	for _, v := range r.variants {
		hasOpt := false
		for _, f := range v.Flags {
			if f == "-O" {
				hasOpt = true
			}
		}
		wantOpt := !strings.Contains(v.Name, "_cm1") && !strings.Contains(v.Name, "bf16")
		if hasOpt != wantOpt {
			t.Errorf("%s: -O present = %v, want %v", v.Name, hasOpt, wantOpt)
		}
	}
}

func TestDefineFlagRendering(t *testing.T) {
	r := fullCatalog(t, allFeatures())
	for _, v := range r.variants {
		for k, val := range v.Defines {
			want := "-D" + k + "=" + val
			found := false
			for _, f := range v.Flags {
				if f == want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: flags missing %q", v.Name, want)
			}
		}
	}
}

func TestDefineFlagsSorted(t *testing.T) {
	r := newRegistry("in", "out", Features{})
	r.spv("probe", "probe.comp", map[string]string{"Z_LAST": "1", "A_FIRST": "1", "M_MID": "1"})
	v := r.variants[0]

	var defineFlags []string
	for _, f := range v.Flags {
		if strings.HasPrefix(f, "-D") {
			defineFlags = append(defineFlags, f)
		}
	}
	want := []string{"-DA_FIRST=1", "-DM_MID=1", "-DZ_LAST=1"}
	if diff := cmp.Diff(want, defineFlags); diff != "" {
		t.Errorf("define flags order mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugInfoFlag(t *testing.T) {
	r := newRegistry("in", "out", Features{DebugInfo: true})
	r.spv("probe", "probe.comp", nil)
	found := false
	for _, f := range r.variants[0].Flags {
		if f == "-g" {
			found = true
		}
	}
	if !found {
		t.Errorf("debug-info feature set but -g missing from %v", r.variants[0].Flags)
	}
}

func TestDuplicateRegistrationLastWins(t *testing.T) {
	r := newRegistry("in", "out", Features{})
	r.spv("conv2d_f32", "conv2d_mm.comp", map[string]string{"UNROLL": ""})
	r.spv("other", "other.comp", nil)
	r.spv("conv2d_f32", "conv2d_mm.comp", map[string]string{"UNROLL": "[[unroll]]"})

	if len(r.variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(r.variants))
	}
	if r.variants[0].Name != "conv2d_f32" {
		t.Errorf("replacement moved variant; first is %q, want conv2d_f32", r.variants[0].Name)
	}
	if got := r.variants[0].Defines["UNROLL"]; got != "[[unroll]]" {
		t.Errorf("UNROLL = %q, want the later registration's value", got)
	}
}

func TestMergeDefinesBaseWins(t *testing.T) {
	base := map[string]string{"ACC_TYPE": "float16_t"}
	got := mergeDefines(base, map[string]string{"ACC_TYPE": "float", "D_TYPE": "float"})
	want := map[string]string{"ACC_TYPE": "float16_t", "D_TYPE": "float"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergeDefines mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryDeterministic(t *testing.T) {
	a := fullCatalog(t, allFeatures())
	b := fullCatalog(t, allFeatures())
	if diff := cmp.Diff(a.variants, b.variants); diff != "" {
		t.Errorf("two runs disagree (-first +second):\n%s", diff)
	}
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		tname                      string
		quantized, legacy, kq, iq bool
	}{
		{"f32", false, false, false, false},
		{"f16", false, false, false, false},
		{"bf16", false, false, false, false},
		{"q4_0", true, true, false, false},
		{"q8_0", true, true, false, false},
		{"q4_k", true, false, true, false},
		{"q6_k", true, false, true, false},
		{"iq1_s", true, false, false, true},
		{"iq4_nl", true, false, false, true},
		{"mxfp4", true, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.tname, func(t *testing.T) {
			if got := isQuantizedType(tt.tname); got != tt.quantized {
				t.Errorf("isQuantizedType(%q) = %v, want %v", tt.tname, got, tt.quantized)
			}
			if got := isLegacyQuant(tt.tname); got != tt.legacy {
				t.Errorf("isLegacyQuant(%q) = %v, want %v", tt.tname, got, tt.legacy)
			}
			if got := isKQuant(tt.tname); got != tt.kq {
				t.Errorf("isKQuant(%q) = %v, want %v", tt.tname, got, tt.kq)
			}
			if got := isIQQuant(tt.tname); got != tt.iq {
				t.Errorf("isIQQuant(%q) = %v, want %v", tt.tname, got, tt.iq)
			}
		})
	}
}
