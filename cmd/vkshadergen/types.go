package main

import "strings"

// typeNames is the catalog of tensor element types the shaders are
// specialized for. The order is load-bearing: it fixes the registration
// order of the per-type variants and the order of the dequant
// mul_mat_vec lookup tables in the generated sources.
var typeNames = []string{
	"f32",
	"f16",
	"q4_0",
	"q4_1",
	"q5_0",
	"q5_1",
	"q8_0",
	"q2_k",
	"q3_k",
	"q4_k",
	"q5_k",
	"q6_k",
	"iq1_s",
	"iq1_m",
	"iq2_xxs",
	"iq2_xs",
	"iq2_s",
	"iq3_xxs",
	"iq3_s",
	"iq4_xs",
	"iq4_nl",
	"mxfp4",
	"bf16",
}

func isQuantizedType(t string) bool {
	return t != "f32" && t != "f16" && t != "bf16"
}

func isLegacyQuant(t string) bool {
	switch t {
	case "q4_0", "q4_1", "q5_0", "q5_1", "q8_0":
		return true
	}
	return false
}

func isKQuant(t string) bool {
	return strings.HasSuffix(t, "_k")
}

func isIQQuant(t string) bool {
	return strings.HasPrefix(t, "iq")
}

// MatMulIdMode selects the indirection-by-id family of the matrix
// multiply shaders.
type MatMulIdMode int

const (
	MatMulIdNone MatMulIdMode = iota
	MatMulIdDefault
	MatMulIdSubgroup
)

// Features holds the glslc capability bits probed by the parent build.
// They gate which variant groups are registered, never how the surviving
// variants are named.
type Features struct {
	BFloat16   bool // glslc understands GL_EXT_bfloat16
	Coopmat    bool // VK_KHR_cooperative_matrix
	Coopmat2   bool // VK_NV_cooperative_matrix2
	IntegerDot bool // VK_KHR_shader_integer_dot_product
	DebugInfo  bool // pass -g to glslc
}

// The parent build overrides these after probing glslc, e.g.
// go build -ldflags "-X main.coopmat2Support=0".
var (
	bfloat16Support   = "1"
	coopmatSupport    = "1"
	coopmat2Support   = "1"
	integerDotSupport = "1"
	shaderDebugInfo   = "0"
)

func featureBit(s string) bool {
	return s == "1" || s == "true"
}

func defaultFeatures() Features {
	return Features{
		BFloat16:   featureBit(bfloat16Support),
		Coopmat:    featureBit(coopmatSupport),
		Coopmat2:   featureBit(coopmat2Support),
		IntegerDot: featureBit(integerDotSupport),
		DebugInfo:  featureBit(shaderDebugInfo),
	}
}
