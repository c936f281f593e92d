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

import "strings"

// matmulShaders registers the matrix multiply variants for one
// (id mode, flavor) combination: per target data type an unaligned and a
// vector-load aligned variant, each against f32 and f16 B operands, plus
// the integer-dot mul_mmq and the bfloat16 pair.
func (r *Registry) matmulShaders(idMode MatMulIdMode, fl flavor) {
	loadVec := "4"
	switch {
	case fl.coopmat2:
		loadVec = "1"
	case fl.fp16:
		loadVec = "8"
	}
	alignedBTypeF32 := "vec4"
	alignedBTypeF16 := "f16vec4"
	switch {
	case fl.coopmat2:
		alignedBTypeF32, alignedBTypeF16 = "float", "float16_t"
	case fl.fp16:
		alignedBTypeF32, alignedBTypeF16 = "mat2x4", "f16mat2x4"
	}

	base := map[string]string{"FLOAT_TYPE_VEC2": "vec2"}
	if fl.coopmat2 || fl.fp16 {
		base["FLOAT_TYPE_VEC2"] = "f16vec2"
	}

	shaderName := "matmul"
	switch idMode {
	case MatMulIdDefault:
		base["MUL_MAT_ID"] = "1"
		shaderName = "matmul_id"
	case MatMulIdSubgroup:
		base["MUL_MAT_ID"] = "1"
		base["MUL_MAT_ID_USE_SUBGROUPS"] = "1"
		shaderName = "matmul_id_subgroup"
	}

	if fl.fp16 {
		base["FLOAT16"] = "1"
	}
	base["ACC_TYPE"] = "float"
	if fl.f16acc {
		base["ACC_TYPE"] = "float16_t"
		base["ACC_TYPE_MAX"] = `"float16_t(65504.0)"`
	}
	if fl.coopmat {
		base["COOPMAT"] = "1"
	}

	source := "mul_mm.comp"
	if fl.coopmat2 {
		source = "mul_mm_cm2.comp"
	}

	// Promoted scalar type for a given target data type. bf16 on the
	// scalar path promotes to float since plain GLSL has no bfloat16.
	floatType := func(t string) string {
		if t == "bf16" {
			if !fl.coopmat && !fl.coopmat2 {
				return "float"
			}
			return "bfloat16_t"
		}
		if fl.coopmat2 || fl.fp16 {
			return "float16_t"
		}
		return "float"
	}

	// Shaders with f16 B_TYPE.
	r.add(shaderName+"_f32_f16", source, mergeDefines(base, map[string]string{
		"FLOAT_TYPE": floatType("f16"),
		"DATA_A_F32": "1",
		"B_TYPE":     "float16_t",
		"D_TYPE":     "float",
	}), fl)
	r.add(shaderName+"_f32_f16_aligned", source, mergeDefines(base, map[string]string{
		"FLOAT_TYPE": floatType("f16"),
		"DATA_A_F32": "1",
		"LOAD_VEC_A": loadVec,
		"LOAD_VEC_B": loadVec,
		"B_TYPE":     alignedBTypeF16,
		"B_TYPE32":   alignedBTypeF32,
		"D_TYPE":     "float",
		"ALIGNED":    "1",
	}), fl)

	r.add(shaderName+"_f16_aligned", source, mergeDefines(base, map[string]string{
		"FLOAT_TYPE": floatType("f16"),
		"DATA_A_F16": "1",
		"LOAD_VEC_A": loadVec,
		"LOAD_VEC_B": loadVec,
		"B_TYPE":     alignedBTypeF16,
		"B_TYPE32":   alignedBTypeF32,
		"D_TYPE":     "float",
		"ALIGNED":    "1",
	}), fl)
	r.add(shaderName+"_f16", source, mergeDefines(base, map[string]string{
		"FLOAT_TYPE": floatType("f16"),
		"DATA_A_F16": "1",
		"B_TYPE":     "float16_t",
		"D_TYPE":     "float",
	}), fl)

	// bf16. Without glslc bfloat16 support only the scalar shader (which
	// promotes to fp32 and needs no extension) is compiled.
	if r.features.BFloat16 || !(fl.coopmat || fl.coopmat2) {
		loadVecA := "4"
		if fl.coopmat2 {
			loadVecA = "1"
		}
		toFloatType := "bf16_to_fp32"
		if fl.coopmat || fl.coopmat2 {
			toFloatType = "uintBitsToBFloat16EXT"
		}
		alignedBType := "u16vec4"
		unalignedBType := "uint16_t"
		if fl.coopmat2 {
			alignedBType = "bfloat16_t"
			unalignedBType = "bfloat16_t"
		}
		r.add(shaderName+"_bf16_aligned", source, mergeDefines(base, map[string]string{
			"FLOAT_TYPE":    floatType("bf16"),
			"TO_FLOAT_TYPE": toFloatType,
			"DATA_A_BF16":   "1",
			"LOAD_VEC_A":    loadVecA,
			"LOAD_VEC_B":    "4",
			"B_TYPE":        alignedBType,
			"B_TYPE32":      "vec4",
			"D_TYPE":        "float",
			"B_IS_FLOAT":    "1",
			"DATA_B_BF16":   "1",
			"ALIGNED":       "1",
		}), fl)
		r.add(shaderName+"_bf16", source, mergeDefines(base, map[string]string{
			"FLOAT_TYPE":    floatType("bf16"),
			"TO_FLOAT_TYPE": toFloatType,
			"DATA_A_BF16":   "1",
			"LOAD_VEC_A":    "1",
			"B_TYPE":        unalignedBType,
			"D_TYPE":        "float",
			"B_IS_FLOAT":    "1",
			"DATA_B_BF16":   "1",
		}), fl)
	}

	for _, tname := range typeNames {
		if tname == "bf16" {
			continue
		}

		loadVecQuant := "2"
		switch tname {
		case "q4_0", "q4_1", "iq1_s", "iq1_m", "iq2_xxs", "iq2_xs", "iq2_s":
			loadVecQuant = "8"
		case "q5_0", "q5_1", "q8_0", "iq3_xxs", "iq3_s", "iq4_nl", "mxfp4":
			loadVecQuant = "4"
		}

		dataAKey := "DATA_A_" + strings.ToUpper(tname)
		floatLike := tname == "f32" || tname == "f16"

		// Unaligned loads one element at a time for floats, or the quant
		// block width for quants; aligned uses the full vector width.
		loadVecAUnaligned := loadVecQuant
		loadVecA := loadVecQuant
		if fl.coopmat2 || floatLike {
			loadVecAUnaligned = "1"
			loadVecA = loadVec
		}

		// No f32 B variants for coopmat2.
		if !fl.coopmat2 {
			r.add(shaderName+"_"+tname+"_f32", source, mergeDefines(base, map[string]string{
				"FLOAT_TYPE": floatType(tname),
				dataAKey:     "1",
				"LOAD_VEC_A": loadVecAUnaligned,
				"B_TYPE":     "float",
				"D_TYPE":     "float",
			}), fl)
			r.add(shaderName+"_"+tname+"_f32_aligned", source, mergeDefines(base, map[string]string{
				"FLOAT_TYPE": floatType(tname),
				dataAKey:     "1",
				"LOAD_VEC_A": loadVecA,
				"LOAD_VEC_B": loadVec,
				"B_TYPE":     alignedBTypeF32,
				"B_TYPE32":   alignedBTypeF32,
				"D_TYPE":     "float",
				"ALIGNED":    "1",
			}), fl)
		}

		if tname != "f16" && tname != "f32" {
			r.add(shaderName+"_"+tname+"_f16", source, mergeDefines(base, map[string]string{
				"FLOAT_TYPE": floatType(tname),
				dataAKey:     "1",
				"LOAD_VEC_A": loadVecAUnaligned,
				"B_TYPE":     "float16_t",
				"D_TYPE":     "float",
			}), fl)
			r.add(shaderName+"_"+tname+"_f16_aligned", source, mergeDefines(base, map[string]string{
				"FLOAT_TYPE": floatType(tname),
				dataAKey:     "1",
				"LOAD_VEC_A": loadVecA,
				"LOAD_VEC_B": loadVec,
				"B_TYPE":     alignedBTypeF16,
				"B_TYPE32":   alignedBTypeF32,
				"D_TYPE":     "float",
				"ALIGNED":    "1",
			}), fl)
		}

		if r.features.IntegerDot && !fl.coopmat && !fl.coopmat2 && idMode == MatMulIdNone && isLegacyQuant(tname) {
			r.add(shaderName+"_"+tname+"_q8_1", "mul_mmq.comp", mergeDefines(base, map[string]string{
				"FLOAT_TYPE": floatType(tname),
				dataAKey:     "1",
				"D_TYPE":     "float",
			}), fl)
		}
	}
}
