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

// registerAll enumerates the complete shader variant catalog. The
// registration order fixes the compile-rule order of the generated CMake
// project; the embedding emitter re-sorts by name for stable output.
//
// The define maps are spelled out literally per variant: the exact key
// and value strings are part of the contract with the shader templates
// and with the symbols the lookup tables reference, so they must not be
// folded into clever data-driven schemes.
func (r *Registry) registerAll() {
	base := map[string]string{"FLOAT_TYPE": "float"}

	// matmul
	for _, idMode := range []MatMulIdMode{MatMulIdNone, MatMulIdDefault, MatMulIdSubgroup} {
		// fp32
		r.matmulShaders(idMode, flavor{})

		// fp16, fp32acc and fp16acc
		r.matmulShaders(idMode, flavor{fp16: true})
		r.matmulShaders(idMode, flavor{fp16: true, f16acc: true})

		if idMode != MatMulIdDefault {
			if r.features.Coopmat {
				r.matmulShaders(idMode, flavor{fp16: true, coopmat: true})
				r.matmulShaders(idMode, flavor{fp16: true, coopmat: true, f16acc: true})
			}
			if r.features.Coopmat2 {
				r.matmulShaders(idMode, flavor{fp16: true, coopmat2: true})
				r.matmulShaders(idMode, flavor{fp16: true, coopmat2: true, f16acc: true})
			}
		}
	}

	// flash attention
	for _, f16acc := range []bool{false, true} {
		faBase := map[string]string{
			"FLOAT_TYPE": "float",
			"ACC_TYPE":   "float",
			"ACC_TYPEV4": "vec4",
		}
		if f16acc {
			faBase["ACC_TYPE"] = "float16_t"
			faBase["ACC_TYPEV4"] = "f16vec4"
			faBase["ACC_TYPE_MAX"] = `"float16_t(65504.0)"`
		}

		for _, tname := range typeNames {
			if tname == "f32" || tname == "bf16" {
				continue
			}
			up := strings.ToUpper(tname)

			if r.features.Coopmat2 {
				cm2 := flavor{fp16: true, coopmat2: true, f16acc: f16acc}
				if tname == "f16" {
					r.add("flash_attn_f32_f16_"+tname, "flash_attn_cm2.comp", mergeDefines(faBase, map[string]string{
						"Q_TYPE": "float",
						"D_TYPE": "float",
					}), cm2)
				} else {
					r.add("flash_attn_f32_f16_"+tname, "flash_attn_cm2.comp", mergeDefines(faBase, map[string]string{
						"DATA_A_" + up: "1",
						"Q_TYPE":       "float",
						"D_TYPE":       "float",
						"DEQUANTFUNC":  "dequantFunc" + up,
						"BLOCK_SIZE":   "QUANT_K_" + up,
					}), cm2)
				}
			}
			if r.features.Coopmat {
				cm1 := flavor{fp16: true, coopmat: true, f16acc: f16acc}
				if tname == "f16" {
					r.add("flash_attn_f32_f16_"+tname, "flash_attn_cm1.comp", mergeDefines(faBase, map[string]string{
						"Q_TYPE":  "float",
						"D_TYPE":  "float",
						"COOPMAT": "1",
					}), cm1)
				} else if tname == "q4_0" || tname == "q8_0" {
					r.add("flash_attn_f32_f16_"+tname, "flash_attn_cm1.comp", mergeDefines(faBase, map[string]string{
						"DATA_A_" + up: "1",
						"Q_TYPE":       "float",
						"D_TYPE":       "float",
						"BLOCK_SIZE":   "QUANT_K_" + up,
						"COOPMAT":      "1",
					}), cm1)
				}
			}
			scalar := flavor{fp16: true, f16acc: f16acc}
			if tname == "f16" {
				r.add("flash_attn_f32_f16_"+tname, "flash_attn.comp", mergeDefines(faBase, map[string]string{
					"Q_TYPE": "float",
					"D_TYPE": "float",
				}), scalar)
			} else if tname == "q4_0" || tname == "q8_0" {
				r.add("flash_attn_f32_f16_"+tname, "flash_attn.comp", mergeDefines(faBase, map[string]string{
					"DATA_A_" + up: "1",
					"Q_TYPE":       "float",
					"D_TYPE":       "float",
					"BLOCK_SIZE":   "QUANT_K_" + up,
				}), scalar)
			}
		}
	}

	for _, tname := range typeNames {
		up := strings.ToUpper(tname)
		dataAKey := "DATA_A_" + up

		// mul mat vec
		shader := "mul_mat_vec.comp"
		if isKQuant(tname) || strings.HasPrefix(tname, "iq1_") || strings.HasPrefix(tname, "iq2_") || strings.HasPrefix(tname, "iq3_") {
			shader = "mul_mat_vec_" + tname + ".comp"
		}

		r.spv("mul_mat_vec_"+tname+"_f32_f32", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float", "B_TYPE_VEC2": "vec2", "B_TYPE_VEC4": "vec4", "D_TYPE": "float",
		}))
		r.spv("mul_mat_vec_"+tname+"_f16_f32", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float16_t", "B_TYPE_VEC2": "f16vec2", "B_TYPE_VEC4": "f16vec4", "D_TYPE": "float",
		}))

		r.spv("mul_mat_vec_"+tname+"_f32_f32_subgroup", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float", "B_TYPE_VEC2": "vec2", "B_TYPE_VEC4": "vec4", "D_TYPE": "float", "USE_SUBGROUP_ADD": "1",
		}))
		r.spv("mul_mat_vec_"+tname+"_f16_f32_subgroup", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float16_t", "B_TYPE_VEC2": "f16vec2", "B_TYPE_VEC4": "f16vec4", "D_TYPE": "float", "USE_SUBGROUP_ADD": "1",
		}))

		r.spv("mul_mat_vec_"+tname+"_f32_f32_subgroup_no_shmem", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float", "B_TYPE_VEC2": "vec2", "B_TYPE_VEC4": "vec4", "D_TYPE": "float", "USE_SUBGROUP_ADD_NO_SHMEM": "1",
		}))
		r.spv("mul_mat_vec_"+tname+"_f16_f32_subgroup_no_shmem", shader, mergeDefines(base, map[string]string{
			dataAKey: "1", "B_TYPE": "float16_t", "B_TYPE_VEC2": "f16vec2", "B_TYPE_VEC4": "f16vec4", "D_TYPE": "float", "USE_SUBGROUP_ADD_NO_SHMEM": "1",
		}))

		r.spv("mul_mat_vec_id_"+tname+"_f32", shader, mergeDefines(base, map[string]string{
			"MUL_MAT_ID": "1", dataAKey: "1", "B_TYPE": "float", "B_TYPE_VEC2": "vec2", "B_TYPE_VEC4": "vec4", "D_TYPE": "float",
		}))

		// mul mat vec with integer dot product
		if r.features.IntegerDot && isLegacyQuant(tname) {
			r.spv("mul_mat_vec_"+tname+"_q8_1_f32", "mul_mat_vecq.comp", mergeDefines(base, map[string]string{
				dataAKey: "1", "D_TYPE": "float", "FLOAT_TYPE": "float", "FLOAT_TYPE_VEC2": "vec2", "ACC_TYPE": "float",
			}))
			r.spv("mul_mat_vec_"+tname+"_q8_1_f32_subgroup", "mul_mat_vecq.comp", mergeDefines(base, map[string]string{
				dataAKey: "1", "D_TYPE": "float", "FLOAT_TYPE": "float", "FLOAT_TYPE_VEC2": "vec2", "ACC_TYPE": "float", "USE_SUBGROUP_ADD": "1",
			}))
			r.spv("mul_mat_vec_"+tname+"_q8_1_f32_subgroup_no_shmem", "mul_mat_vecq.comp", mergeDefines(base, map[string]string{
				dataAKey: "1", "D_TYPE": "float", "FLOAT_TYPE": "float", "FLOAT_TYPE_VEC2": "vec2", "ACC_TYPE": "float", "USE_SUBGROUP_ADD_NO_SHMEM": "1",
			}))
		}

		// dequant shaders
		if tname != "f16" && tname != "bf16" {
			r.spv("dequant_"+tname, "dequant_"+tname+".comp", mergeDefines(base, map[string]string{
				dataAKey: "1", "D_TYPE": "float16_t",
			}))
		}

		// get_rows
		if !isKQuant(tname) {
			shader = "get_rows_quant.comp"
			if tname == "f32" || tname == "f16" || tname == "bf16" {
				shader = "get_rows.comp"
			}
			if tname == "f16" {
				r.spv("get_rows_"+tname, shader, mergeDefines(base, map[string]string{
					dataAKey: "1", "B_TYPE": "int", "D_TYPE": "float16_t", "OPTIMIZATION_ERROR_WORKAROUND": "1",
				}))
			} else {
				r.spv("get_rows_"+tname, shader, mergeDefines(base, map[string]string{
					dataAKey: "1", "B_TYPE": "int", "D_TYPE": "float16_t",
				}))
			}
			r.spv("get_rows_"+tname+"_f32", shader, mergeDefines(base, map[string]string{
				dataAKey: "1", "B_TYPE": "int", "D_TYPE": "float",
			}))
		}
	}

	r.spv("mul_mat_vec_p021_f16_f32_subgroup_add", "mul_mat_vec_p021.comp", map[string]string{
		"A_TYPE": "float16_t", "A_TYPE_VEC4": "f16vec4", "B_TYPE": "float", "B_TYPE_VEC4": "vec4", "D_TYPE": "float", "USE_SUBGROUP_ADD": "1",
	})
	r.spv("mul_mat_vec_p021_f16_f32", "mul_mat_vec_p021.comp", map[string]string{
		"A_TYPE": "float16_t", "A_TYPE_VEC4": "f16vec4", "B_TYPE": "float", "B_TYPE_VEC4": "vec4", "D_TYPE": "float",
	})
	r.spv("mul_mat_vec_nc_f16_f32", "mul_mat_vec_nc.comp", map[string]string{
		"A_TYPE": "float16_t", "A_TYPE_VEC4": "f16vec4", "B_TYPE": "float", "B_TYPE_VEC4": "vec4", "D_TYPE": "float",
	})

	// norms
	r.spv("norm_f32", "norm.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))
	r.spv("group_norm_f32", "group_norm.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))
	r.spv("rms_norm_f32", "rms_norm.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))
	r.spv("rms_norm_partials_f32", "rms_norm_partials.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))
	r.spv("rms_norm_back_f32", "rms_norm_back.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))
	r.spv("l2_norm_f32", "l2_norm.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))

	// copies
	r.spv("cpy_f32_f32", "copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("cpy_f32_f16", "copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t"})
	r.spv("cpy_f16_f16", "copy.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "OPTIMIZATION_ERROR_WORKAROUND": "1"})
	r.spv("cpy_f16_f32", "copy.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float", "OPTIMIZATION_ERROR_WORKAROUND": "1"})
	r.spv("cpy_f32_bf16", "copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "uint16_t", "DATA_D_BF16": "1"})
	r.spv("contig_cpy_f32_f32", "contig_copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("contig_cpy_f32_i32", "contig_copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "int"})
	r.spv("contig_cpy_i32_f32", "contig_copy.comp", map[string]string{"A_TYPE": "int", "D_TYPE": "float"})
	r.spv("contig_cpy_f32_f16", "contig_copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t"})
	r.spv("contig_cpy_f16_f16", "contig_copy.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "OPTIMIZATION_ERROR_WORKAROUND": "1"})
	r.spv("contig_cpy_f16_f32", "contig_copy.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float", "OPTIMIZATION_ERROR_WORKAROUND": "1"})
	r.spv("contig_cpy_f32_bf16", "contig_copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "uint16_t", "DATA_D_BF16": "1"})
	r.spv("cpy_f32_i32", "copy.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "int"})
	r.spv("cpy_i32_f32", "copy.comp", map[string]string{"A_TYPE": "int", "D_TYPE": "float"})

	for _, t := range []string{"q4_0", "q4_1", "q5_0", "q5_1", "q8_0", "iq4_nl"} {
		up := strings.ToUpper(t)
		r.spv("cpy_f32_"+t, "copy_to_quant.comp", map[string]string{"DATA_A_" + up: "1", "D_TYPE": "float", "FLOAT_TYPE": "float"})
		r.spv("cpy_f32_"+t+"_rte", "copy_to_quant.comp", map[string]string{"DATA_A_" + up: "1", "D_TYPE": "float", "FLOAT_TYPE": "float", "RTE16": "1"})
		r.spv("cpy_"+t+"_f32", "copy_from_quant.comp", map[string]string{"DATA_A_" + up: "1", "D_TYPE": "float", "FLOAT_TYPE": "float"})
	}

	for _, t := range []string{"f32", "f16", "bf16", "q4_0", "q4_1", "q5_0", "q5_1", "q8_0", "iq4_nl"} {
		up := strings.ToUpper(t)
		r.spv("set_rows_"+t, "copy_to_quant.comp", map[string]string{"SET_ROWS": "1", "DATA_A_" + up: "1", "B_TYPE": "uvec2", "D_TYPE": "float", "FLOAT_TYPE": "float"})
		r.spv("set_rows_"+t+"_rte", "copy_to_quant.comp", map[string]string{"SET_ROWS": "1", "DATA_A_" + up: "1", "B_TYPE": "uvec2", "D_TYPE": "float", "FLOAT_TYPE": "float", "RTE16": "1"})
	}

	// binary element-wise ops, full precision/rte cross product
	typeStr := func(f16 bool) string {
		if f16 {
			return "float16_t"
		}
		return "float"
	}
	halfSuffix := func(f16 bool) string {
		if f16 {
			return "_f16"
		}
		return "_f32"
	}
	for _, op := range []string{"add", "sub", "mul", "div", "add_rms"} {
		for _, src0F16 := range []bool{false, true} {
			for _, src1F16 := range []bool{false, true} {
				for _, dstF16 := range []bool{false, true} {
					for _, rte := range []bool{false, true} {
						source := op
						addRms := "0"
						if op == "add_rms" {
							source = "add"
							addRms = "1"
						}
						rteVal := "0"
						name := op + halfSuffix(src0F16) + halfSuffix(src1F16) + halfSuffix(dstF16)
						if rte {
							rteVal = "1"
							name += "_rte"
						}
						r.spv(name, source+".comp", map[string]string{
							"A_TYPE":     typeStr(src0F16),
							"B_TYPE":     typeStr(src1F16),
							"D_TYPE":     typeStr(dstF16),
							"FLOAT_TYPE": "float",
							"RTE16":      rteVal,
							"ADD_RMS":    addRms,
						})
					}
				}
			}
		}
	}

	r.spv("sub_f32", "sub.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("acc_f32", "acc.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("split_k_reduce", "mul_mat_split_k_reduce.comp", map[string]string{})
	r.spv("fa_split_k_reduce", "flash_attn_split_k_reduce.comp", map[string]string{})

	r.spv("quantize_q8_1", "quantize_q8_1.comp", map[string]string{})
	r.spv("quantize_q8_1_subgroup", "quantize_q8_1.comp", map[string]string{"USE_SUBGROUPS": "1"})

	r.spv("quantize_q8_1_x4", "quantize_q8_1.comp", map[string]string{"QBLOCK_X4": "1"})
	r.spv("quantize_q8_1_x4_subgroup", "quantize_q8_1.comp", map[string]string{"QBLOCK_X4": "1", "USE_SUBGROUPS": "1"})

	r.spv("mul_f32", "mul.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("div_f32", "div.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("repeat_f32", "repeat.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("repeat_back_f32", "repeat_back.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})

	r.spv("scale_f32", "scale.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("sqr_f32", "square.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("sqrt_f32", "sqrt.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("sin_f32", "sin.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("cos_f32", "cos.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("clamp_f32", "clamp.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float"})

	r.spv("pad_f32", "pad.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})

	r.spv("concat_f32", "concat.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"})
	r.spv("concat_f16", "concat.comp", map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float16_t", "D_TYPE": "float16_t", "OPTIMIZATION_ERROR_WORKAROUND": "1"})
	r.spv("concat_i32", "concat.comp", map[string]string{"A_TYPE": "int", "B_TYPE": "int", "D_TYPE": "int"})

	r.spv("upscale_f32", "upscale.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"})

	// unary activations
	r.spv("exp_f16", "exp.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("exp_f32", "exp.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("gelu_f16", "gelu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("gelu_f32", "gelu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("gelu_erf_f16", "gelu_erf.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("gelu_erf_f32", "gelu_erf.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("gelu_quick_f16", "gelu_quick.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("gelu_quick_f32", "gelu_quick.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("silu_f16", "silu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("silu_f32", "silu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("relu_f16", "relu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("relu_f32", "relu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("tanh_f16", "tanh.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("tanh_f32", "tanh.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("sigmoid_f16", "sigmoid.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("sigmoid_f32", "sigmoid.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("hardsigmoid_f16", "hardsigmoid.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("hardsigmoid_f32", "hardsigmoid.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("hardswish_f16", "hardswish.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("hardswish_f32", "hardswish.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})

	// gated activations
	for _, rte := range []bool{false, true} {
		suffix := ""
		rteVal := "0"
		if rte {
			suffix = "_rte"
			rteVal = "1"
		}
		r.spv("geglu_f16"+suffix, "geglu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("geglu_f32"+suffix, "geglu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
		r.spv("reglu_f16"+suffix, "reglu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("reglu_f32"+suffix, "reglu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
		r.spv("swiglu_f16"+suffix, "swiglu.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("swiglu_f32"+suffix, "swiglu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
		r.spv("swiglu_oai_f16"+suffix, "swiglu_oai.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("swiglu_oai_f32"+suffix, "swiglu_oai.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
		r.spv("geglu_erf_f16"+suffix, "geglu_erf.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("geglu_erf_f32"+suffix, "geglu_erf.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
		r.spv("geglu_quick_f16"+suffix, "geglu_quick.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": rteVal})
		r.spv("geglu_quick_f32"+suffix, "geglu_quick.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float", "RTE16": rteVal})
	}

	r.spv("leaky_relu_f32", "leaky_relu.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("silu_back_f32", "silu_back.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"})

	r.spv("diag_mask_inf_f32", "diag_mask_inf.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})

	r.spv("soft_max_f32", "soft_max.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))
	r.spv("soft_max_f32_f16", "soft_max.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float16_t", "D_TYPE": "float"}))
	r.spv("soft_max_back_f32", "soft_max_back.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))

	// rope
	r.spv("rope_norm_f32", "rope_norm.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("rope_norm_f16", "rope_norm.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("rope_norm_f16_rte", "rope_norm.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": "1"})

	r.spv("rope_neox_f32", "rope_neox.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("rope_neox_f16", "rope_neox.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("rope_neox_f16_rte", "rope_neox.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": "1"})

	r.spv("rope_multi_f32", "rope_multi.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("rope_multi_f16", "rope_multi.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("rope_multi_f16_rte", "rope_multi.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": "1"})

	r.spv("rope_vision_f32", "rope_vision.comp", map[string]string{"A_TYPE": "float", "D_TYPE": "float"})
	r.spv("rope_vision_f16", "rope_vision.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t"})
	r.spv("rope_vision_f16_rte", "rope_vision.comp", map[string]string{"A_TYPE": "float16_t", "D_TYPE": "float16_t", "RTE16": "1"})

	r.spv("argsort_f32", "argsort.comp", map[string]string{"A_TYPE": "float"})

	r.spv("argmax_f32", "argmax.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "int"}))
	r.spv("sum_rows_f32", "sum_rows.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))
	r.spv("count_equal_i32", "count_equal.comp", mergeDefines(base, map[string]string{"A_TYPE": "int", "B_TYPE": "int", "D_TYPE": "int"}))

	r.spv("im2col_f32", "im2col.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))
	r.spv("im2col_f32_f16", "im2col.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t"}))
	r.spv("im2col_f32_f16_rte", "im2col.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t", "RTE16": "1"}))

	r.spv("im2col_3d_f32", "im2col_3d.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))
	r.spv("im2col_3d_f32_f16", "im2col_3d.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t"}))
	r.spv("im2col_3d_f32_f16_rte", "im2col_3d.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float16_t", "RTE16": "1"}))

	r.spv("timestep_embedding_f32", "timestep_embedding.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))

	r.spv("conv_transpose_1d_f32", "conv_transpose_1d.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"})

	r.spv("pool2d_f32", "pool2d.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))

	r.spv("rwkv_wkv6_f32", "wkv6.comp", mergeDefines(base, map[string]string{"A_TYPE": "float"}))

	r.spv("rwkv_wkv7_f32", "wkv7.comp", mergeDefines(base, map[string]string{"A_TYPE": "float"}))

	r.spv("opt_step_adamw_f32", "opt_step_adamw.comp", mergeDefines(base, map[string]string{"A_TYPE": "float"}))
	r.spv("opt_step_sgd_f32", "opt_step_sgd.comp", mergeDefines(base, map[string]string{"A_TYPE": "float"}))

	// conv2d
	r.spv("conv2d_f32_unroll", "conv2d_mm.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": "[[unroll]]"})
	r.spv("conv2d_f16_f32_unroll", "conv2d_mm.comp", map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": "[[unroll]]"})

	r.spv("conv2d_f32", "conv2d_mm.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": ""})
	r.spv("conv2d_f16_f32", "conv2d_mm.comp", map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": ""})

	if r.features.Coopmat2 {
		cm2 := flavor{fp16: true, coopmat2: true}
		r.add("conv2d_f32", "conv2d_mm.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": "[[unroll]]", "COOPMAT2": "1"}, cm2)
		r.add("conv2d_f16_f32", "conv2d_mm.comp", map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float", "D_TYPE": "float", "USE_COLLECTIVES": "1", "UNROLL": "[[unroll]]", "COOPMAT2": "1"}, cm2)
	}

	r.spv("conv2d_dw_whcn_f32", "conv2d_dw.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "WHCN": "1"}))
	r.spv("conv2d_dw_cwhn_f32", "conv2d_dw.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "CWHN": "1"}))
	r.spv("conv2d_dw_whcn_f16_f32", "conv2d_dw.comp", mergeDefines(base, map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float", "D_TYPE": "float", "WHCN": "1"}))
	r.spv("conv2d_dw_cwhn_f16_f32", "conv2d_dw.comp", mergeDefines(base, map[string]string{"A_TYPE": "float16_t", "B_TYPE": "float", "D_TYPE": "float", "CWHN": "1"}))

	r.spv("roll_f32", "roll.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "D_TYPE": "float"}))

	r.spv("add_id_f32", "add_id.comp", mergeDefines(base, map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float"}))

	r.spv("multi_add_f32", "multi_add.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float", "RTE16": "1", "ADD_RMS": "0"})
	r.spv("multi_add_rms_f32", "multi_add.comp", map[string]string{"A_TYPE": "float", "B_TYPE": "float", "D_TYPE": "float", "FLOAT_TYPE": "float", "RTE16": "1", "ADD_RMS": "1"})
}
