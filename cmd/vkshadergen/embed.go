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
	"sort"
	"strings"
)

// writeEmbedFiles emits the C++ header/source pair that exposes each
// compiled shader by symbol. In embed mode the source defines the byte
// arrays read from disk; in stub mode both files only reference the
// binaries by filename. Symbols are emitted in lexicographic name order
// regardless of registration order.
func writeEmbedFiles(targetHpp, targetCpp, outputDir string, variants []VariantSpec, noEmbed bool, features Features) error {
	sorted := make([]VariantSpec, len(variants))
	copy(sorted, variants)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var hdr, src strings.Builder

	hdr.WriteString("#include <cstdint>\n\n")
	fmt.Fprintf(&src, "#include \"%s\"\n\n", filepath.Base(targetHpp))

	if noEmbed {
		fmt.Fprintf(&hdr, "#define GGML_VK_SHADER_DIR \"%s\"\n\n", filepath.ToSlash(outputDir))
	}

	for _, v := range sorted {
		if noEmbed {
			fmt.Fprintf(&hdr, "inline constexpr char const * %s_data = \"%s\";\n", v.Name, filepath.Base(v.OutputPath))
			fmt.Fprintf(&hdr, "const uint64_t %s_len = 0;\n\n", v.Name)
			continue
		}

		data := readBinaryFile(v.OutputPath, false)
		if len(data) == 0 {
			// Missing binaries are skipped rather than fatal so a partial
			// shader rebuild can still regenerate the artifacts.
			continue
		}

		fmt.Fprintf(&hdr, "extern const unsigned char %s_data[%d];\n", v.Name, len(data))
		fmt.Fprintf(&hdr, "const uint64_t %s_len = %d;\n\n", v.Name, len(data))

		fmt.Fprintf(&src, "const unsigned char %s_data[%d] = {\n", v.Name, len(data))
		for i, b := range data {
			fmt.Fprintf(&src, "0x%x,", b)
			if (i+1)%12 == 0 {
				src.WriteByte('\n')
			}
		}
		src.WriteString("\n};\n\n")
	}

	writeBinaryOpTables(&hdr, &src)
	writeDequantMatVecTables(&hdr, &src, features)

	if err := writeFileIfChanged(targetHpp, []byte(hdr.String())); err != nil {
		return fmt.Errorf("write %s: %w", targetHpp, err)
	}
	if noEmbed {
		if err := writeFileIfChanged(targetCpp, []byte(src.String())); err != nil {
			return fmt.Errorf("write %s: %w", targetCpp, err)
		}
		return nil
	}
	// The embed-mode source is huge and its inputs changed whenever this
	// runs, so skip the comparison and write unconditionally.
	if err := os.WriteFile(targetCpp, []byte(src.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", targetCpp, err)
	}
	return nil
}

// writeBinaryOpTables emits, per element-wise binary op, the nested
// [2][2][2][2] tables indexed by (src0 half, src1 half, dst half, rte)
// whose cells reference the per-variant _data and _len symbols.
func writeBinaryOpTables(hdr, src *strings.Builder) {
	suffixes := [2]string{"_f32", "_f16"}
	for _, op := range []string{"add", "sub", "mul", "div", "add_rms"} {
		fmt.Fprintf(hdr, "extern const void * %s_data[2][2][2][2];\n", op)
		fmt.Fprintf(hdr, "extern const uint64_t %s_len[2][2][2][2];\n", op)

		var data, length strings.Builder
		fmt.Fprintf(&data, "const void * %s_data[2][2][2][2] = {", op)
		fmt.Fprintf(&length, "const uint64_t %s_len[2][2][2][2] = {", op)
		for t0 := 0; t0 < 2; t0++ {
			data.WriteString("{")
			length.WriteString("{")
			for t1 := 0; t1 < 2; t1++ {
				data.WriteString("{")
				length.WriteString("{")
				for t2 := 0; t2 < 2; t2++ {
					data.WriteString("{")
					length.WriteString("{")
					for rte := 0; rte < 2; rte++ {
						name := op + suffixes[t0] + suffixes[t1] + suffixes[t2]
						if rte != 0 {
							name += "_rte"
						}
						data.WriteString(name + "_data,")
						length.WriteString(name + "_len,")
					}
					data.WriteString("}, ")
					length.WriteString("}, ")
				}
				data.WriteString("}, ")
				length.WriteString("}, ")
			}
			data.WriteString("}, ")
			length.WriteString("}, ")
		}
		data.WriteString("};\n")
		length.WriteString("};\n")

		src.WriteString(data.String())
		src.WriteString(length.String())
	}
}

// writeDequantMatVecTables emits the length-3 lookup tables referencing
// the base, subgroup, and subgroup-no-shared-memory mul_mat_vec variants
// per (type, b-type).
func writeDequantMatVecTables(hdr, src *strings.Builder, features Features) {
	btypes := []string{"f16", "f32"}
	if features.IntegerDot {
		btypes = append(btypes, "q8_1")
	}

	for _, btype := range btypes {
		for _, tname := range typeNames {
			if btype == "q8_1" && !isLegacyQuant(tname) {
				continue
			}
			fmt.Fprintf(hdr, "extern const void * arr_dmmv_%s_%s_f32_data[3];\n", tname, btype)
			fmt.Fprintf(hdr, "extern const uint64_t arr_dmmv_%s_%s_f32_len[3];\n", tname, btype)

			prefix := fmt.Sprintf("mul_mat_vec_%s_%s_f32", tname, btype)
			fmt.Fprintf(src, "const void * arr_dmmv_%s_%s_f32_data[3] = {%s_data, %s_subgroup_data, %s_subgroup_no_shmem_data};\n",
				tname, btype, prefix, prefix, prefix)
			fmt.Fprintf(src, "const uint64_t arr_dmmv_%s_%s_f32_len[3] = {%s_len, %s_subgroup_len, %s_subgroup_no_shmem_len};\n",
				tname, btype, prefix, prefix, prefix)
		}
	}
}
