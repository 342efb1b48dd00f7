// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package serializer reads input documents and writes reports in multiple
// formats.
//
// # Supported Formats
//
// JSON:
//   - Read and write
//   - Standard encoding/json package
//
// YAML:
//   - Read and write
//   - gopkg.in/yaml.v3 package
//
// TOML:
//   - Read only
//   - github.com/pelletier/go-toml, decoded generically and mapped onto the
//     json field names of the target type
//
// Table:
//   - Write only
//   - Aligned columns for values implementing [Table], followed by the
//     lines of [Summarizer] when the value provides them
//
// Decoding is strict: unknown fields are an error, so a misspelled
// "protien" key fails loudly instead of silently reading as zero.
//
// # Usage - Decoding
//
// Load a document with the format taken from the extension:
//
//	tgt, err := serializer.FromFile[target.Target]("target.toml")
//	if err != nil {
//	    return err
//	}
//
// Read with a custom io.Reader:
//
//	r, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(doc))
//	if err != nil {
//	    return err
//	}
//	var ing nutrient.Ingredient
//	err = r.Deserialize(&ing)
//
// # Format Detection
//
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .toml → TOML
//   - Other → YAML (a superset of JSON)
//
// # Usage - Encoding
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, rep); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// [FromFile] returns structured errors: ErrCodeNotFound when the file cannot
// be opened and ErrCodeInvalidConfig when it cannot be decoded. Both carry
// the path in their context.
package serializer
