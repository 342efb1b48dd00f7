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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// Test data structures
type testIngredient struct {
	Name string  `json:"name" yaml:"name"`
	Kcal float64 `json:"kcal" yaml:"kcal"`
	Carb float64 `json:"carb,omitempty" yaml:"carb,omitempty"`
}

type testEntry struct {
	Name  string  `json:"name" yaml:"name"`
	Grams float64 `json:"g" yaml:"g"`
}

type testTarget struct {
	Kcal    int         `json:"kcal" yaml:"kcal"`
	Entries []testEntry `json:"constraint_exact,omitempty" yaml:"constraint_exact,omitempty"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{name: "json lowercase", path: "oats.json", expected: FormatJSON},
		{name: "json uppercase", path: "OATS.JSON", expected: FormatJSON},
		{name: "yaml extension", path: "oats.yaml", expected: FormatYAML},
		{name: "yml extension", path: "oats.yml", expected: FormatYAML},
		{name: "toml extension", path: "target.toml", expected: FormatTOML},
		{name: "toml uppercase", path: "TARGET.TOML", expected: FormatTOML},
		{name: "table extension", path: "report.table", expected: FormatTable},
		{name: "txt extension", path: "report.txt", expected: FormatTable},
		{name: "unknown extension defaults to yaml", path: "oats.conf", expected: FormatYAML},
		{name: "no extension", path: "oats", expected: FormatYAML},
		{name: "path with directories", path: "/data/food/oats.toml", expected: FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{name: "json", format: FormatJSON},
		{name: "yaml", format: FormatYAML},
		{name: "toml", format: FormatTOML},
		{name: "table is write-only", format: FormatTable, wantErr: true},
		{name: "unknown", format: Format("xml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader("{}"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Error("expected non-nil reader")
			}
		})
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		want    testTarget
		wantErr bool
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"kcal": 2500, "constraint_exact": [{"name": "oats", "g": 80}]}`,
			want:   testTarget{Kcal: 2500, Entries: []testEntry{{Name: "oats", Grams: 80}}},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "kcal: 2500\nconstraint_exact:\n  - name: oats\n    g: 80\n",
			want:   testTarget{Kcal: 2500, Entries: []testEntry{{Name: "oats", Grams: 80}}},
		},
		{
			name:   "yaml accepts json",
			format: FormatYAML,
			input:  `{"kcal": 1800}`,
			want:   testTarget{Kcal: 1800},
		},
		{
			name:   "toml with integer grams",
			format: FormatTOML,
			input:  "kcal = 2500\n\n[[constraint_exact]]\nname = \"oats\"\ng = 80\n",
			want:   testTarget{Kcal: 2500, Entries: []testEntry{{Name: "oats", Grams: 80}}},
		},
		{
			name:   "toml with float grams",
			format: FormatTOML,
			input:  "kcal = 2000\nconstraint_exact = [{name = \"milk\", g = 250.5}]\n",
			want:   testTarget{Kcal: 2000, Entries: []testEntry{{Name: "milk", Grams: 250.5}}},
		},
		{name: "json unknown field", format: FormatJSON, input: `{"kcal": 1, "sugar": 2}`, wantErr: true},
		{name: "yaml unknown field", format: FormatYAML, input: "kcal: 1\nsugar: 2\n", wantErr: true},
		{name: "toml unknown field", format: FormatTOML, input: "kcal = 1\nsugar = 2\n", wantErr: true},
		{name: "json malformed", format: FormatJSON, input: `{"kcal": `, wantErr: true},
		{name: "yaml wrong type", format: FormatYAML, input: "kcal: lots\n", wantErr: true},
		{name: "toml malformed", format: FormatTOML, input: "kcal = = 1\n", wantErr: true},
		{name: "json empty", format: FormatJSON, input: "", wantErr: true},
		{name: "yaml empty", format: FormatYAML, input: "", wantErr: true},
		{name: "toml empty", format: FormatTOML, input: "  \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var got testTarget
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Kcal != tt.want.Kcal || len(got.Entries) != len(tt.want.Entries) {
				t.Fatalf("Deserialize() = %+v, want %+v", got, tt.want)
			}
			for i := range got.Entries {
				if got.Entries[i] != tt.want.Entries[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got.Entries[i], tt.want.Entries[i])
				}
			}
		})
	}
}

func TestReader_TOMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "wrong type",
			input: "kcal = \"lots\"\n",
			want:  []string{`key "kcal" at (1, 1)`, "cannot use a TOML string as int"},
		},
		{
			name:  "wrong nested type",
			input: "kcal = 10\n\n[[constraint_exact]]\nname = \"oats\"\ng = \"lots\"\n",
			want:  []string{`key "constraint_exact.g"`, "cannot use a TOML string as float64"},
		},
		{
			name:  "unknown key",
			input: "kcal = 1\nsugar = 2\n",
			want:  []string{`unknown key "sugar" at (2, 1)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(FormatTOML, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			err = r.Deserialize(&testTarget{})
			if err == nil {
				t.Fatal("expected an error")
			}
			msg := err.Error()
			for _, w := range tt.want {
				if !strings.Contains(msg, w) {
					t.Errorf("error %q does not contain %q", msg, w)
				}
			}
			if strings.Contains(msg, "json") {
				t.Errorf("error should not mention the JSON form: %q", msg)
			}
		})
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testTarget{}); err == nil {
		t.Error("expected error for nil reader")
	}

	r = &Reader{format: FormatJSON}
	if err := r.Deserialize(&testTarget{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestReader_Close(t *testing.T) {
	path := writeFile(t, "oats.json", `{"name": "oats", "kcal": 389}`)

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}

	var nilReader *Reader
	if err := nilReader.Close(); err != nil {
		t.Errorf("Close on nil reader should not error: %v", err)
	}
}

func TestFromFile_Success(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "oats.json", content: `{"name": "oats", "kcal": 389, "carb": 66.3}`},
		{name: "yaml", file: "oats.yaml", content: "name: oats\nkcal: 389\ncarb: 66.3\n"},
		{name: "toml", file: "oats.toml", content: "name = \"oats\"\nkcal = 389\ncarb = 66.3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			got, err := FromFile[testIngredient](path)
			if err != nil {
				t.Fatalf("FromFile failed: %v", err)
			}
			want := testIngredient{Name: "oats", Kcal: 389, Carb: 66.3}
			if *got != want {
				t.Errorf("FromFile() = %+v, want %+v", *got, want)
			}
		})
	}
}

func TestFromFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile[testIngredient](filepath.Join(t.TempDir(), "missing.yaml"))
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.HasCode(err, errors.ErrCodeNotFound) {
			t.Errorf("expected %s, got %v", errors.ErrCodeNotFound, err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") {
			t.Errorf("expected error to name the file, got %v", err)
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeFile(t, "broken.json", `{"name": `)
		_, err := FromFile[testIngredient](path)
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("expected %s, got %v", errors.ErrCodeInvalidConfig, err)
		}
		if !strings.Contains(err.Error(), "broken.json") {
			t.Errorf("expected error to name the file, got %v", err)
		}
	})

	t.Run("table extension is not readable", func(t *testing.T) {
		path := writeFile(t, "report.table", "FIELD VALUE")
		if _, err := FromFile[testIngredient](path); err == nil {
			t.Fatal("expected error")
		}
	})
}
