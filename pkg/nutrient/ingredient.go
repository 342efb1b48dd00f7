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

package nutrient

import (
	"fmt"
	"math"
	"strings"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// Ingredient is a raw food record: a reference amount in grams, the kcal it
// provides and the grams of each macro-nutrient it contains.
type Ingredient struct {
	Name    string  `json:"name" yaml:"name"`
	Grams   float64 `json:"g" yaml:"g"`
	Kcal    float64 `json:"kcal" yaml:"kcal"`
	Carb    float64 `json:"carb" yaml:"carb"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Protein float64 `json:"protein" yaml:"protein"`
}

// Macros holds carbohydrate, fat and protein amounts. For a normalized
// ingredient the values are grams per kcal.
type Macros struct {
	Carb    float64 `json:"carb" yaml:"carb"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Protein float64 `json:"protein" yaml:"protein"`
}

// Sum returns Carb + Fat + Protein.
func (m Macros) Sum() float64 {
	return m.Carb + m.Fat + m.Protein
}

// Ratio scales m so its components sum to 1. It returns false when the sum
// is not positive, in which case no ratio is defined.
func (m Macros) Ratio() (Macros, bool) {
	sum := m.Sum()
	if !(sum > 0) || math.IsInf(sum, 0) {
		return Macros{}, false
	}
	return Macros{
		Carb:    m.Carb / sum,
		Fat:     m.Fat / sum,
		Protein: m.Protein / sum,
	}, true
}

// Validate checks the invariants of a loaded ingredient.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "ingredient name is required")
	}

	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"g", i.Grams, true},
		{"kcal", i.Kcal, true},
		{"carb", i.Carb, false},
		{"fat", i.Fat, false},
		{"protein", i.Protein, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalidField(i.Name, f.name, f.value, "must be a finite number")
		}
		if f.positive && f.value <= 0 {
			return invalidField(i.Name, f.name, f.value, "must be greater than zero")
		}
		if f.value < 0 {
			return invalidField(i.Name, f.name, f.value, "cannot be negative")
		}
	}
	return nil
}

func invalidField(ingredient, field string, value float64, reason string) error {
	return errors.NewWithContext(errors.ErrCodeInvalidConfig,
		fmt.Sprintf("ingredient %q: field %q %s", ingredient, field, reason),
		map[string]any{"ingredient": ingredient, "field": field, "value": value})
}

// Normalize converts the ingredient into per-kcal macro densities
// (carb_g/kcal, fat_g/kcal, protein_g/kcal). A non-positive kcal is rejected.
func Normalize(i Ingredient) (Macros, error) {
	if !(i.Kcal > 0) {
		return Macros{}, invalidField(i.Name, "kcal", i.Kcal, "must be greater than zero")
	}
	return Macros{
		Carb:    i.Carb / i.Kcal,
		Fat:     i.Fat / i.Kcal,
		Protein: i.Protein / i.Kcal,
	}, nil
}

// KcalPerGram returns the energy density of the ingredient.
func (i Ingredient) KcalPerGram() float64 {
	return i.Kcal / i.Grams
}

// GramsPerKcal returns the inverse energy density of the ingredient.
func (i Ingredient) GramsPerKcal() float64 {
	return i.Grams / i.Kcal
}
