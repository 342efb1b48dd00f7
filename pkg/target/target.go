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

package target

import (
	"fmt"
	"math"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// Constraint pins an ingredient to an amount in grams.
type Constraint struct {
	Name  string  `json:"name" yaml:"name"`
	Grams float64 `json:"g" yaml:"g"`
}

// Target is the caloric goal, the desired macro-nutrient percentages and
// optional gram constraints on specific ingredients.
type Target struct {
	Kcal    int     `json:"kcal" yaml:"kcal"`
	Carb    float64 `json:"carb" yaml:"carb"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Protein float64 `json:"protein" yaml:"protein"`

	ConstraintExact   []Constraint `json:"constraint_exact,omitempty" yaml:"constraint_exact,omitempty"`
	ConstraintAtLeast []Constraint `json:"constraint_at_least,omitempty" yaml:"constraint_at_least,omitempty"`
	ConstraintAtMost  []Constraint `json:"constraint_at_most,omitempty" yaml:"constraint_at_most,omitempty"`
}

// Validate checks the target invariants: a positive kcal goal and
// percentages between 0 and 100 that are not all zero.
func (t Target) Validate() error {
	if t.Kcal <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("target kcal must be greater than zero, got %d", t.Kcal),
			map[string]any{"field": "kcal", "value": t.Kcal})
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"carb", t.Carb},
		{"fat", t.Fat},
		{"protein", t.Protein},
	} {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 100 {
			return errors.NewWithContext(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("target %s must be a percentage between 0 and 100, got %v", f.name, f.value),
				map[string]any{"field": f.name, "value": f.value})
		}
	}

	if t.Carb+t.Fat+t.Protein == 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"target carb, fat and protein percentages are all zero")
	}
	return nil
}

// Normalize converts the percentages to fractions. The fractions are not
// rescaled, so percentages that do not add up to 100 are kept as given.
func (t Target) Normalize() Normalized {
	return Normalized{
		Carb:    t.Carb / 100,
		Fat:     t.Fat / 100,
		Protein: t.Protein / 100,
	}
}
