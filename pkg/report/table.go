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


package report

import (
	"fmt"
	"strconv"

	"github.com/natural-bodybuilder/macromix/pkg/projection"
)

// Columns names the table columns. Mix reports list the mixture, inspect
// reports list the ingredient documents.
func (r *Report) Columns() []string {
	if r.Mixture == nil {
		return []string{"ingredient", "g", "kcal", "carb", "fat", "protein"}
	}
	return []string{"ingredient", "pieces", "kcal", "g", "amount"}
}

// Rows returns one row per ingredient in catalog order.
func (r *Report) Rows() [][]string {
	if r.Mixture == nil {
		rows := make([][]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			rows = append(rows, []string{
				ing.Name,
				number(ing.Grams),
				number(ing.Kcal),
				number(ing.Carb),
				number(ing.Fat),
				number(ing.Protein),
			})
		}
		return rows
	}

	unit := r.displayUnit()
	rows := make([][]string, 0, len(r.Mixture.Items))
	for _, it := range r.Mixture.Items {
		rows = append(rows, []string{
			it.Name,
			strconv.Itoa(it.Pieces),
			fmt.Sprintf("%.0f", it.Kcal),
			strconv.Itoa(it.Grams),
			projection.Format(float64(it.Grams), unit),
		})
	}
	return rows
}

// Summary returns the lines printed below the table.
func (r *Report) Summary() []string {
	t := r.NormalizedTarget
	lines := []string{
		fmt.Sprintf("target: %d kcal at %s", r.Target.Kcal, ratio(t.Carb, t.Fat, t.Protein)),
	}
	if m := r.Mixture; m != nil {
		lines = append(lines, fmt.Sprintf("macros: %.0fg carb, %.0fg fat, %.0fg protein in %.0f kcal (%d:%d:%d)",
			m.Carb, m.Fat, m.Protein, m.Kcal, m.CarbPercent, m.FatPercent, m.ProteinPercent))
	}
	if r.Search != nil {
		lines = append(lines, fmt.Sprintf("cost: %.6g after %d evaluations", r.Search.Cost, r.Search.Evaluations))
	}
	return lines
}

func (r *Report) displayUnit() projection.Unit {
	if r.Unit == "" {
		return projection.UnitGram
	}
	return r.Unit
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
