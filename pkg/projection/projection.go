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

package projection

import (
	"fmt"
	"math"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/proposal"
)

// Item is the amount of one ingredient in a mixture.
type Item struct {
	Name   string  `json:"name" yaml:"name"`
	Pieces int     `json:"pieces" yaml:"pieces"`
	Kcal   float64 `json:"kcal" yaml:"kcal"`
	Grams  int     `json:"g" yaml:"g"`
}

// Mixture is a proposal scaled to the target kcal and expressed in grams,
// together with the macro-nutrients the rounded gram amounts contain.
type Mixture struct {
	// TargetKcal is the kcal goal the pieces were scaled to.
	TargetKcal int `json:"target_kcal" yaml:"target_kcal"`

	// Kcal is the energy of the rounded gram amounts.
	Kcal float64 `json:"kcal" yaml:"kcal"`

	// Items lists every ingredient in catalog order.
	Items []Item `json:"items" yaml:"items"`

	// Carb, Fat and Protein are the achieved macro grams.
	Carb    float64 `json:"carb" yaml:"carb"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Protein float64 `json:"protein" yaml:"protein"`

	// Percentages of each macro relative to their sum, rounded.
	CarbPercent    int `json:"carb_percent" yaml:"carb_percent"`
	FatPercent     int `json:"fat_percent" yaml:"fat_percent"`
	ProteinPercent int `json:"protein_percent" yaml:"protein_percent"`
}

// Grams returns the name keyed gram amounts.
func (m *Mixture) Grams() map[string]int {
	out := make(map[string]int, len(m.Items))
	for _, it := range m.Items {
		out[it.Name] = it.Grams
	}
	return out
}

// Project converts the piece counts of p into grams for a target of
// targetKcal. Each ingredient receives pieces * targetKcal / p.Kcal() kcal,
// which is converted to grams with the ingredient's grams per kcal and
// rounded. The achieved macros are recomputed from the rounded grams.
func Project(p *proposal.Proposal, targetKcal int, catalog *nutrient.Catalog) (*Mixture, error) {
	total := p.Kcal()
	if total <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateProposal,
			"cannot project a proposal without pieces")
	}
	if targetKcal <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("target kcal must be greater than zero, got %d", targetKcal),
			map[string]any{"kcal": targetKcal})
	}

	kcalPerPiece := float64(targetKcal) / float64(total)
	m := &Mixture{
		TargetKcal: targetKcal,
		Items:      make([]Item, 0, catalog.Len()),
	}

	for i := 0; i < catalog.Len(); i++ {
		ing := catalog.Ingredient(i)
		n := p.Count(ing.Name)
		kcal := float64(n) * kcalPerPiece
		grams := int(math.Round(kcal * ing.GramsPerKcal()))
		m.Items = append(m.Items, Item{Name: ing.Name, Pieces: n, Kcal: kcal, Grams: grams})

		factor := float64(grams) / ing.Grams
		m.Carb += factor * ing.Carb
		m.Fat += factor * ing.Fat
		m.Protein += factor * ing.Protein
		m.Kcal += factor * ing.Kcal
	}

	if sum := m.Carb + m.Fat + m.Protein; sum > 0 {
		m.CarbPercent = int(math.Round(100 * m.Carb / sum))
		m.FatPercent = int(math.Round(100 * m.Fat / sum))
		m.ProteinPercent = int(math.Round(100 * m.Protein / sum))
	}
	return m, nil
}
