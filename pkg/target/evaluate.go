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
	"math"

	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/proposal"
)

// WorstCost is the cost of a mix that has no macro ratio. It is finite so
// that results stay encodable as JSON.
const WorstCost = math.MaxFloat64

// Normalized is a target ratio with each macro expressed as a fraction.
type Normalized struct {
	Carb    float64 `json:"carb" yaml:"carb"`
	Fat     float64 `json:"fat" yaml:"fat"`
	Protein float64 `json:"protein" yaml:"protein"`
}

// Cost rescales mix so its macros sum to 1 and returns the sum of squared
// differences to the target fractions. Lower is better.
func (n Normalized) Cost(mix nutrient.Macros) float64 {
	r, ok := mix.Ratio()
	if !ok {
		return WorstCost
	}
	return square(n.Carb-r.Carb) + square(n.Fat-r.Fat) + square(n.Protein-r.Protein)
}

// Evaluate returns the cost of the proposal's current mix. A proposal
// without pieces scores WorstCost.
func (n Normalized) Evaluate(p *proposal.Proposal) float64 {
	mix, err := p.Mix()
	if err != nil {
		return WorstCost
	}
	return n.Cost(mix)
}

// EvaluateTrial returns the cost the proposal would have with one more
// piece of the ingredient at catalog position i.
func (n Normalized) EvaluateTrial(p *proposal.Proposal, i int) float64 {
	mix, err := p.MixWith(i, 1)
	if err != nil {
		return WorstCost
	}
	return n.Cost(mix)
}

func square(x float64) float64 {
	return x * x
}
