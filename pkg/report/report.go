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
	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/defaults"
	"github.com/natural-bodybuilder/macromix/pkg/header"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/optimizer"
	"github.com/natural-bodybuilder/macromix/pkg/projection"
	"github.com/natural-bodybuilder/macromix/pkg/target"
)

// Ingredient is a loaded ingredient and its per-kcal macro densities.
type Ingredient struct {
	nutrient.Ingredient `json:",inline" yaml:",inline"`

	// Normalized holds grams of each macro per kcal.
	Normalized nutrient.Macros `json:"normalized" yaml:"normalized"`
}

// Search summarizes the optimizer run.
type Search struct {
	Steps       int     `json:"steps" yaml:"steps"`
	Assigned    int     `json:"assigned" yaml:"assigned"`
	Iterations  int     `json:"iterations" yaml:"iterations"`
	Evaluations int     `json:"evaluations" yaml:"evaluations"`
	Cost        float64 `json:"cost" yaml:"cost"`
	Duration    string  `json:"duration" yaml:"duration"`
}

// Report is the document emitted by the mix and inspect commands.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Target is the target as loaded.
	Target target.Target `json:"target" yaml:"target"`

	// NormalizedTarget is the target ratio as fractions.
	NormalizedTarget target.Normalized `json:"normalizedTarget" yaml:"normalizedTarget"`

	// Ingredients lists the catalog in name order.
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`

	// Constraints are the gram constraints converted to pieces.
	Constraints *constraint.Constraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`

	// Search is set by mix reports.
	Search *Search `json:"search,omitempty" yaml:"search,omitempty"`

	// Proposal holds the winning piece count per ingredient.
	Proposal map[string]int `json:"proposal,omitempty" yaml:"proposal,omitempty"`

	// Mixture is the proposal in grams.
	Mixture *projection.Mixture `json:"mixture,omitempty" yaml:"mixture,omitempty"`

	// Unit is the display unit of Amounts.
	Unit projection.Unit `json:"unit,omitempty" yaml:"unit,omitempty"`

	// Amounts repeats the gram mixture in Unit when Unit is not grams.
	Amounts map[string]float64 `json:"amounts,omitempty" yaml:"amounts,omitempty"`
}

// Option is a functional option for configuring Report instances.
type Option func(*Report)

// WithConstraints returns an Option that records the resolved constraints.
func WithConstraints(c *constraint.Constraints) Option {
	return func(r *Report) {
		r.Constraints = c
	}
}

// WithResult returns an Option that records a search result and its
// projection.
func WithResult(res *optimizer.Result, m *projection.Mixture) Option {
	return func(r *Report) {
		r.Search = &Search{
			Steps:       res.Steps,
			Assigned:    res.Assigned,
			Iterations:  res.Iterations,
			Evaluations: res.Evaluations,
			Cost:        res.Cost,
			Duration:    res.Duration.String(),
		}
		r.Proposal = res.Proposal.Counts()
		r.Mixture = m
	}
}

// WithUnit returns an Option that sets the display unit. Amounts are filled
// when the report has a mixture and the unit is not grams.
func WithUnit(u projection.Unit) Option {
	return func(r *Report) {
		r.Unit = u
	}
}

// New creates a report of the given kind for the target and catalog.
func New(kind header.Kind, version string, t target.Target, catalog *nutrient.Catalog, opts ...Option) *Report {
	r := &Report{
		Target:           t,
		NormalizedTarget: t.Normalize(),
		Ingredients:      make([]Ingredient, 0, catalog.Len()),
	}
	r.Init(kind, defaults.APIVersion, version)

	for i := 0; i < catalog.Len(); i++ {
		r.Ingredients = append(r.Ingredients, Ingredient{
			Ingredient: catalog.Ingredient(i),
			Normalized: catalog.Normalized(i),
		})
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.Mixture != nil && r.Unit != "" && r.Unit != projection.UnitGram {
		r.Amounts = make(map[string]float64, len(r.Mixture.Items))
		for _, it := range r.Mixture.Items {
			r.Amounts[it.Name] = projection.Convert(float64(it.Grams), r.Unit)
		}
	}
	return r
}
