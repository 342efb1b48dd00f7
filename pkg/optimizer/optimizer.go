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

package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/defaults"
	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/proposal"
	"github.com/natural-bodybuilder/macromix/pkg/target"
)

// Optimizer allocates kcal pieces to ingredients one at a time, always
// picking the ingredient that brings the mix closest to the target ratio.
type Optimizer struct {
	// Steps is the number of pieces the target kcal is divided into.
	Steps int

	// Parallelism bounds the number of goroutines scoring trials within one
	// iteration. Values below 2 score trials sequentially.
	Parallelism int
}

// Option is a functional option for configuring Optimizer instances.
type Option func(*Optimizer)

// WithSteps returns an Option that sets the number of optimization steps.
func WithSteps(steps int) Option {
	return func(o *Optimizer) {
		o.Steps = steps
	}
}

// WithParallelism returns an Option that sets the trial concurrency.
func WithParallelism(n int) Option {
	return func(o *Optimizer) {
		o.Parallelism = n
	}
}

// New creates a new Optimizer with the provided options.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		Steps:       defaults.OptimizationSteps,
		Parallelism: defaults.Parallelism,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result is the outcome of a search.
type Result struct {
	// Proposal is the winning allocation.
	Proposal *proposal.Proposal `json:"proposal" yaml:"proposal"`

	// Cost is the squared error of the proposal against the target.
	Cost float64 `json:"cost" yaml:"cost"`

	// Steps is the total number of pieces.
	Steps int `json:"steps" yaml:"steps"`

	// Assigned is the number of pieces fixed by constraints.
	Assigned int `json:"assigned" yaml:"assigned"`

	// Iterations is the number of greedy selections made.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Evaluations is the number of trial mixes scored.
	Evaluations int `json:"evaluations" yaml:"evaluations"`

	// Duration is the wall time of the search.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Optimize runs the greedy search for the target over the catalog. The
// constraints may be nil. Ties between equal costs go to the ingredient that
// comes first in catalog order, so repeated runs return the same proposal
// regardless of Parallelism.
func (o *Optimizer) Optimize(ctx context.Context, t target.Normalized, c *constraint.Constraints, catalog *nutrient.Catalog) (*Result, error) {
	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
	}()

	res, err := o.optimize(ctx, t, c, catalog)
	searchTotal.WithLabelValues(resultLabel(ctx, err)).Inc()
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	searchCost.Set(res.Cost)
	slog.Debug("search complete",
		slog.Int("steps", res.Steps),
		slog.Int("assigned", res.Assigned),
		slog.Int("evaluations", res.Evaluations),
		slog.Float64("cost", res.Cost),
		slog.Duration("duration", res.Duration))
	return res, nil
}

func (o *Optimizer) optimize(ctx context.Context, t target.Normalized, c *constraint.Constraints, catalog *nutrient.Catalog) (*Result, error) {
	if o.Steps <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("optimization steps must be greater than zero, got %d", o.Steps),
			map[string]any{"steps": o.Steps})
	}
	if c == nil {
		c = constraint.None()
	}

	b, err := newBounds(c, catalog)
	if err != nil {
		return nil, err
	}

	p := proposal.New(catalog)
	assigned := 0
	for _, set := range []constraint.Set{c.AtLeast, c.Exact} {
		for _, name := range set.Names() {
			i, _ := catalog.Index(name)
			p.Set(i, set[name])
			assigned += set[name]
		}
	}

	if assigned > o.Steps {
		return nil, errors.NewWithContext(errors.ErrCodeConstraintsOverBudget,
			fmt.Sprintf("over-budget constraints: %d pieces assigned but only %d available", assigned, o.Steps),
			map[string]any{"assigned": assigned, "steps": o.Steps})
	}

	slog.Debug("starting search",
		slog.Int("ingredients", catalog.Len()),
		slog.Int("steps", o.Steps),
		slog.Int("assigned", assigned),
		slog.Int("parallelism", o.Parallelism))

	res := &Result{Steps: o.Steps, Assigned: assigned}
	costs := make([]float64, catalog.Len())
	eligible := make([]int, 0, catalog.Len())

	for iter := 0; iter < o.Steps-assigned; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		eligible = b.eligible(p, eligible[:0])
		if len(eligible) == 0 {
			return nil, errors.NewWithContext(errors.ErrCodeSearchStarved,
				fmt.Sprintf("search starved: no ingredient can take piece %d of %d", assigned+iter+1, o.Steps),
				map[string]any{"iteration": iter, "assigned": assigned, "steps": o.Steps})
		}

		if err := o.score(t, p, eligible, costs); err != nil {
			return nil, err
		}
		res.Evaluations += len(eligible)
		trialEvaluations.Add(float64(len(eligible)))

		p.Add(best(eligible, costs), 1)
		res.Iterations++
	}

	res.Proposal = p
	res.Cost = t.Evaluate(p)
	return res, nil
}

// score fills costs[i] for every eligible index i. With Parallelism above
// one the eligible indices are split into contiguous chunks scored
// concurrently against the unchanged base proposal.
func (o *Optimizer) score(t target.Normalized, p *proposal.Proposal, eligible []int, costs []float64) error {
	workers := o.Parallelism
	if workers > len(eligible) {
		workers = len(eligible)
	}
	if workers < 2 {
		for _, i := range eligible {
			costs[i] = t.EvaluateTrial(p, i)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (len(eligible) + workers - 1) / workers
	for lo := 0; lo < len(eligible); lo += chunk {
		part := eligible[lo:min(lo+chunk, len(eligible))]
		g.Go(func() error {
			for _, i := range part {
				costs[i] = t.EvaluateTrial(p, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to score trials", err)
	}
	return nil
}

// best returns the eligible index with the strictly lowest cost. Eligible
// indices are in catalog order, so the first of equal costs wins.
func best(eligible []int, costs []float64) int {
	winner := eligible[0]
	for _, i := range eligible[1:] {
		if costs[i] < costs[winner] {
			winner = i
		}
	}
	return winner
}

func resultLabel(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case ctx.Err() != nil:
		return resultCanceled
	case errors.HasCode(err, errors.ErrCodeConstraintsOverBudget):
		return resultOverBudget
	case errors.HasCode(err, errors.ErrCodeSearchStarved):
		return resultStarved
	default:
		return resultError
	}
}
