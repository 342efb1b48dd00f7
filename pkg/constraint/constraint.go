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

package constraint

import (
	"fmt"
	"math"
	"sort"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/target"
)

// Kind names one of the three constraint lists.
type Kind string

const (
	KindExact   Kind = "exact"
	KindAtLeast Kind = "at_least"
	KindAtMost  Kind = "at_most"
)

// Set maps ingredient names to a piece count. Presence is significant: an
// exact entry of zero keeps the ingredient out of the mixture.
type Set map[string]int

// Names returns the names in the set in ascending order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is constrained by the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Constraints are the target gram constraints converted to pieces.
type Constraints struct {
	Exact   Set `json:"exact,omitempty" yaml:"exact,omitempty"`
	AtLeast Set `json:"at_least,omitempty" yaml:"at_least,omitempty"`
	AtMost  Set `json:"at_most,omitempty" yaml:"at_most,omitempty"`
}

// None returns empty constraints.
func None() *Constraints {
	return &Constraints{Exact: Set{}, AtLeast: Set{}, AtMost: Set{}}
}

// Assigned returns the number of pieces the baseline fixes before the
// search starts: every at_least and every exact allocation.
func (c *Constraints) Assigned() int {
	total := 0
	for _, n := range c.AtLeast {
		total += n
	}
	for _, n := range c.Exact {
		total += n
	}
	return total
}

// Empty reports whether no ingredient is constrained.
func (c *Constraints) Empty() bool {
	return len(c.Exact) == 0 && len(c.AtLeast) == 0 && len(c.AtMost) == 0
}

// Pieces converts grams of an ingredient into the nearest number of kcal
// pieces for a search of the given steps over the target kcal.
func Pieces(grams float64, ing nutrient.Ingredient, targetKcal, steps int) int {
	piecesPerKcal := float64(steps) / float64(targetKcal)
	kcal := grams * ing.KcalPerGram()
	return int(math.Round(kcal * piecesPerKcal))
}

// Resolve converts the gram constraints of t into piece constraints for a
// search with the given number of steps.
func Resolve(t target.Target, catalog *nutrient.Catalog, steps int) (*Constraints, error) {
	if t.Kcal <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("target kcal must be greater than zero, got %d", t.Kcal),
			map[string]any{"field": "kcal", "value": t.Kcal})
	}
	if steps <= 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("optimization steps must be greater than zero, got %d", steps),
			map[string]any{"steps": steps})
	}

	c := None()
	lists := []struct {
		kind    Kind
		entries []target.Constraint
		into    Set
	}{
		{KindExact, t.ConstraintExact, c.Exact},
		{KindAtLeast, t.ConstraintAtLeast, c.AtLeast},
		{KindAtMost, t.ConstraintAtMost, c.AtMost},
	}

	for _, l := range lists {
		for _, e := range l.entries {
			n, err := resolveOne(l.kind, e, t, catalog, steps)
			if err != nil {
				return nil, err
			}
			if l.into.Has(e.Name) {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
					fmt.Sprintf("ingredient %q is listed more than once in constraint_%s", e.Name, l.kind),
					map[string]any{"ingredient": e.Name, "kind": string(l.kind)})
			}
			l.into[e.Name] = n
		}
	}

	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func resolveOne(kind Kind, e target.Constraint, t target.Target, catalog *nutrient.Catalog, steps int) (int, error) {
	ing, ok := catalog.Lookup(e.Name)
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownIngredient,
			fmt.Sprintf("missing constraint ingredient %q", e.Name),
			map[string]any{"ingredient": e.Name, "kind": string(kind)})
	}
	if math.IsNaN(e.Grams) || math.IsInf(e.Grams, 0) || e.Grams < 0 {
		return 0, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("constraint_%s for %q must be a non-negative amount of grams", kind, e.Name),
			map[string]any{"ingredient": e.Name, "kind": string(kind), "g": e.Grams})
	}
	return Pieces(e.Grams, ing, t.Kcal, steps), nil
}

func (c *Constraints) check() error {
	for _, name := range c.Exact.Names() {
		for _, other := range []struct {
			kind Kind
			set  Set
		}{
			{KindAtLeast, c.AtLeast},
			{KindAtMost, c.AtMost},
		} {
			if other.set.Has(name) {
				return errors.NewWithContext(errors.ErrCodeInvalidConfig,
					fmt.Sprintf("ingredient %q has both an exact and an %s constraint", name, other.kind),
					map[string]any{"ingredient": name, "kind": string(other.kind)})
			}
		}
	}

	for _, name := range c.AtLeast.Names() {
		ceiling, ok := c.AtMost[name]
		if !ok {
			continue
		}
		if floor := c.AtLeast[name]; floor > ceiling {
			return errors.NewWithContext(errors.ErrCodeConstraintsOverBudget,
				fmt.Sprintf("ingredient %q: at_least (%d pieces) exceeds at_most (%d pieces)", name, floor, ceiling),
				map[string]any{"ingredient": name, "at_least": floor, "at_most": ceiling})
		}
	}
	return nil
}
