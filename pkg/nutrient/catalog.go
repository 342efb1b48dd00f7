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
	"sort"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// Catalog is the immutable set of known ingredients, ordered by name.
// The order is the iteration order of every component, which keeps the
// greedy search reproducible.
type Catalog struct {
	ingredients []Ingredient
	normalized  []Macros
	index       map[string]int
}

// NewCatalog validates and normalizes the ingredients and returns them as a
// Catalog sorted by name. Duplicate names are rejected.
func NewCatalog(ingredients ...Ingredient) (*Catalog, error) {
	sorted := make([]Ingredient, len(ingredients))
	copy(sorted, ingredients)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Name < sorted[b].Name
	})

	c := &Catalog{
		ingredients: sorted,
		normalized:  make([]Macros, len(sorted)),
		index:       make(map[string]int, len(sorted)),
	}

	for i, ing := range sorted {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[ing.Name]; dup {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("duplicate ingredient %q", ing.Name),
				map[string]any{"ingredient": ing.Name})
		}
		m, err := Normalize(ing)
		if err != nil {
			return nil, err
		}
		c.index[ing.Name] = i
		c.normalized[i] = m
	}

	return c, nil
}

// Len returns the number of ingredients.
func (c *Catalog) Len() int {
	return len(c.ingredients)
}

// Names returns the ingredient names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.ingredients))
	for i, ing := range c.ingredients {
		names[i] = ing.Name
	}
	return names
}

// Index returns the position of the named ingredient.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

// Ingredient returns the raw ingredient at position i.
func (c *Catalog) Ingredient(i int) Ingredient {
	return c.ingredients[i]
}

// Normalized returns the per-kcal macros of the ingredient at position i.
func (c *Catalog) Normalized(i int) Macros {
	return c.normalized[i]
}

// Lookup returns the named raw ingredient.
func (c *Catalog) Lookup(name string) (Ingredient, bool) {
	i, ok := c.index[name]
	if !ok {
		return Ingredient{}, false
	}
	return c.ingredients[i], true
}

// NormalizedByName returns a name keyed copy of all normalized macros.
func (c *Catalog) NormalizedByName() map[string]Macros {
	out := make(map[string]Macros, len(c.ingredients))
	for i, ing := range c.ingredients {
		out[ing.Name] = c.normalized[i]
	}
	return out
}
