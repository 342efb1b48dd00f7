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

package proposal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
)

// Proposal is a candidate mixture expressed as a number of kcal pieces per
// catalog ingredient. The count vector is aligned with the catalog order and
// always holds an entry for every ingredient.
type Proposal struct {
	catalog *nutrient.Catalog
	counts  []int
}

// New returns a proposal with zero pieces for every catalog ingredient.
func New(catalog *nutrient.Catalog) *Proposal {
	return &Proposal{
		catalog: catalog,
		counts:  make([]int, catalog.Len()),
	}
}

// FromCounts builds a proposal from a name keyed count map. Ingredients not
// present in the map are zero; unknown names and negative counts fail.
func FromCounts(catalog *nutrient.Catalog, counts map[string]int) (*Proposal, error) {
	p := New(catalog)
	for name, n := range counts {
		i, ok := catalog.Index(name)
		if !ok {
			return nil, errors.NewWithContext(errors.ErrCodeUnknownIngredient,
				fmt.Sprintf("unknown ingredient %q", name),
				map[string]any{"ingredient": name})
		}
		if n < 0 {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
				fmt.Sprintf("negative piece count %d for ingredient %q", n, name),
				map[string]any{"ingredient": name, "pieces": n})
		}
		p.counts[i] = n
	}
	return p, nil
}

// Catalog returns the catalog the proposal is aligned with.
func (p *Proposal) Catalog() *nutrient.Catalog {
	return p.catalog
}

// Len returns the number of ingredients in the proposal.
func (p *Proposal) Len() int {
	return len(p.counts)
}

// CountAt returns the pieces at catalog position i.
func (p *Proposal) CountAt(i int) int {
	return p.counts[i]
}

// Count returns the pieces of the named ingredient, zero if unknown.
func (p *Proposal) Count(name string) int {
	i, ok := p.catalog.Index(name)
	if !ok {
		return 0
	}
	return p.counts[i]
}

// Add adds delta pieces to the ingredient at catalog position i.
func (p *Proposal) Add(i, delta int) {
	p.counts[i] += delta
}

// Set overwrites the pieces of the ingredient at catalog position i.
func (p *Proposal) Set(i, n int) {
	p.counts[i] = n
}

// Kcal returns the total number of pieces.
func (p *Proposal) Kcal() int {
	total := 0
	for _, n := range p.counts {
		total += n
	}
	return total
}

// Clone returns a deep copy of the proposal.
func (p *Proposal) Clone() *Proposal {
	counts := make([]int, len(p.counts))
	copy(counts, p.counts)
	return &Proposal{catalog: p.catalog, counts: counts}
}

// Equal reports whether both proposals assign the same pieces to the same
// ingredient names.
func (p *Proposal) Equal(other *Proposal) bool {
	if p == nil || other == nil {
		return p == other
	}
	a, b := p.Counts(), other.Counts()
	if len(a) != len(b) {
		return false
	}
	for name, n := range a {
		if m, ok := b[name]; !ok || m != n {
			return false
		}
	}
	return true
}

// Counts returns the name keyed piece counts, zero entries included.
func (p *Proposal) Counts() map[string]int {
	out := make(map[string]int, len(p.counts))
	for i, n := range p.counts {
		out[p.catalog.Ingredient(i).Name] = n
	}
	return out
}

// Mix returns the piece weighted average of the normalized ingredient
// macros. A proposal without pieces has no mix.
func (p *Proposal) Mix() (nutrient.Macros, error) {
	return p.mix(-1, 0)
}

// MixWith returns the mix the proposal would have with delta extra pieces on
// the ingredient at catalog position i. The proposal is not modified.
func (p *Proposal) MixWith(i, delta int) (nutrient.Macros, error) {
	return p.mix(i, delta)
}

func (p *Proposal) mix(at, delta int) (nutrient.Macros, error) {
	var sum nutrient.Macros
	total := 0
	for i, n := range p.counts {
		if i == at {
			n += delta
		}
		if n == 0 {
			continue
		}
		m := p.catalog.Normalized(i)
		w := float64(n)
		sum.Carb += m.Carb * w
		sum.Fat += m.Fat * w
		sum.Protein += m.Protein * w
		total += n
	}
	if total <= 0 {
		return nutrient.Macros{}, errors.New(errors.ErrCodeDegenerateProposal,
			"proposal has no pieces to mix")
	}
	t := float64(total)
	return nutrient.Macros{
		Carb:    sum.Carb / t,
		Fat:     sum.Fat / t,
		Protein: sum.Protein / t,
	}, nil
}

// String renders the proposal as name=count pairs in catalog order.
func (p *Proposal) String() string {
	parts := make([]string, len(p.counts))
	for i, n := range p.counts {
		parts[i] = fmt.Sprintf("%s=%d", p.catalog.Ingredient(i).Name, n)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON serializes the proposal as a name to count object.
func (p *Proposal) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Counts())
}

// MarshalYAML serializes the proposal as a name to count mapping.
func (p *Proposal) MarshalYAML() (any, error) {
	return p.Counts(), nil
}

// Entry is a single ingredient allocation.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Pieces int    `json:"pieces" yaml:"pieces"`
}

// Entries returns the allocations in catalog order. When nonZero is set,
// ingredients without pieces are skipped.
func (p *Proposal) Entries(nonZero bool) []Entry {
	out := make([]Entry, 0, len(p.counts))
	for i, n := range p.counts {
		if nonZero && n == 0 {
			continue
		}
		out = append(out, Entry{Name: p.catalog.Ingredient(i).Name, Pieces: n})
	}
	return out
}
