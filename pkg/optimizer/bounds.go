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
	"fmt"

	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/proposal"
)

const unbounded = -1

// bounds is the per-index view of the constraints used inside the loop.
type bounds struct {
	frozen  []bool
	ceiling []int
}

func newBounds(c *constraint.Constraints, catalog *nutrient.Catalog) (*bounds, error) {
	b := &bounds{
		frozen:  make([]bool, catalog.Len()),
		ceiling: make([]int, catalog.Len()),
	}
	for i := range b.ceiling {
		b.ceiling[i] = unbounded
	}

	for _, l := range []struct {
		kind constraint.Kind
		set  constraint.Set
	}{
		{constraint.KindExact, c.Exact},
		{constraint.KindAtLeast, c.AtLeast},
		{constraint.KindAtMost, c.AtMost},
	} {
		for _, name := range l.set.Names() {
			i, ok := catalog.Index(name)
			if !ok {
				return nil, errors.NewWithContext(errors.ErrCodeUnknownIngredient,
					fmt.Sprintf("missing constraint ingredient %q", name),
					map[string]any{"ingredient": name, "kind": string(l.kind)})
			}
			n := l.set[name]
			if n < 0 {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
					fmt.Sprintf("constraint_%s for %q has negative pieces %d", l.kind, name, n),
					map[string]any{"ingredient": name, "kind": string(l.kind), "pieces": n})
			}
			switch l.kind {
			case constraint.KindExact:
				b.frozen[i] = true
			case constraint.KindAtMost:
				b.ceiling[i] = n
			}
		}
	}
	return b, nil
}

// eligible appends to dst, in catalog order, every index that may receive
// another piece.
func (b *bounds) eligible(p *proposal.Proposal, dst []int) []int {
	for i := range b.frozen {
		if b.frozen[i] {
			continue
		}
		if c := b.ceiling[i]; c != unbounded && p.CountAt(i) >= c {
			continue
		}
		dst = append(dst, i)
	}
	return dst
}
