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
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/projection"
)

// WriteText renders the report in the human readable layout of the
// command line tool.
func WriteText(w io.Writer, r *Report) error {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	if r.Search != nil {
		b.WriteString("Starting search with\n")
	} else {
		b.WriteString("Inputs\n")
	}
	b.WriteString(p.Sprintf("\tTarget %s in %d kcal\n", ratio(r.NormalizedTarget.Carb, r.NormalizedTarget.Fat, r.NormalizedTarget.Protein), r.Target.Kcal))
	if r.Constraints != nil && !r.Constraints.Empty() {
		fmt.Fprintf(&b, "\tConstraints exact: %s, at least: %s, at most: %s\n",
			pieces(r.Constraints.Exact), pieces(r.Constraints.AtLeast), pieces(r.Constraints.AtMost))
	}
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "\tIngredient %s %s\n", ing.Name, macros(ing.Normalized))
	}

	if r.Search != nil {
		b.WriteString(p.Sprintf("\tFound %s with cost %.6g after %d evaluations\n",
			counts(r.Ingredients, r.Proposal), r.Search.Cost, r.Search.Evaluations))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if r.Mixture == nil {
		return nil
	}
	return writeMixture(w, p, r)
}

func writeMixture(w io.Writer, p *message.Printer, r *Report) error {
	m := r.Mixture
	unit := r.displayUnit()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---- RESULT ----")
	fmt.Fprintf(w, "Mix the following together (in %s)\n", unit)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range m.Items {
		if it.Grams == 0 {
			continue
		}
		fmt.Fprintf(tw, "\t%s\t%s\n", it.Name, projection.Format(float64(it.Grams), unit))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write mixture: %w", err)
	}

	_, err := p.Fprintf(w, "Results in %.0fg carb, %.0fg fat, %.0fg protein in %d kcal (%d:%d:%d).\n",
		m.Carb, m.Fat, m.Protein, m.TargetKcal, m.CarbPercent, m.FatPercent, m.ProteinPercent)
	if err != nil {
		return fmt.Errorf("failed to write mixture: %w", err)
	}
	return nil
}

func ratio(carb, fat, protein float64) string {
	return fmt.Sprintf("{carb: %.4g, fat: %.4g, protein: %.4g}", carb, fat, protein)
}

func macros(m nutrient.Macros) string {
	return ratio(m.Carb, m.Fat, m.Protein)
}

func pieces(s constraint.Set) string {
	parts := make([]string, 0, len(s))
	for _, name := range s.Names() {
		parts = append(parts, fmt.Sprintf("%s=%d", name, s[name]))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func counts(ingredients []Ingredient, c map[string]int) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		parts = append(parts, fmt.Sprintf("%s=%d", ing.Name, c[ing.Name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
