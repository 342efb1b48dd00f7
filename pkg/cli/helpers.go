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

package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/natural-bodybuilder/macromix/pkg/config"
	"github.com/natural-bodybuilder/macromix/pkg/nutrient"
	"github.com/natural-bodybuilder/macromix/pkg/report"
	"github.com/natural-bodybuilder/macromix/pkg/serializer"
	"github.com/natural-bodybuilder/macromix/pkg/target"
)

type inputs struct {
	target  target.Target
	catalog *nutrient.Catalog
}

// loadInputs reads the target and one ingredient per path and builds the
// catalog.
func loadInputs(targetPath string, ingredientPaths []string) (*inputs, error) {
	path, err := config.ExpandPath(targetPath)
	if err != nil {
		return nil, err
	}
	tgt, err := serializer.FromFile[target.Target](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load target: %w", err)
	}
	if err := tgt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target %q: %w", path, err)
	}

	ingredients := make([]nutrient.Ingredient, 0, len(ingredientPaths))
	for _, p := range ingredientPaths {
		if p, err = config.ExpandPath(p); err != nil {
			return nil, err
		}
		ing, err := serializer.FromFile[nutrient.Ingredient](p)
		if err != nil {
			return nil, fmt.Errorf("failed to load ingredient: %w", err)
		}
		slog.Debug("loaded ingredient", "name", ing.Name, "path", p)
		ingredients = append(ingredients, *ing)
	}

	catalog, err := nutrient.NewCatalog(ingredients...)
	if err != nil {
		return nil, fmt.Errorf("invalid ingredients: %w", err)
	}
	return &inputs{target: *tgt, catalog: catalog}, nil
}

// writeReport renders the report to path, or to the command writer when
// path is empty. Nothing is written until the report is complete.
func writeReport(ctx context.Context, cmd *cli.Command, path, format string, r *report.Report) error {
	var buf bytes.Buffer
	if err := report.Write(ctx, &buf, format, r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if path == "" {
		if _, err := buf.WriteTo(cmd.Root().Writer); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	slog.Info("report written", "path", path, "format", format)
	return nil
}
