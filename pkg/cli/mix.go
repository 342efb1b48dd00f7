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
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/natural-bodybuilder/macromix/pkg/config"
	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/defaults"
	"github.com/natural-bodybuilder/macromix/pkg/header"
	"github.com/natural-bodybuilder/macromix/pkg/optimizer"
	"github.com/natural-bodybuilder/macromix/pkg/projection"
	"github.com/natural-bodybuilder/macromix/pkg/report"
)

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the report to this file instead of stdout",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("report format (supported values: %v)", report.SupportedFormats()),
	}
}

func stepsFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "steps",
		Usage: fmt.Sprintf("number of kcal pieces the target is split into (default %d)", defaults.OptimizationSteps),
	}
}

func mixCmd() *cli.Command {
	return &cli.Command{
		Name:                  "mix",
		EnableShellCompletion: true,
		Usage:                 "Find the ingredient mixture closest to a target",
		ArgsUsage:             "TARGET INGREDIENT...",
		Description: `Load a target and one document per ingredient, run the greedy search and
print the resulting recipe in grams together with the achieved macros.

# Target document

  kcal: 2500
  carb: 45
  fat: 25
  protein: 30
  constraint_exact:
    - name: oats
      g: 80
  constraint_at_most:
    - name: olive oil
      g: 30

# Ingredient document

  name: oats
  g: 100
  kcal: 389
  carb: 66.3
  fat: 6.9
  protein: 16.9

# Examples

  macromix mix target.yaml oats.yaml whey.yaml "olive oil.toml"
  macromix mix --format yaml --unit oz -o plan.yaml target.yaml *.yaml`,
		Flags: []cli.Flag{
			stepsFlag(),
			&cli.IntFlag{
				Name:  "parallelism",
				Usage: "goroutines scoring trial mixes per iteration",
			},
			formatFlag(),
			&cli.StringFlag{
				Name:  "unit",
				Usage: fmt.Sprintf("display unit for amounts (supported values: %v)", projection.SupportedUnits),
			},
			outputFlag(),
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write search metrics in Prometheus text format to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runMix(ctx, cmd, cmd.Args().Slice())
		},
	}
}

// mixOptions are the settings after command line overrides.
type mixOptions struct {
	steps       int
	parallelism int
	format      string
	unit        projection.Unit
	output      string
	metricsFile string
}

func parseMixOptions(ctx context.Context, cmd *cli.Command) (*mixOptions, error) {
	s := *settingsFrom(ctx)
	if cmd.IsSet("steps") {
		s.Steps = int(cmd.Int("steps"))
	}
	if cmd.IsSet("parallelism") {
		s.Parallelism = int(cmd.Int("parallelism"))
	}
	if cmd.IsSet("format") {
		s.Format = cmd.String("format")
	}
	if cmd.IsSet("unit") {
		s.Unit = cmd.String("unit")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}
	unit, err := projection.ParseUnit(s.Unit)
	if err != nil {
		return nil, err
	}

	opts := &mixOptions{
		steps:       s.Steps,
		parallelism: s.Parallelism,
		format:      format,
		unit:        unit,
		output:      cmd.String("output"),
		metricsFile: cmd.String("metrics-file"),
	}
	for _, p := range []*string{&opts.output, &opts.metricsFile} {
		if *p == "" {
			continue
		}
		if *p, err = config.ExpandPath(*p); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func runMix(ctx context.Context, cmd *cli.Command, args []string) error {
	if len(args) < 2 {
		printUsage(cmd.Root().Writer)
		return nil
	}

	opts, err := parseMixOptions(ctx, cmd)
	if err != nil {
		return err
	}

	in, err := loadInputs(args[0], args[1:])
	if err != nil {
		return err
	}

	cons, err := constraint.Resolve(in.target, in.catalog, opts.steps)
	if err != nil {
		return fmt.Errorf("failed to resolve constraints: %w", err)
	}

	opt := optimizer.New(
		optimizer.WithSteps(opts.steps),
		optimizer.WithParallelism(opts.parallelism),
	)
	res, err := opt.Optimize(ctx, in.target.Normalize(), cons, in.catalog)
	if err != nil {
		return fmt.Errorf("failed to find a mixture: %w", err)
	}

	mixture, err := projection.Project(res.Proposal, in.target.Kcal, in.catalog)
	if err != nil {
		return fmt.Errorf("failed to project mixture: %w", err)
	}

	slog.Info("mixture found",
		"proposal", res.Proposal.String(),
		"cost", res.Cost,
		"evaluations", res.Evaluations,
		"duration", res.Duration)

	rep := report.New(header.KindMixReport, version, in.target, in.catalog,
		report.WithConstraints(cons),
		report.WithResult(res, mixture),
		report.WithUnit(opts.unit),
	)

	if err := writeReport(ctx, cmd, opts.output, opts.format, rep); err != nil {
		return err
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to write metrics to %q: %w", opts.metricsFile, err)
		}
		slog.Debug("metrics written", "path", opts.metricsFile)
	}
	return nil
}
