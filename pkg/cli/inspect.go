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

	"github.com/urfave/cli/v3"

	"github.com/natural-bodybuilder/macromix/pkg/constraint"
	"github.com/natural-bodybuilder/macromix/pkg/header"
	"github.com/natural-bodybuilder/macromix/pkg/report"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Show normalized inputs and resolved constraints without mixing",
		ArgsUsage:             "TARGET INGREDIENT...",
		Description: `Load the target and ingredients exactly like mix does and print the
normalized target ratio, the per-kcal macro densities of every ingredient and
the constraints converted to pieces. Useful to check input files before a run.`,
		Flags: []cli.Flag{
			stepsFlag(),
			formatFlag(),
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				printUsage(cmd.Root().Writer)
				return nil
			}

			s := *settingsFrom(ctx)
			if cmd.IsSet("steps") {
				s.Steps = int(cmd.Int("steps"))
			}
			if cmd.IsSet("format") {
				s.Format = cmd.String("format")
			}
			if err := s.Validate(); err != nil {
				return err
			}
			format, err := report.ParseFormat(s.Format)
			if err != nil {
				return err
			}

			in, err := loadInputs(args[0], args[1:])
			if err != nil {
				return err
			}

			cons, err := constraint.Resolve(in.target, in.catalog, s.Steps)
			if err != nil {
				return fmt.Errorf("failed to resolve constraints: %w", err)
			}

			rep := report.New(header.KindInspectReport, version, in.target, in.catalog,
				report.WithConstraints(cons))
			return writeReport(ctx, cmd, cmd.String("output"), format, rep)
		},
	}
}
