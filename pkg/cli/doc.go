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

// Package cli implements the command-line interface of macromix.
//
// # Overview
//
// macromix computes a mixture of ingredients that hits a kcal target with a
// chosen carb/fat/protein ratio. The target kcal is divided into pieces and a
// greedy search hands each piece to the ingredient that brings the mixture
// closest to the ratio. Gram constraints on single ingredients can pin,
// floor or cap their amount.
//
// # Commands
//
// mix - Find the mixture:
//
//	macromix mix [--steps N] [--parallelism N] [--format text|table|json|yaml]
//	             [--unit g|kg|oz|lb] [--output FILE] [--metrics-file FILE]
//	             TARGET INGREDIENT...
//
// inspect - Show normalized inputs and resolved constraints:
//
//	macromix inspect [--steps N] [--format ...] [--output FILE] TARGET INGREDIENT...
//
// Running the root command with a target and ingredients is the same as mix.
// With fewer than two files the usage line is printed and the exit status is 0.
//
// # Global Flags
//
//	--config FILE      Settings file (default: $HOME/.macromix.yaml, ./.macromix.yaml)
//	--env-file FILE    Dotenv file loaded before settings are resolved
//	--log-level LEVEL  debug, info, warn, error
//	--log-format FMT   json (default) or text
//	--help, -h         Show command help
//	--version, -v      Show version information
//
// # Input Documents
//
// Documents are YAML, JSON or TOML, chosen by file extension. Unknown
// extensions are read as YAML.
//
// # Environment Variables
//
//	LOG_LEVEL              Logging verbosity when no level is configured
//	MACROMIX_STEPS         Default --steps
//	MACROMIX_PARALLELISM   Default --parallelism
//	MACROMIX_FORMAT        Default --format
//	MACROMIX_UNIT          Default --unit
//	MACROMIX_LOG_LEVEL     Default --log-level
//	MACROMIX_LOG_FORMAT    Default --log-format
//
// # Exit Codes
//
//	0  Success, or usage printed
//	1  Invalid input, infeasible constraints or execution failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/natural-bodybuilder/macromix/pkg/cli.version=1.0.0'"
package cli
