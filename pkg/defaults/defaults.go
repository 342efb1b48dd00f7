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

package defaults

// Optimizer defaults.
const (
	// OptimizationSteps is the number of pieces the target kcal is split into.
	// Each greedy iteration assigns one piece, so it is also the iteration count.
	OptimizationSteps = 2000

	// MinOptimizationSteps is the smallest accepted step count.
	MinOptimizationSteps = 1

	// MaxOptimizationSteps bounds the search; the work grows with steps × ingredients².
	MaxOptimizationSteps = 100_000

	// Parallelism is the default number of concurrent trial evaluations per iteration.
	Parallelism = 1

	// MaxParallelism bounds the per-iteration worker count.
	MaxParallelism = 64
)

// Output defaults.
const (
	// OutputFormat is the default report format of the mix command.
	OutputFormat = "text"

	// DisplayUnit is the default unit used to print ingredient amounts.
	DisplayUnit = "g"

	// LogFormat is the default slog handler.
	LogFormat = "json"
)

// Settings discovery.
const (
	// SettingsName is the base name of the optional settings file.
	SettingsName = ".macromix"

	// SettingsType is the format of a discovered settings file.
	SettingsType = "yaml"

	// EnvPrefix is the prefix of environment variables overriding settings.
	EnvPrefix = "MACROMIX"
)

// Document versioning.
const (
	// APIVersion is stamped into every emitted report header.
	APIVersion = "macromix.io/v1"
)
