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

// Package defaults provides centralized configuration constants for macromix.
//
// This package defines the optimizer step count, worker bounds, output
// defaults and settings discovery names used across the codebase.
//
// # Usage
//
//	import "github.com/natural-bodybuilder/macromix/pkg/defaults"
//
//	opt := optimizer.New(optimizer.WithSteps(defaults.OptimizationSteps))
//
// # Step Guidelines
//
// One step assigns one piece of target.kcal / steps kcal. The reference
// scale is 1000-2000 steps over tens of ingredients; the search cost grows
// with steps × ingredients².
package defaults
