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

// Package optimizer implements the greedy discrete search that turns a
// caloric target and a macro ratio into a piece allocation.
//
// The target kcal is split into Steps equal pieces. Constraints seed the
// starting proposal (at_least and exact pieces); each remaining piece goes
// to the eligible ingredient whose trial mix has the lowest squared error
// against the target ratio. An ingredient is eligible unless it is frozen
// by an exact constraint or has reached its at_most ceiling.
//
// Usage:
//
//	opt := optimizer.New(optimizer.WithSteps(2000), optimizer.WithParallelism(4))
//	res, err := opt.Optimize(ctx, tgt.Normalize(), cons, catalog)
//
// Parallelism only changes how trials are scored. Selection is sequential
// and ties resolve to catalog order, so results are identical for every
// Parallelism value.
//
// Searches are observed by Prometheus collectors registered with the
// default registry:
//   - macromix_search_duration_seconds
//   - macromix_search_total{result}
//   - macromix_trial_evaluations_total
//   - macromix_search_cost
package optimizer
