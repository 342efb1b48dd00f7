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

// Package proposal models a candidate ingredient mixture as integer piece
// counts.
//
// A piece is a fixed slice of the caloric budget: with 2000 optimization
// steps and a 2500 kcal target, each piece is 1.25 kcal. Proposals are
// aligned with a [nutrient.Catalog] and always carry an entry per ingredient.
//
// The mix of a proposal is the piece weighted average of the per-kcal
// macro densities of its ingredients:
//
//	p := proposal.New(catalog)
//	p.Add(0, 2)
//	mix, err := p.Mix()
//
// [Proposal.MixWith] evaluates a hypothetical extra piece without mutating
// the proposal, which lets the optimizer score trials concurrently against a
// shared base.
package proposal
