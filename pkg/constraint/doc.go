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

// Package constraint turns gram constraints on ingredients into piece
// bounds for the optimizer.
//
// A constraint of g grams on an ingredient costs g * kcal/grams kcal, which
// at steps pieces per target kcal becomes
//
//	round(g * kcal_per_gram * steps / target_kcal)
//
// pieces. Exact constraints freeze an ingredient, at_least constraints seed
// the baseline and at_most constraints cap further growth.
package constraint
