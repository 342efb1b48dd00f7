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

// Package nutrient holds raw ingredient records and their normalized form.
//
// An Ingredient states how many grams of carbohydrate, fat and protein a
// reference amount of food contains, and how many kcal it provides.
// Normalize turns it into per-kcal densities:
//
//	carb    = carb_g / kcal
//	fat     = fat_g / kcal
//	protein = protein_g / kcal
//
// The densities are not rescaled to sum to one. Consumers that compare a
// blend against a target ratio call Macros.Ratio on the blend.
//
// A Catalog is the validated, name-sorted, immutable set of ingredients of a
// run. Its order is the deterministic iteration order used by the optimizer.
package nutrient
