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

// Package projection turns a piece allocation into a recipe in grams.
//
// Pieces are scaled to the target kcal, converted to grams with each
// ingredient's reference amount and rounded to whole grams. The carb, fat
// and protein of the result are then recomputed from those grams, so the
// reported macros describe what is actually weighed out.
//
// Grams are authoritative. [Convert] and [Format] only change how amounts
// are displayed.
package projection
