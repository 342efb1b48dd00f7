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

// Package target describes what a mixture should achieve and how close a
// proposal comes to it.
//
// A [Target] carries the kcal goal, the carb/fat/protein percentages and the
// optional gram constraints:
//
//	kcal: 2500
//	carb: 45
//	fat: 25
//	protein: 30
//	constraint_exact:
//	  - name: oats
//	    g: 80
//
// [Target.Normalize] turns the percentages into fractions. The cost of a mix
// is the squared distance between its macro ratio and those fractions, see
// [Normalized.Cost].
package target
