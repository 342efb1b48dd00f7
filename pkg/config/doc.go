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

// Package config loads user settings for the macromix command line.
//
// Settings resolve in increasing order of precedence:
//  1. built-in defaults (see the defaults package)
//  2. a settings file: --config, or .macromix.yaml in $HOME or the working directory
//  3. MACROMIX_* environment variables, optionally seeded from a dotenv file
//  4. command line flags, applied by the cli package
//
// Example settings file:
//
//	steps: 4000
//	parallelism: 4
//	format: yaml
//	unit: oz
//	log-level: debug
//	log-format: text
package config
