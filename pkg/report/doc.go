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

// Package report assembles and renders the documents emitted by macromix.
//
// A [Report] carries a header (kind, apiVersion, timestamp, version and run
// id), the target, the normalized catalog, the resolved constraints and, for
// mix runs, the search summary and the gram mixture.
//
// Reports render as text, table, JSON or YAML:
//
//	r := report.New(header.KindMixReport, version, tgt, catalog,
//	    report.WithConstraints(cons),
//	    report.WithResult(res, mixture))
//	err := report.Write(ctx, os.Stdout, "yaml", r)
package report
