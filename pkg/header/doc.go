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

// Package header provides the common header for documents emitted by macromix.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              `json:"kind" yaml:"kind"`             // e.g. "MixReport"
//	    APIVersion string            `json:"apiVersion" yaml:"apiVersion"` // e.g. "macromix.io/v1"
//	    Metadata   map[string]string `json:"metadata" yaml:"metadata"`
//	}
//
// Init stamps the metadata with the creation timestamp (RFC3339, UTC), the
// tool version and a random run id (UUID v4), so reports from separate runs
// over identical inputs can be told apart:
//
//	{
//	  "kind": "MixReport",
//	  "apiVersion": "macromix.io/v1",
//	  "metadata": {
//	    "run-id": "0b6f1f3e-8f0c-4a53-9d0a-6c3f0b4b8e21",
//	    "timestamp": "2025-12-30T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
package header
