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

package report

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
	"github.com/natural-bodybuilder/macromix/pkg/serializer"
)

// FormatText is the human readable report layout.
const FormatText = "text"

// SupportedFormats returns every report format.
func SupportedFormats() []string {
	return append([]string{FormatText}, serializer.SupportedFormats()...)
}

// ParseFormat validates a report format name.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return FormatText, nil
	}
	if !slices.Contains(SupportedFormats(), f) {
		return "", errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported output format %q, expected one of %v", s, SupportedFormats()),
			map[string]any{"format": s})
	}
	return f, nil
}

// Write renders r to w in the given format.
func Write(ctx context.Context, w io.Writer, format string, r *Report) error {
	if format == FormatText {
		return WriteText(w, r)
	}
	f := serializer.Format(format)
	if !f.IsWritable() {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported output format %q", format),
			map[string]any{"format": format})
	}
	var ser serializer.Serializer = serializer.NewWriter(f, w)
	if err := ser.Serialize(ctx, r); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to serialize report", err)
	}
	return nil
}
