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

package projection

import (
	"fmt"
	"strings"

	"github.com/natural-bodybuilder/macromix/pkg/errors"
)

// Unit is a mass unit used for display.
type Unit string

const (
	UnitGram     Unit = "g"
	UnitKilogram Unit = "kg"
	UnitOunce    Unit = "oz"
	UnitPound    Unit = "lb"
)

// gramsPer holds the size of each unit in grams.
var gramsPer = map[Unit]float64{
	UnitGram:     1,
	UnitKilogram: 1000,
	UnitOunce:    28.349523125,
	UnitPound:    453.59237,
}

// SupportedUnits lists the accepted display units.
var SupportedUnits = []Unit{UnitGram, UnitKilogram, UnitOunce, UnitPound}

// ParseUnit parses a unit name, case insensitively. An empty string is
// grams. "lbs" is accepted as pounds.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	switch u {
	case "":
		return UnitGram, nil
	case "lbs":
		return UnitPound, nil
	}
	if _, ok := gramsPer[u]; !ok {
		return "", errors.NewWithContext(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("unsupported unit %q, expected one of %v", s, SupportedUnits),
			map[string]any{"unit": s})
	}
	return u, nil
}

// Convert expresses grams in unit u. Unknown units return grams unchanged.
func Convert(grams float64, u Unit) float64 {
	f, ok := gramsPer[u]
	if !ok {
		return grams
	}
	return grams / f
}

// ToGrams converts an amount in unit u back to grams.
func ToGrams(amount float64, u Unit) float64 {
	f, ok := gramsPer[u]
	if !ok {
		return amount
	}
	return amount * f
}

// Format renders grams in unit u with a precision suited to the unit.
func Format(grams float64, u Unit) string {
	if u == UnitGram || u == "" {
		return fmt.Sprintf("%.0f g", grams)
	}
	return fmt.Sprintf("%.2f %s", Convert(grams, u), u)
}
