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

package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess    = "success"
	resultOverBudget = "over_budget"
	resultStarved    = "starved"
	resultCanceled   = "canceled"
	resultError      = "error"
)

var (
	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "macromix_search_duration_seconds",
			Help:    "Duration of a greedy mixture search in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	searchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "macromix_search_total",
			Help: "Total number of mixture searches by result",
		},
		[]string{"result"}, // success, over_budget, starved, canceled, error
	)

	trialEvaluations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "macromix_trial_evaluations_total",
			Help: "Total number of trial mixes scored by the optimizer",
		},
	)

	searchCost = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "macromix_search_cost",
			Help: "Cost of the last successful search",
		},
	)
)
