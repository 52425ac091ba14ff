/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package metrics defines the prometheus collectors updated by the tree
// packages.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (

	// MATERIALIZED

	MaterializedNodesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sternbrocot_materialized_nodes_generated_total",
			Help: "Number of nodes attached during eager generation.",
		},
	)
	MaterializedSearchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sternbrocot_materialized_searches_total",
			Help: "Number of exact searches over generated trees.",
		},
	)

	// PROCEDURAL

	ProceduralNodesSynthesizedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sternbrocot_procedural_nodes_synthesized_total",
			Help: "Number of transient nodes synthesized on demand.",
		},
	)
	ProceduralLocateStepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sternbrocot_procedural_locate_steps_total",
			Help: "Number of descent steps taken while locating fractions.",
		},
	)
	ProceduralNeighborQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sternbrocot_procedural_neighbor_queries_total",
			Help: "Number of neighbor queries by side.",
		},
		[]string{"side"},
	)
	ProceduralSizeVisitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sternbrocot_procedural_size_visits_total",
			Help: "Number of candidate children examined by size walks.",
		},
	)

	// PROMETHEUS

	DefaultMetrics = []prometheus.Collector{
		MaterializedNodesGeneratedTotal,
		MaterializedSearchesTotal,

		ProceduralNodesSynthesizedTotal,
		ProceduralLocateStepsTotal,
		ProceduralNeighborQueriesTotal,
		ProceduralSizeVisitsTotal,
	}
)

// Register adds DefaultMetrics to the given registerer. Collectors already
// registered there are skipped.
func Register(r prometheus.Registerer) error {
	for _, c := range DefaultMetrics {
		if err := r.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
