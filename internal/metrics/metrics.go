// Package metrics defines the Prometheus collectors for word ladder queries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts queries by outcome (ladder.FailureKind labels).
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordpath_searches_total",
		Help: "Total number of ladder queries, labelled by outcome.",
	}, []string{"outcome"})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordpath_search_duration_seconds",
		Help:    "Time to build the graph and search it.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	// GraphVertices is the vertex count of the most recent query graph.
	GraphVertices = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordpath_graph_vertices",
		Help: "Retained vertices in the most recent query graph.",
	})

	LadderSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordpath_ladder_steps",
		Help:    "Edges in returned ladders.",
		Buckets: prometheus.LinearBuckets(0, 2, 10),
	})

	DictionaryWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordpath_dictionary_words",
		Help: "Words in the loaded dictionary.",
	})

	DictionaryReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordpath_dictionary_reloads_total",
		Help: "Dictionary reload attempts, labelled by status.",
	}, []string{"status"})
)
