package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webspark_cycles_total",
			Help: "Relay cycles completed, by outcome",
		},
		[]string{"outcome"},
	)

	CycleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webspark_cycle_errors_total",
			Help: "Failed relay cycles, by the stage that failed",
		},
		[]string{"stage"},
	)

	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webspark_dispatch_duration_seconds",
			Help:    "Time taken by one parallel map over the seed set",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	DispatchUnits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webspark_dispatch_units_total",
			Help: "Seeds processed by the parallel map",
		},
	)

	LoopState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "webspark_loop_state",
			Help: "Current relay loop state (0 polling, 1 responding, 2 waiting)",
		},
	)
)
