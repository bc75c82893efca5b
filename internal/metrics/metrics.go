package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntakesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiredepot_intakes_total",
		Help: "Total number of tire sets taken into custody.",
	})

	ReleasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiredepot_releases_total",
		Help: "Total number of tire sets released back to customers.",
	})

	DamagedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tiredepot_damaged_total",
		Help: "Total number of custody records marked as damaged.",
	})

	RemindersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tiredepot_reminders_total",
		Help: "Total number of seasonal reminder attempts by outcome.",
	},
		[]string{"outcome"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tiredepot_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DepotOccupancyRate = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tiredepot_depot_occupancy_rate",
		Help: "Current depot occupancy rate per provider, in percent.",
	},
		[]string{"provider"},
	)

	StatusCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tiredepot_status_cache_items",
		Help: "Current number of depot status snapshots held in cache.",
	})
)
