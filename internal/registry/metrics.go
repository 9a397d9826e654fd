package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK     = "ok"
	outcomeFailed = "failed"
)

var (
	// Station lifecycle metrics
	stationsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brigade_registry_stations_added_total",
			Help: "Total number of stations added to a registry",
		},
	)
	stationsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "brigade_registry_stations_removed_total",
			Help: "Total number of stations removed from a registry, including merged-away stations",
		},
	)

	// Kitchen operation metrics
	preparations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brigade_registry_preparations_total",
			Help: "Total number of dish preparations requested through a registry",
		},
		[]string{"outcome"},
	)
	merges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brigade_registry_merges_total",
			Help: "Total number of station merges requested",
		},
		[]string{"outcome"},
	)
)

func outcome(ok bool) string {
	if ok {
		return outcomeOK
	}
	return outcomeFailed
}
