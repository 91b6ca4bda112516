package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	connectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcast_connections_open",
			Help: "Number of connections currently in the fan-out set",
		},
	)

	eventsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_delivered_total",
			Help: "Events enqueued to viewer connections",
		},
		[]string{"event"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "broadcast_events_dropped_total",
			Help: "Events dropped because a viewer's outbound buffer was full",
		},
		[]string{"event"},
	)
)
