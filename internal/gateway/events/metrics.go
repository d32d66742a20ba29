package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var EventsPublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "events_publish_total",
		Help: "Total number of published tracking status events by result",
	},
	[]string{"topic", "result"},
)
