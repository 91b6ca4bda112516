package news

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var newsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "news_published_total",
		Help: "Articles published, by category",
	},
	[]string{"category"},
)
