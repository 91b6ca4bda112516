package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	emailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notify_emails_sent_total",
		Help: "Emails delivered successfully",
	})

	emailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notify_emails_failed_total",
		Help: "Emails that failed to deliver after one attempt",
	})

	emailsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notify_emails_dropped_total",
		Help: "Emails dropped because the delivery pool was saturated",
	})
)
