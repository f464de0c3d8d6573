// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookmarkd_signups_total",
		Help: "Successful user registrations.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	BookmarkOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookmarkd_bookmark_ops_total",
		Help: "Completed bookmark operations by kind.",
	}, []string{"op"})
)
