package serve

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	fetchBytes prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iconsmith_requests_total",
				Help: "Processed icon requests by faction and outcome",
			},
			[]string{"team", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "iconsmith_process_duration_seconds",
				Help:    "Time spent fetching, recoloring and encoding an icon",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"team"},
		),
		fetchBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "iconsmith_fetch_bytes",
				Help:    "Size of downloaded source icons",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}
	reg.MustRegister(m.requests, m.duration, m.fetchBytes)
	return m
}
