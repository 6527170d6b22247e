package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	IngestRequestsTotal  prometheus.Counter
	RatesIngestedTotal   prometheus.Counter
	AverageRequestsTotal prometheus.Counter
	SourceFailuresTotal  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IngestRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ingest_requests_total",
				Help: "Total number of exchange rate ingestion requests",
			},
		),
		RatesIngestedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rates_ingested_total",
				Help: "Total number of exchange rate records persisted",
			},
		),
		AverageRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "average_requests_total",
				Help: "Total number of monthly average calculations requested",
			},
		),
		SourceFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "source_failures_total",
				Help: "Total number of failed NB RB API interactions",
			},
		),
	}
}
