package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	// Feed metrics
	PriceSubmissions *prometheus.CounterVec
	AggregatedRate   *prometheus.GaugeVec
	SubmissionsLive  *prometheus.GaugeVec

	// Resolver metrics
	RateResolutions *prometheus.CounterVec

	// Alarm metrics
	ActiveAlarms    prometheus.Gauge
	AlarmDispatches *prometheus.CounterVec

	// Housekeeping metrics
	StaleSubmissionCleanups prometheus.Counter
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			PriceSubmissions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "price_submissions_total",
					Help:      "Total raw price submissions by pair",
				},
				[]string{"pair"},
			),
			AggregatedRate: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "aggregated_rate",
					Help:      "Last validated rate per pair",
				},
				[]string{"pair"},
			),
			SubmissionsLive: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "submissions_live",
					Help:      "Non-stale submissions per pair",
				},
				[]string{"pair"},
			),
			RateResolutions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "rate_resolutions_total",
					Help:      "Cross-rate resolutions by outcome",
				},
				[]string{"outcome"},
			),
			ActiveAlarms: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "active_alarms",
					Help:      "Registered alarms not yet fired",
				},
			),
			AlarmDispatches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "alarm_dispatches_total",
					Help:      "Alarm notifications dispatched by direction",
				},
				[]string{"direction"},
			),
			StaleSubmissionCleanups: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "atlas",
					Subsystem: "oracle",
					Name:      "stale_submission_cleanups_total",
					Help:      "Submissions pruned by the staleness sweep",
				},
			),
		}
	})
	return oracleMetrics
}
