// Package metrics exports bulk purchase counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names
const (
	MetricNameUnitsRequested = "bulkbuild_units_requested_total"
	MetricNameUnitsBuilt     = "bulkbuild_units_built_total"
	MetricNameBatches        = "bulkbuild_batches_total"
	MetricNameAnomalies      = "bulkbuild_anomalies_total"
)

// LabelItem is the label carrying the item display name
const LabelItem = "item"

// Recorder counts batch results. It satisfies bulk.Notifier.
type Recorder struct {
	UnitsRequested *prometheus.CounterVec
	UnitsBuilt     *prometheus.CounterVec
	Batches        *prometheus.CounterVec
	Anomalies      *prometheus.CounterVec
}

// NewRecorder registers the counters on reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		UnitsRequested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameUnitsRequested,
			Help: "Units ordered from bulk purchases",
		}, []string{LabelItem}),
		UnitsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameUnitsBuilt,
			Help: "Units actually built by bulk purchases",
		}, []string{LabelItem}),
		Batches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameBatches,
			Help: "Completed bulk purchase batches",
		}, []string{LabelItem}),
		Anomalies: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameAnomalies,
			Help: "Batches stopped by a failed purchase",
		}, []string{LabelItem}),
	}
}

func (r *Recorder) BatchCompleted(label string, requested, realized int) {
	r.Batches.WithLabelValues(label).Inc()
	r.UnitsRequested.WithLabelValues(label).Add(float64(requested))
	r.UnitsBuilt.WithLabelValues(label).Add(float64(realized))
}

func (r *Recorder) Anomaly(label string, _, _ int, _ error) {
	r.Anomalies.WithLabelValues(label).Inc()
}
