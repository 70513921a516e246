package observability

import (
	"github.com/aretw0/steptree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated while a log is ingested.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Records    *prometheus.CounterVec
	Decode     prometheus.Counter
	Structural prometheus.Counter
	Steps      *prometheus.CounterVec
	Progress   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the global handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steptree_records_total",
				Help: "Total number of decoded log records by action",
			},
			[]string{"action"},
		),
		Decode: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "steptree_decode_errors_total",
			Help: "Total number of lines that failed decoding",
		}),
		Structural: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "steptree_structural_errors_total",
			Help: "Total number of records referencing unknown steps",
		}),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "steptree_steps_total",
				Help: "Total number of steps started by action kind",
			},
			[]string{"kind"},
		),
		Progress: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "steptree_build_progress",
				Help: "Last progress reported by a build step",
			},
			[]string{"field"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Records, m.Decode, m.Structural, m.Steps, m.Progress)
	}
	return m
}

// ObserveRecord counts one record by its action discriminator.
func (m *Metrics) ObserveRecord(action string) {
	if m == nil {
		return
	}
	m.Records.WithLabelValues(action).Inc()
}

// ObserveDecodeError counts one undecodable line.
func (m *Metrics) ObserveDecodeError() {
	if m == nil {
		return
	}
	m.Decode.Inc()
}

// ObserveStructural counts one structural violation.
func (m *Metrics) ObserveStructural() {
	if m == nil {
		return
	}
	m.Structural.Inc()
}

// ObserveStep counts one started step.
func (m *Metrics) ObserveStep(kind domain.ActionKind) {
	if m == nil {
		return
	}
	m.Steps.WithLabelValues(kind.String()).Inc()
}

// ObserveProgress publishes the latest build progress.
func (m *Metrics) ObserveProgress(p domain.Progress) {
	if m == nil {
		return
	}
	m.Progress.WithLabelValues("done").Set(float64(p.Done))
	m.Progress.WithLabelValues("expected").Set(float64(p.Expected))
	m.Progress.WithLabelValues("running").Set(float64(p.Running))
	m.Progress.WithLabelValues("failed").Set(float64(p.Failed))
}
