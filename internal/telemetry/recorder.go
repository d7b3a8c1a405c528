// Package telemetry logs and counts form activity.
//
// A Recorder subscribes to a form.Controller and records every transition
// as a structured log line and a Prometheus sample. Collectors live in a
// private registry that can be written to a node-exporter textfile on exit.
package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
)

const namespace = "tipsplit"

// Recorder turns form events into logs and metrics.
type Recorder struct {
	registry       *prometheus.Registry
	events         *prometheus.CounterVec
	commits        prometheus.Counter
	parseErrors    prometheus.Counter
	splitCount     prometheus.Gauge
	tipPercentage  prometheus.Gauge
	totalPerPerson prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "form",
			Name:      "events_total",
			Help:      "Form transitions that changed state, by kind.",
		}, []string{"kind"}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commits_total",
			Help:      "Bills confirmed and stored in the session history.",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "Confirmed bills whose text was not a number.",
		}),
		splitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "split_count",
			Help:      "Current number of people splitting the bill.",
		}),
		tipPercentage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tip_percentage",
			Help:      "Current tip percentage.",
		}),
		totalPerPerson: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_total_per_person",
			Help:      "Per-person total of the most recent confirmed bill.",
		}),
	}
	r.registry.MustRegister(r.events, r.commits, r.parseErrors, r.splitCount, r.tipPercentage, r.totalPerPerson)
	return r
}


// Observe is a form.Observer.
func (r *Recorder) Observe(ev form.Event) {
	r.events.WithLabelValues(string(ev.Kind)).Inc()
	r.splitCount.Set(float64(ev.State.SplitCount))
	r.tipPercentage.Set(float64(ev.State.TipPercentage()))

	slog.Debug("Form event",
		"kind", ev.Kind,
		"valid", ev.State.Valid(),
		"tip_percentage", ev.State.TipPercentage(),
		"split_count", ev.State.SplitCount,
	)
}

// RecordCommit records a receipt that made it into the session history.
func (r *Recorder) RecordCommit(receipt models.Receipt) {
	r.commits.Inc()
	r.totalPerPerson.Set(receipt.TotalPerPerson)

	slog.Info("Bill committed",
		"receipt_id", receipt.ID,
		"bill", receipt.Bill,
		"tip_percentage", receipt.TipPercentage,
		"split_by", receipt.SplitBy,
		"total_per_person", receipt.TotalPerPerson,
	)
}

// RecordParseError records a confirmed bill that could not be parsed.
func (r *Recorder) RecordParseError(billText string, err error) {
	r.parseErrors.Inc()
	slog.Warn("Bill not committed", "bill_text", billText, "error", err)
}

// WriteTextfile dumps all collectors to path in the Prometheus text format.
// An empty path does nothing.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	slog.Info("Metrics written", "path", path)
	return nil
}
