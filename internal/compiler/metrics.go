// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/source"
)

const metricsNamespace = "tsgram"

// Metrics are the collectors updated by the compiler. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// FilesTotal counts parsed files by kind.
	FilesTotal *prometheus.CounterVec
	// DiagnosticsTotal counts reported diagnostics by code.
	DiagnosticsTotal *prometheus.CounterVec
	// SpeculationsTotal and RollbacksTotal count speculative parses.
	SpeculationsTotal prometheus.Counter
	RollbacksTotal    prometheus.Counter
	LookaheadsTotal   prometheus.Counter
	ParseSeconds      *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		FilesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_total",
			Help:      "Files parsed, by file kind.",
		}, []string{"kind"}),
		DiagnosticsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "diagnostics_total",
			Help:      "Diagnostics produced, by code.",
		}, []string{"code"}),
		SpeculationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "speculations_total",
			Help:      "Speculative parse attempts.",
		}),
		RollbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rollbacks_total",
			Help:      "Speculative parse attempts that were rolled back.",
		}),
		LookaheadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookaheads_total",
			Help:      "Lookaheads that always rewind the parser.",
		}),
		ParseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "parse_duration_seconds",
			Help:      "Time spent parsing one file.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"kind"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.FilesTotal, m.DiagnosticsTotal, m.SpeculationsTotal, m.RollbacksTotal, m.LookaheadsTotal, m.ParseSeconds,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeStart(kind source.FileKind) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.ParseSeconds.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) observeModule(mod *Module) {
	if m == nil {
		return
	}
	m.FilesTotal.WithLabelValues(mod.Kind.String()).Inc()
	m.SpeculationsTotal.Add(float64(mod.Stats.Speculations))
	m.RollbacksTotal.Add(float64(mod.Stats.Rollbacks))
	m.LookaheadsTotal.Add(float64(mod.Stats.Lookaheads))
	for _, d := range mod.Diagnostics {
		m.observeDiagnostic(d)
	}
}

func (m *Metrics) observeDiagnostic(e exc.Exception) {
	if m == nil {
		return
	}
	m.DiagnosticsTotal.WithLabelValues(e.Code()).Inc()
}

// WriteMetrics writes everything g gathers in the Prometheus text format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
