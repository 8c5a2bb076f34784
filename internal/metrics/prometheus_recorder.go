package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "blankdocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg          *prom.Registry
	rowsRead     prom.Counter
	documents    *prom.CounterVec
	runDuration  prom.Gauge
	runOutcome   *prom.CounterVec
	lastRunStamp prom.Gauge
}

// NewPrometheusRecorder constructs and registers the run metrics. A nil registry
// gets a private one so repeated runs in one process do not collide.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		rowsRead: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Roster rows read",
		}),
		documents: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_created_total",
			Help:      "Blank documents written by category",
		}, []string{"category"}),
		runDuration: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run",
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"outcome"}),
		lastRunStamp: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished",
		}),
	}
	reg.MustRegister(pr.rowsRead, pr.documents, pr.runDuration, pr.runOutcome, pr.lastRunStamp)
	return pr
}

func (p *PrometheusRecorder) IncRowsRead() {
	if p == nil {
		return
	}
	p.rowsRead.Inc()
}

func (p *PrometheusRecorder) IncDocumentCreated(category string) {
	if p == nil {
		return
	}
	p.documents.WithLabelValues(category).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Set(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome RunOutcome) {
	if p == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
	p.lastRunStamp.SetToCurrentTime()
}

// WriteTextfile writes all registered metrics to path in the text exposition
// format. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || path == "" {
		return nil
	}
	return prom.WriteToTextfile(path, p.reg)
}
