package observability

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/aretw0/fconsole/pkg/domain"
)

// Metrics counts interpreter activity. Each instance owns its registry so
// several consoles in one process do not clash.
type Metrics struct {
	Registry *prometheus.Registry

	Lines         *prometheus.CounterVec
	Tokens        prometheus.Counter
	StackDepth    prometheus.Gauge
	TokensPerLine prometheus.Histogram
}

// NewMetrics creates and registers the console metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fconsole_lines_total",
				Help: "Total number of processed lines by result status",
			},
			[]string{"status", "description"},
		),
		Tokens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fconsole_tokens_total",
			Help: "Total number of dispatched tokens",
		}),
		StackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fconsole_stack_depth",
			Help: "Operand stack depth after the last processed line",
		}),
		TokensPerLine: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fconsole_tokens_per_line",
			Help:    "Distribution of tokens dispatched per line",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		}),
	}
	m.Registry.MustRegister(m.Lines, m.Tokens, m.StackDepth, m.TokensPerLine)
	return m
}

// Hooks returns the callbacks that feed the metrics.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnToken: func(*domain.TokenEvent) {
			m.Tokens.Inc()
		},
		OnLine: func(e *domain.LineEvent) {
			m.Lines.WithLabelValues(strconv.Itoa(int(e.Status)), domain.Describe(e.Status)).Inc()
			m.StackDepth.Set(float64(e.Depth))
			m.TokensPerLine.Observe(float64(e.Tokens))
		},
	}
}

// WriteText dumps the registry in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
