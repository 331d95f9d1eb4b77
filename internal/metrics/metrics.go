package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"testview/internal/domain"
)

const (
	MetricsNamespace = "testview"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "runs_total",
		Help:      "Count of test runs by resulting page state",
	}, []string{
		"state",
	})

	casesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "cases_total",
		Help:      "Count of parsed test cases by outcome",
	}, []string{
		"outcome",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Name:      "run_duration_seconds",
		Help:      "Wall time of test tool invocations",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 12),
	})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})
)

// RecordRun records a finished pipeline execution
func RecordRun(state string, duration time.Duration) {
	runsTotal.WithLabelValues(state).Inc()
	if duration > 0 {
		runDuration.Observe(duration.Seconds())
	}
}

// RecordCases counts parsed records per outcome
func RecordCases(records []domain.TestCaseResult) {
	for _, r := range records {
		casesTotal.WithLabelValues(outcomeLabel(r.Outcome)).Inc()
	}
}

// RecordError records an error of the given kind
func RecordError(kind string) {
	errorsTotal.WithLabelValues(kind).Inc()
}

func outcomeLabel(o domain.Outcome) string {
	switch o {
	case domain.OutcomePassed, domain.OutcomeFailed, domain.OutcomeError, domain.OutcomeSkipped:
		return string(o)
	}
	return "other"
}
