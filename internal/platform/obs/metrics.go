package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PredictionMetrics records prediction-run outcomes. Missing feature inputs
// degrade model quality without failing the run, so the defaulted-field
// count is exported rather than swallowed.
type PredictionMetrics struct {
	runs            *prometheus.CounterVec
	ordersPredicted prometheus.Counter
	defaultedFields prometheus.Counter
	runDuration     prometheus.Histogram
}

// NewPredictionMetrics registers the prediction collectors on reg. If reg
// is nil the default registerer is used; already-registered collectors are
// reused.
func NewPredictionMetrics(reg prometheus.Registerer) (*PredictionMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "prediction_runs_total",
		Help: "Total number of prediction runs by outcome",
	}, []string{"status"})
	ordersPredicted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prediction_orders_total",
		Help: "Total number of orders that received a prediction",
	})
	defaultedFields := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "prediction_defaulted_feature_fields_total",
		Help: "Total number of feature fields filled with a default value",
	})
	runDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prediction_run_duration_seconds",
		Help:    "Wall-clock duration of prediction runs",
		Buckets: prometheus.DefBuckets,
	})

	if err := register(reg, &runs); err != nil {
		return nil, err
	}
	if err := register(reg, &ordersPredicted); err != nil {
		return nil, err
	}
	if err := register(reg, &defaultedFields); err != nil {
		return nil, err
	}
	if err := register(reg, &runDuration); err != nil {
		return nil, err
	}

	return &PredictionMetrics{
		runs:            runs,
		ordersPredicted: ordersPredicted,
		defaultedFields: defaultedFields,
		runDuration:     runDuration,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	if err := reg.Register(*c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return err
		}
		*c = are.ExistingCollector.(C)
	}
	return nil
}

// RecordRun records one completed run.
func (m *PredictionMetrics) RecordRun(status string, durationSeconds float64, orders, defaultedFields int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(durationSeconds)
	m.ordersPredicted.Add(float64(orders))
	m.defaultedFields.Add(float64(defaultedFields))
}
