package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/fleettco/core/metrics"
)

// PromSink records calculation events in Prometheus metrics.
type PromSink struct {
	calculations *prometheus.CounterVec
	comparisons  prometheus.Counter
	sweeps       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	tcoPerKM     *prometheus.GaugeVec
}

// NewPromSink registers calculation metrics on the default Prometheus
// registerer. The Prometheus server should be started separately.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	calculations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tco_calculations_total",
		Help: "Total number of single-vehicle TCO calculations",
	}, []string{"drivetrain"})
	comparisons := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tco_comparisons_total",
		Help: "Total number of BEV-vs-diesel comparisons",
	})
	sweeps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tco_sensitivity_sweeps_total",
		Help: "Total number of sensitivity sweeps",
	}, []string{"parameter"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tco_calculation_duration_seconds",
		Help:    "Time spent running one TCO calculation",
		Buckets: prometheus.DefBuckets,
	}, []string{"drivetrain"})
	tcoPerKM := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tco_per_km_dollars",
		Help: "Latest computed TCO per km by vehicle",
	}, []string{"vehicle_id", "drivetrain"})

	collectors := []prometheus.Collector{calculations, comparisons, sweeps, duration, tcoPerKM}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			collectors[i] = are.ExistingCollector
		}
	}

	return &PromSink{
		calculations: collectors[0].(*prometheus.CounterVec),
		comparisons:  collectors[1].(prometheus.Counter),
		sweeps:       collectors[2].(*prometheus.CounterVec),
		duration:     collectors[3].(*prometheus.HistogramVec),
		tcoPerKM:     collectors[4].(*prometheus.GaugeVec),
	}, nil
}

// RecordCalculation increments the calculation counter and observes the
// duration and latest per-km figure.
func (s *PromSink) RecordCalculation(ev coremetrics.CalculationEvent) error {
	s.calculations.WithLabelValues(ev.Drivetrain).Inc()
	s.duration.WithLabelValues(ev.Drivetrain).Observe(ev.Duration.Seconds())
	s.tcoPerKM.WithLabelValues(ev.VehicleID, ev.Drivetrain).Set(ev.TCOPerKM)
	return nil
}

// RecordComparison increments the comparison counter.
func (s *PromSink) RecordComparison(coremetrics.ComparisonEvent) error {
	s.comparisons.Inc()
	return nil
}

// RecordSweep increments the sweep counter for the parameter.
func (s *PromSink) RecordSweep(ev coremetrics.SweepEvent) error {
	s.sweeps.WithLabelValues(ev.Parameter).Inc()
	return nil
}
