package metrics

import coremetrics "github.com/kilianp07/fleettco/core/metrics"

// MultiSink fans calculation events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordCalculation forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordCalculation(ev coremetrics.CalculationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordCalculation(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordComparison forwards comparison events when supported by the sink.
func (m *MultiSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.ComparisonRecorder); ok {
			if err := rec.RecordComparison(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordSweep forwards sweep events when supported by the sink.
func (m *MultiSink) RecordSweep(ev coremetrics.SweepEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.SweepRecorder); ok {
			if err := rec.RecordSweep(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
