// Package metrics defines the observability events emitted by the
// calculation services and the sink interfaces that record them.
package metrics

import "time"

// CalculationEvent captures one completed single-vehicle TCO calculation.
type CalculationEvent struct {
	RunID       string
	VehicleID   string
	Drivetrain  string
	TCOPerKM    float64
	TCOLifetime float64
	Duration    time.Duration
	Time        time.Time
}

// MetricsSink records calculation events for observability purposes.
type MetricsSink interface {
	RecordCalculation(ev CalculationEvent) error
}

// ComparisonEvent captures a completed BEV-vs-diesel comparison.
type ComparisonEvent struct {
	RunID           string
	BEVID           string
	DieselID        string
	TCOSavingsLife  float64
	PriceParityYear float64
	AbatementCost   float64
	Duration        time.Duration
	Time            time.Time
}

// ComparisonRecorder records comparison events.
type ComparisonRecorder interface {
	RecordComparison(ev ComparisonEvent) error
}

// SweepEvent captures one sensitivity sweep.
type SweepEvent struct {
	RunID     string
	Parameter string
	Points    int
	Duration  time.Duration
	Time      time.Time
}

// SweepRecorder records sensitivity sweep events.
type SweepRecorder interface {
	RecordSweep(ev SweepEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordCalculation(CalculationEvent) error { return nil }

func (NopSink) RecordComparison(ComparisonEvent) error { return nil }
func (NopSink) RecordSweep(SweepEvent) error           { return nil }
