package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/fleettco/core/metrics"
)

type recordingSink struct {
	calcs  int
	cmps   int
	sweeps int
}

func (s *recordingSink) RecordCalculation(coremetrics.CalculationEvent) error {
	s.calcs++
	return nil
}

func (s *recordingSink) RecordComparison(coremetrics.ComparisonEvent) error {
	s.cmps++
	return nil
}

func (s *recordingSink) RecordSweep(coremetrics.SweepEvent) error {
	s.sweeps++
	return nil
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	m := NewMultiSink(a, b)

	require.NoError(t, m.RecordCalculation(coremetrics.CalculationEvent{}))
	require.NoError(t, m.RecordComparison(coremetrics.ComparisonEvent{}))
	require.NoError(t, m.RecordSweep(coremetrics.SweepEvent{}))

	assert.Equal(t, 1, a.calcs)
	assert.Equal(t, 1, b.calcs)
	assert.Equal(t, 1, a.cmps)
	assert.Equal(t, 1, a.sweeps)
}

// calcOnlySink implements just the base MetricsSink interface.
type calcOnlySink struct{ calcs int }

func (s *calcOnlySink) RecordCalculation(coremetrics.CalculationEvent) error {
	s.calcs++
	return nil
}

func TestMultiSinkSkipsUnsupportedRecorders(t *testing.T) {
	s := &calcOnlySink{}
	m := NewMultiSink(s)
	require.NoError(t, m.RecordCalculation(coremetrics.CalculationEvent{}))
	require.NoError(t, m.RecordComparison(coremetrics.ComparisonEvent{}))
	require.NoError(t, m.RecordSweep(coremetrics.SweepEvent{}))
	assert.Equal(t, 1, s.calcs)
}

func TestNewSinkDefaultsToNop(t *testing.T) {
	s, err := NewSink(nil)
	require.NoError(t, err)
	assert.Equal(t, coremetrics.NopSink{}, s)
}

func TestNewSinkRejectsUnknownType(t *testing.T) {
	_, err := NewSink([]SinkConfig{{Type: "statsd"}})
	require.Error(t, err)
}
