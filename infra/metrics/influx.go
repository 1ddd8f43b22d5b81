package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/fleettco/core/metrics"
	"github.com/kilianp07/fleettco/infra/logger"
)

// InfluxSink writes calculation events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCalculation writes the calculation as a line protocol point.
func (s *InfluxSink) RecordCalculation(ev coremetrics.CalculationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("tco_calculation").
		AddTag("run_id", ev.RunID).
		AddTag("vehicle_id", ev.VehicleID).
		AddTag("drivetrain", ev.Drivetrain).
		AddField("tco_per_km", round4(ev.TCOPerKM)).
		AddField("tco_lifetime", round4(ev.TCOLifetime)).
		AddField("duration_ms", round4(ev.Duration.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordComparison writes the comparison headline figures.
func (s *InfluxSink) RecordComparison(ev coremetrics.ComparisonEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("tco_comparison").
		AddTag("run_id", ev.RunID).
		AddTag("bev_id", ev.BEVID).
		AddTag("diesel_id", ev.DieselID).
		AddField("tco_savings_lifetime", round4(ev.TCOSavingsLife)).
		AddField("price_parity_year", finiteOr(ev.PriceParityYear, -1)).
		AddField("abatement_cost", finiteOr(ev.AbatementCost, -1)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordSweep writes one sweep summary point.
func (s *InfluxSink) RecordSweep(ev coremetrics.SweepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("tco_sensitivity_sweep").
		AddTag("run_id", ev.RunID).
		AddTag("parameter", ev.Parameter).
		AddField("points", ev.Points).
		AddField("duration_ms", round4(ev.Duration.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// finiteOr replaces non-finite values, which line protocol cannot carry.
func finiteOr(f, def float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return def
	}
	return round4(f)
}
