package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/kilianp07/fleettco/config"
	"github.com/kilianp07/fleettco/core/model"
	"github.com/kilianp07/fleettco/core/sensitivity"
	"github.com/kilianp07/fleettco/core/tco"
	"github.com/kilianp07/fleettco/infra/dataset"
	"github.com/kilianp07/fleettco/infra/logger"
	"github.com/kilianp07/fleettco/infra/metrics"
)

// environment bundles everything a command needs to run an analysis.
type environment struct {
	cfg     *config.Config
	data    *dataset.Dataset
	svc     *tco.CalculationService
	sweeper *sensitivity.Engine
	log     logger.Logger
}

func setup() (*environment, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New("fleettco")

	sink, err := metrics.NewSink(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	data, err := dataset.Load(cfg.Dataset.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	svc := tco.NewCalculationService(log, sink)
	return &environment{
		cfg:     cfg,
		data:    data,
		svc:     svc,
		sweeper: sensitivity.NewEngine(svc, log, sink),
		log:     log,
	}, nil
}

// params translates the analysis config into scenario parameters. Dataset
// tables fill the financial and battery inputs at request-build time.
func (e *environment) params() tco.Parameters {
	a := e.cfg.Analysis
	return tco.Parameters{
		AnnualKMs:                a.AnnualKMs,
		TruckLifeYears:           a.TruckLifeYears,
		DiscountRate:             a.DiscountRate,
		FleetSize:                a.FleetSize,
		ApplyIncentives:          a.ApplyIncentives,
		SelectedChargingID:       a.SelectedChargingID,
		ChargingMix:              model.ChargingMix(a.ChargingMix),
		SelectedInfrastructureID: a.SelectedInfrastructureID,
	}
}

// comparisonRequests builds the request pair for a BEV and its comparator.
func (e *environment) comparisonRequests(bevID string) (bev, diesel tco.Request, err error) {
	b, d, err := e.data.ComparisonPair(bevID)
	if err != nil {
		return tco.Request{}, tco.Request{}, err
	}
	bev, err = e.data.Request(b.ID, e.params())
	if err != nil {
		return tco.Request{}, tco.Request{}, err
	}
	diesel, err = e.data.Request(d.ID, e.params())
	if err != nil {
		return tco.Request{}, tco.Request{}, err
	}
	return bev, diesel, nil
}

// writeJSON prints the value as indented JSON on stdout. Non-finite floats,
// which the JSON encoder rejects, are emitted as null.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSafe(reflect.ValueOf(v)))
}

// jsonSafe rebuilds the value as generic maps and slices with non-finite
// floats replaced by nil.
func jsonSafe(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return jsonSafe(v.Elem())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil
		}
		return f
	case reflect.Struct:
		out := make(map[string]any, v.NumField())
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			out[t.Field(i).Name] = jsonSafe(v.Field(i))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = jsonSafe(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = jsonSafe(v.Index(i))
		}
		return out
	default:
		return v.Interface()
	}
}
