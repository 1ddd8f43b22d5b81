package metrics

import (
	"fmt"

	coremetrics "github.com/kilianp07/fleettco/core/metrics"
)

// SinkConfig selects one metrics backend.
type SinkConfig struct {
	// Type is one of "nop", "prometheus" or "influx".
	Type string `json:"type" koanf:"type"`

	// Influx connection settings, ignored by the other types.
	URL    string `json:"url" koanf:"url"`
	Token  string `json:"token" koanf:"token"`
	Org    string `json:"org" koanf:"org"`
	Bucket string `json:"bucket" koanf:"bucket"`
}

// NewSink builds the configured sinks. No sinks configured means NopSink;
// more than one is wrapped in a MultiSink. An unreachable Influx instance
// degrades to NopSink rather than failing the run.
func NewSink(configs []SinkConfig) (coremetrics.MetricsSink, error) {
	var sinks []coremetrics.MetricsSink
	for _, c := range configs {
		switch c.Type {
		case "", "nop":
			sinks = append(sinks, coremetrics.NopSink{})
		case "prometheus":
			s, err := NewPromSink()
			if err != nil {
				return nil, fmt.Errorf("prometheus sink: %w", err)
			}
			sinks = append(sinks, s)
		case "influx":
			sinks = append(sinks, NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket))
		default:
			return nil, fmt.Errorf("unknown metrics sink type %q", c.Type)
		}
	}

	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
