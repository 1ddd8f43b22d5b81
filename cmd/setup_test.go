package cmd

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSafeReplacesNonFiniteFloats(t *testing.T) {
	type inner struct {
		Parity float64
		Name   string
	}
	v := struct {
		Ratio  float64
		Nested inner
		Curve  []float64
		ByKey  map[string]float64
	}{
		Ratio:  math.Inf(1),
		Nested: inner{Parity: math.NaN(), Name: "bev-1"},
		Curve:  []float64{1, math.Inf(-1), 3},
		ByKey:  map[string]float64{"ok": 1.5, "bad": math.Inf(1)},
	}

	safe := jsonSafe(reflect.ValueOf(v))
	// The whole point: this must marshal without error.
	data, err := json.Marshal(safe)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out["Ratio"])
	nested := out["Nested"].(map[string]any)
	assert.Nil(t, nested["Parity"])
	assert.Equal(t, "bev-1", nested["Name"])
	curve := out["Curve"].([]any)
	assert.Nil(t, curve[1])
	assert.Equal(t, 3.0, curve[2])
	byKey := out["ByKey"].(map[string]any)
	assert.Nil(t, byKey["bad"])
	assert.Equal(t, 1.5, byKey["ok"])
}

func TestJSONSafeHandlesPointersAndNil(t *testing.T) {
	type node struct{ Value float64 }
	var nilNode *node
	assert.Nil(t, jsonSafe(reflect.ValueOf(nilNode)))

	n := &node{Value: 2}
	safe := jsonSafe(reflect.ValueOf(n)).(map[string]any)
	assert.Equal(t, 2.0, safe["Value"])
}
