package datadog

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSampleRate(t *testing.T) {
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate("foo"))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(1.25))
	assert.Equal(t, float64(1), getSampleRate(1))
	assert.Equal(t, 0.33, getSampleRate(0.33))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(0))
	assert.Equal(t, float64(DefaultSampleRate), getSampleRate(-0.55))
}

func TestGetTags(t *testing.T) {
	assert.Equal(t, []string{}, getTags(nil))
	assert.Equal(t, []string{}, getTags([]string{}))
	assert.Equal(t, []string{"env:bar", "a:b"}, getTags([]any{"env:bar", "a:b"}))
	assert.Equal(t, []string{}, getTags(map[string]any{"env": "bar"}))
}

func TestToDatadogTags(t *testing.T) {
	assert.Nil(t, toDatadogTags(nil))
	assert.Equal(t, []string{"result:ok", "table_type:ICEBERG"}, toDatadogTags(map[string]string{"table_type": "ICEBERG", "result": "ok"}))
}

func TestAddress(t *testing.T) {
	{
		t.Setenv("TELEMETRY_HOST", "")
		t.Setenv("TELEMETRY_PORT", "")
		assert.Equal(t, DefaultAddr, address(nil))
		assert.Equal(t, "localhost:1234", address(map[string]any{DatadogAddr: "localhost:1234"}))
	}
	{
		t.Setenv("TELEMETRY_HOST", "dd-agent")
		t.Setenv("TELEMETRY_PORT", "8125")
		assert.Equal(t, "dd-agent:8125", address(map[string]any{DatadogAddr: "localhost:1234"}))
	}
}

func TestNewDatadogClient(t *testing.T) {
	client, err := NewDatadogClient(map[string]any{
		Tags: []string{
			"env:production",
		},
		Namespace: "dusty.",
		Sampling:  0.255,
	})

	assert.NoError(t, err)
	mtr, ok := client.(*statsClient)
	assert.True(t, ok)
	assert.Equal(t, 0.255, mtr.rate)

	clientValue := reflect.ValueOf(mtr.client).Elem()
	assert.Equal(t, "dusty.", clientValue.FieldByName("namespace").String())
	tagsField := clientValue.FieldByName("tags")
	assert.Equal(t, 1, tagsField.Len())
	assert.Equal(t, "env:production", tagsField.Index(0).String())
}
