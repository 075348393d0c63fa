package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/library-lending-go/shell/oteladapters"
)

func Test_MetricsCollector_RecordDuration_InSeconds(t *testing.T) {
	// arrange
	reader, collector := newMetricsCollector()
	labels := map[string]string{"command_type": "LendBook", "status": "success"}

	// act
	collector.RecordDurationContext(context.Background(), "library_command_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram := findHistogram(t, collect(t, reader), "library_command_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(1), histogram.DataPoints[0].Count)
	assert.InDelta(t, 0.15, histogram.DataPoints[0].Sum, 0.001)

	expected := attribute.NewSet(attribute.String("command_type", "LendBook"), attribute.String("status", "success"))
	assert.True(t, histogram.DataPoints[0].Attributes.Equals(&expected))
}

func Test_MetricsCollector_IncrementCounter_ReusesInstrument(t *testing.T) {
	// arrange
	reader, collector := newMetricsCollector()
	labels := map[string]string{"command_type": "ReturnBook", "status": "rejected"}

	// act
	collector.IncrementCounter("library_command_rejected_total", labels)
	collector.IncrementCounterContext(context.Background(), "library_command_rejected_total", labels)

	// assert
	counter := findCounter(t, collect(t, reader), "library_command_rejected_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(2), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_RecordValue_KeepsLastValue(t *testing.T) {
	// arrange
	reader, collector := newMetricsCollector()
	labels := map[string]string{"query_type": "SearchBooks", "status": "success"}

	// act
	collector.RecordValue("library_query_result_size", 4, labels)
	collector.RecordValueContext(context.Background(), "library_query_result_size", 1, labels)

	// assert
	gauge := findGauge(t, collect(t, reader), "library_query_result_size")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 1.0, gauge.DataPoints[0].Value, 0.0001)
}

func newMetricsCollector() (*sdkmetric.ManualReader, *oteladapters.MetricsCollector) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return reader, oteladapters.NewMetricsCollector(provider.Meter("library-test"))
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func findMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Aggregation {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if m.Name == name {
				return m.Data
			}
		}
	}

	t.Fatalf("metric %s not found", name)

	return nil
}

func findHistogram(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Histogram[float64] {
	t.Helper()

	histogram, ok := findMetric(t, resourceMetrics, name).(metricdata.Histogram[float64])
	require.True(t, ok, "metric %s is not a float64 histogram", name)

	return histogram
}

func findCounter(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	counter, ok := findMetric(t, resourceMetrics, name).(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", name)

	return counter
}

func findGauge(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Gauge[float64] {
	t.Helper()

	gauge, ok := findMetric(t, resourceMetrics, name).(metricdata.Gauge[float64])
	require.True(t, ok, "metric %s is not a float64 gauge", name)

	return gauge
}
