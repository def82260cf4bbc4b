package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cloister/internal/adapters/telemetry"
)

// installProvider swaps in a recording tracer provider for the duration of
// the test and restores the previous one afterwards.
func installProvider(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestOTelTracer_SpanWriteBecomesLogEvent(t *testing.T) {
	recorder := installProvider(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "write screen layout script")
	n, err := span.Write([]byte("xrandr --output HDMI-1\n"))
	span.End()

	assert.NoError(t, err)
	assert.Equal(t, 23, n)

	ended := recorder.Ended()
	if assert.Len(t, ended, 1) {
		events := ended[0].Events()
		if assert.Len(t, events, 1) {
			assert.Equal(t, "log", events[0].Name)
		}
	}
}

func TestOTelTracer_RecordErrorSetsErrorStatus(t *testing.T) {
	recorder := installProvider(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "classify game")
	span.RecordError(assert.AnError)
	span.End()

	ended := recorder.Ended()
	if assert.Len(t, ended, 1) {
		assert.Equal(t, assert.AnError.Error(), ended[0].Status().Description)
	}
}
