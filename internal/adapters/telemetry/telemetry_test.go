package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/dist/internal/adapters/telemetry"
	"go.trai.ch/dist/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider)

	ctx, parent := tracer.Start(context.Background(), "resolve")
	parent.SetAttribute("version", "1.0.0")
	parent.SetAttribute("attempt", 2)
	parent.SetAttribute("catalog", true)
	parent.SetAttribute("channels", []string{"stable", "preview"})
	parent.SetAttribute("timeout", 2*time.Second)

	_, child := tracer.Start(ctx, "catalog.fetch")
	child.RecordError(errors.New("connection refused"))
	child.End()
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	fetchSpan, resolveSpan := spans[0], spans[1]
	assert.Equal(t, "catalog.fetch", fetchSpan.Name())
	assert.Equal(t, codes.Error, fetchSpan.Status().Code)
	assert.Equal(t, "connection refused", fetchSpan.Status().Description)
	assert.Equal(t, resolveSpan.SpanContext().SpanID(), fetchSpan.Parent().SpanID())

	assert.Equal(t, "resolve", resolveSpan.Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("version", "1.0.0"),
		attribute.Int("attempt", 2),
		attribute.Bool("catalog", true),
		attribute.StringSlice("channels", []string{"stable", "preview"}),
		attribute.String("timeout", "2s"),
	}, resolveSpan.Attributes())
}

func TestOTelSpan_RecordNilError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, span := tracer.Start(context.Background(), "activate")
	span.RecordError(nil)
	span.End()

	require.Len(t, recorder.Ended(), 1)
	assert.Equal(t, codes.Unset, recorder.Ended()[0].Status().Code)
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

type captureLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *captureLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *captureLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *captureLogger) Error(error) {}

func TestLogBridge(t *testing.T) {
	log := &captureLogger{}
	bridge := telemetry.NewLogBridge(log)
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge)))

	_, span := tracer.Start(context.Background(), "silent")
	span.End()
	assert.Empty(t, log.infos, "disabled bridge must not log")

	bridge.SetEnabled(true)
	assert.True(t, bridge.Enabled())

	_, span = tracer.Start(context.Background(), "resolve")
	span.SetAttribute("version", "1.0.0")
	span.End()

	_, span = tracer.Start(context.Background(), "catalog.fetch")
	span.RecordError(errors.New("offline"))
	span.End()

	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "trace resolve ")
	assert.Contains(t, log.infos[0], "version=1.0.0")

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "trace catalog.fetch ")
	assert.Contains(t, log.warns[0], "failed")
}
