package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, tp
}

func attrMap(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestRecordParseFault(t *testing.T) {
	sr, tp := newRecordingTracer()
	_, span := tp.Tracer("test").Start(context.Background(), "parse")

	RecordParseFault(span, errors.New("boom"), "uuid-123")
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)

	attrs := attrMap(ended[0])
	assert.Equal(t, string(ErrorTypeParse), attrs["error.type"].AsString())
	assert.Equal(t, "uuid-123", attrs["candidate.uuid"].AsString())
	require.Len(t, ended[0].Events(), 1) // RecordError产生一个exception事件
}

func TestRecordHTTPErrorCategorizesStatus(t *testing.T) {
	sr, tp := newRecordingTracer()
	_, span := tp.Tracer("test").Start(context.Background(), "http")

	RecordHTTPError(span, errors.New("not found"), 404)
	span.End()

	attrs := attrMap(sr.Ended()[0])
	assert.Equal(t, "client_error", attrs["error.category"].AsString())
	assert.Equal(t, int64(404), attrs["http.status_code"].AsInt64())
}

func TestRecordErrorNilSafe(t *testing.T) {
	// nil span与nil err都不应panic
	RecordError(nil, errors.New("x"), ErrorTypeDB)
	RecordParseFault(nil, nil, "")
	RecordHTTPError(nil, nil, 500)
	RecordErrorWithInfo(nil, nil, ErrorTypeRedis)
}
