package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"todosvc/infras/otel"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "unit")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"http.method":      "GET",
		"http.status_code": 404,
		"app.enabled":      true,
		"duration":         1500 * time.Millisecond,
	})
	scope.AddEvent("Todo retrieved")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	ended := spans[0]
	assert.Equal(t, "unit", ended.Name())
	assert.Equal(t, codes.Error, ended.Status().Code)
	assert.Equal(t, "boom", ended.Status().Description)
	assert.Contains(t, ended.Attributes(), attribute.String("http.method", "GET"))
	assert.Contains(t, ended.Attributes(), attribute.Int("http.status_code", 404))
	assert.Contains(t, ended.Attributes(), attribute.Bool("app.enabled", true))
	assert.Contains(t, ended.Attributes(), attribute.Float64("duration", 1.5))
	require.Len(t, ended.Events(), 2)
	assert.Equal(t, "Todo retrieved", ended.Events()[0].Name)
}
