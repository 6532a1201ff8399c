package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosvc/config"
	"todosvc/infras/metrics"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "todo-api"

	m := metrics.New(cfg)
	m.ObserveRequest(http.MethodGet, "/todos/{id}", http.StatusNotFound, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `todo_api_http_requests_total{app="todo-api",method="GET",route="/todos/{id}",status="404"} 1`)
	assert.Contains(t, string(body), `todo_api_http_request_duration_seconds_count{app="todo-api",method="GET",route="/todos/{id}"} 1`)
}
