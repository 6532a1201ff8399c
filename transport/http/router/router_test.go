package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosvc/config"
	"todosvc/infras/metrics"
	otelMocks "todosvc/infras/otel/mocks"
	"todosvc/internal/domains/todo/repository"
	"todosvc/internal/domains/todo/service"
	"todosvc/internal/handlers/health"
	"todosvc/internal/handlers/todo"
	"todosvc/transport/http/middleware"
	"todosvc/transport/http/router"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "todo-api"
	cfg.App.Metrics.Enable = true
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	cfg.App.CORS.AllowedHeaders = []string{"Content-Type"}

	return cfg
}

func newHandler(cfg *config.Config) http.Handler {
	ot := otelMocks.NewOtel()
	m := metrics.New(cfg)

	handlers := router.DomainHandlers{
		Health: health.New(),
		Todo:   todo.New(service.New(repository.New(ot), ot), ot),
	}

	r := router.New(handlers, middleware.NewAppMiddleware(ot, cfg, nil, m), m, cfg)

	return r.Handler()
}

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c client) do(method, target, body string) (int, map[string]any) {
	c.t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var payload map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}

	return rec.Code, payload
}

func TestRouter_EndToEnd(t *testing.T) {
	c := client{t: t, handler: newHandler(newConfig())}

	code, created := c.do(http.MethodPost, "/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, code)

	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	code, fetched := c.do(http.MethodGet, "/todos/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, fetched)

	code, updated := c.do(http.MethodPut, "/todos/"+id, `{"completed":true}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, updated["completed"])
	assert.Equal(t, "Buy milk", updated["title"])

	code, deleted := c.do(http.MethodDelete, "/todos/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Todo deleted", deleted["message"])

	code, missing := c.do(http.MethodGet, "/todos/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Todo not found", missing["error"])
}

func TestRouter_Health(t *testing.T) {
	c := client{t: t, handler: newHandler(newConfig())}

	code, body := c.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	c := client{t: t, handler: newHandler(newConfig())}

	code, body := c.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Not found", body["error"])

	code, body = c.do(http.MethodPatch, "/todos/abc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, "Method not allowed", body["error"])
}

func TestRouter_RequestIDAndCORS(t *testing.T) {
	handler := newHandler(newConfig())

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Metrics(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		handler := newHandler(newConfig())

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `route="/health"`)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := newConfig()
		cfg.App.Metrics.Enable = false

		rec := httptest.NewRecorder()
		newHandler(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
