package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todosvc/internal/handlers/health"
)

func TestHealth(t *testing.T) {
	handler := health.New()

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)

	timestamp, err := time.Parse(time.RFC3339Nano, body.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, timestamp.Location())
	assert.WithinDuration(t, time.Now(), timestamp, time.Minute)
}
