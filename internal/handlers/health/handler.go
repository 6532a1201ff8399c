package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"todosvc/shared/constant"
	"todosvc/transport/http/response"
)

type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func New() Handler {
	return Handler{
		now: time.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports liveness. It has no dependencies to check.
// @Summary Health check
// @Description Always answers healthy with the current UTC time.
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	response.WithJSON(writer, http.StatusOK, Response{
		Status:    constant.HealthStatusHealthy,
		Timestamp: handler.now().UTC().Format(constant.DateFormat),
	})
}
