package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"todosvc/config"
	"todosvc/infras/metrics"
	"todosvc/infras/otel"
	"todosvc/shared/cache"
	"todosvc/shared/constant"
	"todosvc/shared/failure"
	"todosvc/transport/http/response"
)

const routeUnmatched = "unmatched"

type AppMiddleware interface {
	Observe(next http.Handler) http.Handler
	Recover(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	cache   cache.RedisCache
	metrics metrics.Metrics
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, metrics metrics.Metrics) AppMiddleware {
	return &appMiddleware{
		otel:    otel,
		config:  config,
		cache:   cache,
		metrics: metrics,
	}
}

// Observe opens a span for the request, logs its arrival and, once the handler
// chain has returned or unwound, logs and records the status and elapsed time.
func (a *appMiddleware) Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		method := request.Method
		path := request.URL.Path

		ctx, scope := a.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, fmt.Sprintf("%s %s", method, path))

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       path,
			"http.method":     method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     a.getClientIP(request),
		})

		requestID := chiMiddleware.GetReqID(ctx)
		if requestID != "" {
			writer.Header().Set(constant.RequestHeaderRequestID, requestID)
		}

		log.Info().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msgf("Request: %s %s", method, path)

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		defer func() {
			status := wrapped.Status()
			if status == 0 {
				status = http.StatusOK
			}

			elapsed := time.Since(start)
			route := routePattern(request)

			scope.SetAttributes(map[string]any{
				"http.route":       route,
				"http.status_code": status,
				"http.duration":    elapsed,
			})

			if status >= http.StatusInternalServerError {
				scope.TraceError(fmt.Errorf("%s %s answered %d", method, path, status))
			}

			scope.End()

			a.metrics.ObserveRequest(method, route, status, elapsed)

			log.Info().
				Int("status", status).
				Dur("duration", elapsed).
				Str("request_id", requestID).
				Msgf("Response: %d - Duration: %.3fs", status, elapsed.Seconds())
		}()

		next.ServeHTTP(wrapped, request.WithContext(ctx))
	})
}

// Recover is the catch-all boundary: a panic anywhere below it becomes a generic
// 500 response, with the detail only in the log.
func (a *appMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,err113
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec) //nolint:err113
			}

			log.Error().
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Err(err).
				Msg("Error occurred")

			response.WithError(writer, failure.InternalError(fmt.Errorf("recovered panic: %w", err)))
		}()

		next.ServeHTTP(writer, request)
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return routeUnmatched
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return routeUnmatched
}
