package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"todosvc/config"
	_ "todosvc/docs" // registers the swagger document
	"todosvc/infras/metrics"
	"todosvc/internal/handlers/health"
	"todosvc/internal/handlers/todo"
	"todosvc/shared/constant"
	"todosvc/shared/failure"
	"todosvc/transport/http/middleware"
	"todosvc/transport/http/response"
)

const (
	responseErrorNotFound         = "Not found"
	responseErrorMethodNotAllowed = "Method not allowed"
)

var exposedHeaders = []string{
	constant.RequestHeaderRequestID,
	constant.RequestHeaderRateLimit,
	constant.RequestHeaderRateLimitRemaining,
	constant.RequestHeaderRateLimitWindow,
}

type DomainHandlers struct {
	Health health.Handler
	Todo   todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Metrics        metrics.Metrics
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		r.Middleware.Observe,
		r.Middleware.Recover,
	)

	if r.Config.App.CORS.Enable {
		router.Use(r.cors())
	}

	router.Use(r.Middleware.RateLimit())

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, &failure.Failure{Code: http.StatusNotFound, Message: responseErrorNotFound})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, &failure.Failure{Code: http.StatusMethodNotAllowed, Message: responseErrorMethodNotAllowed})
	})

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Todo.Router(router)

	if r.Config.App.Metrics.Enable {
		router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())
	}

	if r.Config.App.Swagger.Enable {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
}

// Handler builds a fresh chi mux with every route mounted.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func (r *Router) cors() func(http.Handler) http.Handler {
	corsConfig := r.Config.App.CORS

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, m metrics.Metrics, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Metrics:        m,
		Config:         cfg,
	}
}
