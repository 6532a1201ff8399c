//go:build wireinject
// +build wireinject

package di

import (
	"todosvc/config"
	"todosvc/infras/metrics"
	"todosvc/infras/otel"
	"todosvc/infras/redis"
	healthHandler "todosvc/internal/handlers/health"
	todoHandler "todosvc/internal/handlers/todo"
	"todosvc/shared/cache"
	"todosvc/transport/http"
	"todosvc/transport/http/middleware"
	"todosvc/transport/http/router"

	todoRepository "todosvc/internal/domains/todo/repository"
	todoService "todosvc/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	metrics.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	todoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
