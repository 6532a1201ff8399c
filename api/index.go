package handler

import (
	"net/http"
	"sync"

	"todosvc/config"
	"todosvc/di"
	"todosvc/shared/logger"
)

var (
	once    sync.Once
	service http.Handler
)

// Handler is the serverless entrypoint. The service graph, and with it the
// todo store, is built once per instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
