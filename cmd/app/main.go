package main

import (
	"todosvc/config"
	"todosvc/di"
	"todosvc/shared/logger"
)

//	@title			Todo API
//	@version		1.0
//	@description	In-memory todo list service.

//	@host		localhost:5001
//	@BasePath	/

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
