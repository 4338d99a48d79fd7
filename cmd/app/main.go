package main

import (
	"rentacar/config"
	"rentacar/di"
	"rentacar/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
