package main

import (
	"majlis/config"
	"majlis/di"
	"majlis/shared/logger"

	_ "majlis/docs"
)

// @title Majlis Booking API
// @version 1.0
// @description Meeting-room booking dashboard backed by a remote spreadsheet API.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
