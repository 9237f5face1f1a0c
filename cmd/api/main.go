package main

import (
	"os"

	"github.com/mahadqr/timetable-api/internal/pkg/logger"
	"github.com/mahadqr/timetable-api/internal/server"
)

// @title Timetable API
// @version 1.0
// @description Student timetable browser with a personal assignment tracker

// @host localhost:8080
// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
