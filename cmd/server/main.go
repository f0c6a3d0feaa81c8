package main

import (
	"fmt"

	"github.com/MKhiriev/freight-calculator/internal/adapter"
	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/handler"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/server"
	"github.com/MKhiriev/freight-calculator/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("freight-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("sandbox", cfg.Provider.IsSandbox()).
		Str("version", cfg.App.Version).
		Msg("received configs")

	quoteClient := adapter.NewMelhorEnvioClient(cfg.Provider, log)

	services, err := service.NewServices(quoteClient, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
