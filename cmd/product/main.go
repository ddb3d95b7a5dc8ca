// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command product runs the product service placeholder. It only reports its
// health.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/handler"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/internal/server"
	"github.com/MKhiriev/go-micro-commerce/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(models.ServiceProduct, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger(models.ServiceProduct, cfg.Log.Level)

	m := metrics.New(models.ServiceProduct, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	handlers, err := handler.NewHandlers(models.ServiceProduct, handler.Dependencies{Metrics: m}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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
