// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command gateway runs the API gateway that forwards /users, /products and
// /orders to their backend services.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/gateway"
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

	log := logger.NewLogger(models.ServiceGateway, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger(models.ServiceGateway, cfg.Log.Level)

	m := metrics.New(models.ServiceGateway, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	routes, err := gateway.NewRouteTable(cfg.Services)
	if err != nil {
		log.Fatal().Err(err).Msg("error building route table")
	}
	for _, backend := range routes.Backends() {
		log.Info().Str("prefix", backend.Prefix).Str("backend", backend.Name).Str("address", backend.BaseURL).Msg("route registered")
	}

	handlers, err := handler.NewHandlers(models.ServiceGateway, handler.Dependencies{
		Routes:    routes,
		Forwarder: gateway.NewForwarder(cfg.Services.ProxyTimeout, m, log),
		Metrics:   m,
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped with error")
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
