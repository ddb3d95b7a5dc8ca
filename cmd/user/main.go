// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command user runs the user service: registration, login and the current
// account API backed by the users table.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/adapter"
	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/handler"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/internal/server"
	"github.com/MKhiriev/go-micro-commerce/internal/service"
	"github.com/MKhiriev/go-micro-commerce/internal/store"
	"github.com/MKhiriev/go-micro-commerce/internal/workers"
	"github.com/MKhiriev/go-micro-commerce/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger(models.ServiceUser, "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger(models.ServiceUser, cfg.Log.Level)

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("user service stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	ctx := context.Background()
	m := metrics.New(models.ServiceUser, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	notificationAdapter, err := adapter.NewHTTPNotificationAdapter(cfg.Services, cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating notification adapter: %w", err)
	}
	notificationWorker := workers.NewNotificationWorker(notificationAdapter, cfg.Workers, m, log)

	services, err := service.NewServices(store.NewStorages(db, log), notificationWorker, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(models.ServiceUser, handler.Dependencies{
		Services: services,
		Metrics:  m,
	}, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	background := workers.NewWorkers(notificationWorker)
	background.Run(workersCtx)

	err = srv.RunServer(ctx)

	stopWorkers()
	background.Wait()

	return err
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
