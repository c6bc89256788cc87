package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/api"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/config"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/queue"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and database
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, serviceManager := api.App()

	// Consume queued mail jobs; the worker is nil when the queue is disabled
	worker := queue.NewWorker(serviceManager.EmailService, logger)
	if worker != nil {
		go worker.Run(ctx)
	}

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", gecho.Field("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", gecho.Field("error", err))
	}

	if worker != nil {
		if err := worker.Close(); err != nil {
			logger.Warn("Failed to close mail worker", gecho.Field("error", err))
		}
	}
	if serviceManager.MailProducer != nil {
		if err := serviceManager.MailProducer.Close(); err != nil {
			logger.Warn("Failed to close mail producer", gecho.Field("error", err))
		}
	}
	if err := serviceManager.CacheService.Close(); err != nil {
		logger.Warn("Failed to close cache connection", gecho.Field("error", err))
	}
	if err := database.CloseInstance(); err != nil {
		logger.Warn("Failed to close database connection", gecho.Field("error", err))
	}

	logger.Info("Shutdown complete")
}
