package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doc-digest/internal/config"
	"doc-digest/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wiring
	container, err := config.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	defer container.Close()

	digestHandler := handler.NewDigestHandler(
		container.DigestService,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(digestHandler, cfg.GetAllowedOrigins(), container.Logger)

	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Generation dominates request time; leave room past its own timeout.
		WriteTimeout: cfg.GetGenerationTimeout() + 30*time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"llm_provider", cfg.GetLLMProvider(),
			"pdf_engine", cfg.GetPDFEngine(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Graceful shutdown
	select {
	case err, ok := <-serverErr:
		if ok {
			container.Logger.Error("Server failed to start", err)
			container.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	container.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
