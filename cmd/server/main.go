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

	"pdf-reader-api/internal/config"
	"pdf-reader-api/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	defer func() { _ = container.Close() }()

	cfg := container.GetConfig()
	logger := container.GetLogger()

	// Handlers
	maxFileSize := container.Validator.MaxFileSize()
	pdfHandlers := make([]*handler.PDFHandler, 0, len(container.Engines))
	for _, engine := range container.Engines {
		pdfHandlers = append(pdfHandlers, handler.NewPDFHandler(
			engine.Path,
			engine.Description,
			engine.Service,
			maxFileSize,
			logger,
		))
	}

	// Router
	router := handler.NewRouter(
		pdfHandlers,
		"Access the API at http://localhost:"+cfg.GetServerPort(),
		cfg.GetAllowedOrigins(),
		handler.RequestIDMiddleware,
		handler.NewLoggingMiddleware(logger).Middleware,
		handler.NewRecoveryMiddleware(logger).Middleware,
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadTimeout:       cfg.GetReadTimeout(),
		ReadHeaderTimeout: cfg.GetReadHeaderTimeout(),
		WriteTimeout:      cfg.GetWriteTimeout(),
		IdleTimeout:       cfg.GetIdleTimeout(),
	}

	// Run server
	go func() {
		logger.Info("Server listening",
			"address", server.Addr,
			"max_file_size", maxFileSize,
			"extract_timeout", cfg.GetExtractTimeout().String(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", err)
			_ = container.Close()
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	logger.Info("Server exited")
}
