package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VHAlvesS/caseAnka-backend/internal/config"
	"github.com/VHAlvesS/caseAnka-backend/internal/database"
	"github.com/VHAlvesS/caseAnka-backend/internal/server"
	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	repo, err := database.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	svc := usecase.New(repo)
	app := server.New(cfg, svc, logger)

	// Server startup
	go func() {
		log.Printf("API server starting on %s", app.Addr)
		if err := app.ListenAndServe(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
		os.Exit(1)
	}

	if err := svc.Close(); err != nil {
		log.Printf("Close error: %v", err)
	}

	log.Println("API server exited properly")
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
