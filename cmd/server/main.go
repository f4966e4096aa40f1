package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CPU/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"
	"ctchen222/Tic-Tac-Toe-CPU/internal/config"
	"ctchen222/Tic-Tac-Toe-CPU/internal/logger"
	"ctchen222/Tic-Tac-Toe-CPU/internal/server"
	"ctchen222/Tic-Tac-Toe-CPU/internal/telemetry"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.LogLevel)
	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	calculator, err := bot.NewMoveCalculator()
	if err != nil {
		log.Fatalf("failed to create move calculator: %v", err)
	}

	// Create controllers
	gameController := controller.NewGameController()

	// Create the Gin-based server
	srv := server.NewServer(calculator, gameController, cfg.ThinkDelay)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr(), "think_delay", cfg.ThinkDelay)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return
	}

	slog.Info("Server exiting")
}
