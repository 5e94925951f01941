package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/devdhirendra/enhanced-ns-sub000/internal/config"
	"github.com/devdhirendra/enhanced-ns-sub000/internal/core/logger"
	"github.com/devdhirendra/enhanced-ns-sub000/internal/sandbox"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cfg := config.Load()
	appLogger := logger.NewLogger(cfg.LogLevel)
	defer appLogger.Sync()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sandbox.Run(ctx, cfg.Sandbox, appLogger); err != nil {
		appLogger.Error("sandbox failed", zap.Error(err))
		os.Exit(1)
	}
}
