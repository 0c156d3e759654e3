package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ocopmarket/order-gateway/internal/app/background"
	"github.com/ocopmarket/order-gateway/internal/app/setup"
	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/delivery/http/handlers"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/logger"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	zapLogger := logger.MustInit(cfg)
	defer zapLogger.Sync()

	deps, err := setup.InitializeDependencies(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	useCases := setup.InitializeUseCases(deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tasks := background.NewBackgroundTasks(deps.Backend, deps.Guards, cfg, deps.Metrics, zapLogger)
	tasks.StartAll(ctx)

	router := handlers.NewRouter(
		useCases.SessionUsecase,
		useCases.OrderUsecase,
		useCases.NotificationUsecase,
		zapLogger,
	)

	addr := net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		zapLogger.Info("order gateway listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
