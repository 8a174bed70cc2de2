package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artistic-unity/internal/catalog"
	"artistic-unity/internal/config"
	"artistic-unity/internal/frames"
	"artistic-unity/internal/infrastructure/logger"
	"artistic-unity/internal/infrastructure/mail"
	"artistic-unity/internal/order"
	"artistic-unity/internal/server"
	"artistic-unity/internal/upload"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		zapLogger.Fatal("loading catalog", zap.Error(err))
	}
	zapLogger.Info("catalog loaded", zap.Int("frames", len(cat.Frames())))

	sender := mail.NewSMTPSender(cfg.Mail)

	framesCtrl := frames.NewModule(cat, zapLogger)
	uploadCtrl := upload.NewModule(cfg, zapLogger)
	orderCtrl := order.NewModule(cat, sender, cfg, zapLogger)

	router := server.NewRouter(framesCtrl, uploadCtrl, orderCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
