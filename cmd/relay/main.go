package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"github.com/taiwoajasa245/divine-answers/internal/server"
	"github.com/taiwoajasa245/divine-answers/pkg/config"
	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.ValidateRelay(); err != nil {
		log.Fatal("relay configuration invalid", "error", err)
	}

	srv := server.NewServer(cfg, nil, log)
	httpServer := srv.HTTPServer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("relay listening", "addr", httpServer.Addr, "model", cfg.GatewayModel, "env", cfg.AppEnv)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down relay")
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("relay stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("relay stopped gracefully")
}
