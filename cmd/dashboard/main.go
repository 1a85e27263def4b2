package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rashed-commits/uae-market-intel/config"
	"github.com/rashed-commits/uae-market-intel/fixture"
	"github.com/rashed-commits/uae-market-intel/handlers"
	"github.com/rashed-commits/uae-market-intel/refresh"
	"github.com/rashed-commits/uae-market-intel/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "dashboard").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	setLogLevel(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	signalStore := store.New()
	fetcher := refresh.NewHTTPFetcher(cfg.FeedURL, cfg.FetchTimeout)
	controller := refresh.NewController(signalStore, fetcher, fixture.Signals(), cfg.RefreshInterval, logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handlers.NewDashboard(signalStore, controller, cfg.SectorTopN).Register(r)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	go controller.Run(ctx)

	srv := &http.Server{Addr: cfg.Addr, Handler: r}
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("starting dashboard server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	logger.Info().Msg("dashboard stopped")
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
