package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dashmock/internal/config"
	cronrunner "dashmock/internal/cron"
	"dashmock/internal/logger"
	"dashmock/internal/mock"
	"dashmock/internal/randx"
	"dashmock/internal/server"
	"dashmock/internal/transport"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the mock dashboard backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return serve(cfgPath)
		},
	}
}

func serve(cfgPath string) error {
	envOnly := false
	if raw := os.Getenv("DM_ENV_ONLY"); raw != "" {
		envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	rnd := randx.New(cfg.Mock.Seed)
	mockTransport := transport.NewMock(transport.MockOptions{
		Logger: log,
		Rnd:    rnd,
		Dispatch: mock.Options{
			LatencyMin: cfg.Mock.LatencyMin,
			LatencyMax: cfg.Mock.LatencyMax,
			AllowHosts: cfg.Mock.AllowHosts,
			Crypto: mock.LedgerConfig{
				Count:     cfg.Mock.Crypto.Count,
				OpenCount: cfg.Mock.Crypto.OpenCount,
				Leverage:  cfg.Mock.Crypto.Leverage,
			},
			Futures: mock.LedgerConfig{
				Count:     cfg.Mock.Futures.Count,
				OpenCount: cfg.Mock.Futures.OpenCount,
				Leverage:  cfg.Mock.Futures.Leverage,
			},
		},
		TickMin: cfg.Stream.TickMin,
		TickMax: cfg.Stream.TickMax,
		NotifyFunc: func(notice string) {
			log.Info("user notice", zap.String("notice", notice))
		},
	})

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(server.CORSMiddleware())

	srvHandler := &server.Server{Transport: mockTransport, Logger: log}
	srvHandler.Register(engine)

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(log, ctx)
	if _, err := cronRunner.Add("@every 1m", func(context.Context) {
		requests, sessions := srvHandler.Snapshot()
		log.Info("runtime snapshot",
			zap.Int64("requests_served", requests),
			zap.Int64("stream_sessions", sessions),
		)
	}); err != nil {
		log.Warn("cron register snapshot failed", zap.Error(err))
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
