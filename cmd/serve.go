package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"urlshot/internal/api"
	"urlshot/internal/api/handler/v1handler"
	"urlshot/internal/browser"
	"urlshot/internal/config"
	"urlshot/internal/crawler"
	"urlshot/internal/pipeline"
	"urlshot/pkg/logger"
	"urlshot/pkg/urlid"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupBrowserPool constructs the Chrome session factory and the bounded pool
// in front of it, returning the pool and a cleanup function.
func setupBrowserPool(ctx context.Context, cfg *config.Config) (*browser.Pool, func()) {
	factory := browser.NewChromeFactory(browser.ChromeOptions{
		DevToolsURL:    cfg.Browser.DevToolsURL,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		CaptureTimeout: cfg.Browser.CaptureTimeout,
	})
	pool := browser.NewPool(factory, browser.PoolOptions{
		MaxSessions: cfg.Browser.MaxSessions,
		QueueSize:   cfg.Browser.QueueSize,
		Registerer:  prometheus.DefaultRegisterer,
	})

	return pool, func() {
		logger.Info(ctx, "closing browser pool...")
		if err := pool.Close(); err != nil {
			logger.Warn(ctx, "could not close browser pool", zap.Error(err))
		}
		if err := factory.Close(); err != nil {
			logger.Warn(ctx, "could not close browser factory", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the capture API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			pool, closePool := setupBrowserPool(ctx, cfg)
			defer closePool()

			codec := urlid.New(urlid.Options{
				MinCandidateLength: cfg.Codec.MinCandidateLength,
				Placeholder:        cfg.Codec.Placeholder,
			})
			crwl := crawler.New(crawler.NewHTTPProber(cfg.Crawler.UserAgent), crawler.Options{
				MaxHops:    cfg.Crawler.MaxHops,
				HopTimeout: cfg.Crawler.HopTimeout,
			})
			pipe := pipeline.New(codec, crwl, pool, pipeline.Options{
				MaxURLLength:   cfg.MaxURLLength,
				AcquireTimeout: cfg.Browser.AcquireTimeout,
			})

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Pipeline: pipe,
				Storage:  strg,
				Pool:     pool,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
