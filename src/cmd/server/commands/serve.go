package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/investlab/investment-gateway/src/internal/adapter/repository/postgres"
	"github.com/investlab/investment-gateway/src/internal/logger"
	"github.com/investlab/investment-gateway/src/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gw, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "database connection failed", err, logger.Fields{
			"driver": cfg.Database.Driver,
			"host":   cfg.Database.Host,
		})
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := gw.Close(); err != nil {
			logger.Error(context.Background(), "database close failed", err, nil)
		}
	}()

	if cfg.PoolStatsInterval > 0 {
		sched, err := scheduler.New()
		if err != nil {
			return err
		}
		if err := sched.NewIntervalJob(scheduler.PoolStatsJobName, scheduler.PoolStatsTask(gw), cfg.PoolStatsInterval, false); err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				logger.Error(context.Background(), "scheduler stop failed", err, nil)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      newAPIHandler(cfg, gw),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "http server listening", logger.Fields{
			"addr":   cfg.HTTP.Addr,
			"driver": cfg.Database.Driver,
			"auth":   cfg.Auth.Enabled(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "http server shutting down", logger.Fields{"timeout": cfg.HTTP.ShutdownTimeout.String()})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
