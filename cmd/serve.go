package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BookingBrowser/internal/api"
	"github.com/m04kA/SMC-BookingBrowser/internal/integrations/notifier"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/auth"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
	"github.com/m04kA/SMC-BookingBrowser/pkg/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.close()

	cfg, log := a.cfg, a.log
	log.Info("Starting SMC-BookingBrowser...")

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		gateOpts         []auth.Option
		registryOpts     []registry.Option
		notifiers        = notifier.Fanout{notifier.NewLogNotifier(log)}
	)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		gateOpts = append(gateOpts, auth.WithObserver(metricsCollector))
		registryOpts = append(registryOpts, registry.WithGauge(metricsCollector))
		notifiers = append(notifiers, notifier.NewMetricsNotifier(metricsCollector))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	registryOpts = append(registryOpts,
		registry.WithGateOptions(gateOpts...),
		registry.WithIdleTTL(time.Duration(cfg.Sessions.IdleTTL)*time.Second),
	)

	sessions := registry.New(
		a.reference(),
		auth.Credentials{Login: cfg.Auth.Login, Password: cfg.Auth.Password},
		notifiers,
		log,
		registryOpts...,
	)

	// Вытесняем брошенные вкладки
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sessions.RunSweeper(sweepCtx, time.Duration(cfg.Sessions.SweepInterval)*time.Second)
	log.Info("Idle sessions expire after %ds (sweep every %ds)", cfg.Sessions.IdleTTL, cfg.Sessions.SweepInterval)

	deps := api.Deps{
		Sessions: sessions,
		Catalog:  a.catalog,
		Logger:   log,
	}
	if metricsCollector != nil {
		deps.Metrics = metricsCollector
		deps.MetricsPath = cfg.Metrics.Path
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		return err
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully, sessions dropped: %d", sessions.Len())
	return nil
}
