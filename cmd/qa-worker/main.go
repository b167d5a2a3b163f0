package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tmabaso/legal-qa-core/internal/bootstrap"
	"github.com/tmabaso/legal-qa-core/internal/config"
	"github.com/tmabaso/legal-qa-core/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.Service, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.OptimizeSchedule, func() {
		app.Cache.Optimize(context.Background())
	})
	if err != nil {
		log.Fatalf("invalid optimize schedule %q: %v", cfg.OptimizeSchedule, err)
	}
	scheduler.Start()
	log.Printf("cache maintenance scheduled (%s)", cfg.OptimizeSchedule)

	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	server := &http.Server{
		Addr:         ":" + cfg.WorkerMetricsPort,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("metrics listening on :%s", cfg.WorkerMetricsPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("metrics server error: %v", err)
		}
	}()

	<-ctx.Done()

	cronCtx := scheduler.Stop()
	<-cronCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("metrics shutdown error: %v", err)
	}
}
