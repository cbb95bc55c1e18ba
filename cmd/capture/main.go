package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"radio-capture/internal/capture"
	"radio-capture/internal/platform/config"
	"radio-capture/internal/platform/logger"
	"radio-capture/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()

	port := config.GetEnv("PORT", "8080")
	outputDir := config.GetEnv("OUTPUT_DIR", "sound")
	scheduleFile := config.GetEnv("SCHEDULE_FILE", "schedule.txt")
	apiURLFile := config.GetEnv("API_URL_FILE", "api_link.txt")
	pollInterval := config.GetEnvDuration("POLL_INTERVAL", 10*time.Second)
	httpTimeout := config.GetEnvDuration("HTTP_TIMEOUT", 15*time.Second)
	logLevel := config.GetEnv("LOG_LEVEL", "info")
	logFormat := config.GetEnv("LOG_FORMAT", "json")

	log := logger.New(logLevel, logFormat)

	met := metrics.New()
	fetcher := capture.NewFetcher(&http.Client{Timeout: httpTimeout})
	rec := capture.NewRecorder(
		fetcher,
		capture.FileCombiner{},
		capture.NewPeriodManager(outputDir),
		capture.NewScheduleSource(scheduleFile),
		capture.NewEndpointSource(apiURLFile),
		log,
		met,
	)

	r := chi.NewRouter()
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		met.Handler(func() { met.SetProcessedSegments(rec.ProcessedCount()) }).ServeHTTP(w, req)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := ":" + port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			// The capture loop keeps running without the metrics surface.
			log.Error("metrics server error", "error", err)
		}
	}()

	log.Info("capture starting",
		"port", port,
		"output_dir", outputDir,
		"schedule_file", scheduleFile,
		"api_url_file", apiURLFile,
		"poll_interval", pollInterval.String(),
		"log_level", logLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec.Run(ctx, pollInterval)

	log.Info("shutdown signal received, stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("capture stopped")
}
