package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"goldboard/internal/api"
	"goldboard/internal/collector"
	"goldboard/internal/config"
	"goldboard/internal/dataset"
	"goldboard/internal/recorder"
	"goldboard/internal/scheduler"
	"goldboard/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] goldboard starting...")

	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Load the dataset. An unreadable or empty file is terminal: the session
	// never reaches Ready and nothing is served.
	ds, err := dataset.Load(cfg.Data.File)
	if err != nil {
		log.Fatalf("[FATAL] load dataset: %v", err)
	}
	sess, err := session.New(ds)
	if err != nil {
		log.Fatalf("[FATAL] init session: %v", err)
	}
	log.Printf("[INFO] loaded %d quotes across %d dates, newest %s",
		ds.Len(), sess.Index().Len(), sess.CurrentDate())

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional crawler
	var sched *scheduler.Scheduler
	if cfg.Crawler.Enabled {
		fetcher := collector.NewPNJFetcher(cfg.Crawler.BaseURL, cfg.Crawler.Zone, cfg.Proxy)
		log.Printf("[INFO] quote source: %s", fetcher.Name())

		sinks := []recorder.Recorder{recorder.NewCSVRecorder(cfg.Data.File)}
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				log.Printf("[WARN] init sqlite recorder failed, csv only: %v", err)
			} else {
				sinks = append(sinks, sr)
			}
		}
		rec := recorder.NewMultiRecorder(sinks...)
		defer rec.Close()

		col := collector.NewCollector(fetcher, rec)
		sched = scheduler.NewScheduler(ctx, col)
		if err := sched.Register(cfg.Crawler.Cron); err != nil {
			log.Fatalf("[FATAL] register crawl task: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, crawling now")
			go sched.RunNow()
		}
	}

	// HTTP view-model API
	handler := api.NewHandler(sess)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.SetupRoutes(handler),
	}
	go func() {
		log.Printf("[INFO] serving dashboard API on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] goldboard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] goldboard stopped")
}
