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

	"sneakerblog/api"
	"sneakerblog/config"
	"sneakerblog/pipeline"
	"sneakerblog/scheduler"
	"sneakerblog/state"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	cfg := config.Load()

	stateManager := state.NewManager()
	runner, err := pipeline.NewFromConfig(cfg, stateManager)
	if err != nil {
		log.Fatalf("❌ Failed to initialize pipeline: %v", err)
	}

	sched := scheduler.New(runner, 5*time.Minute)
	if err := sched.Register(cfg.Schedules()...); err != nil {
		log.Fatalf("❌ Failed to register schedules: %v", err)
	}
	sched.Start()

	r := api.NewRouter(api.NewHandler(runner, stateManager))
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Server listening on port %s", cfg.Port)
		log.Println("API endpoints available:")
		log.Println("  GET  /")
		log.Println("  GET  /api/health")
		log.Println("  GET  /api/fetch-sneaker-news")
		log.Println("  POST /api/publish-blog-post")
		log.Println("  POST /api/fetch-and-publish")
		log.Println("  GET  /api/status")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  HTTP shutdown error: %v", err)
	}
	if err := sched.Stop(ctx); err != nil {
		log.Printf("⚠️  Scheduler did not stop cleanly: %v", err)
	}
	log.Println("Server stopped")
}
