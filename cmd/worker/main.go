package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sneakerblog/config"
	"sneakerblog/pipeline"
	"sneakerblog/scheduler"
)

// worker runs only the scheduled publish flow, without the HTTP API.
func main() {
	cfg := config.Load()

	once := flag.Bool("once", false, "Run the publish flow once and exit")
	timeout := flag.Duration("timeout", 5*time.Minute, "Upper bound for a single run")
	flag.Parse()

	runner, err := pipeline.NewFromConfig(cfg, nil)
	if err != nil {
		log.Fatalf("❌ Failed to initialize pipeline: %v", err)
	}

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		defer cancel()
		result, err := runner.Run(ctx, pipeline.TriggerManual)
		if err != nil {
			log.Fatalf("❌ Run failed: %v", err)
		}
		if result.Published() {
			fmt.Printf("Published article %d: %s\n", result.Article.ID, result.Article.Title)
		} else {
			fmt.Println("No matching items; nothing published")
		}
		return
	}

	sched := scheduler.New(runner, *timeout)
	schedules := cfg.Schedules()
	if len(schedules) == 0 {
		log.Fatalf("❌ No schedules configured (CRON_DAILY and CRON_WEEKLY are off)")
	}
	if err := sched.Register(schedules...); err != nil {
		log.Fatalf("❌ Failed to register schedules: %v", err)
	}
	sched.Start()

	fmt.Printf("👟 Sneaker Blog Worker\n")
	for schedule, next := range sched.Entries() {
		fmt.Printf("   Schedule %-12s next run %s\n", schedule, next.Format(time.RFC1123))
	}
	fmt.Println("\nPress Ctrl+C to shutdown")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sched.Stop(ctx); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Worker stopped")
}
