package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"sneakerblog/pipeline"

	"github.com/robfig/cron/v3"
)

// Job is the run executed on every tick
type Job interface {
	Run(ctx context.Context, trigger pipeline.Trigger) (*pipeline.RunResult, error)
}

// Scheduler fires the publish pipeline on cron schedules
type Scheduler struct {
	cron    *cron.Cron
	job     Job
	timeout time.Duration
	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a scheduler; timeout bounds each run (0 means none)
func New(job Job, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		job:     job,
		timeout: timeout,
		entries: make(map[string]cron.EntryID),
	}
}

// Register adds one cron entry per schedule. Ticks may overlap a run already in flight.
func (s *Scheduler) Register(schedules ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, schedule := range schedules {
		if _, ok := s.entries[schedule]; ok {
			continue
		}
		id, err := s.cron.AddFunc(schedule, s.tick)
		if err != nil {
			return fmt.Errorf("failed to add cron job %q: %w", schedule, err)
		}
		s.entries[schedule] = id
		log.Printf("Cron job registered with schedule: %s", schedule)
	}
	return nil
}

// Entries returns the registered schedules with their next fire time
func (s *Scheduler) Entries() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]time.Time, len(s.entries))
	for schedule, id := range s.entries {
		out[schedule] = s.cron.Entry(id).Next
	}
	return out
}

// Start begins firing registered jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("✅ Scheduler started with %d schedules", len(s.entries))
}

// Stop stops the scheduler and waits for running jobs or ctx, whichever ends first
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) tick() {
	log.Println("Cron triggered: starting scheduled publish")

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.job.Run(ctx, pipeline.TriggerScheduled); err != nil {
		log.Printf("❌ Scheduled publish failed: %v", err)
	}
}
