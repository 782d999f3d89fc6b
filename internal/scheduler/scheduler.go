package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// RunFunc performs one run of a job. Its result is logged and discarded.
type RunFunc func(ctx context.Context) error

type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      RunFunc
}

type Scheduler struct {
	jobs   []Job
	logger *slog.Logger

	mu      sync.Mutex
	running map[string]bool
}

func NewScheduler(logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		jobs:    jobs,
		logger:  logger.With("component", "scheduler"),
		running: make(map[string]bool, len(jobs)),
	}
}

// Start runs every job with a positive interval immediately and then on its interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "jobs", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.Info("job is trigger only", "job", job.Name)
			continue
		}
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

// Trigger runs the named job once, outside its schedule.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.run(ctx, job)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownJob, name)
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	s.logger.Info("job scheduled", "job", job.Name, "interval", job.Interval)

	s.runLogged(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runLogged(ctx, job)
		}
	}
}

func (s *Scheduler) runLogged(ctx context.Context, job Job) {
	if err := s.run(ctx, job); err != nil {
		s.logger.Error("job failed", "job", job.Name, "error", err)
	}
}

var (
	ErrUnknownJob = errors.New("unknown job")
	// ErrAlreadyRunning is returned when a job is triggered while a run is in flight.
	ErrAlreadyRunning = errors.New("job already running")
)

func (s *Scheduler) run(ctx context.Context, job Job) error {
	s.mu.Lock()
	if s.running[job.Name] {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running[job.Name] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.running, job.Name)
		s.mu.Unlock()
	}()

	timeout := job.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := job.Run(runCtx)
	s.logger.Debug("job finished", "job", job.Name, "duration", time.Since(start))
	return err
}
