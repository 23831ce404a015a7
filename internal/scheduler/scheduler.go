package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/worker"
)

// Enqueuer accepts jobs for asynchronous execution
type Enqueuer interface {
	Enqueue(job worker.Job) error
}

// Scheduler enqueues jobs on fixed intervals
type Scheduler struct {
	workerPool Enqueuer
	quit       chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the queue
// full is skipped rather than queued behind the previous one.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	if interval <= 0 {
		return
	}

	logger.Info("Job scheduled", "job", job.Name(), "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.workerPool.Enqueue(job); err != nil {
					logger.Warn("Scheduled job skipped", "job", job.Name(), "error", err)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
