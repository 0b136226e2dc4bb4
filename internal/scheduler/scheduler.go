package scheduler

import (
	"fmt"
	"log"

	"BubbleClicker/internal/economy"
	"BubbleClicker/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the periodic tasks that drive the economy: the income
// tick and the history snapshot.
type Scheduler struct {
	Cron     *cron.Cron
	Economy  *economy.Manager
	Income   *IncomeTicker
	Recorder recorder.Recorder
}

// NewScheduler creates a Scheduler and subscribes the income ticker to rate changes.
func NewScheduler(m *economy.Manager, rec recorder.Recorder, incomeSpec string) *Scheduler {
	c := cron.New(cron.WithSeconds())
	s := &Scheduler{
		Cron:     c,
		Economy:  m,
		Income:   NewIncomeTicker(c, incomeSpec, m),
		Recorder: rec,
	}
	m.SetRateListener(func() {
		if err := s.Income.Sync(); err != nil {
			log.Printf("[ERROR] %v", err)
		}
	})
	return s
}

// RegisterAll registers the snapshot task and arms the income tick if the
// loaded save already earns passive income.
func (s *Scheduler) RegisterAll(snapshotCron string) error {
	if _, err := s.Cron.AddFunc(snapshotCron, s.snapshotTask); err != nil {
		return fmt.Errorf("register snapshot task: %w", err)
	}
	if err := s.Income.Sync(); err != nil {
		return err
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) snapshotTask() {
	if err := s.Recorder.RecordSnapshot(&recorder.StatsSnapshot{
		RunID:    s.Economy.RunID(),
		Snapshot: s.Economy.Snapshot(),
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}
