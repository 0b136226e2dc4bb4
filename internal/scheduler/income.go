package scheduler

import (
	"fmt"
	"log"
	"sync"

	"BubbleClicker/internal/economy"

	"github.com/robfig/cron/v3"
)

// IncomeTicker pays passive income through a cron entry that only exists
// while the income rate is positive.
type IncomeTicker struct {
	mu      sync.Mutex
	cron    *cron.Cron
	spec    string
	economy *economy.Manager
	entry   cron.EntryID
	armed   bool
}

// NewIncomeTicker creates a ticker firing on spec (e.g. "@every 1s").
func NewIncomeTicker(c *cron.Cron, spec string, m *economy.Manager) *IncomeTicker {
	return &IncomeTicker{cron: c, spec: spec, economy: m}
}

// Sync arms the entry when income is positive and removes it when income
// drops to zero.
func (t *IncomeTicker) Sync() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	rate := t.economy.IncomeRate()

	switch {
	case rate > 0 && !t.armed:
		id, err := t.cron.AddFunc(t.spec, t.tick)
		if err != nil {
			return fmt.Errorf("arm income tick: %w", err)
		}
		t.entry = id
		t.armed = true
		log.Printf("[INFO] income tick armed at %.0f gold/s", rate)
	case rate <= 0 && t.armed:
		t.cron.Remove(t.entry)
		t.armed = false
		log.Println("[INFO] income tick disarmed")
	}
	return nil
}

// Armed reports whether the income entry is scheduled.
func (t *IncomeTicker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed
}

func (t *IncomeTicker) tick() {
	t.economy.Tick()
}
