package recorder

import "BubbleClicker/internal/model"

// ActionEvent records one applied purchase, grant or reset.
type ActionEvent struct {
	RunID         string
	Action        model.ActionType
	Detail        string // prestige upgrade key or grant kind, empty otherwise
	Cost          float64
	CurrencyAfter float64
	StarsAfter    int
}

// PrestigeEvent records a completed prestige.
type PrestigeEvent struct {
	RunID          string
	NextRunID      string
	CurrencyBefore float64
	StarsEarned    int
	StarsAfter     int
	LifetimeGold   float64
	PrestigeCost   float64
}

// StatsSnapshot is a periodic sample of the economy.
type StatsSnapshot struct {
	RunID    string
	Snapshot model.Snapshot
}

// Recorder persists play history for later analysis. It is separate from
// the save records: losing history never affects the game.
type Recorder interface {
	RecordAction(evt *ActionEvent) error
	RecordPrestige(evt *PrestigeEvent) error
	RecordSnapshot(snap *StatsSnapshot) error
	Close() error
}
