package economy

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
	"BubbleClicker/internal/recorder"
	"BubbleClicker/internal/store"
)

// StartingGoldBonus is the run currency granted by the start100 upgrade.
const StartingGoldBonus = 100

type dirty uint8

const (
	dirtyRun dirty = 1 << iota
	dirtyPermanent

	clean dirty = 0
)

// Manager owns the economy state and applies player actions to it.
// Every transition runs to completion under mu, so timer callbacks and
// front-end commands never interleave.
type Manager struct {
	mu       sync.Mutex
	state    *model.EconomyState
	gateway  *store.Gateway
	recorder recorder.Recorder
	runID    string
	devMode  bool
	onRate   func()
}

// NewManager loads the saved economy and writes it back normalised.
func NewManager(gw *store.Gateway, rec recorder.Recorder, devMode bool) *Manager {
	state := gw.Load()
	m := &Manager{
		state:    &state,
		gateway:  gw,
		recorder: rec,
		runID:    uuid.NewString(),
		devMode:  devMode,
	}
	m.save(dirtyRun | dirtyPermanent)
	return m
}

// SetRateListener registers fn to be called, outside the lock, whenever an
// action changes the income rate.
func (m *Manager) SetRateListener(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onRate = fn
}

// State returns a copy of the current state.
func (m *Manager) State() model.EconomyState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Snapshot returns the front-end view, with derived values computed now.
func (m *Manager) Snapshot() model.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return calculator.Snapshot(m.state)
}

// IncomeRate returns the current gold per second.
func (m *Manager) IncomeRate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return calculator.IncomeRate(m.state)
}

// RunID identifies the current run in recorded history.
func (m *Manager) RunID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runID
}

// update applies fn under the lock, saves the records it touched and fires
// the rate listener if the income rate moved.
func (m *Manager) update(fn func(s *model.EconomyState) dirty) bool {
	m.mu.Lock()
	before := calculator.IncomeRate(m.state)
	d := fn(m.state)
	m.save(d)
	changed := calculator.IncomeRate(m.state) != before
	listener := m.onRate
	m.mu.Unlock()

	if changed && listener != nil {
		listener()
	}
	return d != clean
}

func (m *Manager) save(d dirty) {
	if d&dirtyRun != 0 {
		if err := m.gateway.SaveRun(m.state); err != nil {
			log.Printf("[WARN] failed to save run record: %v", err)
		}
	}
	if d&dirtyPermanent != 0 {
		if err := m.gateway.SavePermanent(m.state); err != nil {
			log.Printf("[WARN] failed to save permanent record: %v", err)
		}
	}
}

func (m *Manager) record(action model.ActionType, detail string, cost float64) {
	if err := m.recorder.RecordAction(&recorder.ActionEvent{
		RunID:         m.runID,
		Action:        action,
		Detail:        detail,
		Cost:          cost,
		CurrencyAfter: m.state.Currency,
		StarsAfter:    m.state.PrestigeStars,
	}); err != nil {
		log.Printf("[ERROR] record %s: %v", action, err)
	}
}

// earn credits gold to both the run and the lifetime total.
func earn(s *model.EconomyState, amount float64) {
	s.Currency += amount
	s.LifetimeGold += amount
}

// Pop credits one manual bubble pop.
func (m *Manager) Pop() bool {
	return m.update(func(s *model.EconomyState) dirty {
		earn(s, calculator.EffectiveClickYield(s))
		return dirtyRun | dirtyPermanent
	})
}

// Tick pays one second of passive income. It does nothing while the rate is zero.
func (m *Manager) Tick() bool {
	return m.update(func(s *model.EconomyState) dirty {
		rate := calculator.IncomeRate(s)
		if rate <= 0 {
			return clean
		}
		earn(s, rate)
		return dirtyRun | dirtyPermanent
	})
}

// BuyIncomeUpgrade buys one level of passive income.
func (m *Manager) BuyIncomeUpgrade() bool {
	return m.update(func(s *model.EconomyState) dirty {
		cost := calculator.UpgradeCost(s.UpgradeLevel)
		if s.Currency < cost {
			return clean
		}
		s.Currency -= cost
		s.UpgradeLevel++
		m.record(model.ActionIncomeUpgrade, "", cost)
		return dirtyRun
	})
}

// BuyDoubleGPS doubles passive income.
func (m *Manager) BuyDoubleGPS() bool {
	return m.update(func(s *model.EconomyState) dirty {
		cost := calculator.DoubleGPSCost(s.DoubleGPSLevel)
		if s.Currency < cost {
			return clean
		}
		s.Currency -= cost
		s.DoubleGPSLevel++
		s.DoubleGPSCost = calculator.DoubleGPSCost(s.DoubleGPSLevel)
		m.record(model.ActionDoubleGPS, "", cost)
		return dirtyRun
	})
}

// BuyClickUpgrade adds one gold to every manual pop.
func (m *Manager) BuyClickUpgrade() bool {
	return m.update(func(s *model.EconomyState) dirty {
		cost := calculator.ClickUpgradeCost(s.ClickUpgradeLevel)
		if s.Currency < cost {
			return clean
		}
		s.Currency -= cost
		s.GoldPerClick++
		s.ClickUpgradeLevel++
		s.ClickUpgradeCost = calculator.ClickUpgradeCost(s.ClickUpgradeLevel)
		m.record(model.ActionClickUpgrade, "", cost)
		return dirtyRun
	})
}

// BuyPrestigeUpgrade spends stars on a permanent upgrade. Unknown keys and
// maxed upgrades are ignored.
func (m *Manager) BuyPrestigeUpgrade(key string) bool {
	def, ok := model.LookupPrestigeUpgrade(key)
	if !ok {
		return false
	}
	return m.update(func(s *model.EconomyState) dirty {
		if s.PrestigeStars < def.Cost || s.Owned(key) >= def.Max {
			return clean
		}
		if s.PrestigeUpgrades == nil {
			s.PrestigeUpgrades = map[string]int{}
		}
		s.PrestigeStars -= def.Cost
		s.PrestigeUpgrades[key]++
		m.record(model.ActionPrestigeUpgrade, key, float64(def.Cost))
		return dirtyRun | dirtyPermanent
	})
}

// Prestige converts run currency into stars and resets run progress.
// Lifetime gold, stars and prestige upgrades carry over. The outcome is only
// meaningful when ok is true.
func (m *Manager) Prestige() (outcome model.PrestigeOutcome, ok bool) {
	ok = m.update(func(s *model.EconomyState) dirty {
		earned := calculator.StarsFor(s.Currency)
		if earned < 1 {
			return clean
		}
		before := s.Currency

		s.PrestigeStars += earned
		s.Currency = 0
		if s.Owned(model.UpgradeStart100) > 0 {
			s.Currency = StartingGoldBonus
		}
		s.UpgradeLevel = 0
		s.DoubleGPSLevel = 0
		s.ClickUpgradeLevel = 0
		s.DoubleGPSCost = model.DefaultDoubleGPSCost
		s.ClickUpgradeCost = model.DefaultClickUpgradeCost
		s.GoldPerClick = model.DefaultGoldPerClick

		prev := m.runID
		m.runID = uuid.NewString()
		if err := m.recorder.RecordPrestige(&recorder.PrestigeEvent{
			RunID:          prev,
			NextRunID:      m.runID,
			CurrencyBefore: before,
			StarsEarned:    earned,
			StarsAfter:     s.PrestigeStars,
			LifetimeGold:   s.LifetimeGold,
			PrestigeCost:   s.PrestigeCost,
		}); err != nil {
			log.Printf("[ERROR] record prestige: %v", err)
		}
		log.Printf("[INFO] prestige: +%d stars (total %d), new run %s", earned, s.PrestigeStars, m.runID)
		outcome = model.PrestigeOutcome{Converted: before, StarsEarned: earned}
		return dirtyRun | dirtyPermanent
	})
	return outcome, ok
}

// HardReset wipes both save records and starts over from defaults.
func (m *Manager) HardReset() bool {
	m.update(func(s *model.EconomyState) dirty {
		if err := m.gateway.Clear(); err != nil {
			log.Printf("[WARN] failed to clear save: %v", err)
		}
		*s = model.DefaultState()
		m.record(model.ActionHardReset, "", 0)
		m.runID = uuid.NewString()
		log.Printf("[INFO] hard reset, new run %s", m.runID)
		return clean
	})
	return true
}
