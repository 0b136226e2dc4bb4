package economy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
	"BubbleClicker/internal/recorder"
	"BubbleClicker/internal/store"
)

type captureRecorder struct {
	recorder.NoopRecorder
	actions   []recorder.ActionEvent
	prestiges []recorder.PrestigeEvent
}

func (c *captureRecorder) RecordAction(evt *recorder.ActionEvent) error {
	c.actions = append(c.actions, *evt)
	return nil
}

func (c *captureRecorder) RecordPrestige(evt *recorder.PrestigeEvent) error {
	c.prestiges = append(c.prestiges, *evt)
	return nil
}

type downKV struct{}

func (downKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("unavailable") }
func (downKV) Put(string, []byte) error         { return errors.New("unavailable") }
func (downKV) Delete(...string) error           { return errors.New("unavailable") }
func (downKV) Close() error                     { return nil }

func newManagerForTest(t *testing.T) (*Manager, *store.MemoryKV, *captureRecorder) {
	t.Helper()
	kv := store.NewMemoryKV()
	rec := &captureRecorder{}
	return NewManager(store.NewGateway(kv), rec, false), kv, rec
}

func setState(m *Manager, fn func(s *model.EconomyState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

func TestNewManager_FreshSaveIsDefault(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	assert.Equal(t, model.DefaultState(), m.State())
	assert.NotEmpty(t, m.RunID())
}

func TestPop_CreditsClickYield(t *testing.T) {
	m, kv, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.GoldPerClick = 10
		s.PrestigeUpgrades[model.UpgradeClick10] = 5
	})

	require.True(t, m.Pop())
	s := m.State()
	assert.Equal(t, 15.0, s.Currency)
	assert.Equal(t, 15.0, s.LifetimeGold)

	reloaded := store.NewGateway(kv).Load()
	assert.Equal(t, 15.0, reloaded.Currency)
	assert.Equal(t, 15.0, reloaded.LifetimeGold)
}

func TestBuyIncomeUpgrade(t *testing.T) {
	m, _, rec := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) { s.Currency = 49 })
	assert.False(t, m.BuyIncomeUpgrade())
	assert.Equal(t, 0, m.State().UpgradeLevel)
	assert.Empty(t, rec.actions)

	setState(m, func(s *model.EconomyState) { s.Currency = 50 + 59 })
	assert.True(t, m.BuyIncomeUpgrade())
	assert.True(t, m.BuyIncomeUpgrade())
	assert.False(t, m.BuyIncomeUpgrade())

	s := m.State()
	assert.Equal(t, 2, s.UpgradeLevel)
	assert.Equal(t, 0.0, s.Currency)
	require.Len(t, rec.actions, 2)
	assert.Equal(t, model.ActionIncomeUpgrade, rec.actions[1].Action)
	assert.Equal(t, 59.0, rec.actions[1].Cost)
}

func TestBuyDoubleGPS_Boundary(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) { s.Currency = 199 })
	assert.False(t, m.BuyDoubleGPS())
	s := m.State()
	assert.Equal(t, 0, s.DoubleGPSLevel)
	assert.Equal(t, 199.0, s.Currency)

	setState(m, func(s *model.EconomyState) { s.Currency = 200 })
	assert.True(t, m.BuyDoubleGPS())
	s = m.State()
	assert.Equal(t, 1, s.DoubleGPSLevel)
	assert.Equal(t, 0.0, s.Currency)
	assert.Equal(t, 540.0, s.DoubleGPSCost)
}

func TestBuyClickUpgrade(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) { s.Currency = 60 })
	assert.True(t, m.BuyClickUpgrade())

	s := m.State()
	assert.Equal(t, 10.0, s.Currency)
	assert.Equal(t, 2, s.GoldPerClick)
	assert.Equal(t, 1, s.ClickUpgradeLevel)
	assert.Equal(t, 105.0, s.ClickUpgradeCost)
	assert.False(t, m.BuyClickUpgrade())
}

func TestBuyPrestigeUpgrade_Click10ToMax(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) { s.PrestigeStars = 20 })

	for i := 0; i < 10; i++ {
		require.True(t, m.BuyPrestigeUpgrade(model.UpgradeClick10), "purchase %d", i+1)
	}
	s := m.State()
	assert.Equal(t, 10, s.Owned(model.UpgradeClick10))
	assert.Equal(t, 0, s.PrestigeStars)

	setState(m, func(s *model.EconomyState) { s.PrestigeStars = 5 })
	assert.False(t, m.BuyPrestigeUpgrade(model.UpgradeClick10))
	s = m.State()
	assert.Equal(t, 10, s.Owned(model.UpgradeClick10))
	assert.Equal(t, 5, s.PrestigeStars)
}

func TestBuyPrestigeUpgrade_Rejections(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	assert.False(t, m.BuyPrestigeUpgrade("bogus"))

	setState(m, func(s *model.EconomyState) { s.PrestigeStars = 2 })
	assert.False(t, m.BuyPrestigeUpgrade(model.UpgradeEarlyAuto))
	assert.True(t, m.BuyPrestigeUpgrade(model.UpgradeStart100))
	assert.False(t, m.BuyPrestigeUpgrade(model.UpgradeStart100), "start100 max is 1")
	assert.Equal(t, 1, m.State().PrestigeStars)
}

func TestPrestige_BelowThresholdIsNoop(t *testing.T) {
	m, _, rec := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.Currency = 999_999
		s.UpgradeLevel = 5
	})
	before := m.State()
	_, ok := m.Prestige()
	assert.False(t, ok)
	assert.Equal(t, before, m.State())
	assert.Empty(t, rec.prestiges)
}

func TestPrestige_ResetsRunKeepsPermanent(t *testing.T) {
	for _, start100 := range []bool{false, true} {
		m, kv, rec := newManagerForTest(t)
		setState(m, func(s *model.EconomyState) {
			s.Currency = 2_500_000
			s.LifetimeGold = 3_000_000
			s.PrestigeStars = 1
			s.UpgradeLevel = 40
			s.DoubleGPSLevel = 3
			s.DoubleGPSCost = calculator.DoubleGPSCost(3)
			s.ClickUpgradeLevel = 4
			s.ClickUpgradeCost = calculator.ClickUpgradeCost(4)
			s.GoldPerClick = 5
			s.PrestigeUpgrades[model.UpgradeClick10] = 2
			if start100 {
				s.PrestigeUpgrades[model.UpgradeStart100] = 1
			}
		})
		oldRun := m.RunID()

		outcome, ok := m.Prestige()
		require.True(t, ok)
		assert.Equal(t, model.PrestigeOutcome{Converted: 2_500_000, StarsEarned: 2}, outcome)
		s := m.State()

		wantCurrency := 0.0
		if start100 {
			wantCurrency = StartingGoldBonus
		}
		assert.Equal(t, wantCurrency, s.Currency)
		assert.Equal(t, 3, s.PrestigeStars)
		assert.Equal(t, 3_000_000.0, s.LifetimeGold)
		assert.Equal(t, 0, s.UpgradeLevel)
		assert.Equal(t, 0, s.DoubleGPSLevel)
		assert.Equal(t, 0, s.ClickUpgradeLevel)
		assert.Equal(t, 1, s.GoldPerClick)
		assert.Equal(t, 200.0, s.DoubleGPSCost)
		assert.Equal(t, 50.0, s.ClickUpgradeCost)
		assert.Equal(t, 2, s.Owned(model.UpgradeClick10))
		assert.Equal(t, float64(model.DefaultPrestigeCost), s.PrestigeCost)

		require.Len(t, rec.prestiges, 1)
		assert.Equal(t, 2, rec.prestiges[0].StarsEarned)
		assert.Equal(t, oldRun, rec.prestiges[0].RunID)
		assert.NotEqual(t, oldRun, m.RunID())

		assert.Equal(t, s, store.NewGateway(kv).Load())
	}
}

func TestPrestige_HugeCurrencySaturatesStars(t *testing.T) {
	m, _, rec := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.Currency = 1e26
		s.PrestigeStars = 5
	})
	snap := m.Snapshot()
	assert.True(t, snap.CanPrestige)
	assert.Equal(t, calculator.MaxStarsPerPrestige, snap.StarsIfPrestigeNow)

	outcome, ok := m.Prestige()
	require.True(t, ok)
	assert.Equal(t, 1e26, outcome.Converted)
	assert.Equal(t, calculator.MaxStarsPerPrestige, outcome.StarsEarned)
	assert.Equal(t, 5+calculator.MaxStarsPerPrestige, m.State().PrestigeStars)
	assert.Equal(t, 0.0, m.State().Currency)
	require.Len(t, rec.prestiges, 1)
}

func TestTick(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	assert.False(t, m.Tick(), "no income yet")

	setState(m, func(s *model.EconomyState) {
		s.UpgradeLevel = 10
		s.DoubleGPSLevel = 2
	})
	assert.True(t, m.Tick())
	assert.True(t, m.Tick())
	s := m.State()
	assert.Equal(t, 80.0, s.Currency)
	assert.Equal(t, 80.0, s.LifetimeGold)
}

func TestLifetimeGoldNeverDecreases(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.Currency = 1_200_000
		s.PrestigeStars = 3
	})

	last := m.State().LifetimeGold
	steps := []func() bool{
		m.Pop, m.BuyIncomeUpgrade, m.BuyDoubleGPS, m.BuyClickUpgrade, m.Tick,
		func() bool { return m.BuyPrestigeUpgrade(model.UpgradeStart100) },
		func() bool { _, ok := m.Prestige(); return ok },
		m.Pop, m.Tick,
	}
	for i, step := range steps {
		step()
		s := m.State()
		assert.GreaterOrEqual(t, s.LifetimeGold, last, "step %d", i)
		assert.GreaterOrEqual(t, s.Currency, 0.0, "step %d", i)
		last = s.LifetimeGold
	}
}

func TestRateListener(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	calls := 0
	m.SetRateListener(func() { calls++ })

	m.Pop()
	assert.Equal(t, 0, calls, "pop leaves the income rate alone")

	setState(m, func(s *model.EconomyState) { s.Currency = 50 })
	require.True(t, m.BuyIncomeUpgrade())
	assert.Equal(t, 1, calls)

	m.HardReset()
	assert.Equal(t, 2, calls)
}

func TestHardReset_FreshLoadIsDefault(t *testing.T) {
	m, kv, rec := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.Currency = 5000
		s.PrestigeStars = 4
		s.LifetimeGold = 1e7
	})
	m.Pop()
	oldRun := m.RunID()

	assert.True(t, m.HardReset())
	assert.Equal(t, model.DefaultState(), m.State())
	assert.NotEqual(t, oldRun, m.RunID())
	assert.Equal(t, model.DefaultState(), store.NewGateway(kv).Load())
	require.NotEmpty(t, rec.actions)
	assert.Equal(t, model.ActionHardReset, rec.actions[len(rec.actions)-1].Action)
}

func TestStorageUnavailable_GameplayContinues(t *testing.T) {
	m := NewManager(store.NewGateway(downKV{}), recorder.NewNoopRecorder(), false)
	assert.Equal(t, model.DefaultState(), m.State())

	for i := 0; i < 50; i++ {
		m.Pop()
	}
	assert.True(t, m.BuyIncomeUpgrade())
	assert.Equal(t, 1, m.State().UpgradeLevel)
	assert.True(t, m.HardReset())
}

func TestReload_ReproducesDerivedRates(t *testing.T) {
	m, kv, _ := newManagerForTest(t)
	setState(m, func(s *model.EconomyState) {
		s.Currency = 10_000
		s.PrestigeStars = 12
		s.PrestigeUpgrades[model.UpgradeClick10] = 4
	})
	m.BuyIncomeUpgrade()
	m.BuyDoubleGPS()
	m.BuyClickUpgrade()
	before := m.Snapshot()

	again := NewManager(store.NewGateway(kv), recorder.NewNoopRecorder(), false)
	after := again.Snapshot()
	assert.Equal(t, before.IncomeRate, after.IncomeRate)
	assert.Equal(t, before.EffectiveClickYield, after.EffectiveClickYield)
	assert.Equal(t, before, after)
}

func TestDevGrants(t *testing.T) {
	m, _, _ := newManagerForTest(t)
	assert.False(t, m.GrantCurrency(1_000_000))
	assert.False(t, m.GrantStars(10))
	assert.False(t, m.GrantLevels(10, 2))
	assert.Equal(t, model.DefaultState(), m.State())

	dev := NewManager(store.NewGateway(store.NewMemoryKV()), recorder.NewNoopRecorder(), true)
	assert.True(t, dev.GrantCurrency(1_000_000))
	assert.True(t, dev.GrantLevels(10, 2))
	assert.True(t, dev.GrantStars(10))
	assert.False(t, dev.GrantCurrency(-5))

	s := dev.State()
	assert.Equal(t, 1_000_000.0, s.Currency)
	assert.Equal(t, 0.0, s.LifetimeGold)
	assert.Equal(t, 10, s.UpgradeLevel)
	assert.Equal(t, 2, s.DoubleGPSLevel)
	assert.Equal(t, calculator.DoubleGPSCost(2), s.DoubleGPSCost)
	assert.Equal(t, 10, s.PrestigeStars)
}
