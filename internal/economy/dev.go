package economy

import (
	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
)

// Developer grants. They are refused unless the manager was built with
// dev mode on. Granted gold does not count toward lifetime gold.

// DevMode reports whether developer grants are allowed.
func (m *Manager) DevMode() bool {
	return m.devMode
}

// GrantCurrency adds gold to the current run.
func (m *Manager) GrantCurrency(amount float64) bool {
	if !m.devMode || amount <= 0 {
		return false
	}
	return m.update(func(s *model.EconomyState) dirty {
		s.Currency += amount
		m.record(model.ActionGrant, "currency", amount)
		return dirtyRun
	})
}

// GrantLevels adds income and doubling levels without paying for them.
func (m *Manager) GrantLevels(income, doubling int) bool {
	if !m.devMode || income < 0 || doubling < 0 || income+doubling == 0 {
		return false
	}
	return m.update(func(s *model.EconomyState) dirty {
		s.UpgradeLevel += income
		s.DoubleGPSLevel += doubling
		s.DoubleGPSCost = calculator.DoubleGPSCost(s.DoubleGPSLevel)
		m.record(model.ActionGrant, "levels", 0)
		return dirtyRun
	})
}

// GrantStars adds prestige stars.
func (m *Manager) GrantStars(n int) bool {
	if !m.devMode || n <= 0 {
		return false
	}
	return m.update(func(s *model.EconomyState) dirty {
		s.PrestigeStars += n
		m.record(model.ActionGrant, "stars", float64(n))
		return dirtyPermanent
	})
}
