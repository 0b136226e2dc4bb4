package model

// Starting values for a fresh save.
const (
	DefaultGoldPerClick     = 1
	DefaultDoubleGPSCost    = 200
	DefaultClickUpgradeCost = 50
	DefaultPrestigeCost     = 1_000_000
)

// EconomyState is the authoritative game economy for one session.
// Derived rates are never stored here; see calculator.IncomeRate and
// calculator.EffectiveClickYield.
type EconomyState struct {
	Currency     float64
	LifetimeGold float64

	UpgradeLevel      int
	DoubleGPSLevel    int
	ClickUpgradeLevel int

	DoubleGPSCost    float64
	ClickUpgradeCost float64
	GoldPerClick     int

	PrestigeStars    int
	PrestigeUpgrades map[string]int
	PrestigeCost     float64
}

// DefaultState returns the state of a brand new save.
func DefaultState() EconomyState {
	return EconomyState{
		DoubleGPSCost:    DefaultDoubleGPSCost,
		ClickUpgradeCost: DefaultClickUpgradeCost,
		GoldPerClick:     DefaultGoldPerClick,
		PrestigeUpgrades: map[string]int{},
		PrestigeCost:     DefaultPrestigeCost,
	}
}

// Clone returns a deep copy so callers can't mutate the upgrade map.
func (s EconomyState) Clone() EconomyState {
	out := s
	out.PrestigeUpgrades = make(map[string]int, len(s.PrestigeUpgrades))
	for k, v := range s.PrestigeUpgrades {
		out.PrestigeUpgrades[k] = v
	}
	return out
}

// Owned returns how many levels of a prestige upgrade have been bought.
func (s EconomyState) Owned(key string) int {
	return s.PrestigeUpgrades[key]
}
