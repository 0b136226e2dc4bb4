package calculator

import (
	"math"

	"BubbleClicker/internal/model"
)

const (
	starBonusPerStar  = 0.02
	clickBonusPerRank = 0.1
)

// PrestigeBonus is the permanent income multiplier granted by stars.
func PrestigeBonus(stars int) float64 {
	return 1 + float64(stars)*starBonusPerStar
}

// RawIncomeRate is the uncapped gold per second.
func RawIncomeRate(s *model.EconomyState) float64 {
	return float64(s.UpgradeLevel) * math.Pow(2, float64(s.DoubleGPSLevel)) * PrestigeBonus(s.PrestigeStars)
}

// IncomeRate is the gold per second actually paid by the tick.
func IncomeRate(s *model.EconomyState) float64 {
	return math.Floor(SoftCap(RawIncomeRate(s), IncomeSoftCap, DefaultSoftCapPower))
}

// ClickBonus is the multiplier from owned click10 ranks.
func ClickBonus(s *model.EconomyState) float64 {
	return 1 + clickBonusPerRank*float64(s.Owned(model.UpgradeClick10))
}

// RawClickYield is the uncapped gold per pop.
func RawClickYield(s *model.EconomyState) float64 {
	return float64(s.GoldPerClick) * ClickBonus(s)
}

// EffectiveClickYield is the gold actually paid by a pop.
func EffectiveClickYield(s *model.EconomyState) float64 {
	return math.Floor(SoftCap(RawClickYield(s), ClickSoftCap, DefaultSoftCapPower))
}

// Snapshot builds the front-end view of a state. All derived values are
// computed fresh from s.
func Snapshot(s *model.EconomyState) model.Snapshot {
	c := s.Clone()
	stars := StarsFor(c.Currency)
	return model.Snapshot{
		Currency:            c.Currency,
		IncomeRate:          IncomeRate(&c),
		EffectiveClickYield: EffectiveClickYield(&c),
		UpgradeLevel:        c.UpgradeLevel,
		DoubleGPSLevel:      c.DoubleGPSLevel,
		ClickUpgradeLevel:   c.ClickUpgradeLevel,
		PrestigeStars:       c.PrestigeStars,
		LifetimeGold:        c.LifetimeGold,
		PrestigeUpgrades:    c.PrestigeUpgrades,
		NextCosts: model.NextCosts{
			Income:    UpgradeCost(c.UpgradeLevel),
			DoubleGPS: DoubleGPSCost(c.DoubleGPSLevel),
			Click:     ClickUpgradeCost(c.ClickUpgradeLevel),
		},
		CanPrestige:        stars >= 1,
		StarsIfPrestigeNow: stars,
	}
}
