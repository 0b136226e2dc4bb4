package model

// RunRecord is the persisted subset of state that prestige resets.
// Field names match the original browser save format.
type RunRecord struct {
	Currency          float64        `json:"currency"`
	UpgradeLevel      int            `json:"upgradeLevel"`
	DoubleGPSLevel    int            `json:"doubleGpsLevel"`
	DoubleGPSCost     float64        `json:"doubleGpsCost"`
	GoldPerClick      int            `json:"goldPerClick"`
	ClickUpgradeLevel int            `json:"clickUpgradeLevel"`
	ClickUpgradeCost  float64        `json:"clickUpgradeCost"`
	PrestigeUpgrades  map[string]int `json:"prestigeUpgrades"`
	PrestigeCost      float64        `json:"prestigeCost"`
}

// PermanentRecord is the persisted subset of state that survives prestige.
type PermanentRecord struct {
	PrestigeStars int     `json:"prestigeStars"`
	LifetimeGold  float64 `json:"lifetimeGold"`
}

// RunRecordOf extracts the run record from a state.
func RunRecordOf(s *EconomyState) RunRecord {
	upgrades := make(map[string]int, len(s.PrestigeUpgrades))
	for k, v := range s.PrestigeUpgrades {
		upgrades[k] = v
	}
	return RunRecord{
		Currency:          s.Currency,
		UpgradeLevel:      s.UpgradeLevel,
		DoubleGPSLevel:    s.DoubleGPSLevel,
		DoubleGPSCost:     s.DoubleGPSCost,
		GoldPerClick:      s.GoldPerClick,
		ClickUpgradeLevel: s.ClickUpgradeLevel,
		ClickUpgradeCost:  s.ClickUpgradeCost,
		PrestigeUpgrades:  upgrades,
		PrestigeCost:      s.PrestigeCost,
	}
}

// PermanentRecordOf extracts the permanent record from a state.
func PermanentRecordOf(s *EconomyState) PermanentRecord {
	return PermanentRecord{
		PrestigeStars: s.PrestigeStars,
		LifetimeGold:  s.LifetimeGold,
	}
}
