package model

// NextCosts holds the price of the next level of each gold upgrade track.
type NextCosts struct {
	Income    float64 `json:"income"`
	DoubleGPS float64 `json:"doubleGps"`
	Click     float64 `json:"click"`
}

// Snapshot is the read-only view handed to front ends.
type Snapshot struct {
	Currency            float64        `json:"currency"`
	IncomeRate          float64        `json:"incomeRate"`
	EffectiveClickYield float64        `json:"effectiveClickYield"`
	UpgradeLevel        int            `json:"upgradeLevel"`
	DoubleGPSLevel      int            `json:"doubleGpsLevel"`
	ClickUpgradeLevel   int            `json:"clickUpgradeLevel"`
	PrestigeStars       int            `json:"prestigeStars"`
	LifetimeGold        float64        `json:"lifetimeGold"`
	PrestigeUpgrades    map[string]int `json:"prestigeUpgrades"`
	NextCosts           NextCosts      `json:"nextCosts"`
	CanPrestige         bool           `json:"canPrestige"`
	StarsIfPrestigeNow  int            `json:"starsIfPrestigeNow"`
}

// PrestigeOutcome describes a completed prestige as it happened under the lock.
type PrestigeOutcome struct {
	Converted   float64 `json:"converted"`
	StarsEarned int     `json:"starsEarned"`
}
