package model

// ActionType names a state transition for history and logging.
type ActionType string

const (
	ActionIncomeUpgrade   ActionType = "INCOME_UPGRADE"
	ActionDoubleGPS       ActionType = "DOUBLE_GPS"
	ActionClickUpgrade    ActionType = "CLICK_UPGRADE"
	ActionPrestigeUpgrade ActionType = "PRESTIGE_UPGRADE"
	ActionPrestige        ActionType = "PRESTIGE"
	ActionHardReset       ActionType = "HARD_RESET"
	ActionGrant           ActionType = "DEV_GRANT"
)
