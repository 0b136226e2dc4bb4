package model

// Prestige upgrade keys.
const (
	UpgradeStart100  = "start100"
	UpgradeClick10   = "click10"
	UpgradeEarlyAuto = "earlyAuto"
)

// PrestigeUpgradeDef describes one permanent upgrade bought with stars.
type PrestigeUpgradeDef struct {
	Key  string
	Name string
	Desc string
	Cost int
	Max  int
}

// PrestigeShop lists the star upgrades in display order.
// earlyAuto has no effect inside the economy core.
var PrestigeShop = []PrestigeUpgradeDef{
	{Key: UpgradeStart100, Name: "Start with 100 gold", Desc: "Begin each run with 100 gold.", Cost: 1, Max: 1},
	{Key: UpgradeClick10, Name: "+10% Click Value", Desc: "Increase manual click value by 10% per level.", Cost: 2, Max: 10},
	{Key: UpgradeEarlyAuto, Name: "Unlock Auto-Buyers Earlier", Desc: "Auto-buyers unlock at half the usual cost.", Cost: 3, Max: 1},
}

// LookupPrestigeUpgrade finds a star upgrade by key.
func LookupPrestigeUpgrade(key string) (PrestigeUpgradeDef, bool) {
	for _, def := range PrestigeShop {
		if def.Key == key {
			return def, true
		}
	}
	return PrestigeUpgradeDef{}, false
}

// ShopItem is a gold shop entry shown to the player. None of these items
// have an economic effect yet, so there is no purchase action for them.
type ShopItem struct {
	ID   int
	Name string
	Cost float64
}

var ShopItems = []ShopItem{
	{ID: 1, Name: "Bubble Blaster", Cost: 100},
	{ID: 2, Name: "Auto Popper", Cost: 250},
	{ID: 3, Name: "Golden Soap", Cost: 500},
}
