package store

import (
	"encoding/json"
	"fmt"
	"log"

	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
)

// Storage keys, shared with the original browser saves.
const (
	RunKey       = "bubble-clicker-game-state"
	PermanentKey = "bubble-clicker-prestige"
)

// Gateway loads and saves the run and permanent records.
type Gateway struct {
	kv KV
}

func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv}
}

func (g *Gateway) read(key string) map[string]json.RawMessage {
	data, found, err := g.kv.Get(key)
	if err != nil {
		log.Printf("[WARN] read %q failed, using defaults: %v", key, err)
		return nil
	}
	if !found {
		return nil
	}
	return fields(key, data)
}

// Load rebuilds the economy from storage. It never fails: anything missing
// or unreadable falls back to its default one field at a time.
func (g *Gateway) Load() model.EconomyState {
	def := model.DefaultState()
	perm := g.read(PermanentKey)
	run := g.read(RunKey)

	// Older saves kept prestigeCost in the permanent record.
	legacyPrestigeCost := field(perm, "prestigeCost", def.PrestigeCost, positive)

	s := model.EconomyState{
		PrestigeStars: field(perm, "prestigeStars", def.PrestigeStars, nonNegativeInt),
		LifetimeGold:  field(perm, "lifetimeGold", def.LifetimeGold, nonNegative),

		Currency:          field(run, "currency", def.Currency, nonNegative),
		UpgradeLevel:      field(run, "upgradeLevel", def.UpgradeLevel, pricedLevel(calculator.UpgradeCost)),
		DoubleGPSLevel:    field(run, "doubleGpsLevel", def.DoubleGPSLevel, pricedLevel(calculator.DoubleGPSCost)),
		DoubleGPSCost:     field(run, "doubleGpsCost", def.DoubleGPSCost, positive),
		GoldPerClick:      field(run, "goldPerClick", def.GoldPerClick, positiveInt),
		ClickUpgradeLevel: field(run, "clickUpgradeLevel", def.ClickUpgradeLevel, pricedLevel(calculator.ClickUpgradeCost)),
		ClickUpgradeCost:  field(run, "clickUpgradeCost", def.ClickUpgradeCost, positive),
		PrestigeUpgrades:  prestigeUpgrades(run),
		PrestigeCost:      field(run, "prestigeCost", legacyPrestigeCost, positive),
	}

	if want := calculator.DoubleGPSCost(s.DoubleGPSLevel); s.DoubleGPSCost != want {
		log.Printf("[WARN] cached doubleGpsCost %.0f does not match level %d, using %.0f", s.DoubleGPSCost, s.DoubleGPSLevel, want)
		s.DoubleGPSCost = want
	}
	if want := calculator.ClickUpgradeCost(s.ClickUpgradeLevel); s.ClickUpgradeCost != want {
		log.Printf("[WARN] cached clickUpgradeCost %.0f does not match level %d, using %.0f", s.ClickUpgradeCost, s.ClickUpgradeLevel, want)
		s.ClickUpgradeCost = want
	}
	return s
}

func (g *Gateway) put(key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := g.kv.Put(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// SaveRun writes the run record as one snapshot.
func (g *Gateway) SaveRun(s *model.EconomyState) error {
	return g.put(RunKey, model.RunRecordOf(s))
}

// SavePermanent writes the permanent record as one snapshot.
func (g *Gateway) SavePermanent(s *model.EconomyState) error {
	return g.put(PermanentKey, model.PermanentRecordOf(s))
}

// Clear deletes both records.
func (g *Gateway) Clear() error {
	if err := g.kv.Delete(RunKey, PermanentKey); err != nil {
		return fmt.Errorf("clear save: %w", err)
	}
	return nil
}
