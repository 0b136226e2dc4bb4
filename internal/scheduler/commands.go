package scheduler

import (
	"html"
	"strings"

	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
	"BubbleClicker/internal/notifier"
)

// Developer grant sizes.
const (
	grantGold           = 1_000_000
	grantIncomeLevels   = 10
	grantDoublingLevels = 2
	grantStars          = 10
)

// HandleCommand applies a player command and returns the reply to show.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(command), "/")))
	if len(fields) == 0 {
		return notifier.FormatHelp(s.Economy.DevMode())
	}

	switch fields[0] {
	case "pop":
		s.Economy.Pop()
		snap := s.Economy.Snapshot()
		return notifier.FormatPop(&snap)
	case "status", "start":
		snap := s.Economy.Snapshot()
		return notifier.FormatStatus(&snap)
	case "shop":
		snap := s.Economy.Snapshot()
		return notifier.FormatShop(&snap)
	case "buy":
		return s.handleBuy(fields[1:])
	case "prestige":
		outcome, ok := s.Economy.Prestige()
		if !ok {
			return notifier.FormatDenied("prestige", calculator.GoldPerStar, s.Economy.Snapshot().Currency, "gold")
		}
		after := s.Economy.Snapshot()
		return notifier.FormatPrestige(&outcome, &after)
	case "reset":
		if len(fields) < 2 || fields[1] != "confirm" {
			return "⚠️ This wipes all progress, stars included. Send \"reset confirm\" to continue."
		}
		s.Economy.HardReset()
		return "🧼 Progress reset."
	case "grant":
		return s.handleGrant(fields[1:])
	default:
		return notifier.FormatHelp(s.Economy.DevMode())
	}
}

func (s *Scheduler) handleBuy(args []string) string {
	if len(args) == 0 {
		snap := s.Economy.Snapshot()
		return notifier.FormatShop(&snap)
	}
	before := s.Economy.Snapshot()

	var ok bool
	var what string
	var cost float64
	switch args[0] {
	case "income":
		what, cost, ok = "income upgrade", before.NextCosts.Income, s.Economy.BuyIncomeUpgrade()
	case "double":
		what, cost, ok = "double GPS", before.NextCosts.DoubleGPS, s.Economy.BuyDoubleGPS()
	case "click":
		what, cost, ok = "click upgrade", before.NextCosts.Click, s.Economy.BuyClickUpgrade()
	case "star":
		return s.handleBuyStar(args[1:], &before)
	default:
		return notifier.FormatHelp(s.Economy.DevMode())
	}
	if !ok {
		return notifier.FormatDenied(what, cost, before.Currency, "gold")
	}
	after := s.Economy.Snapshot()
	return notifier.FormatStatus(&after)
}

func (s *Scheduler) handleBuyStar(args []string, before *model.Snapshot) string {
	if len(args) == 0 {
		return notifier.FormatShop(before)
	}
	// Keys are camelCase; commands arrive lowercased.
	var def model.PrestigeUpgradeDef
	found := false
	for _, d := range model.PrestigeShop {
		if strings.EqualFold(d.Key, args[0]) {
			def, found = d, true
			break
		}
	}
	if !found {
		return "❓ Unknown prestige upgrade: " + html.EscapeString(args[0])
	}
	if before.PrestigeUpgrades[def.Key] >= def.Max {
		return "✅ " + def.Name + " is already maxed."
	}
	if !s.Economy.BuyPrestigeUpgrade(def.Key) {
		return notifier.FormatDenied(def.Name, float64(def.Cost), float64(before.PrestigeStars), "⭐")
	}
	after := s.Economy.Snapshot()
	return notifier.FormatShop(&after)
}

func (s *Scheduler) handleGrant(args []string) string {
	if !s.Economy.DevMode() || len(args) == 0 {
		return notifier.FormatHelp(s.Economy.DevMode())
	}
	switch args[0] {
	case "gold":
		s.Economy.GrantCurrency(grantGold)
	case "levels":
		s.Economy.GrantLevels(grantIncomeLevels, grantDoublingLevels)
	case "stars":
		s.Economy.GrantStars(grantStars)
	default:
		return notifier.FormatHelp(true)
	}
	snap := s.Economy.Snapshot()
	return notifier.FormatStatus(&snap)
}
