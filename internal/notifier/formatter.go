package notifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"BubbleClicker/internal/calculator"
	"BubbleClicker/internal/model"
)

// gold renders a currency amount with thousands separators.
func gold(v float64) string {
	return humanize.Comma(int64(math.Floor(v)))
}

// FormatStatus formats the economy snapshot for display.
func FormatStatus(snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString("🫧 <b>Bubbles</b>\n\n")
	b.WriteString(fmt.Sprintf("Gold: %s\n", gold(snap.Currency)))
	b.WriteString(fmt.Sprintf("Gold/sec: %s | Gold/pop: %s\n", gold(snap.IncomeRate), gold(snap.EffectiveClickYield)))
	b.WriteString(fmt.Sprintf("Upgrades: income %d, double %d, click %d\n",
		snap.UpgradeLevel, snap.DoubleGPSLevel, snap.ClickUpgradeLevel))
	b.WriteString(fmt.Sprintf("⭐ Stars: %d (+%.0f%% income)\n",
		snap.PrestigeStars, (calculator.PrestigeBonus(snap.PrestigeStars)-1)*100))
	b.WriteString(fmt.Sprintf("Lifetime gold: %s\n", gold(snap.LifetimeGold)))

	if snap.CanPrestige {
		b.WriteString(fmt.Sprintf("\nPrestige now for %d ⭐", snap.StarsIfPrestigeNow))
	} else {
		b.WriteString(fmt.Sprintf("\nPrestige at %s gold (%s to go)",
			gold(calculator.GoldPerStar), gold(calculator.GoldPerStar-snap.Currency)))
	}
	return b.String()
}

// FormatPop acknowledges a manual pop.
func FormatPop(snap *model.Snapshot) string {
	return fmt.Sprintf("🫧 +%s | Gold: %s", gold(snap.EffectiveClickYield), gold(snap.Currency))
}

// FormatShop lists the gold and star upgrades with their next prices.
func FormatShop(snap *model.Snapshot) string {
	var b strings.Builder
	b.WriteString("🛒 <b>Shop</b>\n\n")
	b.WriteString(fmt.Sprintf("buy income — +1 gold/sec — %s gold\n", gold(snap.NextCosts.Income)))
	b.WriteString(fmt.Sprintf("buy double — x2 gold/sec — %s gold\n", gold(snap.NextCosts.DoubleGPS)))
	b.WriteString(fmt.Sprintf("buy click — +1 gold/pop — %s gold\n", gold(snap.NextCosts.Click)))

	b.WriteString("\n⭐ <b>Prestige upgrades</b>\n")
	for _, def := range model.PrestigeShop {
		owned := snap.PrestigeUpgrades[def.Key]
		status := fmt.Sprintf("%d ⭐", def.Cost)
		if owned >= def.Max {
			status = "maxed"
		}
		b.WriteString(fmt.Sprintf("buy star %s — %s (%d/%d) — %s\n", def.Key, def.Name, owned, def.Max, status))
	}

	b.WriteString("\n<i>Coming soon:</i> ")
	names := make([]string, 0, len(model.ShopItems))
	for _, item := range model.ShopItems {
		names = append(names, fmt.Sprintf("%s (%s)", item.Name, gold(item.Cost)))
	}
	b.WriteString(strings.Join(names, ", "))
	return b.String()
}

// FormatPrestige summarises a completed prestige.
func FormatPrestige(outcome *model.PrestigeOutcome, after *model.Snapshot) string {
	return fmt.Sprintf("✨ <b>Prestige!</b>\n\nConverted %s gold into %d ⭐\nStars: %d | Starting gold: %s",
		gold(outcome.Converted), outcome.StarsEarned, after.PrestigeStars, gold(after.Currency))
}

// FormatDenied explains why a purchase did not go through.
func FormatDenied(what string, need, have float64, unit string) string {
	return fmt.Sprintf("❌ Can't buy %s: need %s %s, have %s", what, gold(need), unit, gold(have))
}

// FormatHelp lists the available commands.
func FormatHelp(devMode bool) string {
	lines := []string{
		"Commands:",
		"• pop",
		"• status",
		"• shop",
		"• buy income | buy double | buy click",
		"• buy star <start100|click10|earlyAuto>",
		"• prestige",
		"• reset confirm",
	}
	if devMode {
		lines = append(lines, "• grant gold | grant levels | grant stars")
	}
	return strings.Join(lines, "\n")
}
