package calculator

import "math"

// Curve parameters for the three gold upgrade tracks.
const (
	incomeBase   = 50.0
	incomeGrowth = 1.18

	doubleGPSBase   = 200.0
	doubleGPSGrowth = 2.7

	clickBase   = 50.0
	clickGrowth = 2.1

	prestigeGrowth = 2.5
)

// Soft cap thresholds.
const (
	DefaultSoftCapPower = 0.5
	IncomeSoftCap       = 1000.0
	ClickSoftCap        = 100.0
)

// GoldPerStar is how much run currency converts into one prestige star.
const GoldPerStar = 1_000_000

func exponentialCost(base, growth float64, level int) float64 {
	if level < 0 {
		level = 0
	}
	return math.Floor(base * math.Pow(growth, float64(level)))
}

// UpgradeCost returns the price of the next income upgrade at the given level.
// Fast at first, ramps up through the mid game.
func UpgradeCost(level int) float64 {
	return exponentialCost(incomeBase, incomeGrowth, level)
}

// DoubleGPSCost returns the price of the next income doubling. Steep, gates the late game.
func DoubleGPSCost(level int) float64 {
	return exponentialCost(doubleGPSBase, doubleGPSGrowth, level)
}

// ClickUpgradeCost returns the price of the next +1 gold per click.
func ClickUpgradeCost(level int) float64 {
	return exponentialCost(clickBase, clickGrowth, level)
}

// NextPrestigeCost ramps an escalating prestige threshold geometrically.
func NextPrestigeCost(current float64) float64 {
	if current < 0 {
		current = 0
	}
	return math.Floor(current * prestigeGrowth)
}

// SoftCap leaves value untouched up to limit and grows as (value-limit)^power beyond it.
func SoftCap(value, limit, power float64) float64 {
	if value <= limit {
		return value
	}
	return limit + math.Pow(value-limit, power)
}

// MaxStarsPerPrestige caps a single award so the int conversion cannot wrap.
const MaxStarsPerPrestige = math.MaxInt32

// StarsFor converts run currency into the number of stars a prestige would award.
func StarsFor(currency float64) int {
	if currency <= 0 {
		return 0
	}
	q := math.Floor(currency / GoldPerStar)
	if q >= MaxStarsPerPrestige {
		return MaxStarsPerPrestige
	}
	return int(q)
}
