package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosts_KnownLevels(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(int) float64
		level int
		want  float64
	}{
		{"income level 0", UpgradeCost, 0, 50},
		{"income level 1", UpgradeCost, 1, 59},
		{"income level 2", UpgradeCost, 2, 69},
		{"income negative level", UpgradeCost, -3, 50},
		{"double level 0", DoubleGPSCost, 0, 200},
		{"double level 1", DoubleGPSCost, 1, 540},
		{"double level 2", DoubleGPSCost, 2, 1458},
		{"click level 0", ClickUpgradeCost, 0, 50},
		{"click level 1", ClickUpgradeCost, 1, 105},
		{"click level 2", ClickUpgradeCost, 2, 220},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.level))
		})
	}
}

func TestCosts_MonotonicNonDecreasing(t *testing.T) {
	curves := map[string]func(int) float64{
		"income": UpgradeCost,
		"double": DoubleGPSCost,
		"click":  ClickUpgradeCost,
	}
	for name, fn := range curves {
		for n := 0; n < 200; n++ {
			if fn(n) > fn(n+1) {
				t.Fatalf("%s cost decreased at level %d: %v > %v", name, n, fn(n), fn(n+1))
			}
		}
	}
}

func TestCosts_Deterministic(t *testing.T) {
	for n := 0; n < 50; n++ {
		assert.Equal(t, UpgradeCost(n), UpgradeCost(n))
		assert.Equal(t, DoubleGPSCost(n), DoubleGPSCost(n))
		assert.Equal(t, ClickUpgradeCost(n), ClickUpgradeCost(n))
	}
}

func TestNextPrestigeCost(t *testing.T) {
	assert.Equal(t, 2_500_000.0, NextPrestigeCost(1_000_000))
	assert.Equal(t, 6_250_000.0, NextPrestigeCost(2_500_000))
	assert.Equal(t, 0.0, NextPrestigeCost(-5))
}

func TestSoftCap_IdentityBelowCap(t *testing.T) {
	for _, v := range []float64{0, 1, 50.5, 99, 100} {
		assert.Equal(t, v, SoftCap(v, 100, DefaultSoftCapPower))
	}
}

func TestSoftCap_SublinearAboveCap(t *testing.T) {
	assert.Equal(t, 1010.0, SoftCap(1100, 1000, 0.5))

	prev := SoftCap(1000, 1000, 0.5)
	for v := 1001.0; v < 5000; v += 37 {
		got := SoftCap(v, 1000, 0.5)
		if got <= prev {
			t.Fatalf("soft cap not strictly increasing at %v: %v <= %v", v, got, prev)
		}
		if got >= v {
			t.Fatalf("soft cap not below linear at %v: got %v", v, got)
		}
		prev = got
	}
}

func TestStarsFor(t *testing.T) {
	tests := []struct {
		currency float64
		want     int
	}{
		{0, 0},
		{-10, 0},
		{999_999, 0},
		{1_000_000, 1},
		{2_500_000, 2},
		{math.MaxInt32, 2147},
		{1e26, MaxStarsPerPrestige},
		{math.MaxFloat64, MaxStarsPerPrestige},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StarsFor(tt.currency), "currency %v", tt.currency)
	}
}
