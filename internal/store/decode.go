package store

import (
	"bytes"
	"encoding/json"
	"log"
	"math"

	"BubbleClicker/internal/model"
)

// fields splits a stored record into raw per-field values. A record that
// isn't a JSON object yields nil, which makes every field fall back.
func fields(key string, data []byte) map[string]json.RawMessage {
	if data == nil {
		return nil
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("[WARN] stored record %q unreadable, using defaults: %v", key, err)
		return nil
	}
	return out
}

// field decodes one value, returning def when it is absent, null, of the
// wrong type, or rejected by valid.
func field[T any](raw map[string]json.RawMessage, name string, def T, valid func(T) bool) T {
	msg, ok := raw[name]
	if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return def
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		log.Printf("[WARN] stored field %q malformed, using default: %v", name, err)
		return def
	}
	if valid != nil && !valid(v) {
		log.Printf("[WARN] stored field %q out of range, using default", name)
		return def
	}
	return v
}

func nonNegative(v float64) bool { return v >= 0 && !math.IsInf(v, 0) }
func positive(v float64) bool    { return v > 0 && !math.IsInf(v, 0) }
func nonNegativeInt(v int) bool  { return v >= 0 }
func positiveInt(v int) bool     { return v >= 1 }

// pricedLevel accepts a level only while its next purchase still has a finite price.
func pricedLevel(cost func(int) float64) func(int) bool {
	return func(level int) bool {
		return level >= 0 && !math.IsInf(cost(level), 0)
	}
}

// prestigeUpgrades decodes the star upgrade map entry by entry. Unknown keys
// are dropped and counts are clamped to the upgrade's max.
func prestigeUpgrades(raw map[string]json.RawMessage) map[string]int {
	out := map[string]int{}
	entries := field[map[string]json.RawMessage](raw, "prestigeUpgrades", nil, nil)
	for key, msg := range entries {
		def, ok := model.LookupPrestigeUpgrade(key)
		if !ok {
			log.Printf("[WARN] dropping unknown prestige upgrade %q", key)
			continue
		}
		var n int
		if err := json.Unmarshal(msg, &n); err != nil || n <= 0 {
			continue
		}
		if n > def.Max {
			log.Printf("[WARN] prestige upgrade %q clamped from %d to %d", key, n, def.Max)
			n = def.Max
		}
		out[key] = n
	}
	return out
}
