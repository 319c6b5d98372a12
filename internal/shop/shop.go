// Package shop plans elixir purchases for the shopping phase.
package shop

import (
	"sort"

	"arena_ai/internal/config"
)

// PlanPurchases allocates budget across elixir tiers greedily, biggest
// heal first (ties: cheaper tier, then name). Deterministic for fixed
// tables; the returned plan never costs more than budget.
func PlanPurchases(budget int, prices map[config.Tier]int, heals map[config.Tier]int) map[config.Tier]int {
	tiers := make([]config.Tier, 0, len(prices))
	for t := range prices {
		if prices[t] > 0 {
			tiers = append(tiers, t)
		}
	}
	sort.Slice(tiers, func(i, j int) bool {
		hi, hj := heals[tiers[i]], heals[tiers[j]]
		if hi != hj {
			return hi > hj
		}
		if prices[tiers[i]] != prices[tiers[j]] {
			return prices[tiers[i]] < prices[tiers[j]]
		}
		return tiers[i] < tiers[j]
	})

	plan := map[config.Tier]int{}
	remaining := budget
	for _, t := range tiers {
		for remaining >= prices[t] {
			plan[t]++
			remaining -= prices[t]
		}
	}
	return plan
}

// Cost totals a plan against a price table.
func Cost(plan map[config.Tier]int, prices map[config.Tier]int) int {
	total := 0
	for t, n := range plan {
		total += prices[t] * n
	}
	return total
}

// Tables extracts the price and heal lookup tables from the economy
// config.
func Tables(eco config.EconomyConfig) (prices, heals map[config.Tier]int) {
	prices = make(map[config.Tier]int, len(eco.Elixirs))
	heals = make(map[config.Tier]int, len(eco.Elixirs))
	for t, spec := range eco.Elixirs {
		prices[t] = spec.Price
		heals[t] = spec.Heal
	}
	return prices, heals
}
