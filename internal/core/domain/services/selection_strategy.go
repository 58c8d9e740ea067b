package services

import (
	"dispatch/internal/core/domain/model/restaurant"
)

// Names under which the built-in strategies are registered.
const (
	LowestCostStrategyName    = "lowest_cost"
	HighestRatingStrategyName = "highest_rating"
)

// SelectionStrategy picks one restaurant out of a set of eligible candidates.
//
// Implementations must be pure: they only read the candidates and never change
// them. Select returns nil when candidates is empty. When several candidates
// score the same, the first one in candidates wins, so a deterministic candidate
// order gives a deterministic choice.
type SelectionStrategy interface {
	// Name identifies the strategy in the registry, in configuration and in logs.
	Name() string
	// Select returns the chosen candidate, or nil if there is none.
	Select(candidates []*restaurant.Restaurant, items map[string]int) *restaurant.Restaurant
}

// LowestCostStrategy selects the candidate with the lowest total for the items.
// Every candidate must offer every item.
type LowestCostStrategy struct{}

func (LowestCostStrategy) Name() string {
	return LowestCostStrategyName
}

func (LowestCostStrategy) Select(candidates []*restaurant.Restaurant, items map[string]int) *restaurant.Restaurant {
	var best *restaurant.Restaurant
	for _, candidate := range candidates {
		if best == nil {
			best = candidate
			continue
		}
		if candidate.CalculateTotalCost(items).LessThan(best.CalculateTotalCost(items)) {
			best = candidate
		}
	}
	return best
}

// HighestRatingStrategy selects the best rated candidate, regardless of price.
type HighestRatingStrategy struct{}

func (HighestRatingStrategy) Name() string {
	return HighestRatingStrategyName
}

func (HighestRatingStrategy) Select(candidates []*restaurant.Restaurant, _ map[string]int) *restaurant.Restaurant {
	var best *restaurant.Restaurant
	for _, candidate := range candidates {
		if best == nil || candidate.Rating() > best.Rating() {
			best = candidate
		}
	}
	return best
}
