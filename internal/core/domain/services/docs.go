// Package services provides domain services that work across the Restaurant and
// Order aggregates of the dispatch system.
//
// The package includes:
//   - SelectionStrategy: the policy contract, with LowestCostStrategy and
//     HighestRatingStrategy as built-in variants
//   - StrategyRegistry: strategies by name plus the mutable process-wide default
//   - OrderDispatcher: filters eligible restaurants, asks the strategy and assigns
//
// Further policies plug in by implementing SelectionStrategy and registering it.
package services
