// Package kernel provides value objects shared by the dispatch domain model.
//
// The package includes:
//   - Price: a strictly positive decimal amount for menu items
//   - Rating: a restaurant score bounded to [0, 5]
//   - UUID: a random identifier used to correlate requests in logs
//
// Values are immutable and validated on construction.
package kernel
