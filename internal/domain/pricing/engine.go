// Package pricing is the pure pricing/recommendation engine. Every operation
// is a total, side-effect-free function over (tier, seat count) and the
// catalog handed to the engine at construction.
package pricing

import "pricing-app/internal/domain/plans"

// Engine computes prices, feature gating and upgrade recommendations.
type Engine struct {
	catalog *plans.Catalog
}

func NewEngine(catalog *plans.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// AutoSelectTier returns the highest selectable tier whose seat minimum the
// given count satisfies, scanning from highest requirement to lowest. The
// cheapest entry-point tier is the floor, so there is always a result.
func (e *Engine) AutoSelectTier(seats int) plans.Tier {
	desc := e.catalog.SelectableDesc()
	for _, p := range desc {
		if seats >= p.MinSeats {
			return p.ID
		}
	}
	return desc[len(desc)-1].ID
}

// TotalMonthlyPrice is price-per-editor times seat count, in whole USD.
func (e *Engine) TotalMonthlyPrice(tier plans.Tier, seats int) int {
	return e.catalog.Plan(tier).PricePerEditor * seats
}

// AnnualPrice is the projected yearly spend. Shown as "billed annually" for
// the scale tier only; the billing model itself is monthly everywhere.
func (e *Engine) AnnualPrice(tier plans.Tier, seats int) int {
	return e.TotalMonthlyPrice(tier, seats) * 12
}

// IsFeatureIncluded reports whether a tier unlocks a named feature. Base
// features are included everywhere; gated features compare tier ranks.
// Unknown feature names are not included anywhere.
func (e *Engine) IsFeatureIncluded(tier plans.Tier, feature string) bool {
	if required, ok := e.catalog.RequiredTier(feature); ok {
		return tier.AtLeast(required)
	}
	for _, f := range e.catalog.BaseFeatures() {
		if f == feature {
			return true
		}
	}
	return false
}

// DuckDBMessage is the savings blurb for the seat-slider section.
func (e *Engine) DuckDBMessage(tier plans.Tier) string {
	p := e.catalog.Plan(tier)
	if p.DuckDB == nil {
		return "Count shifts ~80% of queries to the user's browser for a snappier experience. " +
			"DuckDB Server Query Cache included on Team and above can lead to further savings in compute."
	}
	return "Count shifts ~80% of queries to the user's browser for a snappier experience. " +
		"The additional " + p.DuckDB.Capacity + " DuckDB Server Query Cache runs larger queries in our " +
		"server environment, reducing data-warehouse load and costs " + p.DuckDB.Saving + "."
}
