// Package selection owns the visitor's pricing-page state: the selected tier
// and the seat count. Every derived value (price, nudge, feature flags) is
// recomputed from this pair on demand; nothing derived is ever cached.
package selection

import (
	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
)

// Controller holds the selection pair and applies the two state transitions.
// It is the single source of truth; widgets render whatever it reports.
// Not goroutine-safe on its own; callers serialize access.
type Controller struct {
	catalog *plans.Catalog
	engine  *pricing.Engine

	tier  plans.Tier
	seats int
}

// NewController starts at the defaults: cheapest entry-point tier, one seat.
func NewController(catalog *plans.Catalog, engine *pricing.Engine) *Controller {
	return &Controller{
		catalog: catalog,
		engine:  engine,
		tier:    catalog.Selectable()[0].ID,
		seats:   plans.MinSeatCount,
	}
}

// Tier returns the currently selected tier.
func (c *Controller) Tier() plans.Tier { return c.tier }

// Seats returns the current seat count.
func (c *Controller) Seats() int { return c.seats }

// SelectTier sets the tier explicitly. If the current seat count is below the
// tier's minimum it is raised to that minimum; it is never lowered. Keeps the
// invariant seats >= plan(tier).MinSeats.
func (c *Controller) SelectTier(t plans.Tier) {
	p := c.catalog.Plan(t)
	c.tier = t
	if c.seats < p.MinSeats {
		c.seats = p.MinSeats
	}
}

// SetSeatCount clamps the count to the slider bounds, stores it, then
// re-derives the tier. Dropping below the current tier's minimum naturally
// demotes; growing past a higher tier's minimum promotes.
func (c *Controller) SetSeatCount(n int) {
	c.seats = plans.ClampSeats(n)
	c.tier = c.engine.AutoSelectTier(c.seats)
}

// Summary recomputes the full summary-panel view model.
func (c *Controller) Summary() Summary {
	return buildSummary(c.catalog, c.engine, c.tier, c.seats)
}
