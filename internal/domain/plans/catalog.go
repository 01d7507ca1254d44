package plans

import "fmt"

// Seat-count slider bounds.
const (
	MinSeatCount = 1
	MaxSeatCount = 60
)

// Catalog is the immutable plan table plus the feature-gate table. It is
// constructed once at startup and passed in explicitly; there is no mutable
// package-level plan state.
type Catalog struct {
	plans        map[Tier]Plan
	order        []Tier // selectable tiers, cheapest entry point first
	baseFeatures []string
	featureGates map[string]Tier
	gateOrder    []string // stable display order for the gated-feature grid
}

// NewCatalog validates the hand-authored plan data. Any failure here is a
// data-authoring defect and the process must not start.
func NewCatalog(planList []Plan, baseFeatures []string, gates []FeatureGate) (*Catalog, error) {
	c := &Catalog{
		plans:        make(map[Tier]Plan, len(planList)),
		baseFeatures: baseFeatures,
		featureGates: make(map[string]Tier, len(gates)),
	}

	prevMin := 0
	for _, p := range planList {
		if !p.ID.Selectable() {
			return nil, fmt.Errorf("plan %q is not a selectable tier", p.ID)
		}
		if _, dup := c.plans[p.ID]; dup {
			return nil, fmt.Errorf("duplicate plan %q", p.ID)
		}
		if p.MinSeats < MinSeatCount || p.MinSeats > MaxSeatCount {
			return nil, fmt.Errorf("plan %q: min seats %d outside [%d,%d]", p.ID, p.MinSeats, MinSeatCount, MaxSeatCount)
		}
		// Auto-selection scans high to low, so minimums must strictly ascend.
		if p.MinSeats <= prevMin && len(c.order) > 0 {
			return nil, fmt.Errorf("plan %q: min seats %d not above previous tier's %d", p.ID, p.MinSeats, prevMin)
		}
		if p.PricePerEditor <= 0 {
			return nil, fmt.Errorf("plan %q: non-positive price %d", p.ID, p.PricePerEditor)
		}
		if p.Collaborators < 0 {
			return nil, fmt.Errorf("plan %q: negative collaborators", p.ID)
		}
		prevMin = p.MinSeats
		c.plans[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("empty plan list")
	}

	for _, g := range gates {
		if _, ok := tierRank[g.RequiredTier]; !ok {
			return nil, fmt.Errorf("feature %q: unknown required tier %q", g.Feature, g.RequiredTier)
		}
		if _, dup := c.featureGates[g.Feature]; dup {
			return nil, fmt.Errorf("duplicate feature gate %q", g.Feature)
		}
		c.featureGates[g.Feature] = g.RequiredTier
		c.gateOrder = append(c.gateOrder, g.Feature)
	}

	return c, nil
}

// MustNewCatalog is NewCatalog for the canonical compile-time-known data.
func MustNewCatalog(planList []Plan, baseFeatures []string, gates []FeatureGate) *Catalog {
	c, err := NewCatalog(planList, baseFeatures, gates)
	if err != nil {
		panic("plans: invalid catalog: " + err.Error())
	}
	return c
}

// FeatureGate maps one named capability to the first tier that unlocks it.
type FeatureGate struct {
	Feature      string `json:"feature"`
	RequiredTier Tier   `json:"required_tier"`
}

// Plan looks up a tier. The tier set is closed and compile-time-known, so a
// miss is a programming error, never a recoverable condition.
func (c *Catalog) Plan(t Tier) Plan {
	p, ok := c.plans[t]
	if !ok {
		panic(fmt.Sprintf("plans: no plan for tier %q", t))
	}
	return p
}

// Selectable returns the selectable plans in display order.
func (c *Catalog) Selectable() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.plans[t])
	}
	return out
}

// SelectableDesc returns the selectable plans from highest seat requirement
// to lowest, the scan order for tier auto-selection.
func (c *Catalog) SelectableDesc() []Plan {
	out := make([]Plan, 0, len(c.order))
	for i := len(c.order) - 1; i >= 0; i-- {
		out = append(out, c.plans[c.order[i]])
	}
	return out
}

// BaseFeatures lists the features included in every plan.
func (c *Catalog) BaseFeatures() []string {
	return c.baseFeatures
}

// FeatureGates returns the gated features in display order.
func (c *Catalog) FeatureGates() []FeatureGate {
	out := make([]FeatureGate, 0, len(c.gateOrder))
	for _, f := range c.gateOrder {
		out = append(out, FeatureGate{Feature: f, RequiredTier: c.featureGates[f]})
	}
	return out
}

// RequiredTier returns the gate for a named feature.
func (c *Catalog) RequiredTier(feature string) (Tier, bool) {
	t, ok := c.featureGates[feature]
	return t, ok
}

// ClampSeats bounds a requested seat count to the slider range.
func ClampSeats(n int) int {
	if n < MinSeatCount {
		return MinSeatCount
	}
	if n > MaxSeatCount {
		return MaxSeatCount
	}
	return n
}
