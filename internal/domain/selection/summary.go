package selection

import (
	"pricing-app/internal/currency"
	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
)

// Summary is everything the summary panel and feature grid display for one
// selection state. Built fresh on every read.
type Summary struct {
	Tier          plans.Tier `json:"tier"`
	PlanName      string     `json:"plan_name"`
	Seats         int        `json:"seats"`
	Collaborators int        `json:"collaborators"`

	MonthlyPrice        int    `json:"monthly_price"`
	MonthlyPriceDisplay string `json:"monthly_price_display"`
	// Annual figures are shown only for the scale tier ("billed annually");
	// the billing model itself stays monthly.
	AnnualPrice        int    `json:"annual_price,omitempty"`
	AnnualPriceDisplay string `json:"annual_price_display,omitempty"`

	Nudge         *pricing.Nudge `json:"nudge,omitempty"`
	DuckDBMessage string         `json:"duck_db_message"`

	Includes      []string       `json:"includes"`
	GatedFeatures []GatedFeature `json:"gated_features"`
}

// GatedFeature is one entry of the "Looking for something specific?" grid.
type GatedFeature struct {
	Feature      string     `json:"feature"`
	RequiredTier plans.Tier `json:"required_tier"`
	Included     bool       `json:"included"`
}

func buildSummary(catalog *plans.Catalog, engine *pricing.Engine, tier plans.Tier, seats int) Summary {
	p := catalog.Plan(tier)
	monthly := engine.TotalMonthlyPrice(tier, seats)

	s := Summary{
		Tier:                tier,
		PlanName:            p.Name,
		Seats:               seats,
		Collaborators:       p.Collaborators,
		MonthlyPrice:        monthly,
		MonthlyPriceDisplay: currency.FormatUSD(monthly) + "/month",
		Nudge:               engine.UpgradeMessage(tier, seats),
		DuckDBMessage:       engine.DuckDBMessage(tier),
		Includes:            p.FeatureList,
	}

	if tier == plans.TierScale {
		s.AnnualPrice = engine.AnnualPrice(tier, seats)
		s.AnnualPriceDisplay = currency.FormatUSD(s.AnnualPrice) + " billed annually"
	}

	gates := catalog.FeatureGates()
	s.GatedFeatures = make([]GatedFeature, 0, len(gates))
	for _, g := range gates {
		s.GatedFeatures = append(s.GatedFeatures, GatedFeature{
			Feature:      g.Feature,
			RequiredTier: g.RequiredTier,
			Included:     engine.IsFeatureIncluded(tier, g.Feature),
		})
	}

	return s
}
