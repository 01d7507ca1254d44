package pricing

import (
	"fmt"

	"pricing-app/internal/currency"
	"pricing-app/internal/domain/plans"
)

const (
	// stillCheapThreshold caps the extra monthly cost a recommendation may
	// carry before it is suppressed. Applies to every candidate, including
	// strictly-cheaper ones (which trivially pass).
	stillCheapThreshold = 350

	// enterpriseAnnualThreshold is the projected annual spend above which the
	// nudge switches to a contact-sales message.
	enterpriseAnnualThreshold = 35000
)

// Recommendation is a computed suggestion to move to a higher tier at its
// seat minimum, with the cost and benefit deltas against the current pick.
type Recommendation struct {
	TargetTier         plans.Tier `json:"target_tier"`
	TargetSeats        int        `json:"target_seats"`
	ExtraEditors       int        `json:"extra_editors"`
	ExtraCollaborators int        `json:"extra_collaborators"`
	ExtraCost          int        `json:"extra_cost"` // whole USD per month; negative means cheaper
}

// RecommendUpgrade evaluates the upgrade heuristic for the current selection.
// Each tier has exactly one applicable step, so the first applicable
// candidate wins; the candidate is surfaced only while its extra cost stays
// under the still-cheap threshold. Returns nil when there is nothing to say.
func (e *Engine) RecommendUpgrade(tier plans.Tier, seats int) *Recommendation {
	currentCost := e.TotalMonthlyPrice(tier, seats)

	var rec *Recommendation
	switch tier {
	case plans.TierPro:
		team := e.catalog.Plan(plans.TierTeam)
		if seats < team.MinSeats {
			rec = &Recommendation{
				TargetTier:         team.ID,
				TargetSeats:        team.MinSeats,
				ExtraEditors:       team.MinSeats - seats,
				ExtraCollaborators: team.Collaborators - e.catalog.Plan(plans.TierPro).Collaborators,
				ExtraCost:          team.PricePerEditor*team.MinSeats - currentCost,
			}
		}
	case plans.TierTeam:
		scale := e.catalog.Plan(plans.TierScale)
		if seats < scale.MinSeats {
			seatsNeeded := scale.MinSeats - seats
			// Filling the gap on team pricing vs jumping straight to scale.
			costIfStaying := currentCost + seatsNeeded*e.catalog.Plan(plans.TierTeam).PricePerEditor
			scaleCost := scale.PricePerEditor * scale.MinSeats
			if scaleCost < costIfStaying {
				rec = &Recommendation{
					TargetTier:         scale.ID,
					TargetSeats:        scale.MinSeats,
					ExtraEditors:       seatsNeeded,
					ExtraCollaborators: scale.Collaborators - e.catalog.Plan(plans.TierTeam).Collaborators,
					ExtraCost:          scaleCost - currentCost,
				}
			}
		}
	}

	if rec == nil || rec.ExtraCost >= stillCheapThreshold {
		return nil
	}
	return rec
}

// NudgeKind classifies the upgrade message shown in the summary panel.
type NudgeKind string

const (
	NudgeContactSales   NudgeKind = "contact_sales"
	NudgeUpsell         NudgeKind = "upsell"
	NudgeCheaperUpgrade NudgeKind = "cheaper_upgrade"
)

// Nudge is the rendered upgrade message.
type Nudge struct {
	Kind           NudgeKind       `json:"kind"`
	Text           string          `json:"text"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// UpgradeMessage picks the nudge for the current selection. A projected
// annual spend above the enterprise threshold overrides any recommendation;
// otherwise a positive extra cost yields the upsell variant, a negative one
// the strictly-cheaper variant, and zero (or no recommendation) nothing.
func (e *Engine) UpgradeMessage(tier plans.Tier, seats int) *Nudge {
	if e.AnnualPrice(tier, seats) > enterpriseAnnualThreshold {
		return &Nudge{
			Kind: NudgeContactSales,
			Text: "We should talk about Enterprise so we give you the best value.",
		}
	}

	rec := e.RecommendUpgrade(tier, seats)
	if rec == nil {
		return nil
	}
	target := e.catalog.Plan(rec.TargetTier)
	switch {
	case rec.ExtraCost > 0:
		return &Nudge{
			Kind: NudgeUpsell,
			Text: fmt.Sprintf(
				"Psst. You could get an extra %d editors, %d collaborators, and well, a whole lot more for only %s p/m extra with %s.",
				rec.ExtraEditors, rec.ExtraCollaborators, currency.FormatUSD(rec.ExtraCost), target.Name,
			),
			Recommendation: rec,
		}
	case rec.ExtraCost < 0:
		return &Nudge{
			Kind: NudgeCheaperUpgrade,
			Text: fmt.Sprintf(
				"Look. You should upgrade to %s. You'll get much more Count for much less money.",
				target.Name,
			),
			Recommendation: rec,
		}
	}
	return nil
}
