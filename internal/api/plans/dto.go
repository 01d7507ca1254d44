package plans

import (
	"fmt"

	"pricing-app/internal/domain/plans"
)

type PlanCardDTO struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	PricePerEditor int                    `json:"price_per_editor"`
	PriceDisplay   string                 `json:"price_display"`
	Description    string                 `json:"description"`
	MinSeats       int                    `json:"min_seats"`
	MinSeatsBadge  string                 `json:"min_seats_badge,omitempty"`
	Collaborators  int                    `json:"collaborators"`
	DuckDB         *plans.DuckDBAllowance `json:"duck_db,omitempty"`
	FeatureList    []string               `json:"feature_list"`
}

type FeaturesResponse struct {
	BaseFeatures       []string         `json:"base_features"`
	AdditionalFeatures []FeatureGateDTO `json:"additional_features"`
}

type FeatureGateDTO struct {
	Feature      string `json:"feature"`
	RequiredTier string `json:"required_tier"`
}

func BuildPlanCardDTO(p plans.Plan) PlanCardDTO {
	dto := PlanCardDTO{
		ID:             string(p.ID),
		Name:           p.Name,
		PricePerEditor: p.PricePerEditor,
		PriceDisplay:   fmt.Sprintf("$%d per editor/month", p.PricePerEditor),
		Description:    p.Description,
		MinSeats:       p.MinSeats,
		Collaborators:  p.Collaborators,
		DuckDB:         p.DuckDB,
		FeatureList:    p.FeatureList,
	}
	// The cards only badge a minimum when it is above a single seat.
	if p.MinSeats > 1 {
		dto.MinSeatsBadge = fmt.Sprintf("Min. %d seats", p.MinSeats)
	}
	return dto
}
