package plans

import (
	"net/http"

	"pricing-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// Handler serves the tier-selector cards and the feature tables.
type Handler struct {
	catalog *plans.Catalog
}

func NewHandler(catalog *plans.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// ListPlans returns the selectable plans in display order.
func (h *Handler) ListPlans(c *gin.Context) {
	selectable := h.catalog.Selectable()
	cards := make([]PlanCardDTO, 0, len(selectable))
	for _, p := range selectable {
		cards = append(cards, BuildPlanCardDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"plans": cards})
}

// ListFeatures returns the all-plans feature list plus the gated features
// with the first tier each is available in.
func (h *Handler) ListFeatures(c *gin.Context) {
	gates := h.catalog.FeatureGates()
	additional := make([]FeatureGateDTO, 0, len(gates))
	for _, g := range gates {
		additional = append(additional, FeatureGateDTO{
			Feature:      g.Feature,
			RequiredTier: string(g.RequiredTier),
		})
	}
	c.JSON(http.StatusOK, FeaturesResponse{
		BaseFeatures:       h.catalog.BaseFeatures(),
		AdditionalFeatures: additional,
	})
}
