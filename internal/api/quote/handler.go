package quote

import (
	"net/http"
	"strconv"

	"pricing-app/config"
	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
	"pricing-app/internal/domain/selection"
	"pricing-app/internal/slider"

	"github.com/gin-gonic/gin"
)

// Handler serves stateless quotes: one request carries the whole selection,
// the response carries the normalized state and the derived summary panel.
type Handler struct {
	catalog *plans.Catalog
	engine  *pricing.Engine
}

func NewHandler(catalog *plans.Catalog, engine *pricing.Engine) *Handler {
	return &Handler{catalog: catalog, engine: engine}
}

type QuoteResponse struct {
	Tier      string            `json:"tier"`
	Seats     int               `json:"seats"`
	Summary   selection.Summary `json:"summary"`
	Slider    *SliderDTO        `json:"slider,omitempty"`
	SignupURL string            `json:"signup_url"`
}

// SliderDTO positions the custom seat-slider thumb for a known container
// width. Omitted while the client hasn't measured its layout yet.
type SliderDTO struct {
	Min        int     `json:"min"`
	Max        int     `json:"max"`
	ThumbWidth int     `json:"thumb_width"`
	Position   float64 `json:"position"`
}

// GetQuote computes a quote for ?tier=&seats=. Out-of-range seats are
// clamped, never rejected. When tier is omitted it is auto-selected from the
// seat count; when given, the tier's seat minimum is applied on top, exactly
// like clicking a card after dragging the slider.
func (h *Handler) GetQuote(c *gin.Context) {
	seats := plans.MinSeatCount
	if raw := c.Query("seats"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seats must be an integer"})
			return
		}
		seats = n
	}

	ctrl := selection.NewController(h.catalog, h.engine)
	ctrl.SetSeatCount(seats)

	if raw := c.Query("tier"); raw != "" {
		tier, err := plans.ParseTier(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctrl.SelectTier(tier)
	}

	resp := QuoteResponse{
		Tier:      string(ctrl.Tier()),
		Seats:     ctrl.Seats(),
		Summary:   ctrl.Summary(),
		SignupURL: config.SIGNUP_URL,
	}

	// Clients that already know their layout get the thumb position back.
	if raw := c.Query("container_width"); raw != "" {
		width, err := strconv.ParseFloat(raw, 64)
		if err != nil || width <= slider.DefaultThumbWidth {
			c.JSON(http.StatusBadRequest, gin.H{"error": "container_width must be a width in pixels"})
			return
		}
		resp.Slider = &SliderDTO{
			Min:        plans.MinSeatCount,
			Max:        plans.MaxSeatCount,
			ThumbWidth: slider.DefaultThumbWidth,
			Position:   slider.Position(ctrl.Seats(), plans.MinSeatCount, plans.MaxSeatCount, width, slider.DefaultThumbWidth),
		}
	}

	c.JSON(http.StatusOK, resp)
}
