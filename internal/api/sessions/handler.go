package sessions

import (
	"net/http"

	"pricing-app/config"
	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/selection"

	"github.com/gin-gonic/gin"
)

// Handler exposes selection sessions over HTTP: one session per visitor,
// two mutations (tier click, slider change), summary read back on each.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type SessionResponse struct {
	ID        string            `json:"id"`
	Tier      string            `json:"tier"`
	Seats     int               `json:"seats"`
	Summary   selection.Summary `json:"summary"`
	SignupURL string            `json:"signup_url"`
}

type selectTierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

type setSeatsRequest struct {
	Seats *int `json:"seats" binding:"required"`
}

func buildSessionResponse(id string, snap Snapshot) SessionResponse {
	return SessionResponse{
		ID:        id,
		Tier:      string(snap.Tier),
		Seats:     snap.Seats,
		Summary:   snap.Summary,
		SignupURL: config.SIGNUP_URL,
	}
}

// CreateSession opens a session at the defaults (pro, 1 seat).
func (h *Handler) CreateSession(c *gin.Context) {
	id, snap := h.store.Create()
	c.JSON(http.StatusCreated, buildSessionResponse(id, snap))
}

// GetSession reads a session's current state and summary.
func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	snap, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, buildSessionResponse(id, snap))
}

// SelectTier handles a plan-card click. Picking a tier whose seat minimum is
// above the current count raises the count; it never lowers it.
func (h *Handler) SelectTier(c *gin.Context) {
	var req selectTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier is required"})
		return
	}
	tier, err := plans.ParseTier(req.Tier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	snap, ok := h.store.Update(id, func(ctrl *selection.Controller) {
		ctrl.SelectTier(tier)
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, buildSessionResponse(id, snap))
}

// SetSeats handles a slider change. Out-of-range counts are clamped, and the
// tier is re-derived from the new count.
func (h *Handler) SetSeats(c *gin.Context) {
	var req setSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seats is required"})
		return
	}

	id := c.Param("id")
	snap, ok := h.store.Update(id, func(ctrl *selection.Controller) {
		ctrl.SetSeatCount(*req.Seats)
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, buildSessionResponse(id, snap))
}

// DeleteSession tears a session down.
func (h *Handler) DeleteSession(c *gin.Context) {
	if !h.store.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
