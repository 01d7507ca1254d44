package routes

import (
	plansapi "pricing-app/internal/api/plans"
	quoteapi "pricing-app/internal/api/quote"
	sessionsapi "pricing-app/internal/api/sessions"
	"pricing-app/internal/app/http/middleware"
	"pricing-app/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the wired API handlers for route registration.
type Handlers struct {
	Plans    *plansapi.Handler
	Quote    *quoteapi.Handler
	Sessions *sessionsapi.Handler
	Metrics  *metrics.HTTPMetrics
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.Use(middleware.RequestLogger())
	r.Use(h.Metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", h.Metrics.Handler())

	// Catalog (static, read-only)
	r.GET("/plans", h.Plans.ListPlans)
	r.GET("/features", h.Plans.ListFeatures)

	// Stateless quote
	r.GET("/quote", h.Quote.GetQuote)

	// Selection sessions (in-memory, reset on restart)
	r.POST("/sessions", h.Sessions.CreateSession)
	r.GET("/sessions/:id", h.Sessions.GetSession)
	r.PUT("/sessions/:id/tier", h.Sessions.SelectTier)
	r.PUT("/sessions/:id/seats", h.Sessions.SetSeats)
	r.DELETE("/sessions/:id", h.Sessions.DeleteSession)
}
