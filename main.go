package main

import (
	"time"

	"pricing-app/config"
	plansapi "pricing-app/internal/api/plans"
	quoteapi "pricing-app/internal/api/quote"
	sessionsapi "pricing-app/internal/api/sessions"
	routes "pricing-app/internal/app/http"
	"pricing-app/internal/domain/plans"
	"pricing-app/internal/domain/pricing"
	"pricing-app/internal/logger"
	"pricing-app/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       config.LOG_LEVEL,
		Environment: config.ENVIRONMENT,
		ServiceName: "pricing-app",
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Catalog is built once and handed in explicitly; no package-level state.
	catalog := plans.DefaultCatalog()
	engine := pricing.NewEngine(catalog)

	r := gin.Default()

	// CORS before registering routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Plans:    plansapi.NewHandler(catalog),
		Quote:    quoteapi.NewHandler(catalog, engine),
		Sessions: sessionsapi.NewHandler(sessionsapi.NewStore(catalog, engine)),
		Metrics:  metrics.NewHTTPMetrics("pricing-app"),
	})

	logger.GetLogger().Info("listening", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.GetLogger().Fatal("server exited", zap.Error(err))
	}
}
