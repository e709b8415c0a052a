package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/middleware"
)

// NewRouter builds the engine with the shared middleware chain and all routes.
// withMetrics registers the gin collectors and /metrics; it may only be set once per process.
func NewRouter(
	log *zap.Logger,
	allowedOrigins []string,
	withMetrics bool,
	plannerController *controllers.PlannerController,
	destinationController *controllers.DestinationController,
) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	if withMetrics {
		ginprometheus.NewPrometheus("gin").Use(r)
	}

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	r.GET("/health", health)
	r.HEAD("/health", health)

	RegisterRoutes(r, plannerController, destinationController)
	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	destinationController *controllers.DestinationController) {

	v1 := r.Group("/api/v1")

	plans := v1.Group("/plans")
	plans.GET("", plannerController.GetPlan)
	plans.POST("/preview", plannerController.PreviewPlan)
	plans.GET("/map", plannerController.GetPlanMap)

	destinations := v1.Group("/destinations")
	destinations.GET("/:city", destinationController.GetDestination)
	destinations.GET("/:city/pois", destinationController.GetDestinationPOIs)
}
