package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
	mapService     services.MapServiceInterface
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	mapService services.MapServiceInterface,
) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
		mapService:     mapService,
	}
}

func (p *PlannerController) GetPlan(c *gin.Context) {
	var query request_models.PlanQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	opts, err := services.NewPlanOptions(query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.plannerService.Plan(c.Request.Context(), opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

// PreviewPlan schedules a POI list posted by the caller without calling any provider.
func (p *PlannerController) PreviewPlan(c *gin.Context) {
	var req request_models.PreviewPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan := p.plannerService.PlanFromPOIs(services.NewPreviewOptions(req), request_models.ToPOIs(req.POIs))
	utils.RespondSuccess(c, plan, "Trip plan generated successfully")
}

func (p *PlannerController) GetPlanMap(c *gin.Context) {
	var query request_models.PlanQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	opts, err := services.NewPlanOptions(query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := p.plannerService.Plan(c.Request.Context(), opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := p.mapService.RenderMap(c.Writer, plan); err != nil {
		_ = c.Error(err)
	}
}
