package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

func (d *DestinationController) GetDestination(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	dest, err := d.destinationService.Discover(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dest, "Destination fetched successfully")
}

func (d *DestinationController) GetDestinationPOIs(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	pois, err := d.destinationService.ListPOIs(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "POIs fetched successfully"
	if len(pois) == 0 {
		message = "No points of interest found for this city"
	}
	utils.RespondSuccess(c, pois, message)
}
