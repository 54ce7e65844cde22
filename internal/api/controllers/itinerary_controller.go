package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinero/internal/models/request_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type ItineraryController struct {
	plannerService services.PlannerServiceInterface
}

func NewItineraryController(plannerService services.PlannerServiceInterface) *ItineraryController {
	return &ItineraryController{
		plannerService: plannerService,
	}
}

func (ic *ItineraryController) WelcomeHandler(c *gin.Context) {
	utils.RespondSuccess(c, nil, "Welcome to the Trip Planner API")
}

func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := ic.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}
