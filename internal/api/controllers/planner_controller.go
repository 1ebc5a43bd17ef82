package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/services"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func (p *PlannerController) DiscoverPlaces(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel request: "+err.Error())
		return
	}

	result, err := p.plannerService.Discover(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Places discovered successfully")
}

func (p *PlannerController) FullItinerary(c *gin.Context) {
	var req request_models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid travel request: "+err.Error())
		return
	}

	result, err := p.plannerService.FullItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}
