package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/api/controllers"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/services"
)

var Module = fx.Provide(providePlannerController)

func providePlannerController(plannerService services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService)
}
