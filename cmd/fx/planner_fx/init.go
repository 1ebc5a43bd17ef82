package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/services"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

var Module = fx.Provide(provideArchitectService, providePlannerService)

func provideArchitectService(
	llm utils.GenerativeClientInterface,
	logger *zap.Logger,
	cfg *config.Config,
) services.ArchitectServiceInterface {
	return services.NewArchitectService(
		llm,
		logger,
		cfg.HalfDaySpreadKm,
		cfg.EffortIsolationKm,
		cfg.DailyFoodAllowance,
		cfg.DailyTransportBudget,
	)
}

func providePlannerService(
	discovery services.DiscoveryServiceInterface,
	culinary services.CulinaryServiceInterface,
	catalog services.CatalogServiceInterface,
	cluster services.ClusterServiceInterface,
	ranking services.RankingServiceInterface,
	transport services.TransportServiceInterface,
	architect services.ArchitectServiceInterface,
	cache repositories.CacheStore,
	logger *zap.Logger,
	cfg *config.Config,
) services.PlannerServiceInterface {
	return services.NewPlannerService(
		discovery,
		culinary,
		catalog,
		cluster,
		ranking,
		transport,
		architect,
		cache,
		logger,
		cfg.MandatoryTopN,
		cfg.CacheHitDelay,
	)
}
