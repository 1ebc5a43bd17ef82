package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/services"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

var Module = fx.Provide(
	provideCityRepo,
	provideCatalogService,
	provideClusterService,
	provideRankingService,
	provideDiscoveryService,
	provideCulinaryService,
	provideTransportService,
)

func provideCityRepo(cfg *config.Config) repositories.CityRepository {
	return repositories.NewCityRepository(cfg.CityDataDir)
}

func provideCatalogService() services.CatalogServiceInterface {
	return services.NewCatalogService()
}

func provideClusterService(cfg *config.Config) services.ClusterServiceInterface {
	return services.NewClusterService(services.DefaultEffortRules(), cfg.ClusterThresholdKm)
}

func provideRankingService() services.RankingServiceInterface {
	return services.NewRankingService()
}

func provideDiscoveryService(
	cityRepo repositories.CityRepository,
	llm utils.GenerativeClientInterface,
	catalog services.CatalogServiceInterface,
	logger *zap.Logger,
) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(cityRepo, llm, catalog, logger)
}

func provideCulinaryService(llm utils.GenerativeClientInterface, logger *zap.Logger) services.CulinaryServiceInterface {
	return services.NewCulinaryService(llm, logger)
}

func provideTransportService() services.TransportServiceInterface {
	return services.NewTransportService()
}
